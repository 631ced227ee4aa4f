package appointments

// ServiceType é o serviço agendado.
type ServiceType string

const (
	ServiceBath         ServiceType = "bath"
	ServiceGrooming     ServiceType = "grooming"
	ServiceConsultation ServiceType = "consultation"
	ServiceVaccination  ServiceType = "vaccination"
	ServiceCheckup      ServiceType = "checkup"
	ServiceOther        ServiceType = "other"
)

// Status do agendamento. Fluxo:
// scheduled -> confirmed -> in_progress -> completed
// cancel permitido a partir de scheduled/confirmed.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func validServiceType(t ServiceType) bool {
	switch t {
	case ServiceBath, ServiceGrooming, ServiceConsultation,
		ServiceVaccination, ServiceCheckup, ServiceOther:
		return true
	}
	return false
}

// transitions é a tabela de transições legais de status.
var transitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

func canTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
