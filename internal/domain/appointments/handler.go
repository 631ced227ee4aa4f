package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", scheduleHandler(svc, petsSvc))
		ar.Get("/", listByDayHandler(svc))
		ar.Get("/{appointmentID}", getHandler(svc))
		ar.Post("/{appointmentID}/status", updateStatusHandler(svc))
		ar.Post("/{appointmentID}/cancel", cancelHandler(svc))
	})

	r.Get("/pets/{petID}/appointments", listByPetHandler(svc, petsSvc))
}

type scheduleRequest struct {
	PetID       string `json:"pet_id"`
	ServiceType string `json:"service_type" enums:"bath,grooming,consultation,vaccination,checkup,other"`
	ScheduledAt string `json:"scheduled_at"` // RFC3339
	Notes       string `json:"notes"`
	PriceCents  int64  `json:"price_cents"`
}

type updateStatusRequest struct {
	Status string `json:"status" enums:"confirmed,in_progress,completed"`
}

type appointmentResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	PetID       string    `json:"pet_id"`
	ServiceType string    `json:"service_type"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	PriceCents  int64     `json:"price_cents"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// scheduleHandler godoc
// @Summary Agendar serviço
// @Description Agenda um serviço para a mascota. O tutor é derivado da própria mascota. Se houver atendente autenticado, fica registrado como criador.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body scheduleRequest true "Dados do agendamento; scheduled_at em RFC3339"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / scheduled_at inválido / invalid input"
// @Failure 404 {string} string "pet not found"
// @Router /appointments [post]
func scheduleHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := petsSvc.GetByID(r.Context(), req.PetID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		at, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			http.Error(w, "scheduled_at must be RFC3339", http.StatusBadRequest)
			return
		}

		var createdBy string
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			createdBy = claims.UserID
		}

		a, err := svc.Schedule(r.Context(), ScheduleInput{
			CustomerID:  p.CustomerID,
			PetID:       p.ID,
			ServiceType: ServiceType(req.ServiceType),
			ScheduledAt: at,
			Notes:       req.Notes,
			PriceCents:  req.PriceCents,
			CreatedBy:   createdBy,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listByDayHandler godoc
// @Summary Agenda do dia
// @Tags appointments
// @Produce json
// @Param date query string false "Dia no formato YYYY-MM-DD (default: hoje, UTC)"
// @Success 200 {array} appointmentResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Router /appointments [get]
func listByDayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := time.Now().UTC()
		if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = t
		}

		items, err := svc.ListByDay(r.Context(), day)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listByPetHandler godoc
// @Summary Histórico de agendamentos da mascota
// @Tags appointments
// @Produce json
// @Param petID path string true "ID da mascota"
// @Success 200 {array} appointmentResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/appointments [get]
func listByPetHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getHandler godoc
// @Summary Buscar agendamento por ID
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID do agendamento"
// @Success 200 {object} appointmentResponse
// @Failure 404 {string} string "appointment not found"
// @Router /appointments/{appointmentID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// updateStatusHandler godoc
// @Summary Mudar status do agendamento
// @Description Aplica a transição pedida se for legal (scheduled->confirmed->in_progress->completed).
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID do agendamento"
// @Param payload body updateStatusRequest true "Novo status"
// @Success 200 {object} appointmentResponse
// @Failure 404 {string} string "appointment not found"
// @Failure 409 {string} string "invalid state"
// @Router /appointments/{appointmentID}/status [post]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "appointmentID"), Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			case errors.Is(err, ErrBadState):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// cancelHandler godoc
// @Summary Cancelar agendamento
// @Description Idempotente: cancelar de novo devolve o registro como está.
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID do agendamento"
// @Success 200 {object} appointmentResponse
// @Failure 404 {string} string "appointment not found"
// @Failure 409 {string} string "invalid state"
// @Router /appointments/{appointmentID}/cancel [post]
func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Cancel(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			case errors.Is(err, ErrBadState):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		PetID:       a.PetID,
		ServiceType: string(a.ServiceType),
		ScheduledAt: a.ScheduledAt,
		Status:      string(a.Status),
		Notes:       a.Notes,
		PriceCents:  a.PriceCents,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// writeJSON é duplicado de propósito nos handlers de cada módulo
// para não criar um pacote de helpers compartilhado cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
