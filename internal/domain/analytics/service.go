package analytics

import (
	"context"
	"time"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/appointments"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/catalog"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/conversations"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
)

// LowStockThreshold: produto ativo com menos que isso entra no alerta.
const LowStockThreshold = 5

// Summary são os números dos cards do dashboard, agregados na hora a
// partir dos repositórios (nada de dado mockado).
type Summary struct {
	Customers     int
	Pets          int
	PetsBySpecies map[pets.Species]int

	AppointmentsToday int
	OpenConversations int
	LowStockProducts  int
}

// Service é só leitura: agrega sobre os repositórios dos outros módulos.
type Service struct {
	customers customers.Repository
	pets      pets.Repository
	appts     appointments.Repository
	convs     conversations.Repository
	catalog   catalog.Repository

	now func() time.Time
}

func NewService(
	customersRepo customers.Repository,
	petsRepo pets.Repository,
	apptsRepo appointments.Repository,
	convsRepo conversations.Repository,
	catalogRepo catalog.Repository,
) *Service {
	return &Service{
		customers: customersRepo,
		pets:      petsRepo,
		appts:     apptsRepo,
		convs:     convsRepo,
		catalog:   catalogRepo,
		now:       time.Now,
	}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	out := Summary{PetsBySpecies: map[pets.Species]int{}}

	allCustomers, err := s.customers.List(ctx, customers.ListFilter{})
	if err != nil {
		return Summary{}, err
	}
	out.Customers = len(allCustomers)

	allPets, err := s.pets.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.Pets = len(allPets)
	for _, p := range allPets {
		out.PetsBySpecies[p.Species]++
	}

	today, err := s.appts.ListByDay(ctx, s.now().UTC())
	if err != nil {
		return Summary{}, err
	}
	for _, a := range today {
		if a.Status != appointments.StatusCancelled {
			out.AppointmentsToday++
		}
	}

	open, err := s.convs.ListConversations(ctx, conversations.ListFilter{
		Status: conversations.StatusOpen,
	})
	if err != nil {
		return Summary{}, err
	}
	out.OpenConversations = len(open)

	products, err := s.catalog.List(ctx, catalog.ListFilter{
		Kind:       catalog.KindProduct,
		OnlyActive: true,
	})
	if err != nil {
		return Summary{}, err
	}
	for _, it := range products {
		if it.Stock < LowStockThreshold {
			out.LowStockProducts++
		}
	}

	return out, nil
}
