package analytics

import (
	"context"
	"testing"
	"time"

	mem "github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/adapters/storage/memory"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/appointments"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/catalog"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/conversations"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
)

func TestService_Summary_AgregaSobreOsRepositorios(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

	customersRepo := mem.NewCustomersRepo()
	petsRepo := mem.NewPetsRepo()
	apptsRepo := mem.NewAppointmentsRepo()
	convsRepo := mem.NewConversationsRepo()
	catalogRepo := mem.NewCatalogRepo()

	svc := NewService(customersRepo, petsRepo, apptsRepo, convsRepo, catalogRepo)
	svc.now = func() time.Time { return now }

	// 2 tutores, 3 mascotas (2 dog, 1 cat)
	_ = customersRepo.Create(ctx, customers.Customer{ID: "c1", Name: "Maria", Phone: "11999991234", CreatedAt: now})
	_ = customersRepo.Create(ctx, customers.Customer{ID: "c2", Name: "João", Phone: "2133334444", CreatedAt: now})
	_ = petsRepo.Create(ctx, pets.Pet{ID: "p1", CustomerID: "c1", Name: "Luna", Species: pets.SpeciesDog, Size: pets.SizeMedium, CreatedAt: now})
	_ = petsRepo.Create(ctx, pets.Pet{ID: "p2", CustomerID: "c1", Name: "Thor", Species: pets.SpeciesDog, Size: pets.SizeLarge, CreatedAt: now})
	_ = petsRepo.Create(ctx, pets.Pet{ID: "p3", CustomerID: "c2", Name: "Mia", Species: pets.SpeciesCat, Size: pets.SizeSmall, CreatedAt: now})

	// agenda de hoje: 2 válidos, 1 cancelado, 1 de amanhã
	_ = apptsRepo.Create(ctx, appointments.Appointment{ID: "a1", CustomerID: "c1", PetID: "p1", ServiceType: appointments.ServiceBath, ScheduledAt: now, Status: appointments.StatusScheduled})
	_ = apptsRepo.Create(ctx, appointments.Appointment{ID: "a2", CustomerID: "c1", PetID: "p2", ServiceType: appointments.ServiceGrooming, ScheduledAt: now.Add(time.Hour), Status: appointments.StatusConfirmed})
	_ = apptsRepo.Create(ctx, appointments.Appointment{ID: "a3", CustomerID: "c2", PetID: "p3", ServiceType: appointments.ServiceBath, ScheduledAt: now, Status: appointments.StatusCancelled})
	_ = apptsRepo.Create(ctx, appointments.Appointment{ID: "a4", CustomerID: "c2", PetID: "p3", ServiceType: appointments.ServiceBath, ScheduledAt: now.Add(24 * time.Hour), Status: appointments.StatusScheduled})

	// inbox: 1 aberta, 1 resolvida
	_ = convsRepo.CreateConversation(ctx, conversations.Conversation{ID: "v1", CustomerID: "c1", Channel: conversations.ChannelWhatsApp, Status: conversations.StatusOpen, LastMessageAt: now})
	_ = convsRepo.CreateConversation(ctx, conversations.Conversation{ID: "v2", CustomerID: "c2", Channel: conversations.ChannelWhatsApp, Status: conversations.StatusResolved, LastMessageAt: now})

	// catálogo: 1 produto baixo, 1 produto ok, 1 produto baixo mas inativo, 1 serviço
	_ = catalogRepo.Create(ctx, catalog.Item{ID: "i1", Name: "Ração", Kind: catalog.KindProduct, Stock: 2, Active: true, CreatedAt: now})
	_ = catalogRepo.Create(ctx, catalog.Item{ID: "i2", Name: "Coleira", Kind: catalog.KindProduct, Stock: 20, Active: true, CreatedAt: now})
	_ = catalogRepo.Create(ctx, catalog.Item{ID: "i3", Name: "Shampoo", Kind: catalog.KindProduct, Stock: 1, Active: false, CreatedAt: now})
	_ = catalogRepo.Create(ctx, catalog.Item{ID: "i4", Name: "Banho", Kind: catalog.KindService, Stock: 0, Active: true, CreatedAt: now})

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}

	if sum.Customers != 2 {
		t.Errorf("Customers = %d, want 2", sum.Customers)
	}
	if sum.Pets != 3 {
		t.Errorf("Pets = %d, want 3", sum.Pets)
	}
	if sum.PetsBySpecies[pets.SpeciesDog] != 2 || sum.PetsBySpecies[pets.SpeciesCat] != 1 {
		t.Errorf("PetsBySpecies = %#v, want dog:2 cat:1", sum.PetsBySpecies)
	}
	if sum.AppointmentsToday != 2 {
		t.Errorf("AppointmentsToday = %d, want 2 (cancelado e amanhã fora)", sum.AppointmentsToday)
	}
	if sum.OpenConversations != 1 {
		t.Errorf("OpenConversations = %d, want 1", sum.OpenConversations)
	}
	if sum.LowStockProducts != 1 {
		t.Errorf("LowStockProducts = %d, want 1 (inativo e serviço fora)", sum.LowStockProducts)
	}
}

func TestService_Summary_VazioSemDados(t *testing.T) {
	svc := NewService(
		mem.NewCustomersRepo(),
		mem.NewPetsRepo(),
		mem.NewAppointmentsRepo(),
		mem.NewConversationsRepo(),
		mem.NewCatalogRepo(),
	)

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if sum.Customers != 0 || sum.Pets != 0 || sum.AppointmentsToday != 0 ||
		sum.OpenConversations != 0 || sum.LowStockProducts != 0 {
		t.Fatalf("expected all-zero summary, got %#v", sum)
	}
}
