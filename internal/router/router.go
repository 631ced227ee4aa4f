package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fellipesaraiva88/aupet-ai-connect-sub003/docs"
	notifyadapter "github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/adapters/notify"
	mem "github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/adapters/storage/memory"
	pg "github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/adapters/storage/postgres"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/adapters/whatsapp"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/analytics"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/appointments"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/catalog"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/conversations"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/onboarding"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/middleware"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/platform/logger"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/ports/auth"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/ports/notify"
)

type Options struct {
	AuthVerifier auth.TokenVerifier // pode ser nil (modo dev)

	// Opcional: com DB usa Postgres; sem, in-memory.
	DB *sql.DB

	// Opcional: gateway de saída do WhatsApp. Nil fica só inbox.
	Sender conversations.OutboundSender

	// Opcional: destino dos toasts. Nil vira log.
	Notifier notify.Notifier

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		customersRepo customers.Repository
		petsRepo      pets.Repository
		apptsRepo     appointments.Repository
		convsRepo     conversations.Repository
		catalogRepo   catalog.Repository
	)

	// Sem DB explícito, tenta por env (dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres indisponível, caindo para in-memory", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		customersRepo = pg.NewCustomersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		apptsRepo = pg.NewAppointmentsRepo(db)
		convsRepo = pg.NewConversationsRepo(db)
		catalogRepo = pg.NewCatalogRepo(db)
	} else {
		customersRepo = mem.NewCustomersRepo()
		petsRepo = mem.NewPetsRepo()
		apptsRepo = mem.NewAppointmentsRepo()
		convsRepo = mem.NewConversationsRepo()
		catalogRepo = mem.NewCatalogRepo()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notifyadapter.NewLogNotifier(log)
	}

	sender := opts.Sender
	if sender == nil {
		client, err := whatsapp.NewClient(whatsapp.ConfigFromEnv())
		if err != nil {
			log.Warn("gateway whatsapp mal configurado", map[string]any{"err": err.Error()})
			client = &whatsapp.Client{}
		}
		sender = whatsapp.NewSender(client)
	}

	// Services por módulo
	customersSvc := customers.NewService(customersRepo)
	petsSvc := pets.NewService(petsRepo)
	apptsSvc := appointments.NewService(apptsRepo)
	convsSvc := conversations.NewService(convsRepo, sender, phoneResolver{customersSvc}, log)
	catalogSvc := catalog.NewService(catalogRepo)
	analyticsSvc := analytics.NewService(customersRepo, petsRepo, apptsRepo, convsRepo, catalogRepo)

	onboardingSvc := onboarding.NewService(onboarding.Deps{
		Customers: customersSvc,
		Pets:      petsSvc,
		Notifier:  notifier,
		Log:       log,
	})

	// Rotas por módulo
	customers.RegisterRoutes(r, customersSvc)
	pets.RegisterRoutes(r, petsSvc, customersSvc)
	onboarding.RegisterRoutes(r, onboardingSvc)
	appointments.RegisterRoutes(r, apptsSvc, petsSvc)
	conversations.RegisterRoutes(r, convsSvc, customersSvc)
	catalog.RegisterRoutes(r, catalogSvc)
	analytics.RegisterRoutes(r, analyticsSvc)

	return r
}

// phoneResolver entrega o telefone canônico do tutor para o envio.
type phoneResolver struct {
	svc *customers.Service
}

func (p phoneResolver) PhoneOf(ctx context.Context, customerID string) (string, error) {
	c, err := p.svc.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}
	return c.Phone, nil
}
