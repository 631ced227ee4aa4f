package main

import (
	"net/http"
	"os"
	"time"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/adapters/auth/supabase"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/platform/logger"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/ports/auth"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/router"
)

// @title Aupet Console API
// @version 1.0
// @description Backend do console da loja: cadastro de famílias (tutor + mascotas), agenda, inbox do WhatsApp e catálogo.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sem SUPABASE_URL/SUPABASE_ANON_KEY o servidor sobe em modo dev
	// (X-Debug-User-ID injeta o usuário).
	var verifier auth.TokenVerifier
	sb, err := supabase.NewVerifier(supabase.ConfigFromEnv())
	if err != nil {
		log.Error("supabase mal configurado", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	if sb.IsConfigured() {
		verifier = sb
	} else {
		log.Warn("auth em modo dev, sem verificador de token", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
