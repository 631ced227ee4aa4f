package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard/summary", summaryHandler(svc))
}

type summaryResponse struct {
	Customers     int            `json:"customers"`
	Pets          int            `json:"pets"`
	PetsBySpecies map[string]int `json:"pets_by_species"`

	AppointmentsToday int `json:"appointments_today"`
	OpenConversations int `json:"open_conversations"`
	LowStockProducts  int `json:"low_stock_products"`
}

// summaryHandler godoc
// @Summary Números do dashboard
// @Description Agrega os cards do console: tutores, mascotas por espécie, agenda do dia, inbox aberto e alerta de estoque.
// @Tags dashboard
// @Produce json
// @Success 200 {object} summaryResponse
// @Failure 500 {string} string "internal error"
// @Router /dashboard/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		bySpecies := make(map[string]int, len(sum.PetsBySpecies))
		for k, v := range sum.PetsBySpecies {
			bySpecies[string(k)] = v
		}

		writeJSON(w, http.StatusOK, summaryResponse{
			Customers:         sum.Customers,
			Pets:              sum.Pets,
			PetsBySpecies:     bySpecies,
			AppointmentsToday: sum.AppointmentsToday,
			OpenConversations: sum.OpenConversations,
			LowStockProducts:  sum.LowStockProducts,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
