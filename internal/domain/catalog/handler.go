package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/catalog", func(cr chi.Router) {
		cr.Post("/", createItemHandler(svc))
		cr.Get("/", listItemsHandler(svc))
		cr.Get("/{itemID}", getItemHandler(svc))
		cr.Post("/{itemID}/stock", adjustStockHandler(svc))
		cr.Post("/{itemID}/deactivate", deactivateHandler(svc))
	})
}

type createItemRequest struct {
	Name       string `json:"name"`
	Kind       string `json:"kind" enums:"product,service"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

type adjustStockRequest struct {
	Delta int `json:"delta"`
}

type itemResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Category   string    `json:"category"`
	PriceCents int64     `json:"price_cents"`
	Stock      int       `json:"stock"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// createItemHandler godoc
// @Summary Criar item do catálogo
// @Tags catalog
// @Accept json
// @Produce json
// @Param payload body createItemRequest true "Produto ou serviço"
// @Success 201 {object} itemResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /catalog [post]
func createItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		it, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Kind:       Kind(req.Kind),
			Category:   req.Category,
			PriceCents: req.PriceCents,
			Stock:      req.Stock,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toItemResponse(it))
	}
}

// listItemsHandler godoc
// @Summary Listar catálogo
// @Tags catalog
// @Produce json
// @Param kind query string false "product ou service"
// @Param active query bool false "Só itens ativos"
// @Param q query string false "Busca por substring no nome"
// @Param limit query int false "Máximo de itens (1-200, default 50)"
// @Success 200 {array} itemResponse
// @Router /catalog [get]
func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			Kind:  Kind(r.URL.Query().Get("kind")),
			Query: r.URL.Query().Get("q"),
		}
		if v := r.URL.Query().Get("active"); v != "" {
			filter.OnlyActive = v == "true" || v == "1"
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Limit = n
			}
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getItemHandler godoc
// @Summary Buscar item por ID
// @Tags catalog
// @Produce json
// @Param itemID path string true "ID do item"
// @Success 200 {object} itemResponse
// @Failure 404 {string} string "item not found"
// @Router /catalog/{itemID} [get]
func getItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := svc.GetByID(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toItemResponse(it))
	}
}

// adjustStockHandler godoc
// @Summary Ajustar estoque
// @Description Delta negativo vende, positivo repõe. Estoque nunca fica negativo; serviços devolvem 409.
// @Tags catalog
// @Accept json
// @Produce json
// @Param itemID path string true "ID do item"
// @Param payload body adjustStockRequest true "Delta do estoque"
// @Success 200 {object} itemResponse
// @Failure 404 {string} string "item not found"
// @Failure 409 {string} string "insufficient stock / invalid state"
// @Router /catalog/{itemID}/stock [post]
func adjustStockHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adjustStockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		it, err := svc.AdjustStock(r.Context(), chi.URLParam(r, "itemID"), req.Delta)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "item not found", http.StatusNotFound)
			case errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrBadState):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}
		writeJSON(w, http.StatusOK, toItemResponse(it))
	}
}

// deactivateHandler godoc
// @Summary Desativar item
// @Description Idempotente.
// @Tags catalog
// @Produce json
// @Param itemID path string true "ID do item"
// @Success 200 {object} itemResponse
// @Failure 404 {string} string "item not found"
// @Router /catalog/{itemID}/deactivate [post]
func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := svc.Deactivate(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "item not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toItemResponse(it))
	}
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Kind:       string(it.Kind),
		Category:   it.Category,
		PriceCents: it.PriceCents,
		Stock:      it.Stock,
		Active:     it.Active,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}

// writeJSON é duplicado de propósito nos handlers de cada módulo
// para não criar um pacote de helpers compartilhado cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
