package customers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/customers", func(cr chi.Router) {
		cr.Post("/", createCustomerHandler(svc))
		cr.Get("/", listCustomersHandler(svc))
		cr.Get("/{customerID}", getCustomerHandler(svc))
	})
}

type createCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"` // aceita com máscara; persistimos só dígitos
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type customerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phone_display"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// createCustomerHandler godoc
// @Summary Cadastrar tutor
// @Description Cria um tutor (cliente). Nome e telefone são obrigatórios; o telefone é normalizado para só dígitos.
// @Tags customers
// @Accept json
// @Produce json
// @Param payload body createCustomerRequest true "Dados do tutor"
// @Success 201 {object} customerResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /customers [post]
func createCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			Notes:   req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toCustomerResponse(c))
	}
}

// getCustomerHandler godoc
// @Summary Buscar tutor por ID
// @Tags customers
// @Produce json
// @Param customerID path string true "ID do tutor"
// @Success 200 {object} customerResponse
// @Failure 404 {string} string "customer not found"
// @Router /customers/{customerID} [get]
func getCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "customerID"))
		if err != nil {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toCustomerResponse(c))
	}
}

// listCustomersHandler godoc
// @Summary Listar tutores
// @Tags customers
// @Produce json
// @Param q query string false "Busca por substring em nome ou telefone"
// @Param limit query int false "Máximo de registros (1-200, default 50)"
// @Success 200 {array} customerResponse
// @Failure 500 {string} string "internal error"
// @Router /customers [get]
func listCustomersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{Query: r.URL.Query().Get("q")}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Limit = n
			}
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]customerResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCustomerResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toCustomerResponse(c Customer) customerResponse {
	return customerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		PhoneDisplay: FormatPhone(c.Phone),
		Email:        c.Email,
		Address:      c.Address,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// writeJSON é duplicado de propósito nos handlers de cada módulo
// para não criar um pacote de helpers compartilhado cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
