package pets

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
)

func RegisterRoutes(r chi.Router, svc *Service, customersSvc *customers.Service) {
	r.Route("/customers/{customerID}/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, customersSvc))
		pr.Get("/", listPetsHandler(svc, customersSvc))
	})

	r.Get("/pets/{petID}", getPetHandler(svc))
	r.Get("/breeds", suggestBreedsHandler())
}

type createPetRequest struct {
	Name    string `json:"name"`
	Species string `json:"species" enums:"dog,cat,bird,rabbit,hamster,fish,turtle,other"`
	Size    string `json:"size" enums:"small,medium,large,giant"`

	Breed       string `json:"breed"`
	AgeBracket  string `json:"age_bracket" enums:"filhote,adulto,idoso"`
	Temperament string `json:"temperament" enums:"calm,playful,shy,aggressive,unknown"`
	Neutered    bool   `json:"neutered"`
	Vaccinated  bool   `json:"vaccinated"`

	Allergies    string `json:"allergies"`
	MedicalNotes string `json:"medical_notes"`
}

type petResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`

	Name    string `json:"name"`
	Species string `json:"species"`
	Size    string `json:"size"`

	Breed       string `json:"breed"`
	AgeBracket  string `json:"age_bracket"`
	Temperament string `json:"temperament"`
	Neutered    bool   `json:"neutered"`
	Vaccinated  bool   `json:"vaccinated"`

	Allergies    string `json:"allergies"`
	MedicalNotes string `json:"medical_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Cadastrar mascota
// @Description Cria uma mascota vinculada ao tutor. Nome, espécie e porte são obrigatórios.
// @Tags pets
// @Accept json
// @Produce json
// @Param customerID path string true "ID do tutor"
// @Param payload body createPetRequest true "Dados da mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "customer not found"
// @Router /customers/{customerID}/pets [post]
func createPetHandler(svc *Service, customersSvc *customers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := chi.URLParam(r, "customerID")
		if _, err := customersSvc.GetByID(r.Context(), customerID); err != nil {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), customerID, CreateInput{
			Name:         req.Name,
			Species:      Species(req.Species),
			Size:         Size(req.Size),
			Breed:        req.Breed,
			AgeBracket:   AgeBracket(req.AgeBracket),
			Temperament:  Temperament(req.Temperament),
			Neutered:     req.Neutered,
			Vaccinated:   req.Vaccinated,
			Allergies:    req.Allergies,
			MedicalNotes: req.MedicalNotes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas de um tutor
// @Tags pets
// @Produce json
// @Param customerID path string true "ID do tutor"
// @Success 200 {array} petResponse
// @Failure 404 {string} string "customer not found"
// @Router /customers/{customerID}/pets [get]
func listPetsHandler(svc *Service, customersSvc *customers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := chi.URLParam(r, "customerID")
		if _, err := customersSvc.GetByID(r.Context(), customerID); err != nil {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByCustomer(r.Context(), customerID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Buscar mascota por ID
// @Tags pets
// @Produce json
// @Param petID path string true "ID da mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// suggestBreedsHandler godoc
// @Summary Autocomplete de raças
// @Description Filtra o catálogo estático de raças por substring, dentro de uma espécie.
// @Tags pets
// @Produce json
// @Param species query string true "Espécie (dog, cat, ...)"
// @Param q query string false "Trecho do nome da raça"
// @Success 200 {array} string
// @Failure 400 {string} string "unknown species"
// @Router /breeds [get]
func suggestBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		species := Species(r.URL.Query().Get("species"))
		if !ValidSpecies(species) {
			http.Error(w, "unknown species", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, SuggestBreeds(species, r.URL.Query().Get("q")))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		Name:         p.Name,
		Species:      string(p.Species),
		Size:         string(p.Size),
		Breed:        p.Breed,
		AgeBracket:   string(p.AgeBracket),
		Temperament:  string(p.Temperament),
		Neutered:     p.Neutered,
		Vaccinated:   p.Vaccinated,
		Allergies:    p.Allergies,
		MedicalNotes: p.MedicalNotes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// writeJSON é duplicado de propósito nos handlers de cada módulo
// para não criar um pacote de helpers compartilhado cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
