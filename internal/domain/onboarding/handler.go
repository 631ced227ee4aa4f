package onboarding

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/onboarding", func(or chi.Router) {
		or.Post("/", startHandler(svc))

		or.Route("/{draftID}", func(dr chi.Router) {
			dr.Get("/", getDraftHandler(svc))
			dr.Delete("/", cancelHandler(svc))

			dr.Put("/owner", setOwnerHandler(svc))
			dr.Post("/advance", advanceHandler(svc))
			dr.Post("/back", backHandler(svc))

			dr.Post("/pets", addPetHandler(svc))
			dr.Delete("/pets/{tempID}", removePetHandler(svc))

			dr.Post("/confirm", confirmHandler(svc))
		})
	})
}

type ownerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type petRequest struct {
	Name    string `json:"name"`
	Species string `json:"species" enums:"dog,cat,bird,rabbit,hamster,fish,turtle,other"`
	Size    string `json:"size" enums:"small,medium,large,giant"`

	Breed       string `json:"breed"`
	AgeBracket  string `json:"age_bracket"`
	Temperament string `json:"temperament"`
	Neutered    bool   `json:"neutered"`
	Vaccinated  bool   `json:"vaccinated"`

	Allergies    string `json:"allergies"`
	MedicalNotes string `json:"medical_notes"`
}

type petDraftResponse struct {
	TempID string `json:"temp_id"`

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
}

type draftResponse struct {
	ID    string `json:"id"`
	Stage string `json:"stage"`

	Owner ownerRequest       `json:"owner"`
	Pets  []petDraftResponse `json:"pets"`

	Submitting bool      `json:"submitting"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type confirmResponse struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

// fieldErrorsResponse é o corpo devolvido em erro de validação de etapa.
type fieldErrorsResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// startHandler godoc
// @Summary Abrir sessão do wizard de cadastro
// @Description Cria um rascunho vazio na etapa do tutor. Nada é persistido até o confirm.
// @Tags onboarding
// @Produce json
// @Success 201 {object} draftResponse
// @Router /onboarding [post]
func startHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, toDraftResponse(svc.Start()))
	}
}

// getDraftHandler godoc
// @Summary Consultar rascunho
// @Tags onboarding
// @Produce json
// @Param draftID path string true "ID da sessão"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "draft not found"
// @Router /onboarding/{draftID} [get]
func getDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Get(chi.URLParam(r, "draftID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

// setOwnerHandler godoc
// @Summary Preencher dados do tutor
// @Description Sobrescreve o passo 1 do rascunho. A validação roda só no avanço de etapa.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param draftID path string true "ID da sessão"
// @Param payload body ownerRequest true "Dados do tutor (telefone pode vir com máscara)"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "draft not found"
// @Router /onboarding/{draftID}/owner [put]
func setOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.SetOwner(chi.URLParam(r, "draftID"), OwnerDraft{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			Notes:   req.Notes,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

// advanceHandler godoc
// @Summary Avançar etapa
// @Description owner->pets exige nome e telefone; pets->review exige pelo menos uma mascota. Em erro, a resposta traz os campos faltantes e o rascunho não muda.
// @Tags onboarding
// @Produce json
// @Param draftID path string true "ID da sessão"
// @Success 200 {object} draftResponse
// @Failure 400 {object} fieldErrorsResponse
// @Failure 404 {string} string "draft not found"
// @Failure 409 {string} string "invalid stage for operation"
// @Router /onboarding/{draftID}/advance [post]
func advanceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Advance(chi.URLParam(r, "draftID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

// backHandler godoc
// @Summary Voltar etapa
// @Description Navegação para trás preserva tudo que já foi digitado.
// @Tags onboarding
// @Produce json
// @Param draftID path string true "ID da sessão"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "draft not found"
// @Failure 409 {string} string "invalid stage for operation"
// @Router /onboarding/{draftID}/back [post]
func backHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Back(chi.URLParam(r, "draftID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

// addPetHandler godoc
// @Summary Adicionar mascota ao rascunho
// @Description Valida nome, espécie e porte. Em erro de campo a lista não muda e a resposta aponta exatamente os campos com problema.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param draftID path string true "ID da sessão"
// @Param payload body petRequest true "Sub-formulário da mascota"
// @Success 200 {object} draftResponse
// @Failure 400 {object} fieldErrorsResponse
// @Failure 404 {string} string "draft not found"
// @Router /onboarding/{draftID}/pets [post]
func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.AddPet(chi.URLParam(r, "draftID"), PetInput{
			Name:         req.Name,
			Species:      pets.Species(req.Species),
			Size:         pets.Size(req.Size),
			Breed:        req.Breed,
			AgeBracket:   pets.AgeBracket(req.AgeBracket),
			Temperament:  pets.Temperament(req.Temperament),
			Neutered:     req.Neutered,
			Vaccinated:   req.Vaccinated,
			Allergies:    req.Allergies,
			MedicalNotes: req.MedicalNotes,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

// removePetHandler godoc
// @Summary Remover mascota do rascunho
// @Tags onboarding
// @Produce json
// @Param draftID path string true "ID da sessão"
// @Param tempID path string true "TempID da mascota na lista"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "draft not found"
// @Router /onboarding/{draftID}/pets/{tempID} [delete]
func removePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.RemovePet(chi.URLParam(r, "draftID"), chi.URLParam(r, "tempID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(d))
	}
}

// confirmHandler godoc
// @Summary Confirmar cadastro (duas fases)
// @Description Cria o tutor e depois as mascotas em paralelo. Qualquer falha preserva o rascunho e devolve erro único; sucesso completo descarta a sessão.
// @Tags onboarding
// @Produce json
// @Param draftID path string true "ID da sessão"
// @Success 201 {object} confirmResponse
// @Failure 400 {string} string "draft has no pets"
// @Failure 404 {string} string "draft not found"
// @Failure 409 {string} string "submission already in progress"
// @Failure 502 {string} string "cadastro não concluído"
// @Router /onboarding/{draftID}/confirm [post]
func confirmHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parent, err := svc.Confirm(r.Context(), chi.URLParam(r, "draftID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrNoPets):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrSubmitting), errors.Is(err, ErrBadStage):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				// Falha de colaborador (tutor ou mascotas): o rascunho
				// segue vivo para nova tentativa.
				http.Error(w, "cadastro não concluído", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusCreated, confirmResponse{
			CustomerID: parent.ID,
			Name:       parent.Name,
			Phone:      parent.Phone,
		})
	}
}

// cancelHandler godoc
// @Summary Cancelar sessão
// @Description Descarta o rascunho por completo.
// @Tags onboarding
// @Param draftID path string true "ID da sessão"
// @Success 204
// @Failure 404 {string} string "draft not found"
// @Router /onboarding/{draftID} [delete]
func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Cancel(chi.URLParam(r, "draftID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeDomainError mapeia os sentinelas do wizard para HTTP. Erros de
// campo viram 400 com o mapa de campos, para a UI destacar cada um.
func writeDomainError(w http.ResponseWriter, err error) {
	if fe, ok := AsFieldErrors(err); ok {
		writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{
			Error:  "validation",
			Fields: fe,
		})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNoPets):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBadStage), errors.Is(err, ErrSubmitting):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDraftResponse(d Draft) draftResponse {
	petsOut := make([]petDraftResponse, 0, len(d.Pets))
	for _, p := range d.Pets {
		petsOut = append(petsOut, petDraftResponse{
			TempID:       p.TempID,
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
		})
	}

	return draftResponse{
		ID:    d.ID,
		Stage: string(d.Stage),
		Owner: ownerRequest{
			Name:    d.Owner.Name,
			Phone:   d.Owner.Phone,
			Email:   d.Owner.Email,
			Address: d.Owner.Address,
			Notes:   d.Owner.Notes,
		},
		Pets:       petsOut,
		Submitting: d.Submitting(),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// writeJSON é duplicado de propósito nos handlers de cada módulo
// para não criar um pacote de helpers compartilhado cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
