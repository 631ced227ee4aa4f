package onboarding

import (
	"strconv"
	"time"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
)

// Stage é a etapa atual do wizard. O fluxo é linear
// (owner -> pets -> review) com navegação para trás permitida.
type Stage string

const (
	StageOwner  Stage = "owner"
	StagePets   Stage = "pets"
	StageReview Stage = "review"
)

// OwnerDraft são os dados do tutor digitados no passo 1.
// Nada é validado aqui; a validação roda ao avançar de etapa.
type OwnerDraft struct {
	Name    string
	Phone   string // aceita máscara "(11) 99999-1234"; normaliza no confirm
	Email   string
	Address string
	Notes   string
}

// PetDraft é uma mascota ainda não persistida, dentro do rascunho.
// TempID existe só para a lista em memória (render/remoção) e
// nunca é enviado ao backend.
type PetDraft struct {
	TempID string

	Name    string
	Species pets.Species
	Size    pets.Size

	Breed       string
	AgeBracket  pets.AgeBracket
	Temperament pets.Temperament
	Neutered    bool
	Vaccinated  bool

	Allergies    string
	MedicalNotes string
}

// Draft é o agregado completo de uma sessão do wizard.
// Vive só em memória: nada chega ao backend antes do confirm.
type Draft struct {
	ID    string
	Stage Stage

	Owner OwnerDraft
	Pets  []PetDraft

	CreatedAt time.Time
	UpdatedAt time.Time

	// submitting trava o confirm contra duplo clique.
	submitting bool
}

// Submitting expõe a flag para a camada HTTP (o campo fica privado
// para ninguém fora do service mexer nela).
func (d Draft) Submitting() bool { return d.submitting }

func (d *Draft) hasTempID(id string) bool {
	for _, p := range d.Pets {
		if p.TempID == id {
			return true
		}
	}
	return false
}

// nextTempID gera "draft-<timestamp>". Com relógio injetado fixo
// (testes) o timestamp colide; nesse caso incrementa até desempatar.
func (d *Draft) nextTempID(now time.Time) string {
	base := now.UnixNano()
	id := "draft-" + strconv.FormatInt(base, 10)
	for d.hasTempID(id) {
		base++
		id = "draft-" + strconv.FormatInt(base, 10)
	}
	return id
}

// snapshot devolve uma cópia com slice próprio, para o chamador não
// enxergar mutações futuras do rascunho.
func (d *Draft) snapshot() Draft {
	out := *d
	out.Pets = make([]PetDraft, len(d.Pets))
	copy(out.Pets, d.Pets)
	return out
}
