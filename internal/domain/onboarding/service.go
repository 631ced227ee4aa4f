package onboarding

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/platform/logger"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/ports/notify"
)

// Mensagens de toast do fluxo de cadastro.
const (
	msgConfirmOK     = "Família cadastrada com sucesso!"
	msgConfirmFailed = "Não foi possível concluir o cadastro. Tente novamente."
)

// CustomerCreator é o colaborador que cria a entidade primária (tutor).
type CustomerCreator interface {
	Create(ctx context.Context, in customers.CreateInput) (customers.Customer, error)
}

// PetCreator é o colaborador que cria cada dependente referenciando o tutor.
type PetCreator interface {
	Create(ctx context.Context, customerID string, in pets.CreateInput) (pets.Pet, error)
}

// Deps agrupa os colaboradores injetados no wizard.
type Deps struct {
	Customers CustomerCreator
	Pets      PetCreator

	Notifier notify.Notifier
	Log      logger.Logger

	// OnCompleted dispara exatamente uma vez após o sucesso completo,
	// com o tutor recém-criado.
	OnCompleted func(customers.Customer)
}

// Service guarda os rascunhos de onboarding em memória e orquestra a
// criação em duas fases no confirm: um create do tutor, depois N creates
// de mascota em paralelo referenciando o ID devolvido.
type Service struct {
	mu     sync.Mutex
	drafts map[string]*Draft

	customers CustomerCreator
	pets      PetCreator
	notifier  notify.Notifier
	log       logger.Logger

	onCompleted func(customers.Customer)

	now func() time.Time
}

func NewService(d Deps) *Service {
	n := d.Notifier
	if n == nil {
		n = notify.Noop{}
	}
	l := d.Log
	if l == nil {
		l = logger.New(logger.Options{Level: logger.Error, Out: io.Discard})
	}

	return &Service{
		drafts:      make(map[string]*Draft),
		customers:   d.Customers,
		pets:        d.Pets,
		notifier:    n,
		log:         l,
		onCompleted: d.OnCompleted,
		now:         time.Now,
	}
}

// Start abre uma sessão nova, com o agregado vazio na etapa do tutor.
func (s *Service) Start() Draft {
	now := s.now()
	d := &Draft{
		ID:        uuid.NewString(),
		Stage:     StageOwner,
		Pets:      make([]PetDraft, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()

	return d.snapshot()
}

func (s *Service) Get(draftID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return d.snapshot(), nil
}

// SetOwner sobrescreve os dados do tutor no rascunho. Nada é validado
// aqui: a validação roda ao avançar de etapa, e voltar para editar não
// pode apagar o que já foi digitado.
func (s *Service) SetOwner(draftID string, owner OwnerDraft) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if d.submitting {
		return Draft{}, ErrSubmitting
	}

	d.Owner = owner
	d.UpdatedAt = s.now()
	return d.snapshot(), nil
}

// Advance tenta ir para a próxima etapa. A transição é barrada com
// FieldErrors (owner sem nome/telefone) ou ErrNoPets (lista vazia);
// nesses casos o rascunho fica como está.
func (s *Service) Advance(draftID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if d.submitting {
		return Draft{}, ErrSubmitting
	}

	switch d.Stage {
	case StageOwner:
		if err := validateOwner(d.Owner); err != nil {
			return Draft{}, err
		}
		d.Stage = StagePets
	case StagePets:
		if len(d.Pets) == 0 {
			return Draft{}, ErrNoPets
		}
		d.Stage = StageReview
	default:
		return Draft{}, ErrBadStage
	}

	d.UpdatedAt = s.now()
	return d.snapshot(), nil
}

// Back volta uma etapa preservando tudo que já foi digitado.
func (s *Service) Back(draftID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if d.submitting {
		return Draft{}, ErrSubmitting
	}

	switch d.Stage {
	case StageReview:
		d.Stage = StagePets
	case StagePets:
		d.Stage = StageOwner
	default:
		return Draft{}, ErrBadStage
	}

	d.UpdatedAt = s.now()
	return d.snapshot(), nil
}

// PetInput é o sub-formulário "adicionar mascota" da etapa 2.
type PetInput struct {
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

// AddPet valida o sub-formulário e, se ok, anexa à lista e devolve o
// rascunho atualizado. Em erro de campo a lista não muda.
func (s *Service) AddPet(draftID string, in PetInput) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if d.submitting {
		return Draft{}, ErrSubmitting
	}
	if d.Stage != StagePets {
		return Draft{}, ErrBadStage
	}

	if err := validatePet(in); err != nil {
		return Draft{}, err
	}

	now := s.now()
	d.Pets = append(d.Pets, PetDraft{
		TempID:       d.nextTempID(now),
		Name:         strings.TrimSpace(in.Name),
		Species:      in.Species,
		Size:         in.Size,
		Breed:        in.Breed,
		AgeBracket:   in.AgeBracket,
		Temperament:  in.Temperament,
		Neutered:     in.Neutered,
		Vaccinated:   in.Vaccinated,
		Allergies:    in.Allergies,
		MedicalNotes: in.MedicalNotes,
	})
	d.UpdatedAt = now

	return d.snapshot(), nil
}

// RemovePet tira uma mascota da lista pelo TempID.
func (s *Service) RemovePet(draftID, tempID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if d.submitting {
		return Draft{}, ErrSubmitting
	}
	if d.Stage != StagePets {
		return Draft{}, ErrBadStage
	}

	kept := make([]PetDraft, 0, len(d.Pets))
	found := false
	for _, p := range d.Pets {
		if p.TempID == tempID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return Draft{}, ErrNotFound
	}

	d.Pets = kept
	d.UpdatedAt = s.now()
	return d.snapshot(), nil
}

// Cancel descarta a sessão e tudo que havia nela.
func (s *Service) Cancel(draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(draftID)
	d, ok := s.drafts[id]
	if !ok {
		return ErrNotFound
	}
	if d.submitting {
		return ErrSubmitting
	}

	delete(s.drafts, id)
	return nil
}

// Confirm executa a criação em duas fases:
//
//  1. cria o tutor (telefone já normalizado para só dígitos); se falhar,
//     aborta sem disparar nenhum create de mascota e preserva o rascunho;
//  2. cria as N mascotas em paralelo, todas referenciando o ID devolvido.
//
// O join é tudo-ou-nada: qualquer falha de mascota preserva o rascunho e
// devolve um erro único, mesmo com o tutor (e parte das mascotas) já
// persistidos no backend. Não há rollback nem chave de idempotência:
// o retry do usuário recomeça a fase 1 do zero.
func (s *Service) Confirm(ctx context.Context, draftID string) (customers.Customer, error) {
	s.mu.Lock()
	d, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		s.mu.Unlock()
		return customers.Customer{}, ErrNotFound
	}
	if d.submitting {
		s.mu.Unlock()
		return customers.Customer{}, ErrSubmitting
	}
	if d.Stage != StageReview {
		s.mu.Unlock()
		return customers.Customer{}, ErrBadStage
	}
	// Recheck defensivo: a etapa 2 já barra lista vazia.
	if len(d.Pets) == 0 {
		s.mu.Unlock()
		return customers.Customer{}, ErrNoPets
	}

	d.submitting = true
	owner := d.Owner
	petDrafts := make([]PetDraft, len(d.Pets))
	copy(petDrafts, d.Pets)
	s.mu.Unlock()

	parent, err := s.customers.Create(ctx, customers.CreateInput{
		Name:    owner.Name,
		Phone:   customers.NormalizePhone(owner.Phone),
		Email:   owner.Email,
		Address: owner.Address,
		Notes:   owner.Notes,
	})
	if err != nil {
		s.abortSubmit(draftID)
		s.log.Error("onboarding: falha ao criar tutor", map[string]any{
			"draft_id": draftID,
			"err":      err.Error(),
		})
		s.notifier.Error(msgConfirmFailed)
		return customers.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	// Fan-out: dispara todos os creates de mascota sem esperar um pelo
	// outro. errgroup.Group puro (sem context derivado): todos rodam até
	// o fim e o primeiro erro é o reportado.
	var g errgroup.Group
	for _, pd := range petDrafts {
		pd := pd
		g.Go(func() error {
			_, err := s.pets.Create(ctx, parent.ID, pets.CreateInput{
				Name:         pd.Name,
				Species:      pd.Species,
				Size:         pd.Size,
				Breed:        pd.Breed,
				AgeBracket:   pd.AgeBracket,
				Temperament:  pd.Temperament,
				Neutered:     pd.Neutered,
				Vaccinated:   pd.Vaccinated,
				Allergies:    pd.Allergies,
				MedicalNotes: pd.MedicalNotes,
			})
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.abortSubmit(draftID)
		s.log.Error("onboarding: falha ao criar mascotas", map[string]any{
			"draft_id":    draftID,
			"customer_id": parent.ID,
			"err":         err.Error(),
		})
		s.notifier.Error(msgConfirmFailed)
		return customers.Customer{}, fmt.Errorf("create pets: %w", err)
	}

	s.mu.Lock()
	delete(s.drafts, strings.TrimSpace(draftID))
	s.mu.Unlock()

	s.log.Info("onboarding: família cadastrada", map[string]any{
		"customer_id": parent.ID,
		"pets":        len(petDrafts),
	})
	s.notifier.Success(msgConfirmOK)
	if s.onCompleted != nil {
		s.onCompleted(parent)
	}

	return parent, nil
}

// abortSubmit libera a trava de envio mantendo o rascunho intacto,
// para o usuário poder revisar e tentar de novo.
func (s *Service) abortSubmit(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[strings.TrimSpace(draftID)]; ok {
		d.submitting = false
	}
}

func validateOwner(o OwnerDraft) error {
	fe := FieldErrors{}
	if strings.TrimSpace(o.Name) == "" {
		fe["name"] = "obrigatório"
	}
	if strings.TrimSpace(o.Phone) == "" {
		fe["phone"] = "obrigatório"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

// validatePet espelha as regras do create definitivo: obrigatórios
// (nome, espécie, porte) e enums opcionais quando preenchidos. Se algo
// passasse aqui e fosse rejeitado depois, o rascunho travaria na
// confirmação sem caminho de correção.
func validatePet(in PetInput) error {
	fe := FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		fe["name"] = "obrigatório"
	}
	if in.Species == "" {
		fe["species"] = "obrigatório"
	} else if !pets.ValidSpecies(in.Species) {
		fe["species"] = "inválido"
	}
	if in.Size == "" {
		fe["size"] = "obrigatório"
	} else if !pets.ValidSize(in.Size) {
		fe["size"] = "inválido"
	}
	if !pets.ValidAgeBracket(in.AgeBracket) {
		fe["age_bracket"] = "inválido"
	}
	if !pets.ValidTemperament(in.Temperament) {
		fe["temperament"] = "inválido"
	}

	if len(fe) > 0 {
		return fe
	}
	return nil
}
