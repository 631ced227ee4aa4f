package onboarding

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	mem "github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/adapters/storage/memory"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/customers"
	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/pets"
)

// -------------------------
// Fakes dos colaboradores
// -------------------------

type fakeCustomers struct {
	mu     sync.Mutex
	calls  int
	last   customers.CreateInput
	fail   bool
	nextID string

	// started/release permitem segurar o create em voo (teste de duplo envio).
	started chan struct{}
	release chan struct{}
}

func (f *fakeCustomers) Create(ctx context.Context, in customers.CreateInput) (customers.Customer, error) {
	f.mu.Lock()
	f.calls++
	f.last = in
	fail := f.fail
	id := f.nextID
	started := f.started
	release := f.release
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}

	if fail {
		return customers.Customer{}, errors.New("backend down")
	}
	if id == "" {
		id = "cust-1"
	}
	return customers.Customer{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Phone: in.Phone,
	}, nil
}

type petCall struct {
	customerID string
	in         pets.CreateInput
}

type fakePets struct {
	mu       sync.Mutex
	calls    []petCall
	failName string // falha o create da mascota com esse nome
}

func (f *fakePets) Create(ctx context.Context, customerID string, in pets.CreateInput) (pets.Pet, error) {
	f.mu.Lock()
	f.calls = append(f.calls, petCall{customerID: customerID, in: in})
	failName := f.failName
	f.mu.Unlock()

	if failName != "" && in.Name == failName {
		return pets.Pet{}, errors.New("pet create rejected")
	}
	return pets.Pet{ID: "pet-" + in.Name, CustomerID: customerID, Name: in.Name}, nil
}

func (f *fakePets) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func newTestService(fc *fakeCustomers, fp *fakePets, fn *fakeNotifier) *Service {
	svc := NewService(Deps{
		Customers: fc,
		Pets:      fp,
		Notifier:  fn,
	})
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	}
	return svc
}

func mustAdvance(t *testing.T, svc *Service, id string) Draft {
	t.Helper()
	d, err := svc.Advance(id)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	return d
}

// fillValidDraft deixa o rascunho pronto para confirmar: tutor válido,
// uma mascota (Luna) e etapa de revisão.
func fillValidDraft(t *testing.T, svc *Service) string {
	t.Helper()

	d := svc.Start()
	if _, err := svc.SetOwner(d.ID, OwnerDraft{
		Name:  "Maria Silva",
		Phone: "(11) 99999-1234",
	}); err != nil {
		t.Fatalf("SetOwner: %v", err)
	}
	mustAdvance(t, svc, d.ID)

	if _, err := svc.AddPet(d.ID, PetInput{
		Name:    "Luna",
		Species: pets.SpeciesDog,
		Size:    pets.SizeMedium,
	}); err != nil {
		t.Fatalf("AddPet: %v", err)
	}
	mustAdvance(t, svc, d.ID)

	return d.ID
}

// -------------------------
// Etapas e validação
// -------------------------

func TestStart_DraftVazioNaEtapaDoTutor(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})

	d := svc.Start()
	if d.Stage != StageOwner {
		t.Fatalf("expected stage owner, got %s", d.Stage)
	}
	if d.Owner != (OwnerDraft{}) {
		t.Fatalf("expected empty owner, got %#v", d.Owner)
	}
	if len(d.Pets) != 0 {
		t.Fatalf("expected empty pet list, got %d", len(d.Pets))
	}
}

func TestAdvance_EtapaTutor_ExigeNomeETelefone(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	d := svc.Start()

	_, err := svc.Advance(d.ID)
	fe, ok := AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["name"] == "" || fe["phone"] == "" {
		t.Fatalf("expected name+phone errors, got %#v", fe)
	}

	// Só espaços não conta como preenchido.
	if _, err := svc.SetOwner(d.ID, OwnerDraft{Name: "   ", Phone: "(11) 99999-1234"}); err != nil {
		t.Fatalf("SetOwner: %v", err)
	}
	_, err = svc.Advance(d.ID)
	fe, ok = AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, has := fe["name"]; !has {
		t.Fatalf("expected name error, got %#v", fe)
	}
	if _, has := fe["phone"]; has {
		t.Fatalf("phone is filled, should not error: %#v", fe)
	}

	// A etapa não pode ter mudado nas tentativas barradas.
	got, err := svc.Get(d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Stage != StageOwner {
		t.Fatalf("blocked advance must keep stage, got %s", got.Stage)
	}

	if _, err := svc.SetOwner(d.ID, OwnerDraft{Name: "Maria Silva", Phone: "(11) 99999-1234"}); err != nil {
		t.Fatalf("SetOwner: %v", err)
	}
	got = mustAdvance(t, svc, d.ID)
	if got.Stage != StagePets {
		t.Fatalf("expected stage pets, got %s", got.Stage)
	}
}

func TestAdvance_EtapaMascotas_ExigeListaNaoVazia(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "Maria Silva", Phone: "11 99999-1234"})
	mustAdvance(t, svc, d.ID)

	if _, err := svc.Advance(d.ID); !errors.Is(err, ErrNoPets) {
		t.Fatalf("expected ErrNoPets, got %v", err)
	}

	if _, err := svc.AddPet(d.ID, PetInput{Name: "Luna", Species: pets.SpeciesDog, Size: pets.SizeMedium}); err != nil {
		t.Fatalf("AddPet: %v", err)
	}
	got := mustAdvance(t, svc, d.ID)
	if got.Stage != StageReview {
		t.Fatalf("expected stage review, got %s", got.Stage)
	}
}

func TestAddPet_ErroPorCampo_NaoMexeNaLista(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "Maria", Phone: "11999991234"})
	mustAdvance(t, svc, d.ID)

	cases := []struct {
		name   string
		in     PetInput
		fields []string
	}{
		{"tudo vazio", PetInput{}, []string{"name", "species", "size"}},
		{"sem nome", PetInput{Species: pets.SpeciesCat, Size: pets.SizeSmall}, []string{"name"}},
		{"sem porte", PetInput{Name: "Luna", Species: pets.SpeciesDog}, []string{"size"}},
		{"nome só espaços", PetInput{Name: "  ", Species: pets.SpeciesDog, Size: pets.SizeLarge}, []string{"name"}},
	}

	for _, tc := range cases {
		_, err := svc.AddPet(d.ID, tc.in)
		fe, ok := AsFieldErrors(err)
		if !ok {
			t.Fatalf("%s: expected FieldErrors, got %v", tc.name, err)
		}
		if len(fe) != len(tc.fields) {
			t.Fatalf("%s: expected exactly %v, got %#v", tc.name, tc.fields, fe)
		}
		for _, f := range tc.fields {
			if fe[f] == "" {
				t.Fatalf("%s: expected error for field %q, got %#v", tc.name, f, fe)
			}
		}
	}

	got, _ := svc.Get(d.ID)
	if len(got.Pets) != 0 {
		t.Fatalf("failed adds must not touch the list, got %d pets", len(got.Pets))
	}
}

func TestAddPet_RejeitaEnumDesconhecido(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "Maria", Phone: "11999991234"})
	mustAdvance(t, svc, d.ID)

	_, err := svc.AddPet(d.ID, PetInput{Name: "Rex", Species: "dragon", Size: pets.SizeGiant})
	fe, ok := AsFieldErrors(err)
	if !ok || fe["species"] == "" {
		t.Fatalf("expected species error, got %v", err)
	}

	// Enums opcionais também barram na etapa, não na confirmação.
	_, err = svc.AddPet(d.ID, PetInput{
		Name:        "Rex",
		Species:     pets.SpeciesDog,
		Size:        pets.SizeLarge,
		AgeBracket:  "bebe",
		Temperament: "grumpy",
	})
	fe, ok = AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["age_bracket"] == "" || fe["temperament"] == "" {
		t.Fatalf("expected age_bracket+temperament errors, got %#v", fe)
	}

	got, _ := svc.Get(d.ID)
	if len(got.Pets) != 0 {
		t.Fatalf("rejected adds must not touch the list, got %d pets", len(got.Pets))
	}
}

// Tudo que o assistente aceita tem que passar no create definitivo;
// caso contrário toda confirmação falharia depois de criar o tutor,
// duplicando o tutor a cada retentativa.
func TestAddPet_AceitoNoRascunhoConfirmaContraOServicoReal(t *testing.T) {
	petsSvc := pets.NewService(mem.NewPetsRepo())
	custSvc := customers.NewService(mem.NewCustomersRepo())
	svc := NewService(Deps{Customers: custSvc, Pets: petsSvc})

	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "Maria Silva", Phone: "(11) 99999-1234"})
	mustAdvance(t, svc, d.ID)

	if _, err := svc.AddPet(d.ID, PetInput{
		Name:        "Luna",
		Species:     pets.SpeciesDog,
		Size:        pets.SizeMedium,
		AgeBracket:  pets.AgeAdulto,
		Temperament: pets.TemperamentCalm,
	}); err != nil {
		t.Fatalf("AddPet: %v", err)
	}
	mustAdvance(t, svc, d.ID)

	parent, err := svc.Confirm(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	created, err := petsSvc.ListByCustomer(context.Background(), parent.ID)
	if err != nil || len(created) != 1 {
		t.Fatalf("expected 1 pet persisted, got %d (%v)", len(created), err)
	}
	all, err := custSvc.List(context.Background(), customers.ListFilter{})
	if err != nil || len(all) != 1 {
		t.Fatalf("expected exactly 1 customer, got %d (%v)", len(all), err)
	}
}

func TestAddPet_TempIDUnicoMesmoComRelogioFixo(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "Maria", Phone: "11999991234"})
	mustAdvance(t, svc, d.ID)

	_, _ = svc.AddPet(d.ID, PetInput{Name: "Luna", Species: pets.SpeciesDog, Size: pets.SizeMedium})
	got, _ := svc.AddPet(d.ID, PetInput{Name: "Thor", Species: pets.SpeciesDog, Size: pets.SizeLarge})

	if len(got.Pets) != 2 {
		t.Fatalf("expected 2 pets, got %d", len(got.Pets))
	}
	a, b := got.Pets[0].TempID, got.Pets[1].TempID
	if !strings.HasPrefix(a, "draft-") || !strings.HasPrefix(b, "draft-") {
		t.Fatalf("temp ids must carry draft- prefix: %q %q", a, b)
	}
	if a == b {
		t.Fatalf("temp ids must be unique, both %q", a)
	}
}

func TestRemovePet(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "Maria", Phone: "11999991234"})
	mustAdvance(t, svc, d.ID)

	withLuna, _ := svc.AddPet(d.ID, PetInput{Name: "Luna", Species: pets.SpeciesDog, Size: pets.SizeMedium})
	got, err := svc.RemovePet(d.ID, withLuna.Pets[0].TempID)
	if err != nil {
		t.Fatalf("RemovePet: %v", err)
	}
	if len(got.Pets) != 0 {
		t.Fatalf("expected empty list after remove, got %d", len(got.Pets))
	}

	if _, err := svc.RemovePet(d.ID, "draft-nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown temp id, got %v", err)
	}
}

func TestBack_PreservaDados(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	id := fillValidDraft(t, svc)

	d, err := svc.Back(id)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if d.Stage != StagePets || len(d.Pets) != 1 {
		t.Fatalf("back to pets must keep the list: stage=%s pets=%d", d.Stage, len(d.Pets))
	}

	d, err = svc.Back(id)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if d.Stage != StageOwner || d.Owner.Name != "Maria Silva" {
		t.Fatalf("back to owner must keep the data: stage=%s owner=%#v", d.Stage, d.Owner)
	}

	if _, err := svc.Back(id); !errors.Is(err, ErrBadStage) {
		t.Fatalf("expected ErrBadStage at first stage, got %v", err)
	}
}

// -------------------------
// Confirm (duas fases)
// -------------------------

func TestConfirm_CenarioMariaSilva(t *testing.T) {
	fc := &fakeCustomers{nextID: "cust-42"}
	fp := &fakePets{}
	fn := &fakeNotifier{}
	svc := newTestService(fc, fp, fn)

	var completed []customers.Customer
	svc.onCompleted = func(c customers.Customer) { completed = append(completed, c) }

	id := fillValidDraft(t, svc)

	parent, err := svc.Confirm(context.Background(), id)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	// 1 create de tutor, com telefone só dígitos.
	if fc.calls != 1 {
		t.Fatalf("expected 1 customer create, got %d", fc.calls)
	}
	if fc.last.Phone != "11999991234" {
		t.Fatalf("expected digits-only phone 11999991234, got %q", fc.last.Phone)
	}
	if fc.last.Name != "Maria Silva" {
		t.Fatalf("expected owner name, got %q", fc.last.Name)
	}

	// 1 create de mascota referenciando o ID devolvido.
	if fp.count() != 1 {
		t.Fatalf("expected 1 pet create, got %d", fp.count())
	}
	call := fp.calls[0]
	if call.customerID != "cust-42" {
		t.Fatalf("pet must reference parent id, got %q", call.customerID)
	}
	if call.in.Name != "Luna" || call.in.Species != pets.SpeciesDog || call.in.Size != pets.SizeMedium {
		t.Fatalf("unexpected pet payload: %#v", call.in)
	}

	// Callback exatamente uma vez, com o tutor criado.
	if len(completed) != 1 || completed[0].ID != parent.ID {
		t.Fatalf("expected single completion callback with parent, got %#v", completed)
	}

	// Rascunho descartado; sessão nova nasce vazia.
	if _, err := svc.Get(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft must be gone after success, got %v", err)
	}
	fresh := svc.Start()
	if fresh.Owner != (OwnerDraft{}) || len(fresh.Pets) != 0 {
		t.Fatalf("new session must start empty, got %#v", fresh)
	}

	if len(fn.successes) != 1 || len(fn.errors) != 0 {
		t.Fatalf("expected one success toast, got %#v / %#v", fn.successes, fn.errors)
	}
}

func TestConfirm_VariasMascotasEmParalelo(t *testing.T) {
	fc := &fakeCustomers{nextID: "cust-7"}
	fp := &fakePets{}
	svc := newTestService(fc, fp, &fakeNotifier{})

	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "João", Phone: "(21) 3333-4444"})
	mustAdvance(t, svc, d.ID)
	for _, name := range []string{"Luna", "Thor", "Mel"} {
		if _, err := svc.AddPet(d.ID, PetInput{Name: name, Species: pets.SpeciesCat, Size: pets.SizeSmall}); err != nil {
			t.Fatalf("AddPet %s: %v", name, err)
		}
	}
	mustAdvance(t, svc, d.ID)

	if _, err := svc.Confirm(context.Background(), d.ID); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	if fp.count() != 3 {
		t.Fatalf("expected 3 pet creates, got %d", fp.count())
	}
	for _, call := range fp.calls {
		if call.customerID != "cust-7" {
			t.Fatalf("every pet must reference the parent, got %q", call.customerID)
		}
	}
	if fc.last.Phone != "2133334444" {
		t.Fatalf("expected normalized landline, got %q", fc.last.Phone)
	}
}

func TestConfirm_FalhaDoTutor_NenhumaMascotaCriada(t *testing.T) {
	fc := &fakeCustomers{fail: true}
	fp := &fakePets{}
	fn := &fakeNotifier{}
	svc := newTestService(fc, fp, fn)

	id := fillValidDraft(t, svc)

	if _, err := svc.Confirm(context.Background(), id); err == nil {
		t.Fatalf("expected error")
	}

	if fp.count() != 0 {
		t.Fatalf("parent failure must issue zero pet creates, got %d", fp.count())
	}

	// Rascunho preservado para nova tentativa.
	d, err := svc.Get(id)
	if err != nil {
		t.Fatalf("draft must survive a failed submit: %v", err)
	}
	if len(d.Pets) != 1 || d.Owner.Name != "Maria Silva" {
		t.Fatalf("draft data lost: %#v", d)
	}
	if len(fn.errors) != 1 {
		t.Fatalf("expected one error toast, got %#v", fn.errors)
	}

	// A trava de envio solta: a retentativa funciona quando o backend volta.
	fc.mu.Lock()
	fc.fail = false
	fc.mu.Unlock()
	if _, err := svc.Confirm(context.Background(), id); err != nil {
		t.Fatalf("retry after backend recovery: %v", err)
	}
}

func TestConfirm_FalhaDeMascota_TudoOuNada(t *testing.T) {
	fc := &fakeCustomers{}
	fp := &fakePets{failName: "Thor"}
	fn := &fakeNotifier{}
	svc := newTestService(fc, fp, fn)

	var completions int
	svc.onCompleted = func(customers.Customer) { completions++ }

	d := svc.Start()
	_, _ = svc.SetOwner(d.ID, OwnerDraft{Name: "Maria", Phone: "11999991234"})
	mustAdvance(t, svc, d.ID)
	_, _ = svc.AddPet(d.ID, PetInput{Name: "Luna", Species: pets.SpeciesDog, Size: pets.SizeMedium})
	_, _ = svc.AddPet(d.ID, PetInput{Name: "Thor", Species: pets.SpeciesDog, Size: pets.SizeLarge})
	mustAdvance(t, svc, d.ID)

	if _, err := svc.Confirm(context.Background(), d.ID); err == nil {
		t.Fatalf("expected error when one pet create rejects")
	}

	// O tutor ficou criado no backend; o rascunho segue vivo; nada de callback.
	if fc.calls != 1 {
		t.Fatalf("expected parent created once, got %d", fc.calls)
	}
	if _, err := svc.Get(d.ID); err != nil {
		t.Fatalf("draft must be preserved: %v", err)
	}
	if completions != 0 {
		t.Fatalf("callback must not fire on partial failure")
	}
	if len(fn.errors) != 1 || len(fn.successes) != 0 {
		t.Fatalf("expected single error toast, got %#v / %#v", fn.errors, fn.successes)
	}

	// Retentativa sem chave de idempotência => tutor duplicado no backend.
	fp.mu.Lock()
	fp.failName = ""
	fp.mu.Unlock()
	if _, err := svc.Confirm(context.Background(), d.ID); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if fc.calls != 2 {
		t.Fatalf("retry recreates the parent (no idempotency key), got %d calls", fc.calls)
	}
}

func TestConfirm_ForaDaRevisao(t *testing.T) {
	svc := newTestService(&fakeCustomers{}, &fakePets{}, &fakeNotifier{})
	d := svc.Start()

	if _, err := svc.Confirm(context.Background(), d.ID); !errors.Is(err, ErrBadStage) {
		t.Fatalf("expected ErrBadStage, got %v", err)
	}
}

func TestConfirm_DuploEnvioBloqueado(t *testing.T) {
	fc := &fakeCustomers{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	fp := &fakePets{}
	svc := newTestService(fc, fp, &fakeNotifier{})

	id := fillValidDraft(t, svc)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(context.Background(), id)
		done <- err
	}()

	<-fc.started // o primeiro envio está em voo

	if _, err := svc.Confirm(context.Background(), id); !errors.Is(err, ErrSubmitting) {
		t.Fatalf("expected ErrSubmitting for second confirm, got %v", err)
	}

	close(fc.release)
	if err := <-done; err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if fc.calls != 1 {
		t.Fatalf("expected single customer create, got %d", fc.calls)
	}
}
