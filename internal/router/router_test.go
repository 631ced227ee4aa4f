package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/router"
)

func TestHTTP_EndToEnd_CadastroDeFamilia(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// 1) Abre a sessão do wizard
	var draft struct {
		ID    string `json:"id"`
		Stage string `json:"stage"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/onboarding", "", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 start, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &draft)
		if draft.Stage != "owner" {
			t.Fatalf("expected stage owner, got %s", draft.Stage)
		}
	}
	base := "/onboarding/" + draft.ID

	// 2) Avançar sem dados aponta os campos faltantes e não muda a etapa
	{
		st, body := doReq(t, ts.URL, "POST", base+"/advance", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 advance without owner, got %d body=%s", st, string(body))
		}
		var fe struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		mustDecode(t, body, &fe)
		if fe.Fields["name"] == "" || fe.Fields["phone"] == "" {
			t.Fatalf("expected field errors for name and phone, got %#v", fe.Fields)
		}
	}

	// 3) Preenche o tutor (telefone com máscara) e avança
	{
		st, body := doReq(t, ts.URL, "PUT", base+"/owner", "", map[string]any{
			"name":  "Maria Silva",
			"phone": "(11) 99999-1234",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set owner, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", base+"/advance", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 advance to pets, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &draft)
		if draft.Stage != "pets" {
			t.Fatalf("expected stage pets, got %s", draft.Stage)
		}
	}

	// 4) Sem mascota não passa da etapa
	{
		st, _ := doReq(t, ts.URL, "POST", base+"/advance", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 advance without pets, got %d", st)
		}
	}

	// 5) Adiciona a Luna e chega na revisão
	{
		st, body := doReq(t, ts.URL, "POST", base+"/pets", "", map[string]any{
			"name":    "Luna",
			"species": "dog",
			"size":    "medium",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 add pet, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", base+"/advance", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 advance to review, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &draft)
		if draft.Stage != "review" {
			t.Fatalf("expected stage review, got %s", draft.Stage)
		}
	}

	// 6) Confirma: tutor e mascota persistidos, telefone canônico
	var confirm struct {
		CustomerID string `json:"customer_id"`
		Phone      string `json:"phone"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", base+"/confirm", "", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 confirm, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &confirm)
		if confirm.Phone != "11999991234" {
			t.Fatalf("expected canonical phone 11999991234, got %q", confirm.Phone)
		}
	}

	// 7) A sessão foi descartada
	{
		st, _ := doReq(t, ts.URL, "GET", base, "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 draft after confirm, got %d", st)
		}
	}

	// 8) Tutor consultável, com máscara de exibição
	{
		st, body := doReq(t, ts.URL, "GET", "/customers/"+confirm.CustomerID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get customer, got %d body=%s", st, string(body))
		}
		var c struct {
			Name         string `json:"name"`
			Phone        string `json:"phone"`
			PhoneDisplay string `json:"phone_display"`
		}
		mustDecode(t, body, &c)
		if c.Name != "Maria Silva" || c.Phone != "11999991234" {
			t.Fatalf("unexpected customer: %#v", c)
		}
		if c.PhoneDisplay != "(11) 99999-1234" {
			t.Fatalf("expected display mask, got %q", c.PhoneDisplay)
		}
	}

	// 9) Mascota vinculada ao tutor
	var petID string
	{
		st, body := doReq(t, ts.URL, "GET", "/customers/"+confirm.CustomerID+"/pets", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
		}
		var petsOut []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Species string `json:"species"`
		}
		mustDecode(t, body, &petsOut)
		if len(petsOut) != 1 || petsOut[0].Name != "Luna" || petsOut[0].Species != "dog" {
			t.Fatalf("unexpected pets: %#v", petsOut)
		}
		petID = petsOut[0].ID
	}

	// 10) Atendente logado (modo dev) agenda um banho e fica como criador
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments", "user-1", map[string]any{
			"pet_id":       petID,
			"service_type": "bath",
			"scheduled_at": "2026-03-12T14:00:00Z",
			"price_cents":  8000,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 schedule, got %d body=%s", st, string(body))
		}
		var a struct {
			CustomerID string `json:"customer_id"`
			Status     string `json:"status"`
			CreatedBy  string `json:"created_by"`
		}
		mustDecode(t, body, &a)
		if a.CustomerID != confirm.CustomerID {
			t.Fatalf("expected appointment bound to customer, got %q", a.CustomerID)
		}
		if a.Status != "scheduled" || a.CreatedBy != "user-1" {
			t.Fatalf("unexpected appointment: %#v", a)
		}
	}

	// 11) Dashboard reflete o cadastro
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard/summary", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var sum struct {
			Customers int `json:"customers"`
			Pets      int `json:"pets"`
		}
		mustDecode(t, body, &sum)
		if sum.Customers != 1 || sum.Pets != 1 {
			t.Fatalf("unexpected summary: %#v", sum)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

// -------------------------
// Helpers
// -------------------------

func doReq(t *testing.T, baseURL, method, path, debugUserID string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, bytes.TrimSpace(raw)
}

func mustDecode(t *testing.T, body []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}
