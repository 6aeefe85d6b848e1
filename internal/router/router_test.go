package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic-app/internal/adapters/storage/memory"
	"vet-clinic-app/internal/domain/account"
	"vet-clinic-app/internal/platform/logger"
	"vet-clinic-app/internal/router"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	m, err := account.Open(context.Background(), store, logger.New(logger.Options{Level: logger.Error}))
	if err != nil {
		t.Fatalf("account.Open error: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Manager: m}))
	t.Cleanup(ts.Close)
	return ts, store
}

func TestHTTP_EndToEnd_RegisterPayFlow(t *testing.T) {
	ts, store := newTestServer(t)

	// 1) Estado inicial: deslogueado, ledger vacío
	{
		st, body := doReq(t, ts.URL, "GET", "/account", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get account, got %d body=%s", st, string(body))
		}
		var resp struct {
			IsLoggedIn   bool    `json:"is_logged_in"`
			PendingTotal float64 `json:"pending_total"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.IsLoggedIn || resp.PendingTotal != 0 {
			t.Fatalf("expected logged-out empty account, got %s", string(body))
		}
	}

	// 2) Registro siembra el ledger
	{
		st, body := doReq(t, ts.URL, "POST", "/account/register", map[string]any{
			"owner":    map[string]any{"name": "Ana", "email": "ana@x.com", "phone": "123"},
			"pet":      map[string]any{"name": "Rex", "species": "Perro", "breed": "Labrador", "age": 3, "weight": 20.5},
			"password": "secret1",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
		var resp struct {
			IsLoggedIn   bool    `json:"is_logged_in"`
			PendingTotal float64 `json:"pending_total"`
			Services     []any   `json:"services"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.IsLoggedIn || len(resp.Services) != 3 || resp.PendingTotal != 650 {
			t.Fatalf("unexpected register response: %s", string(body))
		}
	}

	// 3) Login con email equivocado => 401 genérico
	{
		st, _ := doReq(t, ts.URL, "POST", "/account/login", map[string]any{
			"email": "wrong@x.com", "password": "any",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 wrong email, got %d", st)
		}
	}

	// 4) Login correcto: el password no se verifica
	{
		st, body := doReq(t, ts.URL, "POST", "/account/login", map[string]any{
			"email": "ana@x.com", "password": "whatever",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
	}

	// 5) Agregar un servicio
	{
		st, body := doReq(t, ts.URL, "POST", "/account/services", map[string]any{
			"service_id":   "8",
			"service_name": "Vacunación",
			"date":         "2024-03-01",
			"price":        80,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add service, got %d body=%s", st, string(body))
		}
	}

	// 6) Total pendiente incluye completed + pending
	{
		st, body := doReq(t, ts.URL, "GET", "/account/services/pending-total", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pending-total, got %d", st)
		}
		var resp struct {
			PendingTotal float64 `json:"pending_total"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.PendingTotal != 730 {
			t.Fatalf("expected pending total 730, got %v", resp.PendingTotal)
		}
	}

	// 7) Listado particionado: nada pagado todavía
	{
		st, body := doReq(t, ts.URL, "GET", "/account/services", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list services, got %d", st)
		}
		var resp struct {
			Payable []any `json:"payable"`
			Paid    []any `json:"paid"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Payable) != 4 || len(resp.Paid) != 0 {
			t.Fatalf("unexpected partition: %s", string(body))
		}
	}

	// 8) Pagar: todo pasa a paid
	{
		st, body := doReq(t, ts.URL, "POST", "/account/services/pay", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pay, got %d body=%s", st, string(body))
		}
		var resp struct {
			PaidCount    int     `json:"paid_count"`
			PendingTotal float64 `json:"pending_total"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.PaidCount != 4 || resp.PendingTotal != 0 {
			t.Fatalf("unexpected pay response: %s", string(body))
		}
	}

	// 9) Logout borra las claves persistidas
	{
		st, _ := doReq(t, ts.URL, "POST", "/account/logout", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}
		if _, ok, _ := store.Get(context.Background(), "user"); ok {
			t.Fatalf("persisted session not removed on logout")
		}
	}

	// 10) Logout repetido sigue siendo 204
	{
		st, _ := doReq(t, ts.URL, "POST", "/account/logout", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected idempotent logout, got %d", st)
		}
	}
}

func TestHTTP_AddService_Validation(t *testing.T) {
	ts, _ := newTestServer(t)

	// sin sesión => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/account/services", map[string]any{
			"service_id": "8", "service_name": "Vacunación", "date": "2024-03-01", "price": 80,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 without session, got %d", st)
		}
	}

	// registro para el resto de los casos
	st, _ := doReq(t, ts.URL, "POST", "/account/register", map[string]any{
		"owner":    map[string]any{"name": "Ana", "email": "ana@x.com"},
		"pet":      map[string]any{"name": "Rex", "species": "Perro", "age": 3, "weight": 20.5},
		"password": "secret1",
	})
	if st != http.StatusCreated {
		t.Fatalf("register failed: %d", st)
	}

	// fecha malformada => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/account/services", map[string]any{
			"service_id": "8", "service_name": "Vacunación", "date": "01/03/2024", "price": 80,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad date, got %d", st)
		}
	}

	// results sobre pending => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/account/services", map[string]any{
			"service_id": "8", "service_name": "Vacunación", "date": "2024-03-01",
			"price": 80, "status": "pending", "results": "ok",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 results-on-pending, got %d", st)
		}
	}
}

func TestHTTP_Register_InvalidInput(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/account/register", map[string]any{
		"owner":    map[string]any{"name": "Ana", "email": "not-an-email"},
		"pet":      map[string]any{"name": "Rex", "species": "Perro", "age": 3, "weight": 20.5},
		"password": "secret1",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid email, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Catalog(t *testing.T) {
	ts, _ := newTestServer(t)

	// catálogo completo
	{
		st, body := doReq(t, ts.URL, "GET", "/catalog/services", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 catalog, got %d", st)
		}
		var services []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		}
		_ = json.Unmarshal(body, &services)
		if len(services) != 14 {
			t.Fatalf("expected 14 catalog services, got %d", len(services))
		}
	}

	// filtro por categoría
	{
		st, body := doReq(t, ts.URL, "GET", "/catalog/services?category=emergency", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 filtered catalog, got %d", st)
		}
		var services []struct {
			Category string `json:"category"`
		}
		_ = json.Unmarshal(body, &services)
		for _, s := range services {
			if s.Category != "emergency" {
				t.Fatalf("filter leaked category %s", s.Category)
			}
		}
	}

	// categoría desconocida => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/catalog/services?category=spa", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown category, got %d", st)
		}
	}

	// detalle por id
	{
		st, body := doReq(t, ts.URL, "GET", "/catalog/services/5", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 service detail, got %d", st)
		}
		var s struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		}
		_ = json.Unmarshal(body, &s)
		if s.Name != "Limpieza Dental" || s.Price != 300 {
			t.Fatalf("unexpected service detail: %s", string(body))
		}
	}

	// id inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/catalog/services/999", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 missing service, got %d", st)
		}
	}

	// doctores
	{
		st, body := doReq(t, ts.URL, "GET", "/catalog/doctors", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 doctors, got %d", st)
		}
		var doctors []any
		_ = json.Unmarshal(body, &doctors)
		if len(doctors) == 0 {
			t.Fatalf("expected doctors in catalog")
		}
	}
}

func TestHTTP_RestartKeepsSession(t *testing.T) {
	ts1, store := newTestServer(t)

	st, _ := doReq(t, ts1.URL, "POST", "/account/register", map[string]any{
		"owner":    map[string]any{"name": "Ana", "email": "ana@x.com"},
		"pet":      map[string]any{"name": "Rex", "species": "Perro", "age": 3, "weight": 20.5},
		"password": "secret1",
	})
	if st != http.StatusCreated {
		t.Fatalf("register failed: %d", st)
	}

	// "reinicio": manager nuevo sobre el mismo storage
	m2, err := account.Open(context.Background(), store, logger.New(logger.Options{Level: logger.Error}))
	if err != nil {
		t.Fatalf("account.Open error: %v", err)
	}
	ts2 := httptest.NewServer(router.NewRouter(router.Options{Manager: m2}))
	defer ts2.Close()

	stID, body := doReq(t, ts2.URL, "GET", "/account", nil)
	if stID != http.StatusOK {
		t.Fatalf("expected 200 get account after restart, got %d", stID)
	}
	var resp struct {
		IsLoggedIn   bool    `json:"is_logged_in"`
		PendingTotal float64 `json:"pending_total"`
	}
	_ = json.Unmarshal(body, &resp)
	if !resp.IsLoggedIn || resp.PendingTotal != 650 {
		t.Fatalf("session lost across restart: %s", string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
