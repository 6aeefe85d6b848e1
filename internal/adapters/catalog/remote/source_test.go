package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vet-clinic-app/internal/platform/logger"
)

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func TestSource_NotConfigured_UsesFallback(t *testing.T) {
	src, err := NewSource(Config{}, nil, testLogger())
	if err != nil {
		t.Fatalf("NewSource error: %v", err)
	}
	if src.IsConfigured() {
		t.Fatalf("expected unconfigured source without base url")
	}

	services, err := src.Services(context.Background())
	if err != nil {
		t.Fatalf("Services error: %v", err)
	}
	if len(services) == 0 {
		t.Fatalf("expected embedded catalog fallback")
	}
}

func TestSource_FetchesAndCaches(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/catalog/services":
			_, _ = w.Write([]byte(`[{"id":"1","name":"Radiografía Digital","price":150,"category":"diagnostic"}]`))
		case "/v1/catalog/doctors":
			_, _ = w.Write([]byte(`[{"id":"1","name":"Dra. María Fernández","specialty":"Medicina Interna","availability":["Lunes"]}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	src, err := NewSource(Config{BaseURL: ts.URL, TTL: time.Minute}, nil, testLogger())
	if err != nil {
		t.Fatalf("NewSource error: %v", err)
	}

	services, err := src.Services(context.Background())
	if err != nil {
		t.Fatalf("Services error: %v", err)
	}
	if len(services) != 1 || services[0].Name != "Radiografía Digital" {
		t.Fatalf("unexpected services: %#v", services)
	}

	doctors, err := src.Doctors(context.Background())
	if err != nil {
		t.Fatalf("Doctors error: %v", err)
	}
	if len(doctors) != 1 {
		t.Fatalf("unexpected doctors: %#v", doctors)
	}

	// segunda lectura dentro del TTL: sin más requests
	if _, err := src.Services(context.Background()); err != nil {
		t.Fatalf("cached Services error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 upstream calls (services+doctors), got %d", calls)
	}
}

func TestSource_TTLExpiry_Refetches(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	src, err := NewSource(Config{BaseURL: ts.URL, TTL: time.Minute}, nil, testLogger())
	if err != nil {
		t.Fatalf("NewSource error: %v", err)
	}

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	src.now = func() time.Time { return base }

	if _, err := src.Services(context.Background()); err != nil {
		t.Fatalf("Services error: %v", err)
	}
	first := calls

	src.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := src.Services(context.Background()); err != nil {
		t.Fatalf("Services after TTL error: %v", err)
	}
	if calls <= first {
		t.Fatalf("expected refetch after TTL expiry")
	}
}

func TestSource_UpstreamError_FallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	src, err := NewSource(Config{BaseURL: ts.URL}, nil, testLogger())
	if err != nil {
		t.Fatalf("NewSource error: %v", err)
	}

	services, err := src.Services(context.Background())
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if len(services) == 0 {
		t.Fatalf("expected embedded catalog on upstream failure")
	}
}
