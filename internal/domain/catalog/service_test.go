package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestListServices_AllByDefault(t *testing.T) {
	c := New(nil)

	items, err := c.ListServices(context.Background(), "")
	if err != nil {
		t.Fatalf("ListServices error: %v", err)
	}
	if len(items) != 14 {
		t.Fatalf("expected 14 services, got %d", len(items))
	}
}

func TestListServices_FilterByCategory(t *testing.T) {
	c := New(nil)

	items, err := c.ListServices(context.Background(), "diagnostic")
	if err != nil {
		t.Fatalf("ListServices error: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected diagnostic services")
	}
	for _, s := range items {
		if s.Category != CategoryDiagnostic {
			t.Fatalf("service %s has category %s", s.ID, s.Category)
		}
	}
}

func TestListServices_UnknownCategory(t *testing.T) {
	c := New(nil)

	if _, err := c.ListServices(context.Background(), "grooming"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetService_SeedEntriesExist(t *testing.T) {
	c := New(nil)

	// los servicios del seed del ledger deben existir en el catálogo
	cases := map[string]struct {
		name  string
		price float64
	}{
		"1": {"Radiografía Digital", 150},
		"2": {"Ecografía Abdominal", 200},
		"5": {"Limpieza Dental", 300},
	}

	for id, want := range cases {
		s, err := c.GetService(context.Background(), id)
		if err != nil {
			t.Fatalf("GetService(%s) error: %v", id, err)
		}
		if s.Name != want.name || s.Price != want.price {
			t.Fatalf("service %s: got %q/%v, want %q/%v", id, s.Name, s.Price, want.name, want.price)
		}
	}
}

func TestGetService_NotFound(t *testing.T) {
	c := New(nil)

	if _, err := c.GetService(context.Background(), "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.GetService(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

func TestListDoctors(t *testing.T) {
	c := New(nil)

	doctors, err := c.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("ListDoctors error: %v", err)
	}
	if len(doctors) == 0 {
		t.Fatalf("expected doctors in catalog")
	}
	for _, d := range doctors {
		if d.Name == "" || d.Specialty == "" || len(d.Availability) == 0 {
			t.Fatalf("doctor %s incomplete: %#v", d.ID, d)
		}
	}
}
