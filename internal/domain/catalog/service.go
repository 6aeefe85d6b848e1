package catalog

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Source provee los datos del catálogo. StaticSource sirve el catálogo
// embebido; adapters/catalog/remote lo trae del backend clínico.
type Source interface {
	Services(ctx context.Context) ([]Service, error)
	Doctors(ctx context.Context) ([]Doctor, error)
}

type StaticSource struct{}

func (StaticSource) Services(ctx context.Context) ([]Service, error) {
	return defaultServices(), nil
}

func (StaticSource) Doctors(ctx context.Context) ([]Doctor, error) {
	return defaultDoctors(), nil
}

type Catalog struct {
	source Source
}

func New(source Source) *Catalog {
	if source == nil {
		source = StaticSource{}
	}
	return &Catalog{source: source}
}

// ListServices devuelve el catálogo, opcionalmente filtrado por
// categoría. Filtro estable sobre el orden del catálogo.
func (c *Catalog) ListServices(ctx context.Context, category string) ([]Service, error) {
	all, err := c.source.Services(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return all, nil
	}

	cat := Category(category)
	if !cat.Valid() {
		return nil, ErrInvalidInput
	}

	out := make([]Service, 0, len(all))
	for _, s := range all {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *Catalog) GetService(ctx context.Context, id string) (Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Service{}, ErrInvalidInput
	}

	all, err := c.source.Services(ctx)
	if err != nil {
		return Service{}, err
	}
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, ErrNotFound
}

func (c *Catalog) ListDoctors(ctx context.Context) ([]Doctor, error) {
	return c.source.Doctors(ctx)
}
