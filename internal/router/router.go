package router

import (
	"net/http"

	"vet-clinic-app/internal/domain/account"
	"vet-clinic-app/internal/domain/catalog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Manager *account.Manager
	Catalog *catalog.Catalog // nil => catálogo embebido
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.New(nil)
	}

	// Rutas por módulo
	account.RegisterRoutes(r, opts.Manager)
	catalog.RegisterRoutes(r, cat)

	return r
}
