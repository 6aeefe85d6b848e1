package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Route("/catalog", func(cr chi.Router) {
		cr.Get("/services", listServicesHandler(c))
		cr.Get("/services/{serviceID}", getServiceHandler(c))
		cr.Get("/doctors", listDoctorsHandler(c))
	})
}

type serviceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Icon        string  `json:"icon"`
}

type doctorResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Experience   string   `json:"experience"`
	Rating       float64  `json:"rating"`
	Image        string   `json:"image"`
	Availability []string `json:"availability"`
}

func listServicesHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := c.ListServices(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "unknown category", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]serviceResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toServiceResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getServiceHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := c.GetService(r.Context(), chi.URLParam(r, "serviceID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "service not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "service id required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

func listDoctorsHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctors, err := c.ListDoctors(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]doctorResponse, 0, len(doctors))
		for _, d := range doctors {
			out = append(out, doctorResponse{
				ID:           d.ID,
				Name:         d.Name,
				Specialty:    d.Specialty,
				Experience:   d.Experience,
				Rating:       d.Rating,
				Image:        d.Image,
				Availability: d.Availability,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toServiceResponse(s Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    string(s.Category),
		Icon:        s.Icon,
	}
}

// writeJSON está duplicado a propósito (ver account/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
