package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"vet-clinic-app/internal/domain/catalog"
	"vet-clinic-app/internal/platform/httpclient"
	"vet-clinic-app/internal/platform/logger"
)

var ErrNotConfigured = errors.New("clinic catalog client not configured")

const defaultTTL = 5 * time.Minute

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
	TTL          time.Duration
}

// Source trae el catálogo del backend clínico con cache TTL y cae al
// catálogo embebido si upstream falla o no está configurado.
type Source struct {
	client       *httpclient.Client
	apiKey       string
	apiKeyHeader string
	ttl          time.Duration
	fallback     catalog.Source
	log          logger.Logger
	now          func() time.Time

	mu        sync.Mutex
	services  []catalog.Service
	doctors   []catalog.Doctor
	fetchedAt time.Time
}

func NewSource(cfg Config, fallback catalog.Source, log logger.Logger) (*Source, error) {
	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if fallback == nil {
		fallback = catalog.StaticSource{}
	}

	var client *httpclient.Client
	if strings.TrimSpace(cfg.BaseURL) != "" {
		c, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		client = c
	}

	return &Source{
		client:       client,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: header,
		ttl:          ttl,
		fallback:     fallback,
		log:          log,
		now:          time.Now,
	}, nil
}

func (s *Source) IsConfigured() bool {
	return s != nil && s.client != nil
}

type servicePayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Icon        string  `json:"icon"`
}

type doctorPayload struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Experience   string   `json:"experience"`
	Rating       float64  `json:"rating"`
	Image        string   `json:"image"`
	Availability []string `json:"availability"`
}

func (s *Source) Services(ctx context.Context) ([]catalog.Service, error) {
	if !s.IsConfigured() {
		return s.fallback.Services(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshLocked(ctx); err != nil {
		s.log.Warn("catalog upstream unavailable, serving fallback", map[string]any{"error": err.Error()})
		return s.fallback.Services(ctx)
	}
	return append([]catalog.Service(nil), s.services...), nil
}

func (s *Source) Doctors(ctx context.Context) ([]catalog.Doctor, error) {
	if !s.IsConfigured() {
		return s.fallback.Doctors(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshLocked(ctx); err != nil {
		s.log.Warn("catalog upstream unavailable, serving fallback", map[string]any{"error": err.Error()})
		return s.fallback.Doctors(ctx)
	}
	return append([]catalog.Doctor(nil), s.doctors...), nil
}

// refreshLocked refresca ambas listas de una sola vez cuando el cache
// venció. Caller sostiene s.mu.
func (s *Source) refreshLocked(ctx context.Context) error {
	if !s.fetchedAt.IsZero() && s.now().Sub(s.fetchedAt) < s.ttl {
		return nil
	}

	headers := map[string]string{}
	if s.apiKey != "" {
		headers[s.apiKeyHeader] = s.apiKey
	}

	var services []servicePayload
	if err := s.client.DoJSON(ctx, http.MethodGet, "/v1/catalog/services", headers, nil, &services); err != nil {
		return fmt.Errorf("fetch services: %w", err)
	}

	var doctors []doctorPayload
	if err := s.client.DoJSON(ctx, http.MethodGet, "/v1/catalog/doctors", headers, nil, &doctors); err != nil {
		return fmt.Errorf("fetch doctors: %w", err)
	}

	s.services = make([]catalog.Service, 0, len(services))
	for _, p := range services {
		s.services = append(s.services, catalog.Service{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Duration:    p.Duration,
			Category:    catalog.Category(p.Category),
			Icon:        p.Icon,
		})
	}
	s.doctors = make([]catalog.Doctor, 0, len(doctors))
	for _, p := range doctors {
		s.doctors = append(s.doctors, catalog.Doctor{
			ID:           p.ID,
			Name:         p.Name,
			Specialty:    p.Specialty,
			Experience:   p.Experience,
			Rating:       p.Rating,
			Image:        p.Image,
			Availability: p.Availability,
		})
	}

	s.fetchedAt = s.now()
	return nil
}
