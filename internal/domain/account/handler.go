package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vet-clinic-app/internal/domain/ledger"
	"vet-clinic-app/internal/domain/session"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, m *Manager) {
	r.Route("/account", func(ar chi.Router) {
		ar.Get("/", getAccountHandler(m))
		ar.Post("/register", registerHandler(m))
		ar.Post("/login", loginHandler(m))
		ar.Post("/logout", logoutHandler(m))

		ar.Route("/services", func(sr chi.Router) {
			sr.Get("/", listServicesHandler(m))
			sr.Post("/", addServiceHandler(m))
			sr.Get("/pending-total", pendingTotalHandler(m))
			sr.Post("/pay", payHandler(m))
		})
	})
}

type ownerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type petPayload struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
}

type registerRequest struct {
	Owner    ownerPayload `json:"owner"`
	Pet      petPayload   `json:"pet"`
	Password string       `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type serviceRecordResponse struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Results     string  `json:"results,omitempty"`
}

type accountResponse struct {
	IsLoggedIn   bool                    `json:"is_logged_in"`
	Owner        *ownerPayload           `json:"owner,omitempty"`
	Pet          *petPayload             `json:"pet,omitempty"`
	Services     []serviceRecordResponse `json:"services"`
	PendingTotal float64                 `json:"pending_total"`
}

type addServiceRequest struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Results     string  `json:"results"`
}

type servicesResponse struct {
	Payable      []serviceRecordResponse `json:"payable"`
	Paid         []serviceRecordResponse `json:"paid"`
	PendingTotal float64                 `json:"pending_total"`
}

func getAccountHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toAccountResponse(m.Snapshot()))
	}
}

// registerHandler godoc
// @Summary Registrar dueño y mascota
// @Description Crea la cuenta single-user de la app: pisa cualquier sesión previa y siembra el historial de servicios de muestra. La contraseña se valida pero no se persiste.
// @Tags account
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del dueño, la mascota y la contraseña"
// @Success 201 {object} accountResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Router /account/register [post]
func registerHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := m.Register(r.Context(), session.RegisterInput{
			Owner: session.Owner{
				Name:  req.Owner.Name,
				Email: req.Owner.Email,
				Phone: req.Owner.Phone,
			},
			Pet: session.Pet{
				Name:    req.Pet.Name,
				Species: req.Pet.Species,
				Breed:   req.Pet.Breed,
				Age:     req.Pet.Age,
				Weight:  req.Pet.Weight,
			},
			Password: req.Password,
		})
		if err != nil {
			writeOperationError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAccountResponse(snap))
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Autentica contra la cuenta registrada comparando el email exacto. Responde 401 genérico sin distinguir "sin cuenta" de "email no coincide".
// @Tags account
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} accountResponse
// @Failure 401 {string} string "login failed, please retry"
// @Router /account/login [post]
func loginHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ok, err := m.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			// mensaje genérico: no distinguimos "sin cuenta" de
			// "email no coincide"
			http.Error(w, "login failed, please retry", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, toAccountResponse(m.Snapshot()))
	}
}

func logoutHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.Logout(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listServicesHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := m.Snapshot()
		payable, paid := ledger.Partition(snap.Services)

		writeJSON(w, http.StatusOK, servicesResponse{
			Payable:      toRecordResponses(payable),
			Paid:         toRecordResponses(paid),
			PendingTotal: ledger.TotalPending(snap.Services),
		})
	}
}

func addServiceHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		record, err := m.AddService(r.Context(), ledger.AddInput{
			ServiceID:   req.ServiceID,
			ServiceName: req.ServiceName,
			Date:        req.Date,
			Price:       req.Price,
			Status:      ledger.Status(req.Status),
			Results:     req.Results,
		})
		if err != nil {
			writeOperationError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(record))
	}
}

func pendingTotalHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]float64{
			"pending_total": m.TotalPending(),
		})
	}
}

// payHandler godoc
// @Summary Pagar servicios pendientes
// @Description Marca todos los servicios cobrables (pending y completed) como pagados. Pago todo-o-nada contra el total pendiente.
// @Tags account
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 409 {string} string "no active session"
// @Router /account/services/pay [post]
func payHandler(m *Manager) http.HandlerFunc {
	// Solo marca el ledger como pagado; la pasarela de pagos real
	// queda fuera de este servicio.
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := m.MarkPaid(r.Context())
		if err != nil {
			writeOperationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"paid_count":    n,
			"pending_total": m.TotalPending(),
		})
	}
}

func writeOperationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidInput), errors.Is(err, ledger.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNoSession):
		http.Error(w, "no active session", http.StatusConflict)
	case errors.Is(err, ErrNotReady):
		http.Error(w, "loading", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAccountResponse(snap Snapshot) accountResponse {
	resp := accountResponse{
		IsLoggedIn:   snap.LoggedIn,
		Services:     toRecordResponses(snap.Services),
		PendingTotal: ledger.TotalPending(snap.Services),
	}
	if snap.Session != nil {
		resp.Owner = &ownerPayload{
			Name:  snap.Session.Owner.Name,
			Email: snap.Session.Owner.Email,
			Phone: snap.Session.Owner.Phone,
		}
		resp.Pet = &petPayload{
			Name:    snap.Session.Pet.Name,
			Species: snap.Session.Pet.Species,
			Breed:   snap.Session.Pet.Breed,
			Age:     snap.Session.Pet.Age,
			Weight:  snap.Session.Pet.Weight,
		}
	}
	return resp
}

func toRecordResponses(records []ledger.ServiceRecord) []serviceRecordResponse {
	out := make([]serviceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordResponse(r))
	}
	return out
}

func toRecordResponse(r ledger.ServiceRecord) serviceRecordResponse {
	return serviceRecordResponse{
		ID:          r.ID,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Date:        r.Date,
		Price:       r.Price,
		Status:      string(r.Status),
		Results:     r.Results,
	}
}

// writeJSON está duplicado a propósito en handlers de distintos módulos
// (account/catalog) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
