package account

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"vet-clinic-app/internal/domain/ledger"
	"vet-clinic-app/internal/domain/session"
	"vet-clinic-app/internal/platform/logger"
	"vet-clinic-app/internal/ports/kv"
)

var (
	// ErrNotReady: se llamó una operación antes de completar la carga
	// inicial. Open() carga antes de devolver el manager, así que solo
	// puede pasar usando New() sin Load().
	ErrNotReady = errors.New("account manager not ready")

	// ErrNoSession: la operación requiere un usuario registrado.
	ErrNoSession = errors.New("no active session")
)

// Phase es el ciclo de vida del manager dentro del proceso.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Manager es el dueño único del estado sesión + ledger.
//
// Toda mutación toma el lock, persiste primero y recién después aplica
// el cambio en memoria: si el storage falla, el estado en memoria queda
// como estaba y el caller recibe el error. Las mutaciones concurrentes
// se aplican en orden de llegada (single writer).
type Manager struct {
	mu    sync.RWMutex
	store kv.Store
	log   logger.Logger

	phase   Phase
	session *session.Session
	records []ledger.ServiceRecord
}

func New(store kv.Store, log logger.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log,
		phase: PhaseUninitialized,
	}
}

// Open construye el manager y bloquea hasta terminar la carga inicial,
// de modo que ningún caller pueda operar sobre un estado a medio cargar.
func Open(ctx context.Context, store kv.Store, log logger.Logger) (*Manager, error) {
	m := New(store, log)
	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Load hace la única lectura del storage del ciclo de vida del proceso.
// Una falla de lectura o un valor corrupto se loguea y se trata como
// "sin sesión": la app debe seguir usable aunque el storage esté roto.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase == PhaseReady {
		return nil
	}
	m.phase = PhaseLoading

	m.session = nil
	m.records = nil

	if raw, ok, err := m.store.Get(ctx, session.StoreKey); err != nil {
		m.log.Warn("session load failed, starting logged out", map[string]any{"error": err.Error()})
	} else if ok {
		s, err := session.Decode(raw)
		if err != nil {
			m.log.Warn("stored session corrupt, starting logged out", map[string]any{"error": err.Error()})
		} else {
			m.session = &s
		}
	}

	if raw, ok, err := m.store.Get(ctx, ledger.StoreKey); err != nil {
		m.log.Warn("ledger load failed, starting empty", map[string]any{"error": err.Error()})
	} else if ok {
		records, err := ledger.Decode(raw)
		if err != nil {
			m.log.Warn("stored ledger corrupt, starting empty", map[string]any{"error": err.Error()})
		} else {
			m.records = records
		}
	}

	// invariante: ledger vacío sin sesión. Si la sesión no se recuperó
	// (ausente o corrupta), un ledger huérfano no se expone.
	if m.session == nil && len(m.records) > 0 {
		m.log.Warn("discarding ledger without session", map[string]any{"services": len(m.records)})
		m.records = nil
	}

	m.phase = PhaseReady
	m.log.Info("account state loaded", map[string]any{
		"logged_in": m.session != nil,
		"services":  len(m.records),
	})
	return nil
}

// Register crea una sesión nueva pisando cualquier sesión previa y
// siembra el ledger. Sesión y ledger se persisten en una sola escritura
// atómica; la memoria se actualiza solo si esa escritura confirma.
func (m *Manager) Register(ctx context.Context, in session.RegisterInput) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ready(); err != nil {
		return Snapshot{}, err
	}

	s, err := in.Validate()
	if err != nil {
		return Snapshot{}, err
	}

	records := ledger.Seed()

	sessionRaw, err := session.Encode(s)
	if err != nil {
		return Snapshot{}, err
	}
	ledgerRaw, err := ledger.Encode(records)
	if err != nil {
		return Snapshot{}, err
	}

	if err := m.store.SetMany(ctx, map[string][]byte{
		session.StoreKey: sessionRaw,
		ledger.StoreKey:  ledgerRaw,
	}); err != nil {
		m.log.Error("register persist failed", map[string]any{"error": err.Error()})
		return Snapshot{}, fmt.Errorf("persist registration: %w", err)
	}

	m.session = &s
	m.records = records

	m.log.Info("user registered", map[string]any{"email": s.Owner.Email, "pet": s.Pet.Name})
	return m.snapshotLocked(), nil
}

// Login autentica contra la sesión persistida: éxito sii existe una
// sesión guardada cuyo owner.email coincide exactamente. La contraseña
// se acepta pero no se verifica (no hay credencial persistida).
// No toca el ledger.
func (m *Manager) Login(ctx context.Context, email, password string) (bool, error) {
	_ = password

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ready(); err != nil {
		return false, err
	}

	raw, ok, err := m.store.Get(ctx, session.StoreKey)
	if err != nil {
		m.log.Error("login read failed", map[string]any{"error": err.Error()})
		return false, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return false, nil
	}

	s, err := session.Decode(raw)
	if err != nil {
		m.log.Error("login decode failed", map[string]any{"error": err.Error()})
		return false, fmt.Errorf("read session: %w", err)
	}

	if s.Owner.Email != email {
		return false, nil
	}

	m.session = &s
	m.log.Info("user logged in", map[string]any{"email": email})
	return true, nil
}

// Logout borra sesión y ledger persistidos y limpia memoria.
// Idempotente: sin sesión activa es un no-op exitoso.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ready(); err != nil {
		return err
	}

	if m.session == nil && len(m.records) == 0 {
		return nil
	}

	if err := m.store.Remove(ctx, session.StoreKey, ledger.StoreKey); err != nil {
		m.log.Error("logout persist failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("remove session: %w", err)
	}

	m.session = nil
	m.records = nil
	m.log.Info("user logged out", nil)
	return nil
}

// AddService agrega un registro al ledger. No deduplica por serviceId:
// visitas repetidas son registros independientes.
func (m *Manager) AddService(ctx context.Context, in ledger.AddInput) (ledger.ServiceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ready(); err != nil {
		return ledger.ServiceRecord{}, err
	}
	if m.session == nil {
		return ledger.ServiceRecord{}, ErrNoSession
	}

	record, err := ledger.NewRecord(in)
	if err != nil {
		return ledger.ServiceRecord{}, err
	}

	updated := append(append([]ledger.ServiceRecord(nil), m.records...), record)

	raw, err := ledger.Encode(updated)
	if err != nil {
		return ledger.ServiceRecord{}, err
	}
	if err := m.store.Set(ctx, ledger.StoreKey, raw); err != nil {
		m.log.Error("add service persist failed", map[string]any{"error": err.Error()})
		return ledger.ServiceRecord{}, fmt.Errorf("persist ledger: %w", err)
	}

	m.records = updated
	m.log.Info("service added", map[string]any{"service_id": record.ServiceID, "price": record.Price})
	return record, nil
}

// TotalPending es el agregado puro de facturación: suma de precios de
// registros pending o completed. Seguro en cualquier momento.
func (m *Manager) TotalPending() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return ledger.TotalPending(m.records)
}

// MarkPaid pasa todo lo cobrable a paid (pago todo-o-nada contra el
// total pendiente; no existe pagar un registro suelto). Devuelve
// cuántos registros transicionaron.
func (m *Manager) MarkPaid(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ready(); err != nil {
		return 0, err
	}
	if m.session == nil {
		return 0, ErrNoSession
	}

	updated, n := ledger.MarkPaid(m.records)
	if n == 0 {
		return 0, nil
	}

	raw, err := ledger.Encode(updated)
	if err != nil {
		return 0, err
	}
	if err := m.store.Set(ctx, ledger.StoreKey, raw); err != nil {
		m.log.Error("mark paid persist failed", map[string]any{"error": err.Error()})
		return 0, fmt.Errorf("persist ledger: %w", err)
	}

	m.records = updated
	m.log.Info("services paid", map[string]any{"count": n})
	return n, nil
}

// Snapshot es la vista read-only que consumen las pantallas.
type Snapshot struct {
	LoggedIn bool
	Session  *session.Session
	Services []ledger.ServiceRecord
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{LoggedIn: m.session != nil}
	if m.session != nil {
		s := *m.session
		snap.Session = &s
	}
	snap.Services = append([]ledger.ServiceRecord(nil), m.records...)
	return snap
}

func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session != nil
}

func (m *Manager) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// IsLoading existe para la UI: pasa a false una sola vez por proceso.
func (m *Manager) IsLoading() bool {
	return m.Phase() == PhaseLoading
}

func (m *Manager) ready() error {
	if m.phase != PhaseReady {
		return ErrNotReady
	}
	return nil
}
