package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type AddInput struct {
	ServiceID   string
	ServiceName string
	Date        string // YYYY-MM-DD
	Price       float64
	Status      Status // vacío => pending
	Results     string
}

// NewRecord valida el input y construye un registro con ID propio.
func NewRecord(in AddInput) (ServiceRecord, error) {
	r := ServiceRecord{
		ID:          uuid.NewString(),
		ServiceID:   strings.TrimSpace(in.ServiceID),
		ServiceName: strings.TrimSpace(in.ServiceName),
		Date:        strings.TrimSpace(in.Date),
		Price:       in.Price,
		Status:      in.Status,
		Results:     strings.TrimSpace(in.Results),
	}
	if r.Status == "" {
		r.Status = StatusPending
	}

	if r.ServiceID == "" {
		return ServiceRecord{}, fmt.Errorf("%w: service id required", ErrInvalidInput)
	}
	if r.ServiceName == "" {
		return ServiceRecord{}, fmt.Errorf("%w: service name required", ErrInvalidInput)
	}
	if r.Date == "" {
		return ServiceRecord{}, fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	if r.Price < 0 {
		return ServiceRecord{}, fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	if !r.Status.Valid() {
		return ServiceRecord{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, r.Status)
	}
	if r.Results != "" && r.Status == StatusPending {
		return ServiceRecord{}, fmt.Errorf("%w: results only allowed once the service was performed", ErrInvalidInput)
	}

	return r, nil
}

// TotalPending suma los precios de los registros cobrables.
// Puro: no muta nada y devuelve 0 sobre ledger vacío.
func TotalPending(records []ServiceRecord) float64 {
	var total float64
	for _, r := range records {
		if r.Status.Payable() {
			total += r.Price
		}
	}
	return total
}

// MarkPaid devuelve una copia del ledger con todo lo cobrable en paid
// y cuántos registros transicionaron. Los ya pagados no se tocan.
func MarkPaid(records []ServiceRecord) ([]ServiceRecord, int) {
	out := make([]ServiceRecord, len(records))
	copy(out, records)

	n := 0
	for i := range out {
		if out[i].Status.Payable() {
			out[i].Status = StatusPaid
			n++
		}
	}
	return out, n
}

// Partition separa cobrables de pagados preservando el orden de inserción
// (filtro estable, no re-sort) para la vista de servicios.
func Partition(records []ServiceRecord) (payable, paid []ServiceRecord) {
	payable = make([]ServiceRecord, 0, len(records))
	paid = make([]ServiceRecord, 0)
	for _, r := range records {
		if r.Status.Payable() {
			payable = append(payable, r)
		} else {
			paid = append(paid, r)
		}
	}
	return payable, paid
}

// Seed son los registros de muestra que se cargan al registrarse.
// Placeholder de una integración real de intake de servicios.
func Seed() []ServiceRecord {
	return []ServiceRecord{
		{
			ID:          uuid.NewString(),
			ServiceID:   "1",
			ServiceName: "Radiografía Digital",
			Date:        "2024-01-15",
			Price:       150,
			Status:      StatusCompleted,
			Results:     "No se detectaron fracturas. Articulaciones en buen estado.",
		},
		{
			ID:          uuid.NewString(),
			ServiceID:   "2",
			ServiceName: "Ecografía Abdominal",
			Date:        "2024-01-20",
			Price:       200,
			Status:      StatusCompleted,
			Results:     "Órganos internos sin anomalías detectadas.",
		},
		{
			ID:          uuid.NewString(),
			ServiceID:   "5",
			ServiceName: "Limpieza Dental",
			Date:        "2024-02-10",
			Price:       300,
			Status:      StatusPending,
		},
	}
}
