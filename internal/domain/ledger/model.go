package ledger

// Status es el ciclo de vida de un servicio facturable.
// pending y completed son cobrables; paid es terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
)

// Payable indica si el registro entra en el total pendiente:
// pendiente (aún no realizado) y completado (realizado, no cobrado)
// se tratan igual como "monto adeudado".
func (s Status) Payable() bool {
	return s == StatusPending || s == StatusCompleted
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusPaid:
		return true
	}
	return false
}

// ServiceRecord es una instancia de servicio clínico facturable.
// ServiceID referencia el catálogo y puede repetirse (visitas repetidas);
// ID es único por registro.
type ServiceRecord struct {
	ID          string
	ServiceID   string
	ServiceName string
	Date        string // YYYY-MM-DD
	Price       float64
	Status      Status
	Results     string // solo con status completed o paid
}
