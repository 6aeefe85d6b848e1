package catalog

// Category clasifica los servicios de la clínica.
// @Enum diagnostic, surgery, care, emergency
type Category string

const (
	CategoryDiagnostic Category = "diagnostic"
	CategorySurgery    Category = "surgery"
	CategoryCare       Category = "care"
	CategoryEmergency  Category = "emergency"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDiagnostic, CategorySurgery, CategoryCare, CategoryEmergency:
		return true
	}
	return false
}

// Service es una entrada del catálogo de servicios (datos estáticos de
// presentación; el precio de referencia es el que se factura al agendar).
type Service struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Duration    string
	Category    Category
	Icon        string
}

// Doctor es una entrada del catálogo del equipo médico.
type Doctor struct {
	ID           string
	Name         string
	Specialty    string
	Experience   string
	Rating       float64
	Image        string
	Availability []string
}
