package session

// Pet es el perfil de la mascota asociada a la cuenta.
// Inmutable salvo re-registro completo.
type Pet struct {
	Name    string
	Species string
	Breed   string
	Age     int     // años, >= 0
	Weight  float64 // kg, > 0
}

// Owner es el dueño registrado. Email funciona como identificador de login.
type Owner struct {
	Name  string
	Email string
	Phone string
}

// Session es la identidad activa de la app: un dueño y su mascota.
// Existe a lo sumo una a la vez (modelo single-user).
type Session struct {
	Owner Owner
	Pet   Pet
}
