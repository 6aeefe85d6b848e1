package session

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput es lo que captura la pantalla de registro.
// La contraseña se valida pero nunca se persiste ni se verifica
// en el login (stub documentado; la verificación real queda fuera).
type RegisterInput struct {
	Owner    Owner
	Pet      Pet
	Password string
}

// Validate normaliza y valida el input de registro.
// Devuelve la sesión lista para persistir o ErrInvalidInput.
func (in RegisterInput) Validate() (Session, error) {
	owner := Owner{
		Name:  strings.TrimSpace(in.Owner.Name),
		Email: strings.TrimSpace(in.Owner.Email),
		Phone: strings.TrimSpace(in.Owner.Phone),
	}
	pet := Pet{
		Name:    strings.TrimSpace(in.Pet.Name),
		Species: strings.TrimSpace(in.Pet.Species),
		Breed:   strings.TrimSpace(in.Pet.Breed),
		Age:     in.Pet.Age,
		Weight:  in.Pet.Weight,
	}

	if len(owner.Name) < 2 {
		return Session{}, fmt.Errorf("%w: owner name must be at least 2 characters", ErrInvalidInput)
	}
	if !emailRe.MatchString(owner.Email) {
		return Session{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	// el teléfono solo se recorta, sin validar formato
	if len(in.Password) < 6 {
		return Session{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	if pet.Name == "" {
		return Session{}, fmt.Errorf("%w: pet name required", ErrInvalidInput)
	}
	if pet.Species == "" {
		return Session{}, fmt.Errorf("%w: pet species required", ErrInvalidInput)
	}
	if pet.Age < 0 {
		return Session{}, fmt.Errorf("%w: pet age must be >= 0", ErrInvalidInput)
	}
	if pet.Weight <= 0 {
		return Session{}, fmt.Errorf("%w: pet weight must be > 0", ErrInvalidInput)
	}

	return Session{Owner: owner, Pet: pet}, nil
}
