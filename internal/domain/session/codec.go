package session

import (
	"encoding/json"
	"fmt"
)

// StoreKey es la clave bajo la que se persiste la sesión serializada.
const StoreKey = "user"

// storedSession es el formato persistido (JSON camelCase, compatible con
// los datos que la app móvil ya guardó en versiones anteriores).
type storedSession struct {
	Owner storedOwner `json:"owner"`
	Pet   storedPet   `json:"pet"`
}

type storedOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type storedPet struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	Weight  float64 `json:"weight"`
}

func Encode(s Session) ([]byte, error) {
	b, err := json.Marshal(storedSession{
		Owner: storedOwner{
			Name:  s.Owner.Name,
			Email: s.Owner.Email,
			Phone: s.Owner.Phone,
		},
		Pet: storedPet{
			Name:    s.Pet.Name,
			Species: s.Pet.Species,
			Breed:   s.Pet.Breed,
			Age:     s.Pet.Age,
			Weight:  s.Pet.Weight,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return b, nil
}

func Decode(data []byte) (Session, error) {
	var st storedSession
	if err := json.Unmarshal(data, &st); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return Session{
		Owner: Owner{
			Name:  st.Owner.Name,
			Email: st.Owner.Email,
			Phone: st.Owner.Phone,
		},
		Pet: Pet{
			Name:    st.Pet.Name,
			Species: st.Pet.Species,
			Breed:   st.Pet.Breed,
			Age:     st.Pet.Age,
			Weight:  st.Pet.Weight,
		},
	}, nil
}
