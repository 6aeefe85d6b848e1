package ledger

import (
	"encoding/json"
	"fmt"
)

// StoreKey es la clave bajo la que se persiste el ledger serializado.
const StoreKey = "userServices"

// storedRecord mantiene el formato JSON camelCase que la app ya usa
// en el storage del dispositivo.
type storedRecord struct {
	ID          string  `json:"id,omitempty"`
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Results     string  `json:"results,omitempty"`
}

func Encode(records []ServiceRecord) ([]byte, error) {
	out := make([]storedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, storedRecord{
			ID:          r.ID,
			ServiceID:   r.ServiceID,
			ServiceName: r.ServiceName,
			Date:        r.Date,
			Price:       r.Price,
			Status:      string(r.Status),
			Results:     r.Results,
		})
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}
	return b, nil
}

func Decode(data []byte) ([]ServiceRecord, error) {
	var stored []storedRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}

	out := make([]ServiceRecord, 0, len(stored))
	for _, st := range stored {
		out = append(out, ServiceRecord{
			ID:          st.ID,
			ServiceID:   st.ServiceID,
			ServiceName: st.ServiceName,
			Date:        st.Date,
			Price:       st.Price,
			Status:      Status(st.Status),
			Results:     st.Results,
		})
	}
	return out, nil
}
