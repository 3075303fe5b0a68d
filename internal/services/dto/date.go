package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date принимает RFC3339 или просто дату YYYY-MM-DD (полночь UTC).
// Нулевое значение не проходит 'required'.
type Date time.Time

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		*d = Date(t.UTC())
		return nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", raw)
	}
	*d = Date(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d))
}

func (d Date) Time() time.Time {
	return time.Time(d)
}
