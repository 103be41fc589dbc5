package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vaccine is a catalogue entry as returned by the backend.
type Vaccine struct {
	ID          string `bson:"_id" json:"_id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Price       Amount `bson:"price" json:"price"`                           // smallest currency unit
	AgeRange    string `bson:"ageRange,omitempty" json:"ageRange,omitempty"` // e.g. "0-6 tháng"
	Image       string `bson:"image,omitempty" json:"image,omitempty"`       // absolute URL
}

// UnmarshalJSON accepts either "_id" or "id" as the identifier.
func (v *Vaccine) UnmarshalJSON(data []byte) error {
	type alias Vaccine
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(v)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if v.ID == "" {
		v.ID = aux.AltID
	}
	return nil
}

// Amount is a non-negative price in the smallest currency unit.
type Amount int64

// UnmarshalJSON accepts integral numbers, fractional numbers (rounded) and
// numeric strings. Negative values are rejected.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 {
		return fmt.Errorf("invalid price %q: out of range", s)
	}
	if f < 0 {
		return fmt.Errorf("invalid price %q: negative", s)
	}
	*a = Amount(math.Round(f))
	return nil
}
