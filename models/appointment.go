package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus is the server-owned lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// ParseStatus normalizes a status string; "cancelled" is accepted for canceled.
func ParseStatus(s string) (AppointmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "completed":
		return StatusCompleted, nil
	case "canceled", "cancelled":
		return StatusCanceled, nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if parsed, err := ParseStatus(raw); err == nil {
		*s = parsed
		return nil
	}
	*s = AppointmentStatus(raw)
	return nil
}

// Appointment is a vaccination booking. Child and Vaccine are populated or
// bare ids depending on the endpoint that produced it.
type Appointment struct {
	ID      string            `json:"_id"`
	Child   Ref[Child]        `json:"childId"`
	Vaccine Ref[Vaccine]      `json:"vaccineId"`
	Date    time.Time         `json:"date"`
	Status  AppointmentStatus `json:"status"`
}

func (a *Appointment) UnmarshalJSON(data []byte) error {
	type alias Appointment
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = aux.AltID
	}
	a.Date = a.Date.UTC()
	return nil
}

// Cancelable reports whether the client may cancel the appointment. Every
// other transition belongs to the server.
func (a Appointment) Cancelable() bool {
	return a.Status == StatusPending
}

// ChildName returns the populated child name, or the bare id.
func (a Appointment) ChildName() string {
	if a.Child.Doc != nil && a.Child.Doc.Name != "" {
		return a.Child.Doc.Name
	}
	return a.Child.ID
}

// VaccineName returns the populated vaccine name, or the bare id.
func (a Appointment) VaccineName() string {
	if a.Vaccine.Doc != nil && a.Vaccine.Doc.Name != "" {
		return a.Vaccine.Doc.Name
	}
	return a.Vaccine.ID
}

// BookingRequest is the payload of the book-appointment call.
type BookingRequest struct {
	ChildID   string `json:"childId"`
	VaccineID string `json:"vaccineId"`
	Date      string `json:"date"` // ISO-8601, UTC
}
