package models

import "time"

// AppointmentRecord is the stored form of an appointment. References are
// kept as ids and populated on read.
type AppointmentRecord struct {
	ID        string            `bson:"_id"`
	UserID    string            `bson:"userId"`
	ChildID   string            `bson:"childId"`
	VaccineID string            `bson:"vaccineId"`
	Date      time.Time         `bson:"date"`
	Status    AppointmentStatus `bson:"status"`
	CreatedAt time.Time         `bson:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt"`
}

// Appointment converts the record with unpopulated references.
func (r AppointmentRecord) Appointment() Appointment {
	return Appointment{
		ID:      r.ID,
		Child:   RefTo[Child](r.ChildID),
		Vaccine: RefTo[Vaccine](r.VaccineID),
		Date:    r.Date.UTC(),
		Status:  r.Status,
	}
}
