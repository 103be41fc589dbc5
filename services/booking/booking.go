package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"vaxbook/database"
	"vaxbook/models"
	"vaxbook/services/validation"
	"vaxbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) ListVaccines(ctx context.Context) ([]models.Vaccine, error) {
	return s.Vaccines.List(ctx)
}

func (s *DefaultBookingService) GetVaccine(ctx context.Context, id string) (*models.Vaccine, error) {
	v, err := s.Vaccines.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, NewNotFoundError("Vaccine not found")
	}
	return v, err
}

func (s *DefaultBookingService) ListChildren(ctx context.Context, userID string) ([]models.Child, error) {
	return s.Children.ListByParent(ctx, userID)
}

// AddChild validates and stores a child profile owned by userID.
func (s *DefaultBookingService) AddChild(ctx context.Context, userID string, in models.NewChild) (*models.Child, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, NewInvalidError("Name is required")
	}
	birth, err := validation.NormalizeBirthDate(in.BirthDate)
	if err != nil {
		return nil, NewInvalidError("Birth date must be YYYY-MM-DD")
	}
	gender, err := models.ParseGender(string(in.Gender))
	if err != nil {
		return nil, NewInvalidError("Gender must be male or female")
	}

	child := &models.Child{
		ID:             uuid.NewString(),
		ParentID:       userID,
		Name:           name,
		DateOfBirth:    birth,
		Gender:         gender,
		MedicalHistory: strings.TrimSpace(in.MedicalHistory),
	}
	if err := s.Children.Create(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// ListAppointments returns the user's appointments with child and vaccine
// documents populated. A reference whose document is gone stays a bare id.
func (s *DefaultBookingService) ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	records, err := s.Appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	children := map[string]*models.Child{}
	vaccines := map[string]*models.Vaccine{}
	out := make([]models.Appointment, 0, len(records))
	for _, rec := range records {
		appt := rec.Appointment()

		child, seen := children[rec.ChildID]
		if !seen {
			child, err = s.Children.GetByID(ctx, rec.ChildID)
			if err != nil && !errors.Is(err, database.ErrNotFound) {
				return nil, err
			}
			children[rec.ChildID] = child
		}
		appt.Child.Doc = child

		vaccine, seen := vaccines[rec.VaccineID]
		if !seen {
			vaccine, err = s.Vaccines.GetByID(ctx, rec.VaccineID)
			if err != nil && !errors.Is(err, database.ErrNotFound) {
				return nil, err
			}
			vaccines[rec.VaccineID] = vaccine
		}
		appt.Vaccine.Doc = vaccine

		out = append(out, appt)
	}
	return out, nil
}

// Book creates a pending appointment for one of the user's children.
func (s *DefaultBookingService) Book(ctx context.Context, userID string, req models.BookingRequest) (*models.Appointment, error) {
	req.ChildID = strings.TrimSpace(req.ChildID)
	req.VaccineID = strings.TrimSpace(req.VaccineID)
	if req.ChildID == "" || req.VaccineID == "" || strings.TrimSpace(req.Date) == "" {
		return nil, NewInvalidError("childId, vaccineId and date are required")
	}
	date, err := validation.ParseISO(req.Date)
	if err != nil {
		return nil, NewInvalidError("Date must be an ISO-8601 timestamp")
	}

	child, err := s.Children.GetByID(ctx, req.ChildID)
	if errors.Is(err, database.ErrNotFound) || (err == nil && child.ParentID != userID) {
		return nil, NewNotFoundError("Child not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.Vaccines.GetByID(ctx, req.VaccineID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NewNotFoundError("Vaccine not found")
		}
		return nil, err
	}

	now := time.Now().UTC()
	rec := &models.AppointmentRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		ChildID:   req.ChildID,
		VaccineID: req.VaccineID,
		Date:      date,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Appointments.Create(ctx, rec); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Appointment booked",
		zap.String("appointmentId", rec.ID),
		zap.String("userId", userID),
		zap.Time("date", date),
	)
	appt := rec.Appointment()
	return &appt, nil
}

// Cancel moves one of the user's pending appointments to canceled. Other
// users' appointments are reported as not found.
func (s *DefaultBookingService) Cancel(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	rec, err := s.Appointments.GetByID(ctx, appointmentID)
	if errors.Is(err, database.ErrNotFound) || (err == nil && rec.UserID != userID) {
		return nil, NewNotFoundError("Appointment not found")
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.Appointments.Transition(ctx, appointmentID, models.StatusPending, models.StatusCanceled)
	switch {
	case errors.Is(err, database.ErrStatusConflict):
		return nil, NewConflictError("Only pending appointments can be canceled")
	case errors.Is(err, database.ErrNotFound):
		return nil, NewNotFoundError("Appointment not found")
	case err != nil:
		return nil, err
	}
	appt := updated.Appointment()
	return &appt, nil
}
