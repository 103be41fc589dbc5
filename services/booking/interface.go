package booking

import (
	"context"

	"vaxbook/database/repository"
	"vaxbook/models"
)

// BookingService covers the catalogue, child profiles and appointments of
// one authenticated user.
type BookingService interface {
	ListVaccines(ctx context.Context) ([]models.Vaccine, error)
	GetVaccine(ctx context.Context, id string) (*models.Vaccine, error)

	ListChildren(ctx context.Context, userID string) ([]models.Child, error)
	AddChild(ctx context.Context, userID string, in models.NewChild) (*models.Child, error)

	// ListAppointments returns appointments with child and vaccine populated.
	ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	Book(ctx context.Context, userID string, req models.BookingRequest) (*models.Appointment, error)
	// Cancel moves a pending appointment to canceled.
	Cancel(ctx context.Context, userID, appointmentID string) (*models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Vaccines     repository.VaccineRepository
	Children     repository.ChildRepository
	Appointments repository.AppointmentRepository
}

// NewBookingService wires the service to a set of repositories.
func NewBookingService(repos *repository.Repositories) *DefaultBookingService {
	return &DefaultBookingService{
		Vaccines:     repos.Vaccines,
		Children:     repos.Children,
		Appointments: repos.Appointments,
	}
}
