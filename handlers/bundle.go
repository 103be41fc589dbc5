package handlers

import (
	"vaxbook/database/repository"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo repository.UserRepository

	// Auth endpoints
	LoginHandler            gin.HandlerFunc
	RegisterCustomerHandler gin.HandlerFunc

	// Vaccine endpoints
	GetVaccinesHandler gin.HandlerFunc
	GetVaccineHandler  gin.HandlerFunc

	// Child endpoints
	GetChildrenHandler gin.HandlerFunc
	AddChildHandler    gin.HandlerFunc

	// Appointment endpoints
	GetAppointmentsHandler   gin.HandlerFunc
	BookAppointmentHandler   gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the auth and booking handlers.
func NewHandlerBundle(users repository.UserRepository, auth *AuthHandler, bk *BookingHandler) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: users,

		LoginHandler:            auth.LoginHandler,
		RegisterCustomerHandler: auth.RegisterCustomerHandler,

		GetVaccinesHandler: bk.GetVaccinesHandler,
		GetVaccineHandler:  bk.GetVaccineHandler,

		GetChildrenHandler: bk.GetChildrenHandler,
		AddChildHandler:    bk.AddChildHandler,

		GetAppointmentsHandler:   bk.GetAppointmentsHandler,
		BookAppointmentHandler:   bk.BookAppointmentHandler,
		CancelAppointmentHandler: bk.CancelAppointmentHandler,
	}
}
