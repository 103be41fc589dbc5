package handlers

import (
	"errors"
	"net/http"

	"vaxbook/models"
	"vaxbook/services/booking"
	"vaxbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

// writeError maps service errors to status codes.
func writeError(c *gin.Context, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		switch be.Code {
		case booking.CodeNotFound:
			utils.JSONError(c, http.StatusNotFound, be.Message, "")
		default:
			utils.JSONError(c, http.StatusBadRequest, be.Message, "")
		}
		return
	}
	getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
}

// GetVaccinesHandler handles GET /api/vaccines/get-vaccines.
func (h *BookingHandler) GetVaccinesHandler(c *gin.Context) {
	list, err := h.BookingService.ListVaccines(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetVaccineHandler handles GET /api/vaccines/get-vaccine/:id.
func (h *BookingHandler) GetVaccineHandler(c *gin.Context) {
	v, err := h.BookingService.GetVaccine(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GetChildrenHandler handles GET /api/children/get-children.
func (h *BookingHandler) GetChildrenHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied", "")
		return
	}
	list, err := h.BookingService.ListChildren(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddChildHandler handles POST /api/children/add-child.
func (h *BookingHandler) AddChildHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied", "")
		return
	}
	var req models.NewChild
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	child, err := h.BookingService.AddChild(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, child)
}

// GetAppointmentsHandler handles GET /api/appointments/get-appointments.
func (h *BookingHandler) GetAppointmentsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied", "")
		return
	}
	list, err := h.BookingService.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// BookAppointmentHandler handles POST /api/appointments/book-appointment.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied", "")
		return
	}
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	appt, err := h.BookingService.Book(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelAppointmentHandler handles PUT /api/appointments/cancel-appointment/:id.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied", "")
		return
	}
	appt, err := h.BookingService.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Appointment canceled", "appointment": appt})
}
