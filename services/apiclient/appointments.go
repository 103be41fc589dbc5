package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vaxbook/models"
	"vaxbook/services/validation"
)

// ListAppointments returns the user's appointments. Child and vaccine
// references may be populated or bare ids.
func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	data, err := c.do(ctx, OpListAppointments, http.MethodGet, pathAppointments, nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.Appointment](data, "appointments")
	if err != nil {
		return nil, c.fail(malformed(OpListAppointments, http.StatusOK, err))
	}
	return list, nil
}

// BookAppointment books with an already formatted ISO-8601 date.
func (c *Client) BookAppointment(ctx context.Context, childID, vaccineID, isoDate string) (*models.Appointment, error) {
	if strings.TrimSpace(isoDate) == "" {
		return nil, c.fail(invalid(OpBookAppointment, &validation.FieldError{Field: "date", Message: "is required"}))
	}
	ts, err := validation.ParseISO(isoDate)
	if err != nil {
		return nil, c.fail(invalid(OpBookAppointment, err))
	}
	return c.book(ctx, childID, vaccineID, ts)
}

// BookAppointmentAt books from the raw form values: a DD/MM/YYYY date and an
// HH:MM time within opening hours, read as UTC wall-clock time.
func (c *Client) BookAppointmentAt(ctx context.Context, childID, vaccineID, date, clock string) (*models.Appointment, error) {
	ts, err := validation.BookingTimestamp(date, clock)
	if err != nil {
		return nil, c.fail(invalid(OpBookAppointment, err))
	}
	return c.book(ctx, childID, vaccineID, ts)
}

func (c *Client) book(ctx context.Context, childID, vaccineID string, ts time.Time) (*models.Appointment, error) {
	req := models.BookingRequest{
		ChildID:   strings.TrimSpace(childID),
		VaccineID: strings.TrimSpace(vaccineID),
		Date:      validation.FormatISO(ts),
	}
	if req.ChildID == "" {
		return nil, c.fail(invalid(OpBookAppointment, &validation.FieldError{Field: "childId", Message: "is required"}))
	}
	if req.VaccineID == "" {
		return nil, c.fail(invalid(OpBookAppointment, &validation.FieldError{Field: "vaccineId", Message: "is required"}))
	}

	data, err := c.do(ctx, OpBookAppointment, http.MethodPost, pathBookAppointment, req)
	if err != nil {
		return nil, err
	}
	appt, err := decodeOne[models.Appointment](data, "appointment")
	if err != nil {
		return nil, c.fail(malformed(OpBookAppointment, http.StatusOK, err))
	}
	return appt, nil
}

// CancelAppointment asks the backend to move a pending appointment to
// canceled and returns the updated appointment.
func (c *Client) CancelAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, c.fail(invalid(OpCancelAppointment, errors.New("appointment id is required")))
	}
	data, err := c.do(ctx, OpCancelAppointment, http.MethodPut, pathCancelAppointment+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	appt, err := decodeOne[models.Appointment](data, "appointment")
	if err != nil {
		return nil, c.fail(malformed(OpCancelAppointment, http.StatusOK, err))
	}
	return appt, nil
}
