package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"vaxbook/database/repository"
	"vaxbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*DefaultBookingService, models.Vaccine) {
	t.Helper()
	repos := repository.NewMemory()
	_, err := repository.SeedVaccines(context.Background(), repos.Vaccines)
	require.NoError(t, err)
	list, err := repos.Vaccines.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)
	return NewBookingService(repos), list[0]
}

func codeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func TestAddChild(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	child, err := svc.AddChild(ctx, "u1", models.NewChild{Name: " An ", BirthDate: "01/02/2020", Gender: "Nữ"})
	require.NoError(t, err)
	assert.Equal(t, "An", child.Name)
	assert.Equal(t, "2020-02-01", child.DateOfBirth)
	assert.Equal(t, models.GenderFemale, child.Gender)
	assert.Equal(t, "u1", child.ParentID)

	_, err = svc.AddChild(ctx, "u1", models.NewChild{Name: "", BirthDate: "2020-02-01", Gender: "male"})
	assert.Equal(t, CodeInvalid, codeOf(err))
	_, err = svc.AddChild(ctx, "u1", models.NewChild{Name: "B", BirthDate: "2020-02-30", Gender: "male"})
	assert.Equal(t, CodeInvalid, codeOf(err))
	_, err = svc.AddChild(ctx, "u1", models.NewChild{Name: "B", BirthDate: "2020-02-01", Gender: "x"})
	assert.Equal(t, CodeInvalid, codeOf(err))

	mine, err := svc.ListChildren(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	theirs, err := svc.ListChildren(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestBookListCancel(t *testing.T) {
	ctx := context.Background()
	svc, vaccine := newService(t)
	child, err := svc.AddChild(ctx, "u1", models.NewChild{Name: "An", BirthDate: "2020-02-01", Gender: "male"})
	require.NoError(t, err)

	appt, err := svc.Book(ctx, "u1", models.BookingRequest{ChildID: child.ID, VaccineID: vaccine.ID, Date: "2030-10-15T09:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.False(t, appt.Child.Populated())
	assert.Equal(t, child.ID, appt.Child.ID)
	assert.Equal(t, time.Date(2030, 10, 15, 9, 0, 0, 0, time.UTC), appt.Date)

	list, err := svc.ListAppointments(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Child.Populated())
	assert.Equal(t, "An", list[0].ChildName())
	assert.Equal(t, vaccine.Name, list[0].VaccineName())

	_, err = svc.Cancel(ctx, "u2", appt.ID)
	assert.Equal(t, CodeNotFound, codeOf(err))

	canceled, err := svc.Cancel(ctx, "u1", appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, canceled.Status)

	_, err = svc.Cancel(ctx, "u1", appt.ID)
	assert.Equal(t, CodeConflict, codeOf(err))

	_, err = svc.Cancel(ctx, "u1", "missing")
	assert.Equal(t, CodeNotFound, codeOf(err))
}

func TestBookRejects(t *testing.T) {
	ctx := context.Background()
	svc, vaccine := newService(t)
	child, err := svc.AddChild(ctx, "u1", models.NewChild{Name: "An", BirthDate: "2020-02-01", Gender: "male"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		userID string
		req    models.BookingRequest
		code   string
	}{
		{"missing fields", "u1", models.BookingRequest{ChildID: child.ID}, CodeInvalid},
		{"bad date", "u1", models.BookingRequest{ChildID: child.ID, VaccineID: vaccine.ID, Date: "15/10/2030"}, CodeInvalid},
		{"unknown vaccine", "u1", models.BookingRequest{ChildID: child.ID, VaccineID: "nope", Date: "2030-10-15T09:00:00Z"}, CodeNotFound},
		{"foreign child", "u2", models.BookingRequest{ChildID: child.ID, VaccineID: vaccine.ID, Date: "2030-10-15T09:00:00Z"}, CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(ctx, tt.userID, tt.req)
			assert.Equal(t, tt.code, codeOf(err))
		})
	}
}

func TestGetVaccine(t *testing.T) {
	svc, vaccine := newService(t)
	got, err := svc.GetVaccine(context.Background(), vaccine.ID)
	require.NoError(t, err)
	assert.Equal(t, vaccine.Name, got.Name)

	_, err = svc.GetVaccine(context.Background(), "missing")
	assert.Equal(t, CodeNotFound, codeOf(err))
}
