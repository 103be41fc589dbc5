package catalog

import (
	"testing"
	"time"

	"vaxbook/models"

	"github.com/stretchr/testify/assert"
)

func names(list []models.Vaccine) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.Name)
	}
	return out
}

func TestFilterVaccines(t *testing.T) {
	list := []models.Vaccine{
		{ID: "1", Name: "Rotavirus"},
		{ID: "2", Name: "Sởi - Quai bị - Rubella"},
		{ID: "3", Name: "Viêm gan B"},
		{ID: "4", Name: "Viêm não Nhật Bản"},
		{ID: "5", Name: "ROTATEQ"},
	}

	assert.Equal(t, []string{"Rotavirus", "Sởi - Quai bị - Rubella", "Viêm gan B"}, names(FilterVaccines(list, "", HomeLimit)))
	assert.Equal(t, []string{"Rotavirus", "ROTATEQ"}, names(FilterVaccines(list, "rota", HomeLimit)))
	assert.Equal(t, []string{"Viêm gan B", "Viêm não Nhật Bản"}, names(FilterVaccines(list, "VIEM", 0)))
	assert.Equal(t, []string{"Sởi - Quai bị - Rubella"}, names(FilterVaccines(list, "soi", 0)))
	assert.Empty(t, FilterVaccines(list, "zzz", 3))
	assert.Len(t, FilterVaccines(list, "", 0), 5)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "850,000 VND", FormatPrice(850000))
	assert.Equal(t, "1,250,000 VND", FormatPrice(1250000))
	assert.Equal(t, "999 VND", FormatPrice(999))
	assert.Equal(t, PriceOnRequest, FormatPrice(0))
}

func TestSortAndUpcoming(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	list := []models.Appointment{
		{ID: "past", Date: now.Add(-48 * time.Hour), Status: models.StatusCompleted},
		{ID: "soon", Date: now.Add(2 * time.Hour), Status: models.StatusPending},
		{ID: "later", Date: now.Add(72 * time.Hour), Status: models.StatusConfirmed},
		{ID: "dropped", Date: now.Add(24 * time.Hour), Status: models.StatusCanceled},
	}

	sorted := SortAppointments(list)
	var ids []string
	for _, a := range sorted {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"later", "dropped", "soon", "past"}, ids)
	assert.Equal(t, "past", list[0].ID, "input must not be reordered")

	ids = nil
	for _, a := range Upcoming(list, now) {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"soon", "later"}, ids)
}

func TestStaticContent(t *testing.T) {
	assert.Equal(t, "0123-456-789", SupportContact().Hotline)
	assert.Equal(t, "support@vaccine.com", SupportContact().Email)
	guides := VaccinationGuides()
	assert.Len(t, guides, 3)
	for _, g := range guides {
		assert.NotEmpty(t, g.Details)
	}
	assert.NotEmpty(t, VaccinationSchedule())
	assert.NotEmpty(t, ParentTips())
}
