package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefDecodesBareAndPopulated(t *testing.T) {
	var bare Ref[Child]
	require.NoError(t, json.Unmarshal([]byte(`"c1"`), &bare))
	assert.Equal(t, "c1", bare.ID)
	assert.False(t, bare.Populated())

	var full Ref[Child]
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"c1","name":"An"}`), &full))
	assert.Equal(t, "c1", full.ID)
	require.True(t, full.Populated())
	assert.Equal(t, "An", full.Doc.Name)

	var alt Ref[Vaccine]
	require.NoError(t, json.Unmarshal([]byte(`{"id":"v1","name":"BCG"}`), &alt))
	assert.Equal(t, "v1", alt.ID)

	var null Ref[Vaccine]
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.Empty(t, null.ID)
}

func TestRefMarshal(t *testing.T) {
	out, err := json.Marshal(RefTo[Child]("c1"))
	require.NoError(t, err)
	assert.JSONEq(t, `"c1"`, string(out))

	out, err = json.Marshal(Ref[Child]{ID: "c1", Doc: &Child{ID: "c1", Name: "An", Gender: GenderFemale}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"c1","name":"An","dateOfBirth":"","gender":"female"}`, string(out))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
		err  bool
	}{
		{`850000`, 850000, false},
		{`"320000"`, 320000, false},
		{`99.6`, 100, false},
		{`null`, 0, false},
		{`-1`, 0, true},
		{`"free"`, 0, true},
		{`"NaN"`, 0, true},
		{`"Inf"`, 0, true},
		{`"-Inf"`, 0, true},
		{`1e30`, 0, true},
	}
	for _, tt := range tests {
		var a Amount
		err := json.Unmarshal([]byte(tt.in), &a)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, a, tt.in)
	}
}

func TestParseGender(t *testing.T) {
	for _, label := range []string{"male", "Nam", " NAM ", "boy", "Bé trai", "m"} {
		g, err := ParseGender(label)
		require.NoError(t, err, label)
		assert.Equal(t, GenderMale, g, label)
	}
	for _, label := range []string{"female", "Nữ", "nu", "girl", "Bé gái", "F"} {
		g, err := ParseGender(label)
		require.NoError(t, err, label)
		assert.Equal(t, GenderFemale, g, label)
	}
	_, err := ParseGender("unknown")
	assert.Error(t, err)
	assert.False(t, Gender("other").Valid())
}

func TestGenderKeepsUnknownLabels(t *testing.T) {
	var c Child
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","birthDate":"2020-02-01","gender":"Khác"}`), &c))
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "2020-02-01", c.DateOfBirth)
	assert.Equal(t, Gender("Khác"), c.Gender)
}

func TestStatus(t *testing.T) {
	s, err := ParseStatus("Cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, s)

	var a Appointment
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a1","childId":"c1","vaccineId":"v1","date":"2023-10-15T16:00:00+07:00","status":"rescheduled"}`), &a))
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, AppointmentStatus("rescheduled"), a.Status)
	assert.False(t, a.Cancelable())
	assert.Equal(t, time.Date(2023, 10, 15, 9, 0, 0, 0, time.UTC), a.Date)
	assert.Equal(t, "c1", a.ChildName())
}
