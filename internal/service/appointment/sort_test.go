package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicware/dental-admin/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSortScheduleNewestDayFirstEarliestSlotFirst(t *testing.T) {
	appointments := []*model.Appointment{
		{ID: 1, Date: day("2024-01-02"), TimeOfDay: "09:00"},
		{ID: 2, Date: day("2024-01-02"), TimeOfDay: "08:00"},
		{ID: 3, Date: day("2024-01-03"), TimeOfDay: "10:00"},
	}

	SortSchedule(appointments)

	got := []int64{appointments[0].ID, appointments[1].ID, appointments[2].ID}
	assert.Equal(t, []int64{3, 2, 1}, got)
}

func TestSortScheduleStable(t *testing.T) {
	appointments := []*model.Appointment{
		{ID: 1, Date: day("2024-05-01"), TimeOfDay: "10:00"},
		{ID: 2, Date: day("2024-05-01"), TimeOfDay: "10:00"},
	}

	SortSchedule(appointments)

	assert.Equal(t, int64(1), appointments[0].ID)
	assert.Equal(t, int64(2), appointments[1].ID)
}

func TestScheduleOptionsLabel(t *testing.T) {
	options := ScheduleOptions([]*model.Appointment{{
		ID:            7,
		Date:          day("2024-03-15"),
		TimeOfDay:     "14:30",
		PatientName:   "Maria Dimitrova",
		DoctorName:    "Dr. Elena Ivanova",
		TreatmentName: "Dental Cleaning",
	}})

	require.Len(t, options, 1)
	assert.Equal(t, int64(7), options[0].ID)
	assert.Equal(t, "2024-03-15 14:30 — Maria Dimitrova / Dr. Elena Ivanova / Dental Cleaning", options[0].Label)
}
