package appointment

import (
	"fmt"
	"sort"

	"github.com/clinicware/dental-admin/internal/model"
)

// SortSchedule orders appointments by descending date, then ascending
// time-of-day. Zero-padded HH:MM strings compare correctly as text.
func SortSchedule(appointments []*model.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		di, dj := appointments[i].Date, appointments[j].Date
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return appointments[i].TimeOfDay < appointments[j].TimeOfDay
	})
}

// ScheduleOptions builds picker entries from an already-sorted schedule,
// labelled "YYYY-MM-DD HH:MM — patient / doctor / treatment".
func ScheduleOptions(appointments []*model.Appointment) []model.Option {
	options := make([]model.Option, 0, len(appointments))
	for _, a := range appointments {
		options = append(options, model.Option{
			ID: a.ID,
			Label: fmt.Sprintf("%s %s — %s / %s / %s",
				a.Date.Format("2006-01-02"), a.TimeOfDay,
				a.PatientName, a.DoctorName, a.TreatmentName),
		})
	}
	return options
}
