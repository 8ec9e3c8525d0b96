package model

import "time"

const DefaultReviewRating = 5

// Review is post-visit feedback. An appointment has at most one review; the
// joined appointment/patient/doctor fields are filled by eager-loading reads.
type Review struct {
	ID            int64     `db:"id" json:"id"`
	AppointmentID int64     `db:"appointment_id" json:"appointment_id"`
	Rating        int       `db:"rating" json:"rating"`
	Notes         string    `db:"notes" json:"notes,omitempty"`
	Version       int64     `db:"version" json:"version"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	AppointmentDate time.Time `db:"appointment_date" json:"appointment_date,omitempty"`
	AppointmentTime string    `db:"appointment_time" json:"appointment_time,omitempty"`
	PatientName     string    `db:"patient_name" json:"patient_name,omitempty"`
	DoctorName      string    `db:"doctor_name" json:"doctor_name,omitempty"`
	TreatmentName   string    `db:"treatment_name" json:"treatment_name,omitempty"`
}

type ReviewInput struct {
	ID            int64  `json:"id"`
	Version       int64  `json:"version"`
	AppointmentID int64  `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes         string `json:"notes" binding:"omitempty,max=800"`
}

// ReviewFormData carries the appointment picker for the review form.
type ReviewFormData struct {
	Review       *Review  `json:"review,omitempty"`
	Appointments []Option `json:"appointments"`
}
