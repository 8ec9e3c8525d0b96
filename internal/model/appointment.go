package model

import "time"

const DefaultAppointmentTime = "10:00"

// Appointment is a scheduled visit. PatientName, DoctorName and TreatmentName
// are populated only by the eager-loading queries; they are never written back.
type Appointment struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	DoctorID    int64     `db:"doctor_id" json:"doctor_id"`
	TreatmentID int64     `db:"treatment_id" json:"treatment_id"`
	Date        time.Time `db:"date" json:"date"`
	TimeOfDay   string    `db:"time_of_day" json:"time_of_day"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	Completed   bool      `db:"completed" json:"completed"`
	Version     int64     `db:"version" json:"version"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	PatientName   string  `db:"patient_name" json:"patient_name,omitempty"`
	DoctorName    string  `db:"doctor_name" json:"doctor_name,omitempty"`
	TreatmentName string  `db:"treatment_name" json:"treatment_name,omitempty"`
	Review        *Review `db:"-" json:"review,omitempty"`
}

type AppointmentInput struct {
	ID          int64  `json:"id"`
	Version     int64  `json:"version"`
	PatientID   int64  `json:"patient_id" binding:"required"`
	DoctorID    int64  `json:"doctor_id" binding:"required"`
	TreatmentID int64  `json:"treatment_id" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	TimeOfDay   string `json:"time_of_day" binding:"required,timeofday"`
	Notes       string `json:"notes" binding:"omitempty,max=500"`
	Completed   bool   `json:"completed"`
}

// AppointmentFormData carries the reference lists the appointment form needs.
type AppointmentFormData struct {
	Appointment *Appointment `json:"appointment,omitempty"`
	Patients    []Option     `json:"patients"`
	Doctors     []Option     `json:"doctors"`
	Treatments  []Option     `json:"treatments"`
}
