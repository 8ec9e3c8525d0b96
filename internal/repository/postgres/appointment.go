package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
)

const appointmentWithRelations = `
	SELECT a.id, a.patient_id, a.doctor_id, a.treatment_id,
	       a.date, a.time_of_day, COALESCE(a.notes, '') AS notes, a.completed,
	       a.version, a.created_at, a.updated_at,
	       p.full_name AS patient_name,
	       d.full_name AS doctor_name,
	       t.name      AS treatment_name
	FROM appointments a
	JOIN patients   p ON p.id = a.patient_id
	JOIN doctors    d ON d.id = a.doctor_id
	JOIN treatments t ON t.id = a.treatment_id
`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (patient_id, doctor_id, treatment_id, date, time_of_day,
		                          notes, completed, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $8)
		RETURNING id
	`
	appointment.Version = 1
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt

	err := r.db.QueryRowxContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.TreatmentID,
		appointment.Date,
		appointment.TimeOfDay,
		appointment.Notes,
		appointment.Completed,
		appointment.CreatedAt,
	).Scan(&appointment.ID)
	if err != nil {
		return writeErr(err, "appointment")
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, treatment_id, date, time_of_day,
		       COALESCE(notes, '') AS notes, completed, version, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, readErr(err, "appointment")
	}
	return &appointment, nil
}

func (r *appointmentRepository) GetWithRelations(ctx context.Context, id int64) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, appointmentWithRelations+` WHERE a.id = $1`, id); err != nil {
		return nil, readErr(err, "appointment")
	}

	var review model.Review
	err := r.db.GetContext(ctx, &review, `
		SELECT id, appointment_id, rating, COALESCE(notes, '') AS notes, version, created_at
		FROM reviews
		WHERE appointment_id = $1
	`, id)
	switch {
	case err == nil:
		appointment.Review = &review
	case errors.Is(err, sql.ErrNoRows):
		// no review yet
	default:
		return nil, fmt.Errorf("failed to get appointment review: %w", err)
	}

	return &appointment, nil
}

func (r *appointmentRepository) ListWithRelations(ctx context.Context) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, appointmentWithRelations); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET patient_id = $1, doctor_id = $2, treatment_id = $3, date = $4,
		    time_of_day = $5, notes = $6, completed = $7,
		    version = version + 1, updated_at = $8
		WHERE id = $9 AND version = $10
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.TreatmentID,
		appointment.Date,
		appointment.TimeOfDay,
		appointment.Notes,
		appointment.Completed,
		appointment.UpdatedAt,
		appointment.ID,
		appointment.Version,
	)
	if err != nil {
		return writeErr(err, "appointment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment: %w", repository.ErrVersionConflict)
	}

	appointment.Version++
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err, "appointment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *appointmentRepository) MarkCompleted(ctx context.Context, id int64) error {
	query := `
		UPDATE appointments
		SET completed = TRUE, version = version + 1, updated_at = $1
		WHERE id = $2 AND completed = FALSE
	`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to mark appointment completed: %w", err)
	}
	return nil
}
