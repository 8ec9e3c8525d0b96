package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
)

const reviewWithRelations = `
	SELECT r.id, r.appointment_id, r.rating, COALESCE(r.notes, '') AS notes,
	       r.version, r.created_at,
	       a.date        AS appointment_date,
	       a.time_of_day AS appointment_time,
	       p.full_name   AS patient_name,
	       d.full_name   AS doctor_name,
	       t.name        AS treatment_name
	FROM reviews r
	JOIN appointments a ON a.id = r.appointment_id
	JOIN patients     p ON p.id = a.patient_id
	JOIN doctors      d ON d.id = a.doctor_id
	JOIN treatments   t ON t.id = a.treatment_id
`

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (appointment_id, rating, notes, version, created_at)
		VALUES ($1, $2, $3, 1, $4)
		RETURNING id
	`
	review.Version = 1
	review.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowxContext(ctx, query,
		review.AppointmentID,
		review.Rating,
		review.Notes,
		review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		return writeErr(err, "review")
	}
	return nil
}

func (r *reviewRepository) Get(ctx context.Context, id int64) (*model.Review, error) {
	query := `
		SELECT id, appointment_id, rating, COALESCE(notes, '') AS notes, version, created_at
		FROM reviews
		WHERE id = $1
	`
	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, readErr(err, "review")
	}
	return &review, nil
}

func (r *reviewRepository) GetWithRelations(ctx context.Context, id int64) (*model.Review, error) {
	var review model.Review
	if err := r.db.GetContext(ctx, &review, reviewWithRelations+` WHERE r.id = $1`, id); err != nil {
		return nil, readErr(err, "review")
	}
	return &review, nil
}

func (r *reviewRepository) ListWithRelations(ctx context.Context) ([]*model.Review, error) {
	var reviews []*model.Review
	query := reviewWithRelations + ` ORDER BY r.created_at DESC`
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) GetByAppointment(ctx context.Context, appointmentID int64) (*model.Review, error) {
	query := `
		SELECT id, appointment_id, rating, COALESCE(notes, '') AS notes, version, created_at
		FROM reviews
		WHERE appointment_id = $1
	`
	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, appointmentID); err != nil {
		return nil, readErr(err, "review")
	}
	return &review, nil
}

func (r *reviewRepository) ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE appointment_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, appointmentID); err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews
		SET appointment_id = $1, rating = $2, notes = $3, version = version + 1
		WHERE id = $4 AND version = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		review.AppointmentID,
		review.Rating,
		review.Notes,
		review.ID,
		review.Version,
	)
	if err != nil {
		return writeErr(err, "review")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("review: %w", repository.ErrVersionConflict)
	}

	review.Version++
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err, "review")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("review: %w", repository.ErrNotFound)
	}
	return nil
}
