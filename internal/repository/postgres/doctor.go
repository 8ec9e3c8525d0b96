package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
)

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (full_name, specialty, phone, email, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $5)
		RETURNING id
	`
	doctor.Version = 1
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = doctor.CreatedAt

	err := r.db.QueryRowxContext(ctx, query,
		doctor.FullName,
		doctor.Specialty,
		doctor.Phone,
		doctor.Email,
		doctor.CreatedAt,
	).Scan(&doctor.ID)
	if err != nil {
		return writeErr(err, "doctor")
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `
		SELECT id, full_name, specialty, COALESCE(phone, '') AS phone,
		       COALESCE(email, '') AS email, version, created_at, updated_at
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, readErr(err, "doctor")
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT id, full_name, specialty, COALESCE(phone, '') AS phone,
		       COALESCE(email, '') AS email, version, created_at, updated_at
		FROM doctors
	`
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListOptions(ctx context.Context) ([]model.Option, error) {
	query := `SELECT id, full_name AS label FROM doctors ORDER BY full_name ASC`
	var options []model.Option
	if err := r.db.SelectContext(ctx, &options, query); err != nil {
		return nil, fmt.Errorf("failed to list doctor options: %w", err)
	}
	return options, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET full_name = $1, specialty = $2, phone = $3, email = $4,
		    version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7
	`
	doctor.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		doctor.FullName,
		doctor.Specialty,
		doctor.Phone,
		doctor.Email,
		doctor.UpdatedAt,
		doctor.ID,
		doctor.Version,
	)
	if err != nil {
		return writeErr(err, "doctor")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("doctor: %w", repository.ErrVersionConflict)
	}

	doctor.Version++
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err, "doctor")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("doctor: %w", repository.ErrNotFound)
	}
	return nil
}
