package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
)

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (full_name, birth_date, phone, email, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $5)
		RETURNING id
	`
	patient.Version = 1
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt

	err := r.db.QueryRowxContext(ctx, query,
		patient.FullName,
		patient.BirthDate,
		patient.Phone,
		patient.Email,
		patient.CreatedAt,
	).Scan(&patient.ID)
	if err != nil {
		return writeErr(err, "patient")
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query := `
		SELECT id, full_name, birth_date, COALESCE(phone, '') AS phone,
		       COALESCE(email, '') AS email, version, created_at, updated_at
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, readErr(err, "patient")
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `
		SELECT id, full_name, birth_date, COALESCE(phone, '') AS phone,
		       COALESCE(email, '') AS email, version, created_at, updated_at
		FROM patients
	`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) ListOptions(ctx context.Context) ([]model.Option, error) {
	query := `SELECT id, full_name AS label FROM patients ORDER BY full_name ASC`
	var options []model.Option
	if err := r.db.SelectContext(ctx, &options, query); err != nil {
		return nil, fmt.Errorf("failed to list patient options: %w", err)
	}
	return options, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET full_name = $1, birth_date = $2, phone = $3, email = $4,
		    version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7
	`
	patient.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		patient.FullName,
		patient.BirthDate,
		patient.Phone,
		patient.Email,
		patient.UpdatedAt,
		patient.ID,
		patient.Version,
	)
	if err != nil {
		return writeErr(err, "patient")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("patient: %w", repository.ErrVersionConflict)
	}

	patient.Version++
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err, "patient")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("patient: %w", repository.ErrNotFound)
	}
	return nil
}
