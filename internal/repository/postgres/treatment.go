package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
)

func (r *treatmentRepository) Create(ctx context.Context, treatment *model.Treatment) error {
	query := `
		INSERT INTO treatments (name, price, duration_minutes, description, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $5)
		RETURNING id
	`
	treatment.Version = 1
	treatment.CreatedAt = time.Now()
	treatment.UpdatedAt = treatment.CreatedAt

	err := r.db.QueryRowxContext(ctx, query,
		treatment.Name,
		treatment.Price,
		treatment.DurationMinutes,
		treatment.Description,
		treatment.CreatedAt,
	).Scan(&treatment.ID)
	if err != nil {
		return writeErr(err, "treatment")
	}
	return nil
}

func (r *treatmentRepository) Get(ctx context.Context, id int64) (*model.Treatment, error) {
	query := `
		SELECT id, name, price, duration_minutes, COALESCE(description, '') AS description,
		       version, created_at, updated_at
		FROM treatments
		WHERE id = $1
	`
	var treatment model.Treatment
	if err := r.db.GetContext(ctx, &treatment, query, id); err != nil {
		return nil, readErr(err, "treatment")
	}
	return &treatment, nil
}

func (r *treatmentRepository) List(ctx context.Context) ([]*model.Treatment, error) {
	query := `
		SELECT id, name, price, duration_minutes, COALESCE(description, '') AS description,
		       version, created_at, updated_at
		FROM treatments
	`
	var treatments []*model.Treatment
	if err := r.db.SelectContext(ctx, &treatments, query); err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}

func (r *treatmentRepository) ListOptions(ctx context.Context) ([]model.Option, error) {
	query := `SELECT id, name AS label FROM treatments ORDER BY name ASC`
	var options []model.Option
	if err := r.db.SelectContext(ctx, &options, query); err != nil {
		return nil, fmt.Errorf("failed to list treatment options: %w", err)
	}
	return options, nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *model.Treatment) error {
	query := `
		UPDATE treatments
		SET name = $1, price = $2, duration_minutes = $3, description = $4,
		    version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7
	`
	treatment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		treatment.Name,
		treatment.Price,
		treatment.DurationMinutes,
		treatment.Description,
		treatment.UpdatedAt,
		treatment.ID,
		treatment.Version,
	)
	if err != nil {
		return writeErr(err, "treatment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("treatment: %w", repository.ErrVersionConflict)
	}

	treatment.Version++
	return nil
}

func (r *treatmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM treatments WHERE id = $1`, id)
	if err != nil {
		return deleteErr(err, "treatment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("treatment: %w", repository.ErrNotFound)
	}
	return nil
}
