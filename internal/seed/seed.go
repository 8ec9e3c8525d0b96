package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clinicware/dental-admin/internal/config"
	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/pkg/logger"
	"github.com/clinicware/dental-admin/pkg/security"
)

// Seeder provisions the roles, the bootstrap admin account and a small
// demo data set. Every step is idempotent: existing rows are left alone.
type Seeder struct {
	db     *sqlx.DB
	hasher security.PasswordHasher
	log    *logger.Logger
}

func NewSeeder(db *sqlx.DB, hasher security.PasswordHasher, log *logger.Logger) *Seeder {
	return &Seeder{db: db, hasher: hasher, log: log}
}

func (s *Seeder) Run(ctx context.Context, cfg config.SeedConfig) error {
	if err := s.seedRoles(ctx); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	if err := s.seedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := s.seedDemoData(ctx); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	for _, name := range []string{model.RoleAdmin, model.RoleStaff} {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`, email); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	var userID int64
	if err := s.db.GetContext(ctx, &userID,
		`INSERT INTO users (email, full_name, password_hash) VALUES ($1, 'Administrator', $2) RETURNING id`,
		email, hash); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role_id)
		 SELECT $1, id FROM roles WHERE name = $2
		 ON CONFLICT DO NOTHING`, userID, model.RoleAdmin)
	if err != nil {
		return err
	}

	s.log.Info("seeded bootstrap admin account")
	return nil
}

// seedDemoData loads a starter registry so a fresh install is not empty.
// It only runs against an empty doctors table.
func (s *Seeder) seedDemoData(ctx context.Context) error {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT count(*) FROM doctors`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var drIvanova, drPetrov int64
	if err := tx.GetContext(ctx, &drIvanova,
		`INSERT INTO doctors (full_name, specialty, phone, email)
		 VALUES ('Dr. Elena Ivanova', 'Orthodontics', '+359 88 555 0101', 'e.ivanova@clinic.local')
		 RETURNING id`); err != nil {
		return err
	}
	if err := tx.GetContext(ctx, &drPetrov,
		`INSERT INTO doctors (full_name, specialty, phone, email)
		 VALUES ('Dr. Georgi Petrov', 'Oral Surgery', '+359 88 555 0102', 'g.petrov@clinic.local')
		 RETURNING id`); err != nil {
		return err
	}

	var patientMaria int64
	if err := tx.GetContext(ctx, &patientMaria,
		`INSERT INTO patients (full_name, birth_date, phone, email)
		 VALUES ('Maria Dimitrova', '1990-04-12', '+359 88 555 0201', 'maria.d@example.com')
		 RETURNING id`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO patients (full_name, birth_date, phone, email)
		 VALUES ('Ivan Kolev', '1985-11-03', '+359 88 555 0202', 'ivan.k@example.com')`); err != nil {
		return err
	}

	var cleaning int64
	if err := tx.GetContext(ctx, &cleaning,
		`INSERT INTO treatments (name, price, duration_minutes, description)
		 VALUES ('Dental Cleaning', 60, 30, 'Routine plaque and tartar removal')
		 RETURNING id`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO treatments (name, price, duration_minutes, description)
		 VALUES ('Tooth Filling', 90, 45, 'Composite filling for a single tooth'),
		        ('Whitening', 150, 60, 'In-office whitening session')`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO appointments (patient_id, doctor_id, treatment_id, date, time_of_day, notes)
		 VALUES ($1, $2, $3, CURRENT_DATE + 1, $4, 'First visit')`,
		patientMaria, drIvanova, cleaning, model.DefaultAppointmentTime); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.log.Info("seeded demo registry data")
	return nil
}
