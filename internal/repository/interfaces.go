package repository

import (
	"context"
	"errors"

	"github.com/clinicware/dental-admin/internal/model"
)

// Sentinel errors the postgres layer maps store failures onto. Services
// translate them into the reported error taxonomy.
var (
	// ErrNotFound: no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict: the row changed (or vanished) between load and save.
	ErrVersionConflict = errors.New("record version conflict")
	// ErrRestricted: a delete was blocked by a dependent row.
	ErrRestricted = errors.New("record is referenced by dependent rows")
	// ErrForeignKey: a write referenced a row that does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")
	// ErrDuplicate: a write violated a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	List(ctx context.Context) ([]*model.Doctor, error)
	ListOptions(ctx context.Context) ([]model.Option, error)
	Update(ctx context.Context, doctor *model.Doctor) error
	Delete(ctx context.Context, id int64) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id int64) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	ListOptions(ctx context.Context) ([]model.Option, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
}

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *model.Treatment) error
	Get(ctx context.Context, id int64) (*model.Treatment, error)
	List(ctx context.Context) ([]*model.Treatment, error)
	ListOptions(ctx context.Context) ([]model.Option, error)
	Update(ctx context.Context, treatment *model.Treatment) error
	Delete(ctx context.Context, id int64) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	// GetWithRelations resolves patient, doctor, treatment and the review.
	GetWithRelations(ctx context.Context, id int64) (*model.Appointment, error)
	// ListWithRelations returns all rows with names resolved, in store order.
	// Callers needing the schedule order must sort in memory.
	ListWithRelations(ctx context.Context) ([]*model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id int64) error
	// MarkCompleted flips the completed flag; a no-op when already set.
	MarkCompleted(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	Get(ctx context.Context, id int64) (*model.Review, error)
	GetWithRelations(ctx context.Context, id int64) (*model.Review, error)
	ListWithRelations(ctx context.Context) ([]*model.Review, error)
	GetByAppointment(ctx context.Context, appointmentID int64) (*model.Review, error)
	ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	RolesFor(ctx context.Context, userID int64) ([]string, error)
}

type AuditRepository interface {
	Append(ctx context.Context, actor, action, entity string, entityID int64) error
}
