package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
	"github.com/clinicware/dental-admin/internal/service/audit"
	"github.com/clinicware/dental-admin/pkg/apperror"
)

type Service struct {
	repo       repository.AppointmentRepository
	patients   repository.PatientRepository
	doctors    repository.DoctorRepository
	treatments repository.TreatmentRepository
	auditor    *audit.Service
}

func NewService(
	repo repository.AppointmentRepository,
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	treatments repository.TreatmentRepository,
	auditor *audit.Service,
) *Service {
	return &Service{
		repo:       repo,
		patients:   patients,
		doctors:    doctors,
		treatments: treatments,
		auditor:    auditor,
	}
}

// List fetches the full eagerly-loaded row set and applies the schedule
// order in memory. The store cannot be relied on to order by the
// time-of-day column, so ordering is never pushed down.
func (s *Service) List(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	SortSchedule(appointments)
	return appointments, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	appointment, err := s.repo.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("appointment")
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

// FormData assembles the relationship pickers for the appointment form.
// appointment may be nil (create form) or a loaded row (edit form).
func (s *Service) FormData(ctx context.Context, appointment *model.Appointment) (*model.AppointmentFormData, error) {
	patients, err := s.patients.ListOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient options: %w", err)
	}
	doctors, err := s.doctors.ListOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor options: %w", err)
	}
	treatments, err := s.treatments.ListOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load treatment options: %w", err)
	}

	if appointment == nil {
		appointment = NewSkeleton()
	}

	return &model.AppointmentFormData{
		Appointment: appointment,
		Patients:    patients,
		Doctors:     doctors,
		Treatments:  treatments,
	}, nil
}

// NewSkeleton returns the create-form defaults: tomorrow at 10:00.
func NewSkeleton() *model.Appointment {
	return &model.Appointment{
		Date:      time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour),
		TimeOfDay: model.DefaultAppointmentTime,
	}
}

func (s *Service) Create(ctx context.Context, in *model.AppointmentInput) (*model.Appointment, error) {
	appointment, err := fromInput(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperror.ValidationField("references", "referenced patient, doctor or treatment does not exist")
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.auditor.Record(ctx, "create", "appointment", appointment.ID)
	return appointment, nil
}

func (s *Service) Update(ctx context.Context, id int64, in *model.AppointmentInput) (*model.Appointment, error) {
	if in.ID != 0 && in.ID != id {
		return nil, apperror.NotFound("appointment")
	}
	if in.Version <= 0 {
		return nil, apperror.ValidationField("version", "version is required")
	}

	appointment, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	appointment.ID = id
	appointment.Version = in.Version

	if err := s.repo.Update(ctx, appointment); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			return nil, apperror.ValidationField("references", "referenced patient, doctor or treatment does not exist")
		case errors.Is(err, repository.ErrVersionConflict):
			if _, getErr := s.repo.Get(ctx, id); errors.Is(getErr, repository.ErrNotFound) {
				return nil, apperror.NotFound("appointment")
			}
			return nil, apperror.Conflict("appointment", err)
		default:
			return nil, fmt.Errorf("failed to update appointment: %w", err)
		}
	}

	s.auditor.Record(ctx, "update", "appointment", id)
	return appointment, nil
}

// Delete removes the appointment; its review, if any, goes with it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.auditor.Record(ctx, "delete", "appointment", id)
	return nil
}

func fromInput(in *model.AppointmentInput) (*model.Appointment, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, apperror.ValidationField("date", "must be a date in YYYY-MM-DD form")
	}

	return &model.Appointment{
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		TreatmentID: in.TreatmentID,
		Date:        date,
		TimeOfDay:   in.TimeOfDay,
		Notes:       in.Notes,
		Completed:   in.Completed,
	}, nil
}
