package patient

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
	repo    repository.PatientRepository
	auditor *audit.Service
}

func NewService(repo repository.PatientRepository, auditor *audit.Service) *Service {
	return &Service{repo: repo, auditor: auditor}
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("patient")
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Create(ctx context.Context, in *model.PatientInput) (*model.Patient, error) {
	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	patient := &model.Patient{
		FullName:  in.FullName,
		BirthDate: birthDate,
		Phone:     in.Phone,
		Email:     in.Email,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.auditor.Record(ctx, "create", "patient", patient.ID)
	return patient, nil
}

func (s *Service) Update(ctx context.Context, id int64, in *model.PatientInput) (*model.Patient, error) {
	if in.ID != 0 && in.ID != id {
		return nil, apperror.NotFound("patient")
	}
	if in.Version <= 0 {
		return nil, apperror.ValidationField("version", "version is required")
	}

	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	patient := &model.Patient{
		ID:        id,
		Version:   in.Version,
		FullName:  in.FullName,
		BirthDate: birthDate,
		Phone:     in.Phone,
		Email:     in.Email,
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			if _, getErr := s.repo.Get(ctx, id); errors.Is(getErr, repository.ErrNotFound) {
				return nil, apperror.NotFound("patient")
			}
			return nil, apperror.Conflict("patient", err)
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	s.auditor.Record(ctx, "update", "patient", id)
	return patient, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get patient: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrRestricted):
			return apperror.Referenced("patient", err)
		case errors.Is(err, repository.ErrNotFound):
			return nil
		default:
			return fmt.Errorf("failed to delete patient: %w", err)
		}
	}

	s.auditor.Record(ctx, "delete", "patient", id)
	return nil
}

func parseBirthDate(value string) (time.Time, error) {
	birthDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperror.ValidationField("birth_date", "must be a date in YYYY-MM-DD form")
	}
	return birthDate, nil
}
