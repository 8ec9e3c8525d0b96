package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
	"github.com/clinicware/dental-admin/internal/service/audit"
	"github.com/clinicware/dental-admin/pkg/apperror"
)

type Service struct {
	repo    repository.DoctorRepository
	auditor *audit.Service
}

func NewService(repo repository.DoctorRepository, auditor *audit.Service) *Service {
	return &Service{repo: repo, auditor: auditor}
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("doctor")
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) Create(ctx context.Context, in *model.DoctorInput) (*model.Doctor, error) {
	doctor := &model.Doctor{
		FullName:  in.FullName,
		Specialty: in.Specialty,
		Phone:     in.Phone,
		Email:     in.Email,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	s.auditor.Record(ctx, "create", "doctor", doctor.ID)
	return doctor, nil
}

func (s *Service) Update(ctx context.Context, id int64, in *model.DoctorInput) (*model.Doctor, error) {
	if in.ID != 0 && in.ID != id {
		return nil, apperror.NotFound("doctor")
	}
	if in.Version <= 0 {
		return nil, apperror.ValidationField("version", "version is required")
	}

	doctor := &model.Doctor{
		ID:        id,
		Version:   in.Version,
		FullName:  in.FullName,
		Specialty: in.Specialty,
		Phone:     in.Phone,
		Email:     in.Email,
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			if _, getErr := s.repo.Get(ctx, id); errors.Is(getErr, repository.ErrNotFound) {
				return nil, apperror.NotFound("doctor")
			}
			return nil, apperror.Conflict("doctor", err)
		}
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	s.auditor.Record(ctx, "update", "doctor", id)
	return doctor, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// already gone: deletion is satisfied
			return nil
		}
		return fmt.Errorf("failed to get doctor: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrRestricted):
			return apperror.Referenced("doctor", err)
		case errors.Is(err, repository.ErrNotFound):
			return nil
		default:
			return fmt.Errorf("failed to delete doctor: %w", err)
		}
	}

	s.auditor.Record(ctx, "delete", "doctor", id)
	return nil
}
