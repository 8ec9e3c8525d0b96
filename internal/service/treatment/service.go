package treatment

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
	repo    repository.TreatmentRepository
	auditor *audit.Service
}

func NewService(repo repository.TreatmentRepository, auditor *audit.Service) *Service {
	return &Service{repo: repo, auditor: auditor}
}

func (s *Service) List(ctx context.Context) ([]*model.Treatment, error) {
	treatments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Treatment, error) {
	treatment, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("treatment")
		}
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}
	return treatment, nil
}

func (s *Service) Create(ctx context.Context, in *model.TreatmentInput) (*model.Treatment, error) {
	treatment := &model.Treatment{
		Name:            in.Name,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Description:     in.Description,
	}
	if treatment.DurationMinutes == 0 {
		treatment.DurationMinutes = model.DefaultTreatmentDuration
	}

	if err := s.repo.Create(ctx, treatment); err != nil {
		return nil, fmt.Errorf("failed to create treatment: %w", err)
	}

	s.auditor.Record(ctx, "create", "treatment", treatment.ID)
	return treatment, nil
}

func (s *Service) Update(ctx context.Context, id int64, in *model.TreatmentInput) (*model.Treatment, error) {
	if in.ID != 0 && in.ID != id {
		return nil, apperror.NotFound("treatment")
	}
	if in.Version <= 0 {
		return nil, apperror.ValidationField("version", "version is required")
	}

	treatment := &model.Treatment{
		ID:              id,
		Version:         in.Version,
		Name:            in.Name,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Description:     in.Description,
	}
	if treatment.DurationMinutes == 0 {
		treatment.DurationMinutes = model.DefaultTreatmentDuration
	}

	if err := s.repo.Update(ctx, treatment); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			if _, getErr := s.repo.Get(ctx, id); errors.Is(getErr, repository.ErrNotFound) {
				return nil, apperror.NotFound("treatment")
			}
			return nil, apperror.Conflict("treatment", err)
		}
		return nil, fmt.Errorf("failed to update treatment: %w", err)
	}

	s.auditor.Record(ctx, "update", "treatment", id)
	return treatment, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get treatment: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrRestricted):
			return apperror.Referenced("treatment", err)
		case errors.Is(err, repository.ErrNotFound):
			return nil
		default:
			return fmt.Errorf("failed to delete treatment: %w", err)
		}
	}

	s.auditor.Record(ctx, "delete", "treatment", id)
	return nil
}
