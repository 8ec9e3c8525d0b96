package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
	"github.com/clinicware/dental-admin/internal/service/appointment"
	"github.com/clinicware/dental-admin/internal/service/audit"
	"github.com/clinicware/dental-admin/pkg/apperror"
)

const duplicateReviewMsg = "this appointment already has a review"

type Service struct {
	repo         repository.ReviewRepository
	appointments repository.AppointmentRepository
	auditor      *audit.Service
}

func NewService(repo repository.ReviewRepository, appointments repository.AppointmentRepository, auditor *audit.Service) *Service {
	return &Service{repo: repo, appointments: appointments, auditor: auditor}
}

func (s *Service) List(ctx context.Context) ([]*model.Review, error) {
	reviews, err := s.repo.ListWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Review, error) {
	review, err := s.repo.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("review")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// FormData assembles the appointment picker, in schedule order.
func (s *Service) FormData(ctx context.Context, review *model.Review) (*model.ReviewFormData, error) {
	appointments, err := s.appointments.ListWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment options: %w", err)
	}
	appointment.SortSchedule(appointments)

	if review == nil {
		review = &model.Review{Rating: model.DefaultReviewRating}
	}

	return &model.ReviewFormData{
		Review:       review,
		Appointments: appointment.ScheduleOptions(appointments),
	}, nil
}

// Create persists a review and then marks its appointment completed. The
// duplicate check runs before any write; the unique constraint on the
// appointment reference backstops concurrent identical submissions.
func (s *Service) Create(ctx context.Context, in *model.ReviewInput) (*model.Review, error) {
	exists, err := s.repo.ExistsForAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing review: %w", err)
	}
	if exists {
		return nil, apperror.ValidationField("appointment_id", duplicateReviewMsg)
	}

	review := &model.Review{
		AppointmentID: in.AppointmentID,
		Rating:        in.Rating,
		Notes:         in.Notes,
	}
	if review.Rating == 0 {
		review.Rating = model.DefaultReviewRating
	}

	if err := s.repo.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperror.ValidationField("appointment_id", duplicateReviewMsg)
		case errors.Is(err, repository.ErrForeignKey):
			return nil, apperror.ValidationField("appointment_id", "appointment does not exist")
		default:
			return nil, fmt.Errorf("failed to create review: %w", err)
		}
	}

	if err := s.appointments.MarkCompleted(ctx, review.AppointmentID); err != nil {
		return nil, fmt.Errorf("review %d created but appointment not marked completed: %w", review.ID, err)
	}

	s.auditor.Record(ctx, "create", "review", review.ID)
	return review, nil
}

func (s *Service) Update(ctx context.Context, id int64, in *model.ReviewInput) (*model.Review, error) {
	if in.ID != 0 && in.ID != id {
		return nil, apperror.NotFound("review")
	}
	if in.Version <= 0 {
		return nil, apperror.ValidationField("version", "version is required")
	}

	review := &model.Review{
		ID:            id,
		Version:       in.Version,
		AppointmentID: in.AppointmentID,
		Rating:        in.Rating,
		Notes:         in.Notes,
	}
	if review.Rating == 0 {
		review.Rating = model.DefaultReviewRating
	}

	if err := s.repo.Update(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperror.ValidationField("appointment_id", duplicateReviewMsg)
		case errors.Is(err, repository.ErrForeignKey):
			return nil, apperror.ValidationField("appointment_id", "appointment does not exist")
		case errors.Is(err, repository.ErrVersionConflict):
			if _, getErr := s.repo.Get(ctx, id); errors.Is(getErr, repository.ErrNotFound) {
				return nil, apperror.NotFound("review")
			}
			return nil, apperror.Conflict("review", err)
		default:
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
	}

	s.auditor.Record(ctx, "update", "review", id)
	return review, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get review: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.auditor.Record(ctx, "delete", "review", id)
	return nil
}
