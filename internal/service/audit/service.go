package audit

import (
	"context"

	"github.com/clinicware/dental-admin/internal/repository"
	"github.com/clinicware/dental-admin/pkg/logger"
)

type contextKey struct{}

// WithActor stores the authenticated identity for the audit trail.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

func actorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(contextKey{}).(string); ok && actor != "" {
		return actor
	}
	return "system"
}

// Service appends a write-only trail of entity mutations. Recording is
// best-effort: a failed append is logged, never surfaced to the request.
type Service struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

func NewService(repo repository.AuditRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Record(ctx context.Context, action, entity string, entityID int64) {
	if s == nil || s.repo == nil {
		return
	}
	if err := s.repo.Append(ctx, actorFrom(ctx), action, entity, entityID); err != nil {
		s.log.Warn(err, "audit append failed")
	}
}
