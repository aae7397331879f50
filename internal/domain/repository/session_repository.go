package repository

import (
	"context"

	"smart-clinic-portal/internal/domain/entity"
)

// SessionRepository persists the bearer token and role marker shared by
// every controller. A missing session is an empty entity.Session, not an error.
type SessionRepository interface {
	Get(ctx context.Context) (entity.Session, error)
	Save(ctx context.Context, session entity.Session) error
	Clear(ctx context.Context) error
}
