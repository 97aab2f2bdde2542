package interfaces

import (
	"context"

	"flota_ot/internal/domain/entities"
)

// ISessionRepository persists authenticated sessions so a service restart
// does not log every user out.

type ISessionRepository interface {
	Put(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByToken(ctx context.Context, token string) (entities.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}
