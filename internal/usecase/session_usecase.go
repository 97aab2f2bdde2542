package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/store"
	"flota_ot/internal/usecase/interfaces"
)

var (
	ErrSesionNoEncontrada = errors.New("sesión no encontrada")
	ErrUsuarioInvalido    = errors.New("usuario inválido")
)

// LoginInput carries the already-authenticated identity handed over by the
// corporate cookie exchange plus its legacy ids and grants.
type LoginInput struct {
	CookieUser  entities.CookieUser
	LegacyUser  entities.LegacyUser
	Permissions []entities.Permission
}

// ISessionUseCase registers, resolves and drops UI sessions. Authentication
// happens upstream; this service only keeps track of who is already in.
type ISessionUseCase interface {
	Login(ctx context.Context, input LoginInput) (entities.Session, error)
	Resolve(ctx context.Context, token string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
}

type SessionUseCase struct {
	memoria *store.SessionStore
	repo    interfaces.ISessionRepository
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(memoria *store.SessionStore, repo interfaces.ISessionRepository) *SessionUseCase {
	return &SessionUseCase{memoria: memoria, repo: repo}
}

// Login mints a token for the handed-over identity and registers the
// session. The durable write is best effort; a repository failure is logged
// but never blocks the login.
func (u *SessionUseCase) Login(ctx context.Context, input LoginInput) (entities.Session, error) {
	if input.CookieUser.IDUsuario <= 0 || input.CookieUser.Usuario == "" {
		return entities.Session{}, ErrUsuarioInvalido
	}

	session := entities.Session{
		Token:       uuid.New().String(),
		CookieUser:  input.CookieUser,
		LegacyUser:  input.LegacyUser,
		Permissions: input.Permissions,
		CreatedAt:   time.Now().UTC(),
	}

	u.memoria.Set(session)
	if _, err := u.repo.Put(ctx, session); err != nil {
		log.Printf("[usecase][session] durable write failed token=%s err=%v", session.Token, err)
	}
	return session, nil
}

// Resolve looks a token up in memory first and falls back to the durable
// repository, re-warming the memory store on a hit.
func (u *SessionUseCase) Resolve(ctx context.Context, token string) (entities.Session, error) {
	if token == "" {
		return entities.Session{}, ErrSesionNoEncontrada
	}
	if session, ok := u.memoria.Get(token); ok {
		return session, nil
	}

	session, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Session{}, ErrSesionNoEncontrada
	}
	u.memoria.Set(session)
	return session, nil
}

// Logout drops the session from both stores. The durable delete is best
// effort, mirroring Login.
func (u *SessionUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrSesionNoEncontrada
	}
	u.memoria.Delete(token)
	if err := u.repo.DeleteByToken(ctx, token); err != nil {
		log.Printf("[usecase][session] durable delete failed token=%s err=%v", token, err)
	}
	return nil
}
