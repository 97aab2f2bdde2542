package response

import (
	"time"

	"flota_ot/internal/domain/entities"
)

type SessionResponse struct {
	Token       string                `json:"token"`
	Usuario     string                `json:"usuario"`
	Rol         string                `json:"rol"`
	Permissions []entities.Permission `json:"permissions"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		Token:       s.Token,
		Usuario:     s.CookieUser.Usuario,
		Rol:         s.CookieUser.Rol,
		Permissions: s.Permissions,
		CreatedAt:   s.CreatedAt,
	}
}
