package request

import (
	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase"
)

// LoginRequest is the identity hand-over from the corporate cookie exchange.
// The user arrives already authenticated; this payload only registers them.
type LoginRequest struct {
	CookieUser  entities.CookieUser   `json:"cookieUser" binding:"required"`
	LegacyUser  entities.LegacyUser   `json:"legacyUser"`
	Permissions []entities.Permission `json:"permissions"`
}

func (r LoginRequest) ToInput() usecase.LoginInput {
	return usecase.LoginInput{
		CookieUser:  r.CookieUser,
		LegacyUser:  r.LegacyUser,
		Permissions: r.Permissions,
	}
}
