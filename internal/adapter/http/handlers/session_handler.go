package handlers

import (
	"errors"
	"net/http"

	request "flota_ot/internal/adapter/http/dto/request"
	response "flota_ot/internal/adapter/http/dto/response"
	"flota_ot/internal/usecase"
	"flota_ot/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// SessionHandler registers, inspects and drops UI sessions.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Login registers an already-authenticated identity and returns the minted
// session token.
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

// Me returns the session resolved by the middleware.
func (h *SessionHandler) Me(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		c.JSON(errInvalidSession.HTTPStatus, errInvalidSession.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		c.JSON(errInvalidSession.HTTPStatus, errInvalidSession.ToHTTPError())
		return
	}
	if err := h.usecase.Logout(c.Request.Context(), session.Token); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUsuarioInvalido):
		return pkg.NewDomainErrorSimple("INVALID_USER", "Invalid user identity", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSesionNoEncontrada):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
