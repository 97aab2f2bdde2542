package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "flota_ot/internal/adapter/http/dto/request"
	"flota_ot/internal/usecase"
	"flota_ot/internal/usecase/interfaces"
	"flota_ot/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPreventivaPayload = pkg.NewDomainErrorSimple("INVALID_PREVENTIVA_INPUT", "Invalid preventive maintenance payload", http.StatusBadRequest)

// PreventivaHandler serves the preventive-maintenance block shown for
// orders of type Preventiva.

type PreventivaHandler struct {
	usecase usecase.IPreventivaUseCase
}

func NewPreventivaHandler(uc usecase.IPreventivaUseCase) *PreventivaHandler {
	return &PreventivaHandler{usecase: uc}
}

// Buscar looks rows up by bus number or plate; at least one is required.
func (h *PreventivaHandler) Buscar(c *gin.Context) {
	var numeroBus *int
	if raw := c.Query("numeroBus"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidPreventivaPayload.HTTPStatus, errInvalidPreventivaPayload.ToHTTPError())
			return
		}
		numeroBus = &n
	}

	rows, err := h.usecase.Buscar(c.Request.Context(), numeroBus, c.Query("placaPatente"))
	if err != nil {
		appErr := mapPreventivaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// Siglas returns the maintenance-cycle labels available for a fleet code.
func (h *PreventivaHandler) Siglas(c *gin.Context) {
	codigoFlota, err := strconv.Atoi(c.Query("codigoFlota"))
	if err != nil {
		c.JSON(errInvalidPreventivaPayload.HTTPStatus, errInvalidPreventivaPayload.ToHTTPError())
		return
	}

	siglas, err := h.usecase.SiglasPorFlota(c.Request.Context(), codigoFlota)
	if err != nil {
		appErr := mapPreventivaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": siglas})
}

func (h *PreventivaHandler) Crear(c *gin.Context) {
	var payload request.PreventivaCrearRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreventivaPayload.HTTPStatus, errInvalidPreventivaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Crear(c.Request.Context(), payload.ToInput()); err != nil {
		appErr := mapPreventivaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusCreated)
}

func (h *PreventivaHandler) Eliminar(c *gin.Context) {
	idRelManPrev, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidPreventivaPayload.HTTPStatus, errInvalidPreventivaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Eliminar(c.Request.Context(), idRelManPrev); err != nil {
		appErr := mapPreventivaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPreventivaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBusquedaPreventivaVacia):
		return pkg.NewDomainErrorSimple("MISSING_SEARCH_TERMS", "Bus number or plate required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSiglaInvalida):
		return pkg.NewDomainErrorSimple("INVALID_SIGLA", "A preventive cycle label is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIDOrdenInvalido):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOperacionRechazada):
		return pkg.NewDomainErrorSimple("OPERATION_REJECTED", "The backend rejected the operation", http.StatusConflict)
	case interfaces.IsTransportFailure(err):
		return pkg.NewDomainError("BACKEND_UNREACHABLE", "Maintenance backend unreachable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
