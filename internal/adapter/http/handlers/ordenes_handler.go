package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "flota_ot/internal/adapter/http/dto/request"
	response "flota_ot/internal/adapter/http/dto/response"
	"flota_ot/internal/usecase"
	"flota_ot/internal/usecase/interfaces"
	"flota_ot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrdenesQuery = pkg.NewDomainErrorSimple("INVALID_ORDENES_QUERY", "Invalid listing filters", http.StatusBadRequest)
	errInvalidOrdenPayload = pkg.NewDomainErrorSimple("INVALID_ORDEN_INPUT", "Invalid work order payload", http.StatusBadRequest)
	errInvalidOrdenID      = pkg.NewDomainErrorSimple("INVALID_ORDEN_ID", "Invalid work order id", http.StatusBadRequest)
)

// OrdenesHandler serves the work-order listing, detail, creation and
// deletion endpoints.

type OrdenesHandler struct {
	usecase usecase.IOrdenesUseCase
}

func NewOrdenesHandler(uc usecase.IOrdenesUseCase) *OrdenesHandler {
	return &OrdenesHandler{usecase: uc}
}

// ListOrdenes returns one server page of the filtered listing. The filters
// and the page index travel in the query string; the dates are mutually
// exclusive, resolved by whichever arrived last in the UI.
func (h *OrdenesHandler) ListOrdenes(c *gin.Context) {
	var query request.OrdenesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidOrdenesQuery.HTTPStatus, errInvalidOrdenesQuery.ToHTTPError())
		return
	}

	input, err := query.ToInput()
	if err != nil {
		c.JSON(errInvalidOrdenesQuery.HTTPStatus, errInvalidOrdenesQuery.ToHTTPError())
		return
	}

	page, err := h.usecase.GetOrdenes(c.Request.Context(), input)
	if err != nil {
		appErr := mapOrdenesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdenesPage(page, input.Pagina))
}

// GetDetalle returns the full detail of one work order.
func (h *OrdenesHandler) GetDetalle(c *gin.Context) {
	idOrden, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidOrdenID.HTTPStatus, errInvalidOrdenID.ToHTTPError())
		return
	}

	detalle, err := h.usecase.GetDetalle(c.Request.Context(), idOrden)
	if err != nil {
		appErr := mapOrdenesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, detalle)
}

func (h *OrdenesHandler) CreateOrden(c *gin.Context) {
	var payload request.CreateOrdenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrdenPayload.HTTPStatus, errInvalidOrdenPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Crear(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOrdenesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreateOrden(*result))
}

func (h *OrdenesHandler) DeleteOrden(c *gin.Context) {
	idOrden, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidOrdenID.HTTPStatus, errInvalidOrdenID.ToHTTPError())
		return
	}

	if err := h.usecase.Eliminar(c.Request.Context(), idOrden); err != nil {
		appErr := mapOrdenesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOrdenesError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIDOrdenInvalido):
		return pkg.NewDomainErrorSimple("INVALID_ORDEN_ID", "Invalid work order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrdenInvalida):
		return pkg.NewDomainErrorSimple("INVALID_ORDEN", "Work order payload failed validation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDetalleNoDisponible):
		return pkg.NewDomainErrorSimple("ORDEN_NOT_FOUND", "Work order detail not available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOperacionRechazada):
		return pkg.NewDomainErrorSimple("OPERATION_REJECTED", "The backend rejected the operation", http.StatusConflict)
	case interfaces.IsTransportFailure(err):
		return pkg.NewDomainError("BACKEND_UNREACHABLE", "Maintenance backend unreachable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
