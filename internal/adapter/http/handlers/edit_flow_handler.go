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

var errInvalidFilaPayload = pkg.NewDomainErrorSimple("INVALID_FILA_INPUT", "Invalid row payload", http.StatusBadRequest)

// EditFlowHandler exposes the systems-table edit flow of one work order.
// Every route is keyed by the order id; rows are addressed by their temp id.

type EditFlowHandler struct {
	usecase usecase.IEditFlowUseCase
}

func NewEditFlowHandler(uc usecase.IEditFlowUseCase) *EditFlowHandler {
	return &EditFlowHandler{usecase: uc}
}

// AbrirSesion opens the edit session and returns the loaded detail.
func (h *EditFlowHandler) AbrirSesion(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	session, _ := SessionFromContext(c)

	detalle, err := h.usecase.AbrirSesion(c.Request.Context(), idOrden, session.LegacyUser)
	if err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, detalle)
}

// Filas returns the current rows of the systems table.
func (h *EditFlowHandler) Filas(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}

	filas, err := h.usecase.Filas(idOrden)
	if err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFilasSistema(filas))
}

// AgregarFila appends an empty local row in edit mode.
func (h *EditFlowHandler) AgregarFila(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}

	fila, err := h.usecase.AgregarFila(idOrden)
	if err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFilaSistema(fila))
}

// EditarFila puts one row into edit mode.
func (h *EditFlowHandler) EditarFila(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	var payload request.FilaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilaPayload.HTTPStatus, errInvalidFilaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.EditarFila(idOrden, payload.TempID); err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SeleccionarPrincipal changes the principal fault of the row in edit mode;
// its secondary fault is cleared.
func (h *EditFlowHandler) SeleccionarPrincipal(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	var payload request.SeleccionPrincipalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilaPayload.HTTPStatus, errInvalidFilaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SeleccionarPrincipal(c.Request.Context(), idOrden, payload.TempID, payload.IDFallaPrincipal); err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SeleccionarSecundaria changes the secondary fault of the row in edit mode.
func (h *EditFlowHandler) SeleccionarSecundaria(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	var payload request.SeleccionSecundariaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilaPayload.HTTPStatus, errInvalidFilaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SeleccionarSecundaria(c.Request.Context(), idOrden, payload.TempID, payload.IDFallaSecundaria); err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GuardarFila closes the edit of a row and returns its change lines. No
// lines means nothing to confirm.
func (h *EditFlowHandler) GuardarFila(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	var payload request.FilaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilaPayload.HTTPStatus, errInvalidFilaPayload.ToHTTPError())
		return
	}

	cambios, err := h.usecase.GuardarFila(c.Request.Context(), idOrden, payload.TempID)
	if err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CambiosResponse{Cambios: cambios, SinCambios: len(cambios) == 0})
}

// ConfirmarCambios sends the pending change set as one upsert.
func (h *EditFlowHandler) ConfirmarCambios(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}

	if err := h.usecase.ConfirmarCambios(c.Request.Context(), idOrden); err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelarConfirmacion discards the pending change set.
func (h *EditFlowHandler) CancelarConfirmacion(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}

	if err := h.usecase.CancelarConfirmacion(idOrden); err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelarEdicion abandons the edit of one row.
func (h *EditFlowHandler) CancelarEdicion(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	var payload request.FilaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilaPayload.HTTPStatus, errInvalidFilaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.CancelarEdicion(idOrden, payload.TempID); err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// EliminarFila removes a row: local-only rows disappear at once, persisted
// rows come back with the cascade preview awaiting confirmation.
func (h *EditFlowHandler) EliminarFila(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	var payload request.FilaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilaPayload.HTTPStatus, errInvalidFilaPayload.ToHTTPError())
		return
	}

	preview, requiereConfirmacion, err := h.usecase.EliminarFila(c.Request.Context(), idOrden, payload.TempID)
	if err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.EliminarFilaResponse{
		Eliminada:            !requiereConfirmacion,
		RequiereConfirmacion: requiereConfirmacion,
		Preview:              preview,
	})
}

// ConfirmarEliminarFalla deletes a persisted fault row after its preview was
// confirmed.
func (h *EditFlowHandler) ConfirmarEliminarFalla(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	var payload request.EliminarFallaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilaPayload.HTTPStatus, errInvalidFilaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ConfirmarEliminarFalla(c.Request.Context(), idOrden, payload.IDRelacionFalla); err != nil {
		appErr := mapEditFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// CerrarSesion drops the edit session.
func (h *EditFlowHandler) CerrarSesion(c *gin.Context) {
	idOrden, ok := h.idOrden(c)
	if !ok {
		return
	}
	h.usecase.CerrarSesion(idOrden)
	c.Status(http.StatusNoContent)
}

func (h *EditFlowHandler) idOrden(c *gin.Context) (int, bool) {
	idOrden, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidOrdenID.HTTPStatus, errInvalidOrdenID.ToHTTPError())
		return 0, false
	}
	return idOrden, true
}

func mapEditFlowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIDOrdenInvalido):
		return pkg.NewDomainErrorSimple("INVALID_ORDEN_ID", "Invalid work order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSesionEdicionNoAbierta):
		return pkg.NewDomainErrorSimple("EDIT_SESSION_NOT_OPEN", "Open the edit session first", http.StatusConflict)
	case errors.Is(err, usecase.ErrEdicionEnCurso):
		return pkg.NewDomainErrorSimple("EDIT_IN_PROGRESS", "Another row is being edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrSinEdicionActiva):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_EDIT", "The row is not in edit mode", http.StatusConflict)
	case errors.Is(err, usecase.ErrFilaNoEncontrada):
		return pkg.NewDomainErrorSimple("FILA_NOT_FOUND", "Row not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSinCambiosPendientes):
		return pkg.NewDomainErrorSimple("NO_PENDING_CHANGES", "No pending changes to confirm", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrdenInvalida):
		return pkg.NewDomainErrorSimple("INVALID_FILA", "The row is missing a principal fault", http.StatusUnprocessableEntity)
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
