package handlers

import (
	"net/http"

	"flota_ot/internal/usecase"
	"flota_ot/internal/usecase/interfaces"
	"flota_ot/pkg"

	"github.com/gin-gonic/gin"
)

// FiltrosHandler serves the filter reference data behind the listing
// selectors.

type FiltrosHandler struct {
	usecase usecase.IFiltrosUseCase
}

func NewFiltrosHandler(uc usecase.IFiltrosUseCase) *FiltrosHandler {
	return &FiltrosHandler{usecase: uc}
}

// GetFiltros returns the cached aggregate, fetching it once per process.
// With ?tipo= only that category is refreshed before answering.
func (h *FiltrosHandler) GetFiltros(c *gin.Context) {
	if tipo := c.Query("tipo"); tipo != "" {
		filtros, err := h.usecase.GetFiltroByTipo(c.Request.Context(), tipo)
		if err != nil {
			appErr := mapFiltrosError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, filtros)
		return
	}

	filtros, err := h.usecase.GetFiltros(c.Request.Context())
	if err != nil {
		appErr := mapFiltrosError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, filtros)
}

// RefreshFiltros discards the cache and re-fetches the whole aggregate.
func (h *FiltrosHandler) RefreshFiltros(c *gin.Context) {
	if err := h.usecase.Refrescar(c.Request.Context()); err != nil {
		appErr := mapFiltrosError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFiltrosError(err error) *pkg.AppError {
	if interfaces.IsTransportFailure(err) {
		return pkg.NewDomainError("BACKEND_UNREACHABLE", "Maintenance backend unreachable", err, http.StatusBadGateway)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
