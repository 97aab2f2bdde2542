package handlers

import (
	"net/http"
	"strconv"

	"flota_ot/internal/usecase"
	"flota_ot/internal/usecase/interfaces"
	"flota_ot/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSistemaID = pkg.NewDomainErrorSimple("INVALID_SISTEMA_ID", "Invalid principal fault id", http.StatusBadRequest)

// SistemasHandler serves the two-level fault taxonomy behind the edit-flow
// selectors.

type SistemasHandler struct {
	catalogo usecase.ISistemasCatalog
	fallas   interfaces.IFallasBackend
}

func NewSistemasHandler(catalogo usecase.ISistemasCatalog, fallas interfaces.IFallasBackend) *SistemasHandler {
	return &SistemasHandler{catalogo: catalogo, fallas: fallas}
}

// Sistemas returns the principal fault options.
func (h *SistemasHandler) Sistemas(c *gin.Context) {
	sistemas, err := h.catalogo.Sistemas(c.Request.Context())
	if err != nil {
		appErr := mapSistemasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sistemas})
}

// SubSistemas returns the secondary options of one principal fault.
func (h *SistemasHandler) SubSistemas(c *gin.Context) {
	idFallaPrincipal, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidSistemaID.HTTPStatus, errInvalidSistemaID.ToHTTPError())
		return
	}

	subs, err := h.catalogo.SubSistemas(c.Request.Context(), idFallaPrincipal)
	if err != nil {
		appErr := mapSistemasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": subs})
}

// AllSubSistemas returns the flat subsystem list across every principal,
// used to label rows without walking the per-principal endpoints.
func (h *SistemasHandler) AllSubSistemas(c *gin.Context) {
	subs, err := h.fallas.GetAllSubSistemas(c.Request.Context())
	if err != nil {
		appErr := mapSistemasError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": subs})
}

func mapSistemasError(err error) *pkg.AppError {
	if interfaces.IsTransportFailure(err) {
		return pkg.NewDomainError("BACKEND_UNREACHABLE", "Maintenance backend unreachable", err, http.StatusBadGateway)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
