package routes

import (
	"flota_ot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrdenes    = "/ordenes"
	PathFiltros    = "/filtros"
	PathSistemas   = "/sistemas"
	PathPreventiva = "/mantencion-preventiva"
)

func addOrdenesTrabajoRoutes(
	rg *gin.RouterGroup,
	ordenesHandler *handlers.OrdenesHandler,
	editFlowHandler *handlers.EditFlowHandler,
	filtrosHandler *handlers.FiltrosHandler,
	sistemasHandler *handlers.SistemasHandler,
	preventivaHandler *handlers.PreventivaHandler,
	exportHandler *handlers.ExportHandler,
) {
	ordenes := rg.Group(PathOrdenes)
	{
		ordenes.GET("", ordenesHandler.ListOrdenes)
		ordenes.GET("/export", exportHandler.ExportOrdenes)
		ordenes.POST("", ordenesHandler.CreateOrden)
		ordenes.GET("/:id", ordenesHandler.GetDetalle)
		ordenes.DELETE("/:id", ordenesHandler.DeleteOrden)

		// Flujo de edición de la tabla de sistemas
		edicion := ordenes.Group("/:id/edicion")
		{
			edicion.POST("", editFlowHandler.AbrirSesion)
			edicion.DELETE("", editFlowHandler.CerrarSesion)
			edicion.GET("/filas", editFlowHandler.Filas)
			edicion.POST("/filas", editFlowHandler.AgregarFila)
			edicion.POST("/filas/editar", editFlowHandler.EditarFila)
			edicion.POST("/filas/principal", editFlowHandler.SeleccionarPrincipal)
			edicion.POST("/filas/secundaria", editFlowHandler.SeleccionarSecundaria)
			edicion.POST("/filas/guardar", editFlowHandler.GuardarFila)
			edicion.POST("/filas/cancelar", editFlowHandler.CancelarEdicion)
			edicion.POST("/confirmar", editFlowHandler.ConfirmarCambios)
			edicion.POST("/cancelar-confirmacion", editFlowHandler.CancelarConfirmacion)
			edicion.POST("/filas/eliminar", editFlowHandler.EliminarFila)
			edicion.POST("/fallas/eliminar", editFlowHandler.ConfirmarEliminarFalla)
		}
	}

	filtros := rg.Group(PathFiltros)
	{
		filtros.GET("", filtrosHandler.GetFiltros)
		filtros.POST("/refresh", filtrosHandler.RefreshFiltros)
	}

	sistemas := rg.Group(PathSistemas)
	{
		sistemas.GET("", sistemasHandler.Sistemas)
		sistemas.GET("/subsistemas", sistemasHandler.AllSubSistemas)
		sistemas.GET("/:id/subsistemas", sistemasHandler.SubSistemas)
	}

	preventiva := rg.Group(PathPreventiva)
	{
		preventiva.GET("", preventivaHandler.Buscar)
		preventiva.GET("/siglas", preventivaHandler.Siglas)
		preventiva.POST("", preventivaHandler.Crear)
		preventiva.DELETE("/:id", preventivaHandler.Eliminar)
	}
}
