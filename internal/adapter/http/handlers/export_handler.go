package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	request "flota_ot/internal/adapter/http/dto/request"
	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase"
	"flota_ot/pkg"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportMaxPages bounds a single export so one request cannot walk an
// unbounded filtered set.
const exportMaxPages = 200

const exportSheetName = "OrdenesDeTrabajo"

// ExportHandler streams the filtered listing as an xlsx workbook, walking
// the server pages with the same filters as the listing itself.

type ExportHandler struct {
	usecase usecase.IOrdenesUseCase
}

func NewExportHandler(uc usecase.IOrdenesUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

func (h *ExportHandler) ExportOrdenes(c *gin.Context) {
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

	var rows []entities.OrdenDeTrabajo
	for pagina := 0; pagina < exportMaxPages; pagina++ {
		input.Pagina = pagina
		page, err := h.usecase.GetOrdenes(c.Request.Context(), input)
		if err != nil {
			appErr := mapOrdenesError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		rows = append(rows, page.Data...)
		if len(rows) >= page.Total || len(page.Data) == 0 {
			break
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to build workbook", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to build workbook", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	headers := []string{"Nro OT", "Tipo", "Estado", "Nro Bus", "Patente", "Fecha Ingreso", "Taller", "Kilometraje"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(exportSheetName, cell, header)
		f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	for rowIdx, orden := range rows {
		values := []string{
			strconv.Itoa(orden.NumeroOrden),
			orden.TipoOrden,
			orden.EstadoOrden,
			strconv.Itoa(orden.NumeroBus),
			orden.Patente,
			orden.FechaIngreso.Format("2006-01-02"),
			formatIntPtr(orden.CodigoTaller),
			formatIntPtr(orden.Kilometraje),
		}
		for colIdx, value := range values {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			f.SetCellValue(exportSheetName, cell, value)
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(exportSheetName, col, col, 15)
	}
	f.DeleteSheet("Sheet1")

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=ordenes_de_trabajo.xlsx")
	if err := f.Write(c.Writer); err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to write workbook", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
