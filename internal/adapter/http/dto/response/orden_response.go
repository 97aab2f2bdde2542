package response

import (
	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase"
)

// OrdenesPageResponse is one listing page plus the derived page arithmetic,
// so callers never recompute it.
type OrdenesPageResponse struct {
	Data         []entities.OrdenDeTrabajo `json:"data"`
	Total        int                       `json:"total"`
	Pagina       int                       `json:"pagina"`
	TotalPaginas int                       `json:"totalPaginas"`
}

func FromOrdenesPage(page entities.OrdenesPage, pagina int) OrdenesPageResponse {
	return OrdenesPageResponse{
		Data:         page.Data,
		Total:        page.Total,
		Pagina:       pagina,
		TotalPaginas: (page.Total + usecase.PageSize - 1) / usecase.PageSize,
	}
}

type CreateOrdenResponse struct {
	Message     string `json:"message"`
	NumeroOrden int    `json:"numeroOrden"`
}

func FromCreateOrden(r entities.CreateOrdenTrabajoResponse) CreateOrdenResponse {
	return CreateOrdenResponse{
		Message:     r.Message,
		NumeroOrden: r.Data.IDSolicitudIngresada,
	}
}
