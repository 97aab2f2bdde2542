package response

import (
	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase"
)

// FilaSistemaResponse mirrors one row of the editable systems table. TempID
// is the handle for every follow-up gesture on the row.
type FilaSistemaResponse struct {
	TempID            int64  `json:"tempId"`
	IDRelacionFalla   *int   `json:"idRelacionFalla"`
	IDFallaPrincipal  *int   `json:"idFallaPrincipal"`
	IDFallaSecundaria *int   `json:"idFallaSecundaria"`
	DetallePrincipal  string `json:"detalleFallaPrincipal"`
	DetalleSecundaria string `json:"detalleFallaSecundaria"`
	EsNueva           bool   `json:"esNueva"`
}

func FromFilaSistema(f usecase.FilaSistema) FilaSistemaResponse {
	return FilaSistemaResponse{
		TempID:            f.TempID,
		IDRelacionFalla:   f.IDRelacionFalla,
		IDFallaPrincipal:  f.IDFallaPrincipal,
		IDFallaSecundaria: f.IDFallaSecundaria,
		DetallePrincipal:  f.DetallePrincipal,
		DetalleSecundaria: f.DetalleSecundaria,
		EsNueva:           f.EsNueva,
	}
}

func FromFilasSistema(filas []usecase.FilaSistema) []FilaSistemaResponse {
	out := make([]FilaSistemaResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, FromFilaSistema(f))
	}
	return out
}

// CambiosResponse carries the change lines of a saved row. An empty Cambios
// with SinCambios true means the row matched its baseline and nothing is
// pending.
type CambiosResponse struct {
	Cambios    []string `json:"cambios"`
	SinCambios bool     `json:"sinCambios"`
}

// EliminarFilaResponse reports a row removal: either it was local-only and
// already gone, or the cascade preview must be confirmed first.
type EliminarFilaResponse struct {
	Eliminada            bool                          `json:"eliminada"`
	RequiereConfirmacion bool                          `json:"requiereConfirmacion"`
	Preview              *entities.DeleteFallaResponse `json:"preview,omitempty"`
}
