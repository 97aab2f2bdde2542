package request

import (
	"strings"
	"time"

	"flota_ot/internal/domain/entities"
)

const fechaFormat = "2006-01-02"

// OrdenesQuery binds the listing filters from the query string. Empty fields
// mean "no filter"; the dates are mutually exclusive and resolved by the
// listing session, not here.
type OrdenesQuery struct {
	NroOT        *int   `form:"nroOT"`
	CodTaller    *int   `form:"codTaller"`
	NroBus       *int   `form:"nroBus"`
	EstadoOT     *int   `form:"estadoOT"`
	TipoOT       *int   `form:"tipoOT"`
	NroManager   *int   `form:"nroManager"`
	FechaIngreso string `form:"fechaIngreso"`
	FechaSalida  string `form:"fechaSalida"`
	Pagina       int    `form:"pagina"`
}

func (q OrdenesQuery) ToInput() (entities.GetOrdenesTrabajoInput, error) {
	input := entities.GetOrdenesTrabajoInput{
		NroOT:      q.NroOT,
		CodTaller:  q.CodTaller,
		NroBus:     q.NroBus,
		EstadoOT:   q.EstadoOT,
		TipoOT:     q.TipoOT,
		NroManager: q.NroManager,
		Pagina:     q.Pagina,
	}
	if q.FechaIngreso != "" {
		fecha, err := time.Parse(fechaFormat, q.FechaIngreso)
		if err != nil {
			return entities.GetOrdenesTrabajoInput{}, err
		}
		input.FechaIngreso = &fecha
	}
	if q.FechaSalida != "" {
		fecha, err := time.Parse(fechaFormat, q.FechaSalida)
		if err != nil {
			return entities.GetOrdenesTrabajoInput{}, err
		}
		input.FechaSalida = &fecha
	}
	return input, nil
}

type FallaCrearRequest struct {
	IDFallaPrincipal  int  `json:"id_falla_principal" binding:"required"`
	IDFallaSecundaria *int `json:"id_falla_secundaria"`
}

// CreateOrdenRequest is the creation payload of the new-order form. The full
// validation (every violation at once) lives in the use case; bindings here
// only reject structurally broken JSON.
type CreateOrdenRequest struct {
	IDPersonalIngreso int                 `json:"id_personal_ingreso"`
	IDTipoOrden       int                 `json:"id_tipo_orden"`
	CodigoFlota       int                 `json:"codigo_flota"`
	DetalleIngreso    string              `json:"detalle_ingreso"`
	FechaProgramada   *string             `json:"fecha_programada"`
	CodigoTaller      int                 `json:"codigo_taller"`
	Servicio          *string             `json:"servicio"`
	Fallas            []FallaCrearRequest `json:"fallas"`
}

func (r CreateOrdenRequest) ToInput() entities.CreateOrdenTrabajoInput {
	fallas := make([]entities.FallaCrear, 0, len(r.Fallas))
	for _, f := range r.Fallas {
		fallas = append(fallas, entities.FallaCrear{
			IDFallaPrincipal:  f.IDFallaPrincipal,
			IDFallaSecundaria: f.IDFallaSecundaria,
		})
	}
	return entities.CreateOrdenTrabajoInput{
		IDPersonalIngreso: r.IDPersonalIngreso,
		IDTipoOrden:       r.IDTipoOrden,
		CodigoFlota:       r.CodigoFlota,
		DetalleIngreso:    strings.TrimSpace(r.DetalleIngreso),
		FechaProgramada:   r.FechaProgramada,
		CodigoTaller:      r.CodigoTaller,
		Servicio:          r.Servicio,
		Fallas:            fallas,
	}
}
