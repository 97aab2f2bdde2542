package request

import "flota_ot/internal/domain/entities"

type PreventivaCrearRequest struct {
	IDOrdenTrabajo int    `json:"id_orden_trabajo" binding:"required"`
	CodigoFlota    int    `json:"codigo_flota" binding:"required"`
	IDManPrev      int    `json:"id_man_prev" binding:"required"`
	Sigla          string `json:"sigla"`
}

func (r PreventivaCrearRequest) ToInput() entities.MantencionPreventivaCrear {
	return entities.MantencionPreventivaCrear{
		IDOrdenTrabajo: r.IDOrdenTrabajo,
		CodigoFlota:    r.CodigoFlota,
		IDManPrev:      r.IDManPrev,
		Sigla:          r.Sigla,
	}
}
