package entities

// MantencionPreventiva is the scheduled-maintenance record attached to a
// bus; the detail view loads it when the order type is Preventiva.
type MantencionPreventiva struct {
	IDRelManPrev int    `json:"id_rel_man_prev"`
	CodigoFlota  int    `json:"codigoFlota"`
	NumeroBus    int    `json:"numeroBus"`
	PlacaPatente string `json:"placaPatente"`
	MarcaBus     string `json:"marcaBus"`
	Sigla        string `json:"sigla"`
}

// SiglaPreventiva is one maintenance-cycle label available for a fleet code.
type SiglaPreventiva struct {
	IDManPrev        int    `json:"id_man_prev"`
	SiglasPreventivo string `json:"siglas_preventivo"`
}

// MantencionPreventivaCrear is the creation payload for a preventive
// maintenance row (no mechanic assigned at creation time).
type MantencionPreventivaCrear struct {
	IDOrdenTrabajo int    `json:"id_orden_trabajo"`
	CodigoFlota    int    `json:"codigo_flota"`
	IDManPrev      int    `json:"id_man_prev"`
	Sigla          string `json:"sigla"`
}

type MantencionPreventivaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DeleteMantencionPreventivaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
