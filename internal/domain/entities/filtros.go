package entities

// Filter reference data returned by GET /ordenDeTrabajo/filtros. Each slice
// feeds one selector of the listing filter panel.

type OrdenTrabajoFiltro struct {
	IDOrdenTrabajo int `json:"id_orden_trabajo"`
}

type BusFiltro struct {
	NumeroInterno int    `json:"numero_interno"`
	PlacaPatente  string `json:"placa_patente"`
	CodigoFlota   int    `json:"codigo_flota"`
}

type TallerFiltro struct {
	CodigoTaller int    `json:"codigo_taller"`
	NombreTaller string `json:"nombre_taller"`
}

type EstadoOTFiltro struct {
	IDEstadoSolicitud      int    `json:"id_estado_solicitud"`
	DetalleEstadoSolicitud string `json:"detalle_estado_solicitud"`
}

type TipoOTFiltro struct {
	IDTipoOrden      int    `json:"id_tipo_orden"`
	DetalleTipoOrden string `json:"detalle_tipo_orden"`
}

type ManagerFiltro struct {
	OTManager int `json:"ot_manager"`
}

type MecanicoFiltro struct {
	IDPersonal       int    `json:"idPersonal"`
	NombrePersonal   string `json:"nombrePersonal"`
	DescripcionCargo string `json:"descripcionCargo"`
	Rut              string `json:"rut"`
}

type ServicioFiltro struct {
	CodigoServicio int    `json:"codigoServicio"`
	NombreServicio string `json:"nombreServicio"`
}

// DataFiltrosMant aggregates every filter catalog in one response. Missing
// categories deserialize as empty slices so callers only branch on
// empty vs non-empty.
type DataFiltrosMant struct {
	OTs             []OrdenTrabajoFiltro    `json:"OTs"`
	Talleres        []TallerFiltro          `json:"talleres"`
	Buses           []BusFiltro             `json:"buses"`
	EstadosOt       []EstadoOTFiltro        `json:"estadosOt"`
	TiposOt         []TipoOTFiltro          `json:"tiposOt"`
	NrosManager     []ManagerFiltro         `json:"nrosManager"`
	FallaPrincipal  []FallaPrincipalFiltro  `json:"fallaPrincipal"`
	FallaSecundaria []FallaSecundariaFiltro `json:"fallaSecundaria"`
	Mecanicos       []MecanicoFiltro        `json:"mecanicos"`
	Servicios       []ServicioFiltro        `json:"servicios"`
}

// IsEmpty reports whether no catalog has been loaded yet; the filter cache
// only re-fetches in that case.
func (d DataFiltrosMant) IsEmpty() bool {
	return len(d.OTs) == 0 && len(d.Talleres) == 0 && len(d.Buses) == 0 &&
		len(d.EstadosOt) == 0 && len(d.TiposOt) == 0 && len(d.NrosManager) == 0 &&
		len(d.FallaPrincipal) == 0 && len(d.FallaSecundaria) == 0 &&
		len(d.Mecanicos) == 0 && len(d.Servicios) == 0
}
