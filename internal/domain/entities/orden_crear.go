package entities

import "time"

// GetOrdenesTrabajoInput is the server-side filter/page contract of the
// listing. Nil fields are omitted from the query; the client never
// re-filters, re-sorts or re-pages fetched rows.
type GetOrdenesTrabajoInput struct {
	NroOT        *int
	CodTaller    *int
	NroBus       *int
	EstadoOT     *int
	TipoOT       *int
	NroManager   *int
	FechaIngreso *time.Time
	FechaSalida  *time.Time
	Pagina       int
}

// FallaCrear is one fault entry of a creation payload.
type FallaCrear struct {
	IDFallaPrincipal          int  `json:"id_falla_principal"`
	IDFallaSecundaria         *int `json:"id_falla_secundaria"`
	IDPersonalFallaPrincipal  *int `json:"id_personal_falla_principal"`
	IDPersonalFallaSecundaria *int `json:"id_personal_falla_secundaria"`
	IDPerfilPrincipal         *int `json:"id_perfil_principal"`
	IDPerfilSecundaria        *int `json:"id_perfil_secundaria"`
}

// CreateOrdenTrabajoInput assembles a new work order plus its initial fault
// set in one submission.
type CreateOrdenTrabajoInput struct {
	IDPersonalIngreso int          `json:"id_personal_ingreso"`
	IDTipoOrden       int          `json:"id_tipo_orden"`
	CodigoFlota       int          `json:"codigo_flota"`
	DetalleIngreso    string       `json:"detalle_ingreso"`
	FechaProgramada   *string      `json:"fecha_programada"`
	CodigoTaller      int          `json:"codigo_taller"`
	Servicio          *string      `json:"servicio"`
	Fallas            []FallaCrear `json:"fallas"`
}

// CreateOrdenTrabajoResponse carries the server-assigned order number.
type CreateOrdenTrabajoResponse struct {
	Message string `json:"message"`
	Data    struct {
		IDSolicitudIngresada int `json:"idSolicitudIngresada"`
	} `json:"data"`
}

// DeleteOrdenTrabajoResponse reports a work-order deletion. Respuesta 0 in a
// 200 response is a business-rule rejection.
type DeleteOrdenTrabajoResponse struct {
	Success   bool   `json:"success"`
	Respuesta int    `json:"respuesta"`
	Mensaje   string `json:"mensaje"`
}
