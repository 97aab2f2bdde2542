package entities

import "time"

// EstadoOrden represents the work-order status vocabulary reported by the
// maintenance backend.
//
// Domain notes:
//   - The backend is the source of truth for status transitions; this service
//     only displays the current status and never computes a transition.

type EstadoOrden string

const (
	EstadoOrdenIngresada   EstadoOrden = "Ingresada"
	EstadoOrdenProgramada  EstadoOrden = "Programada"
	EstadoOrdenEnEjecucion EstadoOrden = "En Ejecución"
	EstadoOrdenEjecutada   EstadoOrden = "Ejecutada"
	EstadoOrdenRechazada   EstadoOrden = "Rechazada"
	EstadoOrdenCerrada     EstadoOrden = "Cerrada"
)

// TipoOrdenPreventiva marks the scheduled-maintenance variant of a work
// order; the detail view loads the preventive-maintenance block for it.
const TipoOrdenPreventiva = "Preventiva"

// OrdenDeTrabajo is one maintenance ticket (OT) as listed by the backend.
//
// numeroOrden is unique and server-assigned; it never changes after creation.
type OrdenDeTrabajo struct {
	NumeroOrden       int        `json:"numeroOrden"`
	IDPersonalIngreso int        `json:"idPersonalIngreso"`
	TipoOrden         string     `json:"tipoOrden"`
	EstadoOrden       string     `json:"estadoOrden"`
	NumeroBus         int        `json:"numeroBus"`
	Patente           string     `json:"patente"`
	FechaIngreso      time.Time  `json:"fechaIngreso"`
	FechaProgramada   *time.Time `json:"fechaProgramada"`
	FechaEnEjecucion  *time.Time `json:"fechaEnEjecucion"`
	FechaEjecutada    *time.Time `json:"fechaEjecutada"`
	FechaRechazo      *time.Time `json:"fechaRechazo"`
	FechaCierre       *time.Time `json:"fechaCierre"`
	Kilometraje       *int       `json:"kilometraje"`
	CodigoFlota       string     `json:"codigoFlota"`
	Alerta            *int       `json:"alerta"`
	Nuevo             *int       `json:"nuevo"`
	CodigoTaller      *int       `json:"codigoTaller"`
	NombreTerminal    *string    `json:"nombreTerminal"`
	UltMantencion     *time.Time `json:"ultMantencion"`
}

// OrdenesPage is one server page of the filtered listing. Total is the size
// of the whole filtered set, not of this page.
type OrdenesPage struct {
	Data  []OrdenDeTrabajo `json:"data"`
	Total int              `json:"total"`
}

// OrdenDetalleBasic holds the immutable header fields of the detail view.
type OrdenDetalleBasic struct {
	NumeroOrden       int    `json:"numeroOrden"`
	Patente           string `json:"patente"`
	NumeroBus         int    `json:"numeroBus"`
	FechaIngreso      string `json:"fechaIngreso"`
	EstadoDescripcion string `json:"estadoDescripcion"`
	NombreTaller      string `json:"nombre_taller"`
	DetalleIngreso    string `json:"detalleIngreso"`
	TipoOrden         string `json:"tipoOrden"`
}

// FallaRelacion links a work order to one principal fault and an optional
// secondary fault. IDRelacionFalla is assigned by the backend on save.
type FallaRelacion struct {
	IDRelacionFalla        int    `json:"idRelacionFalla"`
	DetalleFallaPrincipal  string `json:"detalleFallaPrincipal"`
	DetalleFallaSecundaria string `json:"detalleFallaSecundaria"`
}

// InsumoAsignado is one supply assignment hanging off a fault relation.
type InsumoAsignado struct {
	IDRelacionInsumo int     `json:"idRelacionInsumo"`
	NombreInsumo     string  `json:"nombreInsumo"`
	Cantidad         float64 `json:"cantidad"`
}

// PersonalAsignado is one staff assignment hanging off a fault relation.
type PersonalAsignado struct {
	IDPersonal       int    `json:"idPersonal"`
	NombrePersonal   string `json:"nombrePersonal"`
	DescripcionCargo string `json:"descripcionCargo"`
}

// OrdenTrabajoDetalle is the full detail payload for one work order.
type OrdenTrabajoDetalle struct {
	Basic    OrdenDetalleBasic  `json:"basic"`
	Sistemas []FallaRelacion    `json:"sistemas"`
	Insumos  []InsumoAsignado   `json:"insumos"`
	Personal []PersonalAsignado `json:"personal"`
}
