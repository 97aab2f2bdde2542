package interfaces

import (
	"context"

	"flota_ot/internal/domain/entities"
)

// The maintenance REST backend is the only source of truth. These contracts
// split it by view concern so each workflow depends on the slice it uses.
//
// Failure semantics (shared by every method):
//   - transport or non-2xx failures come back as errors carrying the server
//     text when available; callers convert them to notifications
//   - list-shaped results are never nil on success

// IOrdenesBackend covers the listing, detail, creation and deletion of work
// orders.
type IOrdenesBackend interface {
	GetOrdenes(ctx context.Context, input entities.GetOrdenesTrabajoInput) (entities.OrdenesPage, error)
	GetOrdenDetalle(ctx context.Context, idOrden int) (*entities.OrdenTrabajoDetalle, error)
	CreateOrdenTrabajo(ctx context.Context, input entities.CreateOrdenTrabajoInput) (*entities.CreateOrdenTrabajoResponse, error)
	DeleteOrdenTrabajo(ctx context.Context, idOrden int) (*entities.DeleteOrdenTrabajoResponse, error)
}

// IFallasBackend covers the fault taxonomy and the per-row fault mutations.
type IFallasBackend interface {
	GetSistemas(ctx context.Context) ([]entities.FallaPrincipalFiltro, error)
	GetSubSistemas(ctx context.Context, idFallaPrincipal int) ([]entities.FallaSecundariaFiltro, error)
	GetAllSubSistemas(ctx context.Context) ([]entities.FallaSecundariaFiltro, error)
	UpsertFalla(ctx context.Context, input entities.UpdateFallaInput) (*entities.UpdateFallaResponse, error)
	DeleteFalla(ctx context.Context, idRelacionFalla int) (*entities.DeleteFallaResponse, error)
	GetFallaPreview(ctx context.Context, idRelacionFalla int) (*entities.DeleteFallaResponse, error)
}

// IFiltrosBackend serves the aggregate filter reference data.
type IFiltrosBackend interface {
	GetAllFiltros(ctx context.Context) (*entities.DataFiltrosMant, error)
	GetFiltroByTipo(ctx context.Context, tipo string) (*entities.DataFiltrosMant, error)
}

// IPreventivaBackend covers the preventive-maintenance block of the detail
// view.
type IPreventivaBackend interface {
	GetMantencionPreventiva(ctx context.Context, numeroBus *int, placaPatente string) ([]entities.MantencionPreventiva, error)
	GetSiglasPreventivasByFlota(ctx context.Context, codigoFlota int) ([]entities.SiglaPreventiva, error)
	CreateMantencionPreventiva(ctx context.Context, input entities.MantencionPreventivaCrear) (*entities.MantencionPreventivaResponse, error)
	DeleteMantencionPreventiva(ctx context.Context, idRelManPrev int) (*entities.DeleteMantencionPreventivaResponse, error)
}
