package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/store"
	"flota_ot/internal/usecase/interfaces"
)

var (
	ErrOrdenInvalida       = errors.New("orden de trabajo inválida")
	ErrDetalleNoDisponible = errors.New("detalle de orden no disponible")
	ErrOperacionRechazada  = errors.New("operación rechazada por el backend")
	ErrIDOrdenInvalido     = errors.New("id de orden inválido")
)

// IOrdenesUseCase exposes the work-order view operations: the filtered
// server-paginated listing, the detail fetch, creation and deletion.
//
// Every operation reports its outcome on the notifier; errors returned here
// are for control flow, never shown to the user directly.

type IOrdenesUseCase interface {
	GetOrdenes(ctx context.Context, input entities.GetOrdenesTrabajoInput) (entities.OrdenesPage, error)
	GetDetalle(ctx context.Context, idOrden int) (*entities.OrdenTrabajoDetalle, error)
	Crear(ctx context.Context, input entities.CreateOrdenTrabajoInput) (*entities.CreateOrdenTrabajoResponse, error)
	Eliminar(ctx context.Context, numeroOrden int) error
}

type OrdenesUseCase struct {
	backend  interfaces.IOrdenesBackend
	listado  *store.OrdenesStore
	notifier interfaces.INotifier
}

var _ IOrdenesUseCase = (*OrdenesUseCase)(nil)

func NewOrdenesUseCase(backend interfaces.IOrdenesBackend, listado *store.OrdenesStore, notifier interfaces.INotifier) *OrdenesUseCase {
	return &OrdenesUseCase{backend: backend, listado: listado, notifier: notifier}
}

// GetOrdenes fetches one server page and replaces the listing cache with it.
// On failure the result is the empty page, so views only branch on empty vs
// non-empty.
func (u *OrdenesUseCase) GetOrdenes(ctx context.Context, input entities.GetOrdenesTrabajoInput) (entities.OrdenesPage, error) {
	page, err := u.backend.GetOrdenes(ctx, input)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			u.notifier.Error("Error de conexión al obtener órdenes de trabajo")
		} else {
			u.notifier.Error("Error al obtener órdenes de trabajo")
		}
		return entities.OrdenesPage{Data: []entities.OrdenDeTrabajo{}}, err
	}
	u.listado.SetRegistros(page.Data, page.Total)
	return page, nil
}

func (u *OrdenesUseCase) GetDetalle(ctx context.Context, idOrden int) (*entities.OrdenTrabajoDetalle, error) {
	if idOrden <= 0 {
		return nil, ErrIDOrdenInvalido
	}
	detalle, err := u.backend.GetOrdenDetalle(ctx, idOrden)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			u.notifier.Error(fmt.Sprintf("Error de conexión al obtener detalle de la OT #%d", idOrden))
		} else {
			u.notifier.Error(fmt.Sprintf("Error al obtener detalle de la OT #%d", idOrden))
		}
		return nil, err
	}
	if detalle == nil {
		return nil, ErrDetalleNoDisponible
	}
	return detalle, nil
}

// ValidarCreateOrden checks the creation payload against the submission
// schema and returns every violation, so the user sees all of them at once.
func ValidarCreateOrden(input entities.CreateOrdenTrabajoInput) []string {
	var mensajes []string
	if input.IDPersonalIngreso <= 0 {
		mensajes = append(mensajes, "El personal de ingreso es obligatorio")
	}
	if input.IDTipoOrden <= 0 {
		mensajes = append(mensajes, "Debe seleccionar un tipo de orden")
	}
	if input.CodigoFlota <= 0 {
		mensajes = append(mensajes, "Debe seleccionar un bus")
	}
	if len(strings.TrimSpace(input.DetalleIngreso)) < 3 {
		mensajes = append(mensajes, "El detalle es obligatorio")
	}
	if input.CodigoTaller <= 0 {
		mensajes = append(mensajes, "Debe seleccionar un taller")
	}
	if len(input.Fallas) == 0 {
		mensajes = append(mensajes, "Debe agregar al menos una falla")
	}
	for _, falla := range input.Fallas {
		if falla.IDFallaPrincipal <= 0 {
			mensajes = append(mensajes, "Cada falla requiere una falla principal")
			break
		}
	}
	return mensajes
}

// Crear validates the assembled payload and submits it in one request. On
// validation failure no network call is made and every violation is reported
// in a single notice.
func (u *OrdenesUseCase) Crear(ctx context.Context, input entities.CreateOrdenTrabajoInput) (*entities.CreateOrdenTrabajoResponse, error) {
	if mensajes := ValidarCreateOrden(input); len(mensajes) > 0 {
		u.notifier.Error(strings.Join(mensajes, ", "))
		return nil, ErrOrdenInvalida
	}

	result, err := u.backend.CreateOrdenTrabajo(ctx, input)
	if err != nil {
		if text := interfaces.ServerText(err); text != "" {
			u.notifier.Error("Error al crear orden: " + text)
		} else {
			u.notifier.Error("Error de conexión al crear orden")
		}
		return nil, err
	}

	u.notifier.Success(fmt.Sprintf("%s (OT #%d)", result.Message, result.Data.IDSolicitudIngresada))
	return result, nil
}

// Eliminar removes a work order after the user confirmed the dialog. The
// cached listing row is dropped only once the backend reports success
// (confirmed-then-removed, applied uniformly).
func (u *OrdenesUseCase) Eliminar(ctx context.Context, numeroOrden int) error {
	if numeroOrden <= 0 {
		return ErrIDOrdenInvalido
	}

	result, err := u.backend.DeleteOrdenTrabajo(ctx, numeroOrden)
	if err != nil {
		if text := interfaces.ServerText(err); text != "" {
			u.notifier.Error("Error al eliminar OT: " + text)
		} else {
			u.notifier.Error("Error de conexión al eliminar OT")
		}
		return err
	}
	if !result.Success {
		if result.Mensaje != "" {
			u.notifier.Error(result.Mensaje)
		} else {
			u.notifier.Error("Ocurrió un error al eliminar la orden")
		}
		return ErrOperacionRechazada
	}

	u.listado.DeleteOrden(numeroOrden)
	if result.Mensaje != "" {
		u.notifier.Success(result.Mensaje)
	} else {
		u.notifier.Success("Orden eliminada correctamente")
	}
	return nil
}
