package usecase

import (
	"context"
	"errors"
	"sync"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase/interfaces"
)

var ErrSesionEdicionNoAbierta = errors.New("no hay una sesión de edición abierta para la orden")

// IEditFlowUseCase exposes the detail edit flow keyed by work-order id, one
// live session per order.
type IEditFlowUseCase interface {
	AbrirSesion(ctx context.Context, idOrden int, user entities.LegacyUser) (*entities.OrdenTrabajoDetalle, error)
	Filas(idOrden int) ([]FilaSistema, error)
	AgregarFila(idOrden int) (FilaSistema, error)
	EditarFila(idOrden int, tempID int64) error
	SeleccionarPrincipal(ctx context.Context, idOrden int, tempID int64, idFallaPrincipal int) error
	SeleccionarSecundaria(ctx context.Context, idOrden int, tempID int64, idFallaSecundaria *int) error
	GuardarFila(ctx context.Context, idOrden int, tempID int64) ([]string, error)
	ConfirmarCambios(ctx context.Context, idOrden int) error
	CancelarConfirmacion(idOrden int) error
	CancelarEdicion(idOrden int, tempID int64) error
	EliminarFila(ctx context.Context, idOrden int, tempID int64) (*entities.DeleteFallaResponse, bool, error)
	ConfirmarEliminarFalla(ctx context.Context, idOrden int, idRelacionFalla int) error
	CerrarSesion(idOrden int)
}

type EditFlowUseCase struct {
	ordenes  IOrdenesUseCase
	fallas   interfaces.IFallasBackend
	catalogo ISistemasCatalog
	notifier interfaces.INotifier

	mu       sync.Mutex
	sesiones map[int]*EditSession
}

var _ IEditFlowUseCase = (*EditFlowUseCase)(nil)

func NewEditFlowUseCase(ordenes IOrdenesUseCase, fallas interfaces.IFallasBackend, catalogo ISistemasCatalog, notifier interfaces.INotifier) *EditFlowUseCase {
	return &EditFlowUseCase{
		ordenes:  ordenes,
		fallas:   fallas,
		catalogo: catalogo,
		notifier: notifier,
		sesiones: make(map[int]*EditSession),
	}
}

// AbrirSesion opens (or refreshes) the edit session of a work order and
// returns its loaded detail.
func (u *EditFlowUseCase) AbrirSesion(ctx context.Context, idOrden int, user entities.LegacyUser) (*entities.OrdenTrabajoDetalle, error) {
	if idOrden <= 0 {
		return nil, ErrIDOrdenInvalido
	}

	u.mu.Lock()
	sesion, ok := u.sesiones[idOrden]
	if !ok {
		sesion = NewEditSession(idOrden, user, u.ordenes, u.fallas, u.catalogo, u.notifier)
		u.sesiones[idOrden] = sesion
	}
	u.mu.Unlock()

	if err := sesion.Load(ctx); err != nil {
		u.mu.Lock()
		if !ok {
			delete(u.sesiones, idOrden)
		}
		u.mu.Unlock()
		return nil, err
	}
	return sesion.Detalle(), nil
}

func (u *EditFlowUseCase) sesion(idOrden int) (*EditSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sesion, ok := u.sesiones[idOrden]
	if !ok {
		return nil, ErrSesionEdicionNoAbierta
	}
	return sesion, nil
}

func (u *EditFlowUseCase) Filas(idOrden int) ([]FilaSistema, error) {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return nil, err
	}
	return sesion.Filas(), nil
}

func (u *EditFlowUseCase) AgregarFila(idOrden int) (FilaSistema, error) {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return FilaSistema{}, err
	}
	return sesion.AgregarFila()
}

func (u *EditFlowUseCase) EditarFila(idOrden int, tempID int64) error {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return err
	}
	return sesion.StartEdit(tempID)
}

func (u *EditFlowUseCase) SeleccionarPrincipal(ctx context.Context, idOrden int, tempID int64, idFallaPrincipal int) error {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return err
	}
	return sesion.SetFallaPrincipal(ctx, tempID, idFallaPrincipal)
}

func (u *EditFlowUseCase) SeleccionarSecundaria(ctx context.Context, idOrden int, tempID int64, idFallaSecundaria *int) error {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return err
	}
	return sesion.SetFallaSecundaria(ctx, tempID, idFallaSecundaria)
}

func (u *EditFlowUseCase) GuardarFila(ctx context.Context, idOrden int, tempID int64) ([]string, error) {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return nil, err
	}
	return sesion.GuardarFila(ctx, tempID)
}

func (u *EditFlowUseCase) ConfirmarCambios(ctx context.Context, idOrden int) error {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return err
	}
	return sesion.ConfirmarCambios(ctx)
}

func (u *EditFlowUseCase) CancelarConfirmacion(idOrden int) error {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return err
	}
	sesion.CancelarConfirmacion()
	return nil
}

func (u *EditFlowUseCase) CancelarEdicion(idOrden int, tempID int64) error {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return err
	}
	return sesion.CancelarEdicion(tempID)
}

func (u *EditFlowUseCase) EliminarFila(ctx context.Context, idOrden int, tempID int64) (*entities.DeleteFallaResponse, bool, error) {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return nil, false, err
	}
	return sesion.EliminarFila(ctx, tempID)
}

func (u *EditFlowUseCase) ConfirmarEliminarFalla(ctx context.Context, idOrden int, idRelacionFalla int) error {
	sesion, err := u.sesion(idOrden)
	if err != nil {
		return err
	}
	return sesion.ConfirmarEliminarFalla(ctx, idRelacionFalla)
}

// CerrarSesion discards the live edit session of an order. Unsaved local
// rows are lost, persisted data is untouched.
func (u *EditFlowUseCase) CerrarSesion(idOrden int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.sesiones, idOrden)
}
