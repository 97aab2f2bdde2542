package usecase

import (
	"context"
	"errors"
	"strings"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase/interfaces"
)

var (
	ErrBusquedaPreventivaVacia = errors.New("búsqueda preventiva sin bus ni patente")
	ErrSiglaInvalida           = errors.New("sigla preventiva inválida")
)

// IPreventivaUseCase covers the preventive-maintenance block of the detail
// view, shown only for orders of type Preventiva.
type IPreventivaUseCase interface {
	Buscar(ctx context.Context, numeroBus *int, placaPatente string) ([]entities.MantencionPreventiva, error)
	SiglasPorFlota(ctx context.Context, codigoFlota int) ([]entities.SiglaPreventiva, error)
	Crear(ctx context.Context, input entities.MantencionPreventivaCrear) error
	Eliminar(ctx context.Context, idRelManPrev int) error
}

type PreventivaUseCase struct {
	backend  interfaces.IPreventivaBackend
	notifier interfaces.INotifier
}

var _ IPreventivaUseCase = (*PreventivaUseCase)(nil)

func NewPreventivaUseCase(backend interfaces.IPreventivaBackend, notifier interfaces.INotifier) *PreventivaUseCase {
	return &PreventivaUseCase{backend: backend, notifier: notifier}
}

// Buscar looks up the preventive rows by bus number or plate; at least one
// of the two is required.
func (u *PreventivaUseCase) Buscar(ctx context.Context, numeroBus *int, placaPatente string) ([]entities.MantencionPreventiva, error) {
	placaPatente = strings.TrimSpace(placaPatente)
	if numeroBus == nil && placaPatente == "" {
		u.notifier.Error("Debe ingresar número de bus o placa patente")
		return nil, ErrBusquedaPreventivaVacia
	}

	rows, err := u.backend.GetMantencionPreventiva(ctx, numeroBus, placaPatente)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			u.notifier.Error("Error de conexión al obtener mantención preventiva")
		} else {
			u.notifier.Error("Error al obtener mantención preventiva")
		}
		return nil, err
	}
	return rows, nil
}

func (u *PreventivaUseCase) SiglasPorFlota(ctx context.Context, codigoFlota int) ([]entities.SiglaPreventiva, error) {
	siglas, err := u.backend.GetSiglasPreventivasByFlota(ctx, codigoFlota)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			u.notifier.Error("Error de conexión al obtener siglas preventivas")
		} else {
			u.notifier.Error("Error al obtener siglas preventivas")
		}
		return nil, err
	}
	return siglas, nil
}

// Crear registers one preventive maintenance row for a work order.
func (u *PreventivaUseCase) Crear(ctx context.Context, input entities.MantencionPreventivaCrear) error {
	if input.IDManPrev <= 0 {
		u.notifier.Error("Debe seleccionar una sigla preventiva")
		return ErrSiglaInvalida
	}

	result, err := u.backend.CreateMantencionPreventiva(ctx, input)
	if err != nil {
		if text := interfaces.ServerText(err); text != "" {
			u.notifier.Error("Error al crear mantención preventiva: " + text)
		} else {
			u.notifier.Error("Error de conexión al crear mantención preventiva")
		}
		return err
	}
	if !result.Success {
		if result.Message != "" {
			u.notifier.Error(result.Message)
		} else {
			u.notifier.Error("Ocurrió un error al crear la mantención preventiva")
		}
		return ErrOperacionRechazada
	}

	if result.Message != "" {
		u.notifier.Success(result.Message)
	} else {
		u.notifier.Success("Mantención preventiva creada correctamente")
	}
	return nil
}

// Eliminar removes one preventive maintenance row after the user confirmed.
func (u *PreventivaUseCase) Eliminar(ctx context.Context, idRelManPrev int) error {
	if idRelManPrev <= 0 {
		return ErrIDOrdenInvalido
	}

	result, err := u.backend.DeleteMantencionPreventiva(ctx, idRelManPrev)
	if err != nil {
		if text := interfaces.ServerText(err); text != "" {
			u.notifier.Error("Error al eliminar mantención preventiva: " + text)
		} else {
			u.notifier.Error("Error de conexión al eliminar mantención preventiva")
		}
		return err
	}
	if !result.Success {
		if result.Message != "" {
			u.notifier.Error(result.Message)
		} else {
			u.notifier.Error("Ocurrió un error al eliminar la mantención preventiva")
		}
		return ErrOperacionRechazada
	}

	if result.Message != "" {
		u.notifier.Success(result.Message)
	} else {
		u.notifier.Success("Mantención preventiva eliminada correctamente")
	}
	return nil
}
