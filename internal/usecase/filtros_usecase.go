package usecase

import (
	"context"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/store"
	"flota_ot/internal/usecase/interfaces"
)

// IFiltrosUseCase serves the filter reference data behind the listing
// selectors. The aggregate is fetched once per process and then always
// answered from the cache.
type IFiltrosUseCase interface {
	GetFiltros(ctx context.Context) (entities.DataFiltrosMant, error)
	GetFiltroByTipo(ctx context.Context, tipo string) (entities.DataFiltrosMant, error)
	Refrescar(ctx context.Context) error
}

type FiltrosUseCase struct {
	backend  interfaces.IFiltrosBackend
	cache    *store.FiltrosStore
	notifier interfaces.INotifier
}

var _ IFiltrosUseCase = (*FiltrosUseCase)(nil)

func NewFiltrosUseCase(backend interfaces.IFiltrosBackend, cache *store.FiltrosStore, notifier interfaces.INotifier) *FiltrosUseCase {
	return &FiltrosUseCase{backend: backend, cache: cache, notifier: notifier}
}

// GetFiltros returns the cached aggregate, fetching it only when the cache
// is empty.
func (u *FiltrosUseCase) GetFiltros(ctx context.Context) (entities.DataFiltrosMant, error) {
	if !u.cache.IsEmpty() {
		return u.cache.Get(), nil
	}
	if err := u.fetch(ctx); err != nil {
		return entities.DataFiltrosMant{}, err
	}
	return u.cache.Get(), nil
}

// GetFiltroByTipo refreshes one category and returns the merged aggregate.
func (u *FiltrosUseCase) GetFiltroByTipo(ctx context.Context, tipo string) (entities.DataFiltrosMant, error) {
	parcial, err := u.backend.GetFiltroByTipo(ctx, tipo)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			u.notifier.Error("Error de conexión al obtener filtros")
		} else {
			u.notifier.Error("Error al obtener filtros de órdenes de trabajo")
		}
		return entities.DataFiltrosMant{}, err
	}
	u.cache.Set(*parcial)
	return u.cache.Get(), nil
}

// Refrescar discards the cache and re-fetches the whole aggregate.
func (u *FiltrosUseCase) Refrescar(ctx context.Context) error {
	u.cache.Clear()
	return u.fetch(ctx)
}

func (u *FiltrosUseCase) fetch(ctx context.Context) error {
	filtros, err := u.backend.GetAllFiltros(ctx)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			u.notifier.Error("Error de conexión al obtener filtros")
		} else {
			u.notifier.Error("Error al obtener filtros de órdenes de trabajo")
		}
		return err
	}
	u.cache.Set(*filtros)
	return nil
}
