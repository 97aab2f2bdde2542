// Package store holds the injected client-state containers: the filter
// catalog cache, the in-memory copy of the current listing page and the
// session registry. Each store has simple setters and no cross-store
// transactions; staleness is resolved by invalidate-and-refetch, never by
// patching cached entities in place.
package store

import (
	"sync"

	"flota_ot/internal/domain/entities"
)

// FiltrosStore caches the aggregate filter reference data for the process
// lifetime. It is re-populated only when empty or explicitly cleared.
type FiltrosStore struct {
	mu      sync.RWMutex
	filtros entities.DataFiltrosMant
}

func NewFiltrosStore() *FiltrosStore {
	return &FiltrosStore{}
}

func (s *FiltrosStore) Get() entities.DataFiltrosMant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtros
}

func (s *FiltrosStore) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtros.IsEmpty()
}

// Set merges the non-empty categories of partial over the cached aggregate;
// empty categories leave the cached ones in place.
func (s *FiltrosStore) Set(partial entities.DataFiltrosMant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(partial.OTs) > 0 {
		s.filtros.OTs = partial.OTs
	}
	if len(partial.Talleres) > 0 {
		s.filtros.Talleres = partial.Talleres
	}
	if len(partial.Buses) > 0 {
		s.filtros.Buses = partial.Buses
	}
	if len(partial.EstadosOt) > 0 {
		s.filtros.EstadosOt = partial.EstadosOt
	}
	if len(partial.TiposOt) > 0 {
		s.filtros.TiposOt = partial.TiposOt
	}
	if len(partial.NrosManager) > 0 {
		s.filtros.NrosManager = partial.NrosManager
	}
	if len(partial.FallaPrincipal) > 0 {
		s.filtros.FallaPrincipal = partial.FallaPrincipal
	}
	if len(partial.FallaSecundaria) > 0 {
		s.filtros.FallaSecundaria = partial.FallaSecundaria
	}
	if len(partial.Mecanicos) > 0 {
		s.filtros.Mecanicos = partial.Mecanicos
	}
	if len(partial.Servicios) > 0 {
		s.filtros.Servicios = partial.Servicios
	}
}

func (s *FiltrosStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtros = entities.DataFiltrosMant{}
}
