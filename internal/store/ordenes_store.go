package store

import (
	"sync"

	"flota_ot/internal/domain/entities"
)

// OrdenesStore keeps the in-memory copy of the current listing page so the
// table stays consistent after mutations. The client never holds more than
// one server page.
type OrdenesStore struct {
	mu        sync.RWMutex
	registros []entities.OrdenDeTrabajo
	total     int
}

func NewOrdenesStore() *OrdenesStore {
	return &OrdenesStore{}
}

// SetRegistros replaces the cached page wholesale after a fetch.
func (s *OrdenesStore) SetRegistros(registros []entities.OrdenDeTrabajo, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registros = registros
	s.total = total
}

// Registros returns a copy of the cached page.
func (s *OrdenesStore) Registros() []entities.OrdenDeTrabajo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.OrdenDeTrabajo, len(s.registros))
	copy(out, s.registros)
	return out
}

func (s *OrdenesStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// DeleteOrden drops one row from the cached page. Called only after the
// backend confirmed the deletion (confirmed-then-removed discipline).
func (s *OrdenesStore) DeleteOrden(numeroOrden int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.registros[:0]
	removed := 0
	for _, ot := range s.registros {
		if ot.NumeroOrden == numeroOrden {
			removed++
			continue
		}
		kept = append(kept, ot)
	}
	s.registros = kept
	if s.total >= removed {
		s.total -= removed
	}
}
