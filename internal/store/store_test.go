package store

import (
	"testing"

	"flota_ot/internal/domain/entities"
)

func TestOrdenesStore_DeleteOrden(t *testing.T) {
	s := NewOrdenesStore()
	s.SetRegistros([]entities.OrdenDeTrabajo{
		{NumeroOrden: 10},
		{NumeroOrden: 20},
		{NumeroOrden: 30},
	}, 120)

	s.DeleteOrden(20)

	registros := s.Registros()
	if len(registros) != 2 || registros[0].NumeroOrden != 10 || registros[1].NumeroOrden != 30 {
		t.Fatalf("unexpected registros: %v", registros)
	}
	if s.Total() != 119 {
		t.Fatalf("expected total 119, got %d", s.Total())
	}

	// unknown order leaves everything in place
	s.DeleteOrden(99)
	if len(s.Registros()) != 2 || s.Total() != 119 {
		t.Fatalf("delete of unknown order must be a no-op")
	}
}

func TestOrdenesStore_RegistrosEsCopia(t *testing.T) {
	s := NewOrdenesStore()
	s.SetRegistros([]entities.OrdenDeTrabajo{{NumeroOrden: 10}}, 1)

	registros := s.Registros()
	registros[0].NumeroOrden = 999

	if got := s.Registros(); got[0].NumeroOrden != 10 {
		t.Fatalf("caller mutation must not leak into the store, got %v", got)
	}
}

func TestFiltrosStore_SetMezclaParciales(t *testing.T) {
	s := NewFiltrosStore()
	if !s.IsEmpty() {
		t.Fatalf("new store must be empty")
	}

	s.Set(entities.DataFiltrosMant{
		Talleres:  []entities.TallerFiltro{{CodigoTaller: 1, NombreTaller: "Taller Central"}},
		EstadosOt: []entities.EstadoOTFiltro{{IDEstadoSolicitud: 1, DetalleEstadoSolicitud: "Ingresada"}},
	})
	if s.IsEmpty() {
		t.Fatalf("store must not be empty after set")
	}

	s.Set(entities.DataFiltrosMant{
		Buses: []entities.BusFiltro{{NumeroInterno: 101, PlacaPatente: "ABCD12"}},
	})

	filtros := s.Get()
	if len(filtros.Talleres) != 1 || len(filtros.EstadosOt) != 1 || len(filtros.Buses) != 1 {
		t.Fatalf("partial set must merge over the cache, got %+v", filtros)
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Fatalf("store must be empty after clear")
	}
}

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()
	s.Set(entities.Session{Token: "tok-1"})

	if _, ok := s.Get("tok-1"); !ok {
		t.Fatalf("expected session hit")
	}
	if _, ok := s.Get("tok-2"); ok {
		t.Fatalf("unexpected session hit")
	}

	s.Delete("tok-1")
	if _, ok := s.Get("tok-1"); ok {
		t.Fatalf("session must be gone after delete")
	}
}
