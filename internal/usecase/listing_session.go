package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase/interfaces"
	"flota_ot/pkg/debounce"
)

// PageSize is the fixed server page size of the listing. The backend's
// stored procedure does not support other sizes.
const PageSize = 50

// SearchDebounceDelay is how long the free-text order filter waits for the
// input to settle before it becomes an active filter term.
const SearchDebounceDelay = 350 * time.Millisecond

var ErrPaginaFueraDeRango = errors.New("página fuera de rango")

// ListingSession is the stateful controller behind the listing view: it owns
// the active filter set, the page index and the debounced free-text search.
//
// Invariants:
//   - fechaIngreso and fechaSalida are never both set; assigning one clears
//     the other
//   - every filter or page change triggers exactly one fetch; rows are never
//     re-filtered, re-sorted or re-paged client side
type ListingSession struct {
	ordenes  IOrdenesUseCase
	notifier interfaces.INotifier
	pageSize int

	mu           sync.Mutex
	searchOT     string
	codTaller    *int
	estadoOT     *int
	tipoOT       *int
	nroBus       *int
	nroManager   *int
	fechaIngreso *time.Time
	fechaSalida  *time.Time
	pageIndex    int
	total        int
	rows         []entities.OrdenDeTrabajo

	searchDebounce *debounce.Debouncer
	closed         bool
}

func NewListingSession(ordenes IOrdenesUseCase, notifier interfaces.INotifier) *ListingSession {
	return &ListingSession{
		ordenes:        ordenes,
		notifier:       notifier,
		pageSize:       PageSize,
		searchDebounce: debounce.New(SearchDebounceDelay),
	}
}

// SetSearchOT feeds the free-text order-number filter. The term becomes
// active only after the debounce delay, then page zero is re-fetched.
func (s *ListingSession) SetSearchOT(ctx context.Context, text string) {
	s.searchDebounce.Call(func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		s.searchOT = text
		s.pageIndex = 0
		s.mu.Unlock()
		s.fetch(ctx)
	})
}

func (s *ListingSession) SetTaller(ctx context.Context, codTaller *int) {
	s.mu.Lock()
	s.codTaller = codTaller
	s.pageIndex = 0
	s.mu.Unlock()
	s.fetch(ctx)
}

func (s *ListingSession) SetEstado(ctx context.Context, estadoOT *int) {
	s.mu.Lock()
	s.estadoOT = estadoOT
	s.pageIndex = 0
	s.mu.Unlock()
	s.fetch(ctx)
}

func (s *ListingSession) SetTipo(ctx context.Context, tipoOT *int) {
	s.mu.Lock()
	s.tipoOT = tipoOT
	s.pageIndex = 0
	s.mu.Unlock()
	s.fetch(ctx)
}

func (s *ListingSession) SetBus(ctx context.Context, nroBus *int) {
	s.mu.Lock()
	s.nroBus = nroBus
	s.pageIndex = 0
	s.mu.Unlock()
	s.fetch(ctx)
}

func (s *ListingSession) SetManager(ctx context.Context, nroManager *int) {
	s.mu.Lock()
	s.nroManager = nroManager
	s.pageIndex = 0
	s.mu.Unlock()
	s.fetch(ctx)
}

// SetFechaIngreso activates the entry-date filter and clears the exit-date
// filter; the two are mutually exclusive.
func (s *ListingSession) SetFechaIngreso(ctx context.Context, fecha *time.Time) {
	s.mu.Lock()
	s.fechaIngreso = fecha
	if fecha != nil {
		s.fechaSalida = nil
	}
	s.pageIndex = 0
	s.mu.Unlock()
	s.fetch(ctx)
}

// SetFechaSalida activates the exit-date filter and clears the entry-date
// filter.
func (s *ListingSession) SetFechaSalida(ctx context.Context, fecha *time.Time) {
	s.mu.Lock()
	s.fechaSalida = fecha
	if fecha != nil {
		s.fechaIngreso = nil
	}
	s.pageIndex = 0
	s.mu.Unlock()
	s.fetch(ctx)
}

// ClearFiltros resets every filter field and forces an immediate refetch of
// page zero.
func (s *ListingSession) ClearFiltros(ctx context.Context) {
	s.mu.Lock()
	s.searchOT = ""
	s.codTaller = nil
	s.estadoOT = nil
	s.tipoOT = nil
	s.nroBus = nil
	s.nroManager = nil
	s.fechaIngreso = nil
	s.fechaSalida = nil
	s.pageIndex = 0
	s.mu.Unlock()
	s.notifier.Info("Filtros limpiados")
	s.fetch(ctx)
}

// FetchPage moves to the given page index, bounded by [0, PageCount()).
func (s *ListingSession) FetchPage(ctx context.Context, pageIndex int) error {
	s.mu.Lock()
	if pageIndex < 0 || (s.total > 0 && pageIndex >= s.pageCountLocked()) {
		s.mu.Unlock()
		return ErrPaginaFueraDeRango
	}
	s.pageIndex = pageIndex
	s.mu.Unlock()
	return s.fetch(ctx)
}

func (s *ListingSession) fetch(ctx context.Context) error {
	s.mu.Lock()
	input := s.inputLocked()
	s.mu.Unlock()

	page, err := s.ordenes.GetOrdenes(ctx, input)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.rows = page.Data
	s.total = page.Total
	s.mu.Unlock()
	return nil
}

func (s *ListingSession) inputLocked() entities.GetOrdenesTrabajoInput {
	input := entities.GetOrdenesTrabajoInput{
		CodTaller:    s.codTaller,
		EstadoOT:     s.estadoOT,
		TipoOT:       s.tipoOT,
		NroBus:       s.nroBus,
		NroManager:   s.nroManager,
		FechaIngreso: s.fechaIngreso,
		FechaSalida:  s.fechaSalida,
		Pagina:       s.pageIndex,
	}
	if s.searchOT != "" {
		if nro, err := strconv.Atoi(s.searchOT); err == nil {
			input.NroOT = &nro
		}
	}
	return input
}

// PageCount derives the page total from the last server-reported total.
func (s *ListingSession) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageCountLocked()
}

func (s *ListingSession) pageCountLocked() int {
	return (s.total + s.pageSize - 1) / s.pageSize
}

func (s *ListingSession) PageIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageIndex
}

func (s *ListingSession) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Rows returns a copy of the current page.
func (s *ListingSession) Rows() []entities.OrdenDeTrabajo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.OrdenDeTrabajo, len(s.rows))
	copy(out, s.rows)
	return out
}

// FechaIngreso returns the active entry-date filter, nil when unset.
func (s *ListingSession) FechaIngreso() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fechaIngreso
}

// FechaSalida returns the active exit-date filter, nil when unset.
func (s *ListingSession) FechaSalida() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fechaSalida
}

// Close tears the session down, cancelling any pending debounced search so a
// late timer never mutates disposed state.
func (s *ListingSession) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.searchDebounce.Stop()
}
