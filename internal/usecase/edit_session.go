package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase/interfaces"
)

var (
	ErrEdicionEnCurso       = errors.New("ya hay una edición en curso")
	ErrSinEdicionActiva     = errors.New("no hay ninguna fila en edición")
	ErrFilaNoEncontrada     = errors.New("fila no encontrada")
	ErrSinCambiosPendientes = errors.New("no hay cambios pendientes de confirmar")
)

// SinAsignar is the label rendered for an absent fault assignment, both in
// the table and in the change-confirmation lines.
const SinAsignar = "Sin asignar"

// FilaSistema is one row of the editable systems table of the detail view.
// TempID identifies the row locally; IDRelacionFalla is nil until the
// backend persists the row.
type FilaSistema struct {
	TempID            int64
	IDRelacionFalla   *int
	IDFallaPrincipal  *int
	IDFallaSecundaria *int
	DetallePrincipal  string
	DetalleSecundaria string
	EsNueva           bool
}

type filaBaseline struct {
	idFallaPrincipal  *int
	idFallaSecundaria *int
	detallePrincipal  string
	detalleSecundaria string
}

type cambioPendiente struct {
	tempID int64
	input  entities.UpdateFallaInput
	lineas []string
}

// EditSession drives the edit flow of one work order's systems table.
//
// State machine:
//   - at most one row is in edit mode at a time; starting a second edit is
//     rejected
//   - saving a row computes the change lines against the loaded baseline; a
//     row with no changes never reaches the backend
//   - a computed change set stays pending until explicitly confirmed or
//     cancelled, then a single upsert is issued
type EditSession struct {
	idOrden  int
	user     entities.LegacyUser
	ordenes  IOrdenesUseCase
	fallas   interfaces.IFallasBackend
	catalogo ISistemasCatalog
	notifier interfaces.INotifier

	mu         sync.Mutex
	detalle    *entities.OrdenTrabajoDetalle
	filas      []FilaSistema
	baselines  map[int64]filaBaseline
	editando   *int64
	pendiente  *cambioPendiente
	lastTempID int64
}

func NewEditSession(idOrden int, user entities.LegacyUser, ordenes IOrdenesUseCase, fallas interfaces.IFallasBackend, catalogo ISistemasCatalog, notifier interfaces.INotifier) *EditSession {
	return &EditSession{
		idOrden:   idOrden,
		user:      user,
		ordenes:   ordenes,
		fallas:    fallas,
		catalogo:  catalogo,
		notifier:  notifier,
		baselines: make(map[int64]filaBaseline),
	}
}

// Load fetches the order detail and rebuilds the table rows and their
// baselines. Persisted rows carry only labels on the wire, so the taxonomy
// ids are recovered by label lookup against the catalog.
func (s *EditSession) Load(ctx context.Context) error {
	detalle, err := s.ordenes.GetDetalle(ctx, s.idOrden)
	if err != nil {
		return err
	}

	sistemas, err := s.catalogo.Sistemas(ctx)
	if err != nil {
		return err
	}

	filas := make([]FilaSistema, 0, len(detalle.Sistemas))
	baselines := make(map[int64]filaBaseline, len(detalle.Sistemas))
	for _, rel := range detalle.Sistemas {
		idRel := rel.IDRelacionFalla
		fila := FilaSistema{
			TempID:            s.nextTempID(),
			IDRelacionFalla:   &idRel,
			DetallePrincipal:  rel.DetalleFallaPrincipal,
			DetalleSecundaria: rel.DetalleFallaSecundaria,
		}

		for _, sistema := range sistemas {
			if sistema.DetalleFallaPrincipal == rel.DetalleFallaPrincipal {
				id := sistema.IDFallaPrincipal
				fila.IDFallaPrincipal = &id
				break
			}
		}
		if fila.IDFallaPrincipal != nil && rel.DetalleFallaSecundaria != "" {
			subs, err := s.catalogo.SubSistemas(ctx, *fila.IDFallaPrincipal)
			if err == nil {
				for _, sub := range subs {
					if sub.DetalleFallaSecundaria == rel.DetalleFallaSecundaria {
						id := sub.IDFallaSecundaria
						fila.IDFallaSecundaria = &id
						break
					}
				}
			}
		}

		filas = append(filas, fila)
		baselines[fila.TempID] = filaBaseline{
			idFallaPrincipal:  fila.IDFallaPrincipal,
			idFallaSecundaria: fila.IDFallaSecundaria,
			detallePrincipal:  fila.DetallePrincipal,
			detalleSecundaria: fila.DetalleSecundaria,
		}
	}

	s.mu.Lock()
	s.detalle = detalle
	s.filas = filas
	s.baselines = baselines
	s.editando = nil
	s.pendiente = nil
	s.mu.Unlock()
	return nil
}

// nextTempID hands out local row ids, millisecond clock based with a
// monotonic bump so two rows added in the same millisecond never collide.
func (s *EditSession) nextTempID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextTempIDLocked()
}

func (s *EditSession) nextTempIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastTempID {
		id = s.lastTempID + 1
	}
	s.lastTempID = id
	return id
}

func (s *EditSession) Detalle() *entities.OrdenTrabajoDetalle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detalle
}

// Filas returns a copy of the current table rows.
func (s *EditSession) Filas() []FilaSistema {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FilaSistema, len(s.filas))
	copy(out, s.filas)
	return out
}

// Editando returns the temp id of the row in edit mode, nil when none.
func (s *EditSession) Editando() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editando == nil {
		return nil
	}
	id := *s.editando
	return &id
}

// AgregarFila appends an empty local row and puts it straight into edit
// mode. Rejected while another row is being edited.
func (s *EditSession) AgregarFila() (FilaSistema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editando != nil {
		s.notifier.Info("Termine la edición actual antes de agregar otra fila")
		return FilaSistema{}, ErrEdicionEnCurso
	}

	fila := FilaSistema{TempID: s.nextTempIDLocked(), EsNueva: true}
	s.filas = append(s.filas, fila)
	s.baselines[fila.TempID] = filaBaseline{}
	s.editando = &fila.TempID
	return fila, nil
}

// StartEdit puts an existing row into edit mode. Rejected while another row
// is being edited.
func (s *EditSession) StartEdit(tempID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editando != nil {
		if *s.editando == tempID {
			return nil
		}
		s.notifier.Info("Termine la edición actual antes de editar otra fila")
		return ErrEdicionEnCurso
	}
	if s.indexOfLocked(tempID) < 0 {
		return ErrFilaNoEncontrada
	}
	s.editando = &tempID
	return nil
}

// SetFallaPrincipal changes the principal fault of the row in edit mode and
// clears its secondary fault; the secondary options are loaded (cached) for
// the new principal.
func (s *EditSession) SetFallaPrincipal(ctx context.Context, tempID int64, idFallaPrincipal int) error {
	s.mu.Lock()
	if s.editando == nil || *s.editando != tempID {
		s.mu.Unlock()
		return ErrSinEdicionActiva
	}
	idx := s.indexOfLocked(tempID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrFilaNoEncontrada
	}
	s.mu.Unlock()

	if _, err := s.catalogo.SubSistemas(ctx, idFallaPrincipal); err != nil {
		return err
	}
	detalle := s.catalogo.DetallePrincipal(ctx, idFallaPrincipal)

	s.mu.Lock()
	defer s.mu.Unlock()
	idx = s.indexOfLocked(tempID)
	if idx < 0 {
		return ErrFilaNoEncontrada
	}
	s.filas[idx].IDFallaPrincipal = &idFallaPrincipal
	s.filas[idx].DetallePrincipal = detalle
	s.filas[idx].IDFallaSecundaria = nil
	s.filas[idx].DetalleSecundaria = ""
	return nil
}

// SetFallaSecundaria changes the secondary fault of the row in edit mode.
func (s *EditSession) SetFallaSecundaria(ctx context.Context, tempID int64, idFallaSecundaria *int) error {
	s.mu.Lock()
	if s.editando == nil || *s.editando != tempID {
		s.mu.Unlock()
		return ErrSinEdicionActiva
	}
	idx := s.indexOfLocked(tempID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrFilaNoEncontrada
	}
	principal := s.filas[idx].IDFallaPrincipal
	s.mu.Unlock()

	detalle := ""
	if idFallaSecundaria != nil && principal != nil {
		detalle = s.catalogo.DetalleSecundaria(ctx, *principal, *idFallaSecundaria)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx = s.indexOfLocked(tempID)
	if idx < 0 {
		return ErrFilaNoEncontrada
	}
	s.filas[idx].IDFallaSecundaria = idFallaSecundaria
	s.filas[idx].DetalleSecundaria = detalle
	return nil
}

// GuardarFila closes the edit of a row by computing its change lines against
// the baseline. No changes means an informational notice and nothing else;
// otherwise the change set becomes pending and must be confirmed before any
// request is sent.
func (s *EditSession) GuardarFila(ctx context.Context, tempID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editando == nil || *s.editando != tempID {
		return nil, ErrSinEdicionActiva
	}
	idx := s.indexOfLocked(tempID)
	if idx < 0 {
		return nil, ErrFilaNoEncontrada
	}
	fila := s.filas[idx]
	if fila.IDFallaPrincipal == nil {
		s.notifier.Error("Debe seleccionar una falla principal")
		return nil, ErrOrdenInvalida
	}

	base := s.baselines[tempID]
	var lineas []string
	if !equalIntPtr(base.idFallaPrincipal, fila.IDFallaPrincipal) {
		lineas = append(lineas, fmt.Sprintf("Falla principal: %s → %s",
			labelOrSinAsignar(base.detallePrincipal), labelOrSinAsignar(fila.DetallePrincipal)))
	}
	if !equalIntPtr(base.idFallaSecundaria, fila.IDFallaSecundaria) {
		lineas = append(lineas, fmt.Sprintf("Falla secundaria: %s → %s",
			labelOrSinAsignar(base.detalleSecundaria), labelOrSinAsignar(fila.DetalleSecundaria)))
	}

	if len(lineas) == 0 {
		s.notifier.Info("No hay cambios para actualizar")
		s.editando = nil
		return nil, nil
	}

	input := entities.UpdateFallaInput{
		IDOrden:          s.idOrden,
		IDRelacionFalla:  fila.IDRelacionFalla,
		IDFallaPrincipal: *fila.IDFallaPrincipal,
	}
	if fila.IDFallaSecundaria != nil {
		id := *fila.IDFallaSecundaria
		input.IDFallaSecundaria = &id
	}
	if s.user.IDPersonalControlGestion > 0 {
		id := s.user.IDPersonalControlGestion
		input.IDPersonalPrincipal = &id
		input.IDPersonalSecundaria = &id
	}
	if s.user.IDPerfilUsuario > 0 {
		id := s.user.IDPerfilUsuario
		input.IDPerfilPrincipal = &id
		input.IDPerfilSecundaria = &id
	}

	s.pendiente = &cambioPendiente{tempID: tempID, input: input, lineas: lineas}
	return lineas, nil
}

// CambiosPendientes returns the change lines awaiting confirmation, nil when
// there are none.
func (s *EditSession) CambiosPendientes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendiente == nil {
		return nil
	}
	out := make([]string, len(s.pendiente.lineas))
	copy(out, s.pendiente.lineas)
	return out
}

// ConfirmarCambios sends the pending change set as one upsert. On success
// the detail is reloaded from the backend; on failure the row stays in edit
// mode so nothing the user typed is lost.
func (s *EditSession) ConfirmarCambios(ctx context.Context) error {
	s.mu.Lock()
	if s.pendiente == nil {
		s.mu.Unlock()
		return ErrSinCambiosPendientes
	}
	pendiente := *s.pendiente
	s.mu.Unlock()

	result, err := s.fallas.UpsertFalla(ctx, pendiente.input)
	if err != nil {
		if text := interfaces.ServerText(err); text != "" {
			s.notifier.Error("Error al actualizar falla: " + text)
		} else {
			s.notifier.Error("Error de conexión al actualizar falla")
		}
		return err
	}
	if !result.Success {
		if result.Message != "" {
			s.notifier.Error(result.Message)
		} else {
			s.notifier.Error("Ocurrió un error al actualizar la falla")
		}
		return ErrOperacionRechazada
	}

	s.mu.Lock()
	s.pendiente = nil
	s.editando = nil
	s.mu.Unlock()

	if err := s.Load(ctx); err != nil {
		return err
	}
	s.notifier.Success("Cambios guardados: \n" + strings.Join(pendiente.lineas, "\n"))
	return nil
}

// CancelarConfirmacion discards the pending change set; the row returns to
// edit mode untouched.
func (s *EditSession) CancelarConfirmacion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendiente = nil
}

// CancelarEdicion abandons the edit of a row, restoring it from the
// baseline. A never-saved row is removed entirely.
func (s *EditSession) CancelarEdicion(tempID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editando == nil || *s.editando != tempID {
		return ErrSinEdicionActiva
	}
	idx := s.indexOfLocked(tempID)
	if idx < 0 {
		return ErrFilaNoEncontrada
	}

	if s.filas[idx].EsNueva {
		s.filas = append(s.filas[:idx], s.filas[idx+1:]...)
		delete(s.baselines, tempID)
	} else {
		base := s.baselines[tempID]
		s.filas[idx].IDFallaPrincipal = base.idFallaPrincipal
		s.filas[idx].IDFallaSecundaria = base.idFallaSecundaria
		s.filas[idx].DetallePrincipal = base.detallePrincipal
		s.filas[idx].DetalleSecundaria = base.detalleSecundaria
	}
	s.editando = nil
	s.pendiente = nil
	return nil
}

// EliminarFila removes a row. A never-saved row disappears locally without
// any request; a persisted row returns the backend's cascade preview and
// waits for ConfirmarEliminarFalla.
func (s *EditSession) EliminarFila(ctx context.Context, tempID int64) (*entities.DeleteFallaResponse, bool, error) {
	s.mu.Lock()
	idx := s.indexOfLocked(tempID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, false, ErrFilaNoEncontrada
	}
	fila := s.filas[idx]

	if fila.IDRelacionFalla == nil {
		s.filas = append(s.filas[:idx], s.filas[idx+1:]...)
		delete(s.baselines, tempID)
		if s.editando != nil && *s.editando == tempID {
			s.editando = nil
			s.pendiente = nil
		}
		s.mu.Unlock()
		s.notifier.Info("Subsistema eliminado antes de guardarse.")
		return nil, false, nil
	}
	idRel := *fila.IDRelacionFalla
	s.mu.Unlock()

	preview, err := s.fallas.GetFallaPreview(ctx, idRel)
	if err != nil {
		if text := interfaces.ServerText(err); text != "" {
			s.notifier.Error("Error al obtener impacto de la eliminación: " + text)
		} else {
			s.notifier.Error("Error de conexión al obtener impacto de la eliminación")
		}
		return nil, false, err
	}
	return preview, true, nil
}

// ConfirmarEliminarFalla deletes a persisted fault row after the cascade
// preview was confirmed, then reloads the detail.
func (s *EditSession) ConfirmarEliminarFalla(ctx context.Context, idRelacionFalla int) error {
	result, err := s.fallas.DeleteFalla(ctx, idRelacionFalla)
	if err != nil {
		if text := interfaces.ServerText(err); text != "" {
			s.notifier.Error("Error al eliminar falla: " + text)
		} else {
			s.notifier.Error("Error de conexión al eliminar falla")
		}
		return err
	}
	if !result.Success {
		if result.Message != "" {
			s.notifier.Error(result.Message)
		} else {
			s.notifier.Error("Ocurrió un error al eliminar la falla.")
		}
		return ErrOperacionRechazada
	}

	if err := s.Load(ctx); err != nil {
		return err
	}
	if result.Message != "" {
		s.notifier.Success(result.Message)
	} else {
		s.notifier.Success("Falla eliminada correctamente.")
	}
	return nil
}

func (s *EditSession) indexOfLocked(tempID int64) int {
	for i := range s.filas {
		if s.filas[i].TempID == tempID {
			return i
		}
	}
	return -1
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func labelOrSinAsignar(label string) string {
	if label == "" {
		return SinAsignar
	}
	return label
}
