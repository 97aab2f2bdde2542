package usecase

import (
	"context"
	"sync"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase/interfaces"
)

// ISistemasCatalog serves the two-level fault taxonomy with per-principal
// caching of the secondary options: repeated selection of the same principal
// never re-fetches. Entries live for the process lifetime (explicit policy;
// the taxonomy is static reference data).
type ISistemasCatalog interface {
	Sistemas(ctx context.Context) ([]entities.FallaPrincipalFiltro, error)
	SubSistemas(ctx context.Context, idFallaPrincipal int) ([]entities.FallaSecundariaFiltro, error)
	DetallePrincipal(ctx context.Context, idFallaPrincipal int) string
	DetalleSecundaria(ctx context.Context, idFallaPrincipal, idFallaSecundaria int) string
}

type SistemasCatalog struct {
	backend  interfaces.IFallasBackend
	notifier interfaces.INotifier

	mu              sync.Mutex
	sistemas        []entities.FallaPrincipalFiltro
	subPorPrincipal map[int][]entities.FallaSecundariaFiltro
}

var _ ISistemasCatalog = (*SistemasCatalog)(nil)

func NewSistemasCatalog(backend interfaces.IFallasBackend, notifier interfaces.INotifier) *SistemasCatalog {
	return &SistemasCatalog{
		backend:         backend,
		notifier:        notifier,
		subPorPrincipal: make(map[int][]entities.FallaSecundariaFiltro),
	}
}

func (c *SistemasCatalog) Sistemas(ctx context.Context) ([]entities.FallaPrincipalFiltro, error) {
	c.mu.Lock()
	if c.sistemas != nil {
		cached := c.sistemas
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	sistemas, err := c.backend.GetSistemas(ctx)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			c.notifier.Error("Error de conexión al obtener sistemas")
		} else {
			c.notifier.Error("Error al obtener sistemas")
		}
		return []entities.FallaPrincipalFiltro{}, err
	}

	c.mu.Lock()
	c.sistemas = sistemas
	c.mu.Unlock()
	return sistemas, nil
}

func (c *SistemasCatalog) SubSistemas(ctx context.Context, idFallaPrincipal int) ([]entities.FallaSecundariaFiltro, error) {
	c.mu.Lock()
	if cached, ok := c.subPorPrincipal[idFallaPrincipal]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	subs, err := c.backend.GetSubSistemas(ctx, idFallaPrincipal)
	if err != nil {
		if interfaces.IsTransportFailure(err) {
			c.notifier.Error("Error de conexión al obtener subsistemas")
		} else {
			c.notifier.Error("Error al obtener subsistemas")
		}
		return []entities.FallaSecundariaFiltro{}, err
	}

	c.mu.Lock()
	c.subPorPrincipal[idFallaPrincipal] = subs
	c.mu.Unlock()
	return subs, nil
}

// DetallePrincipal resolves a principal fault id to its label, "" if
// unknown.
func (c *SistemasCatalog) DetallePrincipal(ctx context.Context, idFallaPrincipal int) string {
	sistemas, err := c.Sistemas(ctx)
	if err != nil {
		return ""
	}
	for _, s := range sistemas {
		if s.IDFallaPrincipal == idFallaPrincipal {
			return s.DetalleFallaPrincipal
		}
	}
	return ""
}

// DetalleSecundaria resolves a secondary fault id within a principal to its
// label, "" if unknown.
func (c *SistemasCatalog) DetalleSecundaria(ctx context.Context, idFallaPrincipal, idFallaSecundaria int) string {
	subs, err := c.SubSistemas(ctx, idFallaPrincipal)
	if err != nil {
		return ""
	}
	for _, s := range subs {
		if s.IDFallaSecundaria == idFallaSecundaria {
			return s.DetalleFallaSecundaria
		}
	}
	return ""
}
