// Package backend wraps the remote maintenance REST API. It is the only
// gateway this service talks through; the backend owns all storage and all
// status transitions.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase/interfaces"
)

var ErrMissingBackendURL = errors.New("missing BACKEND_API_URL")

const fechaFormat = "2006-01-02"

// Client implements every backend contract over one base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ interfaces.IOrdenesBackend    = (*Client)(nil)
	_ interfaces.IFallasBackend     = (*Client)(nil)
	_ interfaces.IFiltrosBackend    = (*Client)(nil)
	_ interfaces.IPreventivaBackend = (*Client)(nil)
)

// NewClient builds a backend client for the given base URL, e.g.
// http://mantenimiento.internal/api.
func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[backend] missing BACKEND_API_URL")
		return nil, ErrMissingBackendURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) GetOrdenes(ctx context.Context, input entities.GetOrdenesTrabajoInput) (entities.OrdenesPage, error) {
	params := url.Values{}
	setInt := func(key string, v *int) {
		if v != nil {
			params.Set(key, strconv.Itoa(*v))
		}
	}
	setInt("nroOT", input.NroOT)
	setInt("codTaller", input.CodTaller)
	setInt("nroBus", input.NroBus)
	setInt("estadoOT", input.EstadoOT)
	setInt("tipoOT", input.TipoOT)
	setInt("nroManager", input.NroManager)
	if input.FechaIngreso != nil {
		params.Set("fechaIngreso", input.FechaIngreso.Format(fechaFormat))
	}
	if input.FechaSalida != nil {
		params.Set("fechaSalida", input.FechaSalida.Format(fechaFormat))
	}
	params.Set("pagina", strconv.Itoa(input.Pagina))

	var page entities.OrdenesPage
	if err := c.getJSON(ctx, "/ordenDeTrabajo/ot?"+params.Encode(), &page); err != nil {
		return entities.OrdenesPage{Data: []entities.OrdenDeTrabajo{}}, err
	}
	if page.Data == nil {
		page.Data = []entities.OrdenDeTrabajo{}
	}
	return page, nil
}

func (c *Client) GetOrdenDetalle(ctx context.Context, idOrden int) (*entities.OrdenTrabajoDetalle, error) {
	var detalle entities.OrdenTrabajoDetalle
	if err := c.getJSON(ctx, fmt.Sprintf("/ordenDeTrabajo/ordenes/%d/details", idOrden), &detalle); err != nil {
		return nil, err
	}
	if detalle.Sistemas == nil {
		detalle.Sistemas = []entities.FallaRelacion{}
	}
	if detalle.Insumos == nil {
		detalle.Insumos = []entities.InsumoAsignado{}
	}
	if detalle.Personal == nil {
		detalle.Personal = []entities.PersonalAsignado{}
	}
	return &detalle, nil
}

func (c *Client) CreateOrdenTrabajo(ctx context.Context, input entities.CreateOrdenTrabajoInput) (*entities.CreateOrdenTrabajoResponse, error) {
	var result entities.CreateOrdenTrabajoResponse
	if err := c.postJSON(ctx, "/ordenDeTrabajo/orden-trabajo", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteOrdenTrabajo(ctx context.Context, idOrden int) (*entities.DeleteOrdenTrabajoResponse, error) {
	var result entities.DeleteOrdenTrabajoResponse
	if err := c.deleteJSON(ctx, fmt.Sprintf("/ordenDeTrabajo/orden-trabajo/%d", idOrden), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetSistemas(ctx context.Context) ([]entities.FallaPrincipalFiltro, error) {
	sistemas := []entities.FallaPrincipalFiltro{}
	if err := c.getJSON(ctx, "/ordenDeTrabajo/sistemas", &sistemas); err != nil {
		return []entities.FallaPrincipalFiltro{}, err
	}
	return sistemas, nil
}

func (c *Client) GetSubSistemas(ctx context.Context, idFallaPrincipal int) ([]entities.FallaSecundariaFiltro, error) {
	subs := []entities.FallaSecundariaFiltro{}
	if err := c.getJSON(ctx, fmt.Sprintf("/ordenDeTrabajo/sistemas/%d", idFallaPrincipal), &subs); err != nil {
		return []entities.FallaSecundariaFiltro{}, err
	}
	return subs, nil
}

func (c *Client) GetAllSubSistemas(ctx context.Context) ([]entities.FallaSecundariaFiltro, error) {
	subs := []entities.FallaSecundariaFiltro{}
	if err := c.getJSON(ctx, "/ordenDeTrabajo/sub-sistemas", &subs); err != nil {
		return []entities.FallaSecundariaFiltro{}, err
	}
	return subs, nil
}

func (c *Client) UpsertFalla(ctx context.Context, input entities.UpdateFallaInput) (*entities.UpdateFallaResponse, error) {
	var result entities.UpdateFallaResponse
	if err := c.postJSON(ctx, "/ordenDeTrabajo/falla", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteFalla(ctx context.Context, idRelacionFalla int) (*entities.DeleteFallaResponse, error) {
	var result entities.DeleteFallaResponse
	if err := c.deleteJSON(ctx, fmt.Sprintf("/ordenDeTrabajo/falla/%d", idRelacionFalla), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetFallaPreview(ctx context.Context, idRelacionFalla int) (*entities.DeleteFallaResponse, error) {
	var result entities.DeleteFallaResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/ordenDeTrabajo/falla/%d/preview", idRelacionFalla), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetAllFiltros(ctx context.Context) (*entities.DataFiltrosMant, error) {
	var filtros entities.DataFiltrosMant
	if err := c.getJSON(ctx, "/ordenDeTrabajo/filtros", &filtros); err != nil {
		return nil, err
	}
	return &filtros, nil
}

func (c *Client) GetFiltroByTipo(ctx context.Context, tipo string) (*entities.DataFiltrosMant, error) {
	var filtros entities.DataFiltrosMant
	if err := c.getJSON(ctx, "/ordenDeTrabajo/filtros?tipo="+url.QueryEscape(tipo), &filtros); err != nil {
		return nil, err
	}
	return &filtros, nil
}

func (c *Client) GetMantencionPreventiva(ctx context.Context, numeroBus *int, placaPatente string) ([]entities.MantencionPreventiva, error) {
	params := url.Values{}
	if numeroBus != nil {
		params.Set("numeroBus", strconv.Itoa(*numeroBus))
	}
	if placaPatente != "" {
		params.Set("placaPatente", placaPatente)
	}

	var result struct {
		Data []entities.MantencionPreventiva `json:"data"`
	}
	if err := c.getJSON(ctx, "/ordenDeTrabajo/mantencion-preventiva?"+params.Encode(), &result); err != nil {
		return []entities.MantencionPreventiva{}, err
	}
	if result.Data == nil {
		result.Data = []entities.MantencionPreventiva{}
	}
	return result.Data, nil
}

func (c *Client) GetSiglasPreventivasByFlota(ctx context.Context, codigoFlota int) ([]entities.SiglaPreventiva, error) {
	var result struct {
		Data []entities.SiglaPreventiva `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/ordenDeTrabajo/siglas-preventivas?codigoFlota=%d", codigoFlota), &result); err != nil {
		return []entities.SiglaPreventiva{}, err
	}
	if result.Data == nil {
		result.Data = []entities.SiglaPreventiva{}
	}
	return result.Data, nil
}

func (c *Client) CreateMantencionPreventiva(ctx context.Context, input entities.MantencionPreventivaCrear) (*entities.MantencionPreventivaResponse, error) {
	var result entities.MantencionPreventivaResponse
	if err := c.postJSON(ctx, "/ordenDeTrabajo/ot_preventivo/POST", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteMantencionPreventiva(ctx context.Context, idRelManPrev int) (*entities.DeleteMantencionPreventivaResponse, error) {
	var result entities.DeleteMantencionPreventivaResponse
	if err := c.deleteJSON(ctx, fmt.Sprintf("/ordenDeTrabajo/mantencion-preventiva/%d", idRelManPrev), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &interfaces.BackendError{Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &interfaces.BackendError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[backend] %s %s transport failure err=%v", method, path, err)
		return &interfaces.BackendError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[backend] %s %s status=%d", method, path, resp.StatusCode)
		return &interfaces.BackendError{StatusCode: resp.StatusCode, ServerText: strings.TrimSpace(string(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[backend] %s %s decode failure err=%v", method, path, err)
		return &interfaces.BackendError{StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}
