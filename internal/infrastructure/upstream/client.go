// Package upstream implementa el adaptador de transporte contra los dos
// back-ends del almacén: el operacional (inventario, alertas, RFID, demanda)
// y el de ventas. Clasifica cada fallo como Transport, Timeout o Decode y no
// reintenta; la política de reintento es del controlador de refresco.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tu-usuario/warehouse-analytics/internal/domain"
	"github.com/tu-usuario/warehouse-analytics/pkg/config"
)

// DefaultTimeout límite duro por llamada individual (no por ciclo).
const DefaultTimeout = 5 * time.Second

// Client adaptador HTTP sin estado contra los dos upstreams.
type Client struct {
	apiBaseURL  string
	salesAPIURL string
	httpClient  *http.Client
	timeout     time.Duration
}

// NewClient construye el adaptador con el timeout por defecto de 5 s.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		apiBaseURL:  cfg.APIBaseURL,
		salesAPIURL: cfg.SalesAPIURL,
		// El deadline real lo impone el context por llamada; este Timeout es
		// solo una red de seguridad del cliente subyacente.
		httpClient: &http.Client{Timeout: DefaultTimeout + time.Second},
		timeout:    DefaultTimeout,
	}
}

// getJSON hace un GET contra base+path con query serializada en la URL y
// decodifica el cuerpo en out. Errores posibles: domain.ErrTimeout (deadline
// excedido), domain.ErrTransport (red o status no-2xx), domain.ErrDecode
// (cuerpo no-JSON).
func (c *Client) getJSON(ctx context.Context, base, path string, query url.Values, out any) error {
	endpoint := base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: crear request GET %s: %v", domain.ErrTransport, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || reqCtx.Err() != nil {
			return fmt.Errorf("%w: GET %s", domain.ErrTimeout, path)
		}
		return fmt.Errorf("%w: GET %s: %v", domain.ErrTransport, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: GET %s devolvió %d", domain.ErrTransport, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if reqCtx.Err() != nil {
			return fmt.Errorf("%w: GET %s", domain.ErrTimeout, path)
		}
		return fmt.Errorf("%w: leer cuerpo de GET %s: %v", domain.ErrTransport, path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: GET %s: %v", domain.ErrDecode, path, err)
	}
	return nil
}

// decodeListOrEnvelope acepta tanto un array pelado como la forma legada con
// sobre {<field>: [...]}, y canonicaliza al slice.
func decodeListOrEnvelope[T any](raw json.RawMessage, path, field string) ([]T, error) {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrDecode, path, err)
	}
	inner, ok := env[field]
	if !ok {
		return nil, fmt.Errorf("%w: GET %s: ni array ni campo %q", domain.ErrDecode, path, field)
	}
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, fmt.Errorf("%w: GET %s: campo %q: %v", domain.ErrDecode, path, field, err)
	}
	return list, nil
}
