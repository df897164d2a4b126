package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/rocketstore-api/internal/application/ports"
	"github.com/jhoicas/rocketstore-api/internal/domain"
	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
	"github.com/jhoicas/rocketstore-api/pkg/logger"
)

// Verificar en tiempo de compilación que PositionStackClient implementa GeocodingGateway.
var _ ports.GeocodingGateway = (*PositionStackClient)(nil)

const (
	forwardPath     = "/forward"
	maxResponseSize = 1 << 20

	failureDescription = "Error requesting geolocation information from the geocoding API."
)

// LatencyObserver recibe la duración de cada llamada remota y si tuvo éxito.
type LatencyObserver interface {
	ObserveGeocoding(success bool, elapsed time.Duration)
}

// PositionStackClient adaptador de GeocodingGateway sobre la API REST de PositionStack.
type PositionStackClient struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	observer   LatencyObserver
	log        *logger.Logger
}

// Option configura el cliente.
type Option func(*PositionStackClient)

// WithHTTPClient reemplaza el *http.Client (tests).
func WithHTTPClient(c *http.Client) Option {
	return func(p *PositionStackClient) { p.httpClient = c }
}

// WithObserver registra latencias en el observer dado.
func WithObserver(o LatencyObserver) Option {
	return func(p *PositionStackClient) { p.observer = o }
}

// NewPositionStackClient construye el adaptador. baseURL sin "/" final, ej. http://api.positionstack.com/v1.
func NewPositionStackClient(baseURL, accessKey string, timeout time.Duration, log *logger.Logger, opts ...Option) *PositionStackClient {
	c := &PositionStackClient{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("geocoding"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type forwardResponse struct {
	Data []entity.Location `json:"data"`
}

// ResolveLocation consulta la geocodificación directa y devuelve el primer candidato.
func (c *PositionStackClient) ResolveLocation(ctx context.Context, address string) domain.Result[entity.Location] {
	start := time.Now()
	loc, err := c.forward(ctx, address)
	if c.observer != nil {
		c.observer.ObserveGeocoding(err == nil, time.Since(start))
	}
	if err != nil {
		c.log.Warn().Err(err).Str("address", address).Msg("error solicitando geolocalización")
		return domain.Failure[entity.Location](domain.ErrCodeGeocodingRequest, failureDescription)
	}
	return domain.Success(loc)
}

func (c *PositionStackClient) forward(ctx context.Context, address string) (entity.Location, error) {
	q := url.Values{}
	q.Set("access_key", c.accessKey)
	q.Set("query", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+forwardPath+"?"+q.Encode(), nil)
	if err != nil {
		return entity.Location{}, fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return entity.Location{}, fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return entity.Location{}, fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return entity.Location{}, fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entity.Location{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var out forwardResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return entity.Location{}, fmt.Errorf("decodificar respuesta: %w", err)
	}
	if len(out.Data) == 0 {
		return entity.Location{}, fmt.Errorf("respuesta sin candidatos")
	}
	return out.Data[0], nil
}
