// Package client é o cliente Go da API GoYard. As URLs vêm das mesmas declarações de rota
// usadas pelo servidor, e as consultas ficam em um QueryCache invalidado a cada mutação bem-sucedida.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"goyard/internal/contract"
	"goyard/internal/domain"
)

// APIError representa uma resposta não-2xx da API.
type APIError struct {
	Status   int
	Message  string
	Field    string
	Category string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("goyard: status %d", e.Status)
	}
	return fmt.Sprintf("goyard: status %d: %s", e.Status, e.Message)
}

// Client chama a API GoYard.
type Client struct {
	http  *resty.Client
	cache *QueryCache
}

// Option configura o Client.
type Option func(*Client)

// WithTimeout define o timeout de cada requisição.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithHTTPClient troca o transporte (útil em testes).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.http.BaseURL
		c.http = resty.NewWithClient(hc).SetBaseURL(base).
			SetHeader("Accept", "application/json")
	}
}

// WithCache compartilha um QueryCache entre clientes.
func WithCache(qc *QueryCache) Option {
	return func(c *Client) { c.cache = qc }
}

// New cria um cliente para baseURL (e.g., "http://localhost:8080"). Não há retentativas.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/json"),
		cache: NewQueryCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache devolve o QueryCache usado pelo cliente.
func (c *Client) Cache() *QueryCache {
	return c.cache
}

// --- Armazéns ---

func (c *Client) ListWarehouses(ctx context.Context, search string) ([]domain.Warehouse, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var out []domain.Warehouse
	err := c.query(ctx, contract.API.Warehouses.List, nil, q, &out, TagWarehouses)
	return out, err
}

// GetWarehouse devolve nil, nil quando o armazém não existe.
func (c *Client) GetWarehouse(ctx context.Context, id int64) (*domain.Warehouse, error) {
	var out domain.Warehouse
	err := c.query(ctx, contract.API.Warehouses.Get, idParam(id), nil, &out, WarehouseTag(id))
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWarehouse(ctx context.Context, in domain.NewWarehouse) (domain.Warehouse, error) {
	var out domain.Warehouse
	err := c.mutate(ctx, contract.API.Warehouses.Create, nil, in, &out, TagWarehouses, TagStats)
	return out, err
}

func (c *Client) UpdateWarehouse(ctx context.Context, id int64, patch domain.WarehousePatch) (domain.Warehouse, error) {
	var out domain.Warehouse
	err := c.mutate(ctx, contract.API.Warehouses.Update, idParam(id), patch, &out, TagWarehouses, WarehouseTag(id), TagStats)
	return out, err
}

func (c *Client) DeleteWarehouse(ctx context.Context, id int64) error {
	return c.mutate(ctx, contract.API.Warehouses.Delete, idParam(id), nil, nil, TagWarehouses, WarehouseTag(id), TagStats)
}

// --- Pátios ---

// ListYards lista pátios; warehouseID nil não filtra por armazém.
func (c *Client) ListYards(ctx context.Context, search string, warehouseID *int64) ([]domain.Yard, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if warehouseID != nil {
		q.Set("warehouseId", strconv.FormatInt(*warehouseID, 10))
	}
	var out []domain.Yard
	err := c.query(ctx, contract.API.Yards.List, nil, q, &out, TagYards)
	return out, err
}

// GetYard devolve nil, nil quando o pátio não existe.
func (c *Client) GetYard(ctx context.Context, id int64) (*domain.Yard, error) {
	var out domain.Yard
	err := c.query(ctx, contract.API.Yards.Get, idParam(id), nil, &out, YardTag(id))
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateYard(ctx context.Context, in domain.NewYard) (domain.Yard, error) {
	var out domain.Yard
	err := c.mutate(ctx, contract.API.Yards.Create, nil, in, &out, TagYards, TagStats)
	return out, err
}

func (c *Client) UpdateYard(ctx context.Context, id int64, patch domain.YardPatch) (domain.Yard, error) {
	var out domain.Yard
	err := c.mutate(ctx, contract.API.Yards.Update, idParam(id), patch, &out, TagYards, YardTag(id), TagStats)
	return out, err
}

func (c *Client) DeleteYard(ctx context.Context, id int64) error {
	return c.mutate(ctx, contract.API.Yards.Delete, idParam(id), nil, nil, TagYards, YardTag(id), TagStats)
}

// --- Painel ---

func (c *Client) GetStats(ctx context.Context) (domain.SystemStats, error) {
	var out domain.SystemStats
	err := c.query(ctx, contract.API.Stats.Get, nil, nil, &out, TagStats)
	return out, err
}

// --- Internos ---

// query serve do cache quando possível; caso contrário busca, decodifica e memoriza.
func (c *Client) query(ctx context.Context, route contract.Route, params map[string]string, q url.Values, out interface{}, tags ...string) error {
	path := contract.BuildURL(route.Path, params)
	key := route.Method + " " + path
	if len(q) > 0 {
		key += "?" + q.Encode()
	}

	if body, ok := c.cache.Get(key); ok {
		return json.Unmarshal(body, out)
	}

	resp, err := c.send(ctx, route, path, q, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: resposta inválida: %w", route.Name, err)
	}
	c.cache.Set(key, resp.Body(), tags...)
	return nil
}

// mutate envia a escrita e, em caso de sucesso, invalida as tags informadas.
func (c *Client) mutate(ctx context.Context, route contract.Route, params map[string]string, body, out interface{}, tags ...string) error {
	resp, err := c.send(ctx, route, contract.BuildURL(route.Path, params), nil, body)
	if err != nil {
		return err
	}
	c.cache.Invalidate(tags...)

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: resposta inválida: %w", route.Name, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, route contract.Route, path string, q url.Values, body interface{}) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if len(q) > 0 {
		req.SetQueryParamsFromValues(q)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(route.Method, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", route.Name, err)
	}
	if resp.IsError() {
		return nil, newAPIError(resp)
	}
	return resp, nil
}

func newAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}
	var body domain.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Field = body.Field
		apiErr.Category = body.Category
	}
	return apiErr
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

func idParam(id int64) map[string]string {
	return map[string]string{"id": itoa(id)}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
