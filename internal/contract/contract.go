// Package contract declara, em um único lugar, as rotas HTTP do GoYard: método, caminho,
// corpo de entrada e respostas por status. O router do servidor, o cliente Go e o
// documento Swagger são derivados destas declarações.
package contract

import (
	"net/http"
	"sort"
	"strings"

	"goyard/internal/domain"
)

// Response descreve uma resposta possível de uma rota.
// Body é um valor de exemplo do tipo devolvido (nil para corpo vazio).
type Response struct {
	Description string
	Body        interface{}
}

// QueryParam descreve um parâmetro de query string aceito por uma rota.
type QueryParam struct {
	Name        string
	Type        string // "string" ou "integer"
	Description string
}

// Route é a declaração de um endpoint.
// Path usa placeholders no formato ":nome" (e.g., "/api/warehouses/:id").
type Route struct {
	Name      string
	Tag       string
	Summary   string
	Method    string
	Path      string
	Input     interface{} // Exemplo do corpo aceito; nil quando a rota não tem corpo
	Query     []QueryParam
	Produces  string // Content-Type da resposta de sucesso; vazio = application/json
	Responses map[int]Response
}

// Pattern devolve o padrão de registro no http.ServeMux ("GET /api/warehouses/{id}").
func (r Route) Pattern() string {
	return r.Method + " " + MuxPath(r.Path)
}

// PathParams lista os nomes dos placeholders do caminho, na ordem em que aparecem.
func (r Route) PathParams() []string {
	var params []string
	for _, segment := range strings.Split(r.Path, "/") {
		if strings.HasPrefix(segment, ":") {
			params = append(params, segment[1:])
		}
	}
	return params
}

// SuccessStatus devolve o menor status 2xx declarado para a rota.
func (r Route) SuccessStatus() int {
	codes := make([]int, 0, len(r.Responses))
	for code := range r.Responses {
		if code >= 200 && code < 300 {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return http.StatusOK
	}
	sort.Ints(codes)
	return codes[0]
}

// MuxPath converte ":nome" em "{nome}", o formato de wildcard do ServeMux.
func MuxPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// BuildURL substitui cada ":nome" do caminho pelo valor correspondente em params.
// Parâmetros extras são ignorados; placeholders sem valor ficam intactos.
func BuildURL(path string, params map[string]string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		if value, ok := params[segment[1:]]; ok {
			segments[i] = value
		}
	}
	return strings.Join(segments, "/")
}

// --- Declarações ---

var (
	errValidation = Response{Description: "Dados inválidos", Body: domain.ErrorResponse{}}
	errNotFound   = Response{Description: "Recurso não encontrado", Body: domain.ErrorResponse{}}
	errInternal   = Response{Description: "Erro interno", Body: domain.ErrorResponse{}}
	noContent     = Response{Description: "Removido (ou já inexistente)"}
)

var searchParam = QueryParam{Name: "search", Type: "string", Description: "Busca por nome ou código, sem distinção de maiúsculas"}

// CRUD agrupa as cinco rotas de uma entidade.
type CRUD struct {
	List   Route
	Get    Route
	Create Route
	Update Route
	Delete Route
}

// Routes devolve as rotas do grupo na ordem list, get, create, update, delete.
func (c CRUD) Routes() []Route {
	return []Route{c.List, c.Get, c.Create, c.Update, c.Delete}
}

// Contract é o conjunto completo de rotas da API.
type Contract struct {
	Warehouses CRUD
	Yards      CRUD
	Stats      struct{ Get Route }
	Reports    struct{ Facilities Route }
}

// Routes devolve todas as rotas declaradas.
func (c Contract) Routes() []Route {
	routes := append(c.Warehouses.Routes(), c.Yards.Routes()...)
	return append(routes, c.Stats.Get, c.Reports.Facilities)
}

// API é a declaração canônica usada pelo servidor e pelo cliente.
var API = func() Contract {
	var c Contract

	c.Warehouses = CRUD{
		List: Route{
			Name: "warehouses.list", Tag: "warehouses", Summary: "Lista armazéns",
			Method: http.MethodGet, Path: "/api/warehouses",
			Query: []QueryParam{searchParam},
			Responses: map[int]Response{
				http.StatusOK:                  {Description: "Lista de armazéns", Body: []domain.Warehouse{}},
				http.StatusInternalServerError: errInternal,
			},
		},
		Get: Route{
			Name: "warehouses.get", Tag: "warehouses", Summary: "Busca um armazém",
			Method: http.MethodGet, Path: "/api/warehouses/:id",
			Responses: map[int]Response{
				http.StatusOK:         {Description: "Armazém", Body: domain.Warehouse{}},
				http.StatusBadRequest: errValidation,
				http.StatusNotFound:   errNotFound,
			},
		},
		Create: Route{
			Name: "warehouses.create", Tag: "warehouses", Summary: "Cria um armazém",
			Method: http.MethodPost, Path: "/api/warehouses",
			Input: domain.NewWarehouse{},
			Responses: map[int]Response{
				http.StatusCreated:    {Description: "Armazém criado", Body: domain.Warehouse{}},
				http.StatusBadRequest: errValidation,
			},
		},
		Update: Route{
			Name: "warehouses.update", Tag: "warehouses", Summary: "Atualiza parcialmente um armazém",
			Method: http.MethodPut, Path: "/api/warehouses/:id",
			Input: domain.WarehousePatch{},
			Responses: map[int]Response{
				http.StatusOK:         {Description: "Armazém atualizado", Body: domain.Warehouse{}},
				http.StatusBadRequest: errValidation,
				http.StatusNotFound:   errNotFound,
			},
		},
		Delete: Route{
			Name: "warehouses.delete", Tag: "warehouses", Summary: "Remove um armazém",
			Method: http.MethodDelete, Path: "/api/warehouses/:id",
			Responses: map[int]Response{
				http.StatusNoContent:  noContent,
				http.StatusBadRequest: errValidation,
			},
		},
	}

	c.Yards = CRUD{
		List: Route{
			Name: "yards.list", Tag: "yards", Summary: "Lista pátios",
			Method: http.MethodGet, Path: "/api/yards",
			Query: []QueryParam{
				searchParam,
				{Name: "warehouseId", Type: "integer", Description: "Filtra pelos pátios de um armazém"},
			},
			Responses: map[int]Response{
				http.StatusOK:                  {Description: "Lista de pátios", Body: []domain.Yard{}},
				http.StatusBadRequest:          errValidation,
				http.StatusInternalServerError: errInternal,
			},
		},
		Get: Route{
			Name: "yards.get", Tag: "yards", Summary: "Busca um pátio",
			Method: http.MethodGet, Path: "/api/yards/:id",
			Responses: map[int]Response{
				http.StatusOK:         {Description: "Pátio", Body: domain.Yard{}},
				http.StatusBadRequest: errValidation,
				http.StatusNotFound:   errNotFound,
			},
		},
		Create: Route{
			Name: "yards.create", Tag: "yards", Summary: "Cria um pátio",
			Method: http.MethodPost, Path: "/api/yards",
			Input: domain.NewYard{},
			Responses: map[int]Response{
				http.StatusCreated:    {Description: "Pátio criado", Body: domain.Yard{}},
				http.StatusBadRequest: errValidation,
			},
		},
		Update: Route{
			Name: "yards.update", Tag: "yards", Summary: "Atualiza parcialmente um pátio",
			Method: http.MethodPut, Path: "/api/yards/:id",
			Input: domain.YardPatch{},
			Responses: map[int]Response{
				http.StatusOK:         {Description: "Pátio atualizado", Body: domain.Yard{}},
				http.StatusBadRequest: errValidation,
				http.StatusNotFound:   errNotFound,
			},
		},
		Delete: Route{
			Name: "yards.delete", Tag: "yards", Summary: "Remove um pátio",
			Method: http.MethodDelete, Path: "/api/yards/:id",
			Responses: map[int]Response{
				http.StatusNoContent:  noContent,
				http.StatusBadRequest: errValidation,
			},
		},
	}

	c.Stats.Get = Route{
		Name: "stats.get", Tag: "stats", Summary: "Contadores do painel",
		Method: http.MethodGet, Path: "/api/stats",
		Responses: map[int]Response{
			http.StatusOK:                  {Description: "Estatísticas do sistema", Body: domain.SystemStats{}},
			http.StatusInternalServerError: errInternal,
		},
	}

	c.Reports.Facilities = Route{
		Name: "reports.facilities", Tag: "reports", Summary: "Exporta armazéns e pátios em Excel",
		Method: http.MethodGet, Path: "/api/reports/facilities.xlsx",
		Produces: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Responses: map[int]Response{
			http.StatusOK:                  {Description: "Planilha XLSX"},
			http.StatusInternalServerError: errInternal,
		},
	}

	return c
}()
