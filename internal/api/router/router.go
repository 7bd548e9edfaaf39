package router

import (
	"fmt"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"goyard/internal/api/docs"
	"goyard/internal/api/report"
	"goyard/internal/api/stats"
	"goyard/internal/api/warehouse"
	"goyard/internal/api/yard"
	"goyard/internal/contract"
	"goyard/internal/pkg/cache"
	"goyard/internal/pkg/logger"
	"goyard/internal/pkg/metrics"
	"goyard/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Warehouse *warehouse.Handler
	Yard      *yard.Handler
	Stats     *stats.Handler
	Report    *report.Handler
}

// Options controla os middlewares globais.
// Cache guarda os contadores do rate limit; nil ou RateLimitMax <= 0 o desativa.
type Options struct {
	Logger          logger.Logger
	Metrics         *metrics.HTTPMetrics
	Cache           cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration
	CORSOrigin      string
}

// NewRouter configura e retorna o roteador HTTP principal.
// As rotas de negócio vêm de contract.API; falta de handler para alguma delas é erro de montagem.
func NewRouter(h Handlers, opts Options) (http.Handler, error) {
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}

	mux := http.NewServeMux()

	// --- 1. Rotas de Health Check e operação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /metrics", opts.Metrics.Handler())

	docs.Register(contract.API)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Rotas da API, na forma declarada no contrato ---
	handlers := byRouteName(h)
	for _, route := range contract.API.Routes() {
		fn, ok := handlers[route.Name]
		if !ok || fn == nil {
			return nil, fmt.Errorf("rota %s (%s) sem handler", route.Name, route.Pattern())
		}
		mux.HandleFunc(route.Pattern(), fn)
	}

	// --- 3. Middlewares globais (o primeiro é o mais externo) ---
	chain := []func(http.Handler) http.Handler{
		middleware.Recoverer(opts.Logger),
		middleware.RequestLogger(opts.Logger),
		middleware.CORS(opts.CORSOrigin),
	}
	if opts.Cache != nil && opts.RateLimitMax > 0 {
		chain = append(chain, middleware.RateLimiter(opts.Cache, opts.RateLimitMax, opts.RateLimitPeriod, opts.Logger))
	}
	// metrics fica junto do mux para enxergar r.Pattern
	chain = append(chain, opts.Metrics.Middleware)

	return middleware.Chain(mux, chain...), nil
}

func byRouteName(h Handlers) map[string]http.HandlerFunc {
	routes := map[string]http.HandlerFunc{}
	if h.Warehouse != nil {
		routes[contract.API.Warehouses.List.Name] = h.Warehouse.GetAllWarehousesHandler
		routes[contract.API.Warehouses.Get.Name] = h.Warehouse.GetWarehouseByIDHandler
		routes[contract.API.Warehouses.Create.Name] = h.Warehouse.CreateWarehouseHandler
		routes[contract.API.Warehouses.Update.Name] = h.Warehouse.UpdateWarehouseHandler
		routes[contract.API.Warehouses.Delete.Name] = h.Warehouse.DeleteWarehouseHandler
	}
	if h.Yard != nil {
		routes[contract.API.Yards.List.Name] = h.Yard.GetAllYardsHandler
		routes[contract.API.Yards.Get.Name] = h.Yard.GetYardByIDHandler
		routes[contract.API.Yards.Create.Name] = h.Yard.CreateYardHandler
		routes[contract.API.Yards.Update.Name] = h.Yard.UpdateYardHandler
		routes[contract.API.Yards.Delete.Name] = h.Yard.DeleteYardHandler
	}
	if h.Stats != nil {
		routes[contract.API.Stats.Get.Name] = h.Stats.GetSystemStatsHandler
	}
	if h.Report != nil {
		routes[contract.API.Reports.Facilities.Name] = h.Report.ExportFacilitiesHandler
	}
	return routes
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
