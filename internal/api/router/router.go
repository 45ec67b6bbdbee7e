package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"goarmazem/internal/api/auth"
	"goarmazem/internal/api/warehouse"
	"goarmazem/internal/domain"
	"goarmazem/internal/pkg/cache"
	"goarmazem/internal/pkg/logger"
	"goarmazem/internal/pkg/middleware"
)

// Deps reúne o que o roteador precisa. RateLimit nil desliga o rate limiting.
type Deps struct {
	Warehouse *warehouse.Handler
	Auth      *auth.Handler
	Tokens    middleware.TokenService
	Metrics   http.Handler
	Logger    logger.Logger

	RateLimit       cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	authenticated := middleware.NewAuthMiddleware(d.Tokens)
	operatorOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return authenticated(middleware.PermissionMiddleware(domain.RoleOperator)(h))
	}

	// --- 1. Health check, métricas e documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Autenticação ---
	mux.HandleFunc("POST /v1/auth/login", d.Auth.LoginHandler)

	// --- 3. Escrita na grade (operador autenticado) ---
	mux.HandleFunc("POST /v1/items", operatorOnly(d.Warehouse.PlaceItemHandler))
	mux.HandleFunc("DELETE /v1/locations/{row}/{shelf}/{level}/{zone}", operatorOnly(d.Warehouse.RemoveItemHandler))

	// --- 4. Consultas ---
	mux.HandleFunc("GET /v1/items", d.Warehouse.ListItemsHandler)
	mux.HandleFunc("GET /v1/items/names", d.Warehouse.KnownNamesHandler)
	mux.HandleFunc("GET /v1/items/search", d.Warehouse.SearchHandler)
	mux.HandleFunc("GET /v1/items/{id}/locations", d.Warehouse.LocationsByIDHandler)
	mux.HandleFunc("GET /v1/expiring", d.Warehouse.ExpiringHandler)
	mux.HandleFunc("GET /v1/grid", d.Warehouse.GridHandler)
	mux.HandleFunc("GET /v1/movements", d.Warehouse.MovementsHandler)

	// --- 5. Middlewares globais ---
	var handler http.Handler = mux
	if d.RateLimit != nil {
		handler = middleware.RateLimiter(d.RateLimit, d.RateLimitMax, d.RateLimitPeriod, d.Logger)(handler)
	}
	return middleware.LoggingMiddleware(d.Logger)(handler)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
