package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/artpar/gardencenter/internal/shell/api/middleware"
	"github.com/artpar/gardencenter/internal/shell/api/openapi"
	"github.com/artpar/gardencenter/internal/shell/store"
	"github.com/gorilla/mux"
)

// =============================================================================
// API Setup
// =============================================================================

// APIConfig holds configuration for the API setup.
type APIConfig struct {
	Store   store.Store
	Logger  *slog.Logger
	Version string

	// Metrics enables the gate decision counters and their endpoint.
	// Nil disables both.
	Metrics     *Metrics
	MetricsPath string // Defaults to "/metrics"
}

// SetupAPI creates the complete API router: operational endpoints on the
// outer gorilla router, the REST resources on the chi handler mounted at /api.
func SetupAPI(cfg APIConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}

	router := mux.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.AccessLog(cfg.Logger))

	// Health endpoints
	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.HandleFunc("/ready", readyHandler(cfg.Store)).Methods("GET")

	// OpenAPI endpoints
	openapiGen := newOpenAPIGenerator(cfg.Version)
	router.HandleFunc("/openapi.json", openapiGen.Handler()).Methods("GET")
	router.HandleFunc("/openapi.yaml", openapiGen.YAMLHandler()).Methods("GET")

	if cfg.Metrics != nil {
		router.Handle(cfg.MetricsPath, cfg.Metrics.Handler()).Methods("GET")
	}

	// REST resources
	handler := NewHandler(cfg.Store, cfg.Logger, cfg.Metrics)
	router.PathPrefix("/api").Handler(handler.Routes())

	return router
}

// newOpenAPIGenerator registers every resource the chi handler serves.
func newOpenAPIGenerator(version string) *openapi.Generator {
	gen := openapi.NewGenerator(
		openapi.WithTitle("Garden Center API"),
		openapi.WithVersion(version),
		openapi.WithDescription("Customers, products, orders and staff users of a garden center"),
	)

	str := func(names ...string) []openapi.Filter {
		filters := make([]openapi.Filter, 0, len(names))
		for _, n := range names {
			filters = append(filters, openapi.Filter{Name: n, Type: "string"})
		}
		return filters
	}

	gen.RegisterResource(openapi.ResourceInfo{
		Name:           "customers",
		Model:          customerModel,
		Filters:        str("name", "email", "city", "state", "zipcode", "street"),
		SupportsFind:   true,
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
	})
	gen.RegisterResource(openapi.ResourceInfo{
		Name:           "products",
		Model:          productModel,
		Filters:        append(str("sku", "type", "name", "manufacturer"), openapi.Filter{Name: "price", Type: "number"}),
		SupportsFind:   true,
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
	})
	gen.RegisterResource(openapi.ResourceInfo{
		Name:  "orders",
		Model: orderModel,
		Filters: []openapi.Filter{
			{Name: "customerId", Type: "integer"},
			{Name: "date", Type: "string"},
			{Name: "orderTotal", Type: "number"},
			{Name: "productId", Type: "integer"},
			{Name: "quantity", Type: "integer"},
		},
		SupportsFind:   true,
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
	})
	gen.RegisterResource(openapi.ResourceInfo{
		Name:           "users",
		Model:          userModel,
		Filters:        str("name", "title", "email", "password"),
		SupportsFind:   true,
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
	})
	gen.RegisterView(openapi.ViewInfo{
		Path:     "/users/roles/admin",
		Resource: "users",
		Summary:  "List users by admin flag (default true)",
		Param:    "admin",
	})
	gen.RegisterView(openapi.ViewInfo{
		Path:     "/users/roles/employee",
		Resource: "users",
		Summary:  "List users by employee flag (default false)",
		Param:    "employee",
	})

	return gen
}

// =============================================================================
// Health Handlers
// =============================================================================

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "healthy"})
}

func readyHandler(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		checks := make(map[string]string)

		if err := s.Ping(r.Context()); err != nil {
			checks["database"] = "failed"
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(ReadyResponse{
				Status: "not_ready",
				Checks: checks,
			})
			return
		}
		checks["database"] = "ok"

		json.NewEncoder(w).Encode(ReadyResponse{
			Status: "ready",
			Checks: checks,
		})
	}
}
