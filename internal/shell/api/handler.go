// Package api provides HTTP handlers for the garden center API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/artpar/gardencenter/internal/core/crypto"
	"github.com/artpar/gardencenter/internal/core/validation"
	"github.com/artpar/gardencenter/internal/shell/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API.
type Handler struct {
	store        store.Store
	logger       *slog.Logger
	metrics      *Metrics
	passwordCost int
}

// NewHandler creates a new API handler. A nil metrics disables gate counters.
func NewHandler(s store.Store, l *slog.Logger, m *Metrics) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		store:        s,
		logger:       l,
		metrics:      m,
		passwordCost: crypto.DefaultCost,
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", h.handleCreateCustomer)
			r.Get("/", h.handleListCustomers)
			r.Get("/{id}", h.handleGetCustomer)
			r.Put("/{id}", h.handleUpdateCustomer)
			r.Delete("/{id}", h.handleDeleteCustomer)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.handleCreateProduct)
			r.Get("/", h.handleListProducts)
			r.Get("/{id}", h.handleGetProduct)
			r.Put("/{id}", h.handleUpdateProduct)
			r.Delete("/{id}", h.handleDeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.handleCreateOrder)
			r.Get("/", h.handleListOrders)
			r.Get("/{id}", h.handleGetOrder)
			r.Put("/{id}", h.handleUpdateOrder)
			r.Delete("/{id}", h.handleDeleteOrder)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.handleCreateUser)
			r.Get("/", h.handleListUsers)
			r.Get("/{id}", h.handleGetUser)
			r.Put("/{id}", h.handleUpdateUser)
			r.Delete("/{id}", h.handleDeleteUser)

			// Role lookups; admin defaults to true, employee to false
			r.Get("/roles/admin", h.handleListUsersByAdmin)
			r.Get("/roles/admin/{admin}", h.handleListUsersByAdmin)
			r.Get("/roles/employee", h.handleListUsersByEmployee)
			r.Get("/roles/employee/{employee}", h.handleListUsersByEmployee)
		})
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Helpers
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeCreated answers 201 with a Location header pointing at the new resource.
func (h *Handler) writeCreated(w http.ResponseWriter, collection string, id int64, v any) {
	w.Header().Set("Location", fmt.Sprintf("/api/v1/%s/%d", collection, id))
	h.writeJSON(w, http.StatusCreated, v)
}

// decode reads the JSON body into v, answering 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "invalid_json")
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, answering 400 when it is not an integer.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "id must be an integer", "invalid_id")
		return 0, false
	}
	return id, true
}

// gate records a decision and hands back its rejection as an error, so a
// rejected mutation rolls back the surrounding transaction.
func (h *Handler) gate(entity string, mode validation.Mode, d validation.Decision) error {
	h.metrics.ObserveDecision(entity, mode, d)
	if d.Accepted() {
		return nil
	}
	return d.Rejection
}

// mutationFailed answers a failed create or update. Gate rejections keep
// their own status; store errors are classified by sentinel.
func (h *Handler) mutationFailed(w http.ResponseWriter, r *http.Request, entity string, mode validation.Mode, err error) {
	var rejection *validation.Rejection
	if errors.As(err, &rejection) {
		h.logger.Warn("mutation rejected",
			"entity", entity,
			"mode", mode.String(),
			"check", rejection.Check,
			"field", rejection.Field,
			"kind", rejection.Kind.String(),
			"reason", rejection.Message,
			"request_id", middleware.GetReqID(r.Context()),
		)
		h.writeError(w, rejection.StatusCode(), rejection.Message, rejection.Kind.String())
		return
	}

	if errors.Is(err, crypto.ErrPasswordTooLong) {
		h.writeError(w, http.StatusBadRequest, err.Error(), validation.InvalidFormat.String())
		return
	}

	h.storeFailed(w, r, fmt.Sprintf("failed to %s %s", mode, entity), err)
}

// storeFailed answers a store error.
func (h *Handler) storeFailed(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error(), validation.NotFound.String())
	case errors.Is(err, store.ErrDuplicateEmail), errors.Is(err, store.ErrDuplicateSKU):
		h.writeError(w, http.StatusConflict, err.Error(), validation.Conflict.String())
	case errors.Is(err, store.ErrForeignKey):
		h.writeError(w, http.StatusBadRequest, err.Error(), validation.ReferentialInvalid.String())
	default:
		h.logger.Error(message, "error", err, "request_id", middleware.GetReqID(r.Context()))
		h.writeError(w, http.StatusInternalServerError, message, "internal_error")
	}
}

// isNotFound checks if an error is a not found error.
func isNotFound(err error) bool {
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return errors.Is(storeErr.Unwrap(), store.ErrNotFound)
	}
	return false
}
