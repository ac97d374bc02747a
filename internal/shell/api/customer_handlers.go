package api

import (
	"net/http"

	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/artpar/gardencenter/internal/core/filter"
	"github.com/artpar/gardencenter/internal/core/validation"
	"github.com/artpar/gardencenter/internal/shell/store"
)

// =============================================================================
// Customer Handlers
// =============================================================================

func (h *Handler) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomers(r.Context())
	if err != nil {
		h.storeFailed(w, r, "failed to list customers", err)
		return
	}

	h.writeJSON(w, http.StatusOK, filter.Customers(customerCriteria(r.URL.Query()), customers))
}

func (h *Handler) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.store.GetCustomer(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "customer not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to get customer", err)
		return
	}

	h.writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if !h.decode(w, r, &customer) {
		return
	}
	// Identifiers are assigned by the store
	customer.ID = 0
	customer.Address.ID = 0

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		customers, err := tx.ListCustomers(ctx)
		if err != nil {
			return err
		}
		d := validation.ValidateCustomer(validation.Create, 0, customer, customers)
		if err := h.gate("customer", validation.Create, d); err != nil {
			return err
		}
		return tx.CreateCustomer(ctx, &customer)
	})
	if err != nil {
		h.mutationFailed(w, r, "customer", validation.Create, err)
		return
	}

	h.logger.Info("customer created", "customer_id", customer.ID)
	h.writeCreated(w, "customers", customer.ID, customer)
}

func (h *Handler) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var customer domain.Customer
	if !h.decode(w, r, &customer) {
		return
	}

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		customers, err := tx.ListCustomers(ctx)
		if err != nil {
			return err
		}
		d := validation.ValidateCustomer(validation.Update, id, customer, customers)
		if err := h.gate("customer", validation.Update, d); err != nil {
			return err
		}
		return tx.UpdateCustomer(ctx, &customer)
	})
	if err != nil {
		h.mutationFailed(w, r, "customer", validation.Update, err)
		return
	}

	h.writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteCustomer(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "customer not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to delete customer", err)
		return
	}

	h.logger.Info("customer deleted", "customer_id", id)
	w.WriteHeader(http.StatusNoContent)
}
