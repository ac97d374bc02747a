package api

import (
	"context"
	"net/http"

	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/artpar/gardencenter/internal/core/filter"
	"github.com/artpar/gardencenter/internal/core/validation"
	"github.com/artpar/gardencenter/internal/shell/store"
)

// =============================================================================
// Order Handlers
// =============================================================================

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	criteria, err := orderCriteria(r.URL.Query())
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "invalid_query")
		return
	}

	orders, err := h.store.ListOrders(r.Context())
	if err != nil {
		h.storeFailed(w, r, "failed to list orders", err)
		return
	}

	h.writeJSON(w, http.StatusOK, filter.Orders(criteria, orders))
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "order not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to get order", err)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if !h.decode(w, r, &order) {
		return
	}
	order.ID = 0
	order.Item.ID = 0

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		oc, err := loadOrderContext(ctx, tx)
		if err != nil {
			return err
		}
		d := validation.ValidateOrder(validation.Create, 0, order, oc)
		if err := h.gate("order", validation.Create, d); err != nil {
			return err
		}
		return tx.CreateOrder(ctx, &order)
	})
	if err != nil {
		h.mutationFailed(w, r, "order", validation.Create, err)
		return
	}

	h.logger.Info("order created", "order_id", order.ID, "customer_id", order.CustomerID)
	h.writeCreated(w, "orders", order.ID, order)
}

func (h *Handler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var order domain.Order
	if !h.decode(w, r, &order) {
		return
	}

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		oc, err := loadOrderContext(ctx, tx)
		if err != nil {
			return err
		}
		d := validation.ValidateOrder(validation.Update, id, order, oc)
		if err := h.gate("order", validation.Update, d); err != nil {
			return err
		}
		return tx.UpdateOrder(ctx, &order)
	})
	if err != nil {
		h.mutationFailed(w, r, "order", validation.Update, err)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

func (h *Handler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteOrder(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "order not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to delete order", err)
		return
	}

	h.logger.Info("order deleted", "order_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// loadOrderContext reads the three collections an order is checked against.
func loadOrderContext(ctx context.Context, s store.Store) (validation.OrderContext, error) {
	var oc validation.OrderContext
	var err error

	if oc.Orders, err = s.ListOrders(ctx); err != nil {
		return oc, err
	}
	if oc.Customers, err = s.ListCustomers(ctx); err != nil {
		return oc, err
	}
	if oc.Products, err = s.ListProducts(ctx); err != nil {
		return oc, err
	}
	return oc, nil
}
