package api

import (
	"net/http"

	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/artpar/gardencenter/internal/core/filter"
	"github.com/artpar/gardencenter/internal/core/validation"
	"github.com/artpar/gardencenter/internal/shell/store"
)

// =============================================================================
// Product Handlers
// =============================================================================

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	criteria, err := productCriteria(r.URL.Query())
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "invalid_query")
		return
	}

	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		h.storeFailed(w, r, "failed to list products", err)
		return
	}

	h.writeJSON(w, http.StatusOK, filter.Products(criteria, products))
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "product not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to get product", err)
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if !h.decode(w, r, &product) {
		return
	}
	product.ID = 0

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		products, err := tx.ListProducts(ctx)
		if err != nil {
			return err
		}
		d := validation.ValidateProduct(validation.Create, 0, product, products)
		if err := h.gate("product", validation.Create, d); err != nil {
			return err
		}
		return tx.CreateProduct(ctx, &product)
	})
	if err != nil {
		h.mutationFailed(w, r, "product", validation.Create, err)
		return
	}

	h.logger.Info("product created", "product_id", product.ID, "sku", product.SKU)
	h.writeCreated(w, "products", product.ID, product)
}

func (h *Handler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var product domain.Product
	if !h.decode(w, r, &product) {
		return
	}

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		products, err := tx.ListProducts(ctx)
		if err != nil {
			return err
		}
		d := validation.ValidateProduct(validation.Update, id, product, products)
		if err := h.gate("product", validation.Update, d); err != nil {
			return err
		}
		return tx.UpdateProduct(ctx, &product)
	})
	if err != nil {
		h.mutationFailed(w, r, "product", validation.Update, err)
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "product not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to delete product", err)
		return
	}

	h.logger.Info("product deleted", "product_id", id)
	w.WriteHeader(http.StatusNoContent)
}
