package api

import (
	"net/http"

	"github.com/artpar/gardencenter/internal/core/crypto"
	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/artpar/gardencenter/internal/core/filter"
	"github.com/artpar/gardencenter/internal/core/validation"
	"github.com/artpar/gardencenter/internal/shell/store"
	"github.com/go-chi/chi/v5"
)

// =============================================================================
// User Handlers
// =============================================================================

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.storeFailed(w, r, "failed to list users", err)
		return
	}

	h.writeJSON(w, http.StatusOK, usersToResponse(filter.Users(userCriteria(r.URL.Query()), users)))
}

func (h *Handler) handleListUsersByAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := boolParam(chi.URLParam(r, "admin"), true)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "admin must be true or false", "invalid_query")
		return
	}

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.storeFailed(w, r, "failed to list users", err)
		return
	}

	h.writeJSON(w, http.StatusOK, usersToResponse(filter.UsersByAdmin(admin, users)))
}

func (h *Handler) handleListUsersByEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := boolParam(chi.URLParam(r, "employee"), false)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "employee must be true or false", "invalid_query")
		return
	}

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.storeFailed(w, r, "failed to list users", err)
		return
	}

	h.writeJSON(w, http.StatusOK, usersToResponse(filter.UsersByEmployee(employee, users)))
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "user not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to get user", err)
		return
	}

	h.writeJSON(w, http.StatusOK, userToResponse(*user))
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if !h.decode(w, r, &user) {
		return
	}
	user.ID = 0
	user.Role.ID = 0

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		users, err := tx.ListUsers(ctx)
		if err != nil {
			return err
		}
		d := validation.ValidateUser(validation.Create, 0, user, users)
		if err := h.gate("user", validation.Create, d); err != nil {
			return err
		}
		if user.Password, err = crypto.HashPasswordWithCost(user.Password, h.passwordCost); err != nil {
			return err
		}
		return tx.CreateUser(ctx, &user)
	})
	if err != nil {
		h.mutationFailed(w, r, "user", validation.Create, err)
		return
	}

	h.logger.Info("user created", "user_id", user.ID)
	h.writeCreated(w, "users", user.ID, userToResponse(user))
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var user domain.User
	if !h.decode(w, r, &user) {
		return
	}

	ctx := r.Context()
	err := h.store.WithTx(ctx, func(tx store.Store) error {
		users, err := tx.ListUsers(ctx)
		if err != nil {
			return err
		}
		d := validation.ValidateUser(validation.Update, id, user, users)
		if err := h.gate("user", validation.Update, d); err != nil {
			return err
		}
		if user.Password, err = crypto.HashPasswordWithCost(user.Password, h.passwordCost); err != nil {
			return err
		}
		return tx.UpdateUser(ctx, &user)
	})
	if err != nil {
		h.mutationFailed(w, r, "user", validation.Update, err)
		return
	}

	h.writeJSON(w, http.StatusOK, userToResponse(user))
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "user not found", validation.NotFound.String())
			return
		}
		h.storeFailed(w, r, "failed to delete user", err)
		return
	}

	h.logger.Info("user deleted", "user_id", id)
	w.WriteHeader(http.StatusNoContent)
}
