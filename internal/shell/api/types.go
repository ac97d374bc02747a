package api

import "github.com/artpar/gardencenter/internal/core/domain"

// =============================================================================
// Response Types
// =============================================================================

// UserResponse is a user as returned by the API. It never carries the password.
type UserResponse struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Title string      `json:"title"`
	Email string      `json:"email"`
	Role  domain.Role `json:"roles"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the response for health checks.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the response for readiness checks.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Title: u.Title,
		Email: u.Email,
		Role:  u.Role,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userToResponse(u))
	}
	return resp
}

// =============================================================================
// Documentation Models
// =============================================================================

var (
	customerModel = domain.Customer{}
	productModel  = domain.Product{}
	orderModel    = domain.Order{}
	userModel     = domain.User{}
)
