package handler

import "github.com/gasixone/crmpro-backend/internal/core/domain"

// messageResponse is the uniform envelope for errors and message-only
// successes: {"success":bool,"message":string}.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Company string `json:"company" validate:"required"`
	Phone   string `json:"phone"`
	Plan    string `json:"plan"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Company string `json:"company" validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Message string `json:"message"`
}

// --- Response types ---

// registeredUser is the public projection returned on registration.
type registeredUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

type registerResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	User    registeredUser `json:"user"`
}

// loginUser is the public projection returned on login.
type loginUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Plan    string `json:"plan"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

// currentUserResponse returns the stored record as-is. The projection is
// deliberately not applied here: password and token fields go out verbatim.
type currentUserResponse struct {
	Success bool        `json:"success"`
	User    domain.User `json:"user"`
}

type listUsersResponse struct {
	Success bool          `json:"success"`
	Users   []domain.User `json:"users"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
