// File: internal/api/token_request.go
package api

// TokenRequest is the OAuth2-style password grant form; username carries the
// user's email.
// swagger:model api.TokenRequest
type TokenRequest struct {
	Username string `form:"username" validate:"required" example:"test@example.com"`
	Password string `form:"password" validate:"required" example:"testpass"`
}
