// File: internal/api/error_response.go
package api

// ErrorResponse is the error body every endpoint returns.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
