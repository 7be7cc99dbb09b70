// File: internal/api/health_response.go
package api

// swagger:model api.HealthResponse
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
	Version  string `json:"version" example:"1.0.0"`
}
