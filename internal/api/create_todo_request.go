// File: internal/api/create_todo_request.go
package api

// swagger:model api.CreateTodoRequest
type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required" example:"Buy bread"`
	Description *string `json:"description" example:"Before the bakery closes"`
}
