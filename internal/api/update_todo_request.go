// File: internal/api/update_todo_request.go
package api

// UpdateTodoRequest replaces the todo wholesale; omitted fields fall back to
// their zero values.
// swagger:model api.UpdateTodoRequest
type UpdateTodoRequest struct {
	Title       string  `json:"title" validate:"required" example:"Buy bread"`
	Description *string `json:"description" example:"Before the bakery closes"`
	Completed   bool    `json:"completed" example:"true"`
}
