// File: internal/api/todo_response.go
package api

// swagger:model api.TodoResponse
type TodoResponse struct {
	ID          int     `json:"id" example:"1"`
	Title       string  `json:"title" example:"Buy bread"`
	Description *string `json:"description" example:"Before the bakery closes"`
	OwnerID     int     `json:"owner_id" example:"1"`
}
