// File: internal/model/todo.go
package model

// Todo is a task record owned by exactly one user.
// Description is nullable at the store level.
type Todo struct {
	ID          int     `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	Completed   bool    `db:"completed" json:"completed"`
	OwnerID     int     `db:"owner_id" json:"owner_id"`
}
