package store

import (
	"context"
	"errors"
	"fmt"

	"todo-api/internal/database"
	"todo-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrTodoNotFound covers both a missing row and a row owned by someone else;
// callers must not be able to tell the two apart.
var ErrTodoNotFound = errors.New("todo not found")

func CreateTodo(ctx context.Context, db database.DB, t *model.Todo) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO todos (title, description, completed, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		t.Title,
		t.Description,
		t.Completed,
		t.OwnerID,
	)
	if err := row.Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("CreateTodo: %w", err)
	}
	return t, nil
}

// ListTodosByOwner returns the owner's todos ordered by id ascending with
// offset/limit pagination.
func ListTodosByOwner(ctx context.Context, db database.DB, ownerID, skip, limit int) ([]model.Todo, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, completed, owner_id
		 FROM todos WHERE owner_id = $1
		 ORDER BY id ASC
		 OFFSET $2 LIMIT $3`,
		ownerID,
		skip,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTodosByOwner: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("ListTodosByOwner: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTodosByOwner: %w", err)
	}
	return todos, nil
}

func GetTodoByID(ctx context.Context, db database.DB, ownerID, todoID int) (*model.Todo, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, completed, owner_id
		 FROM todos WHERE id = $1 AND owner_id = $2`,
		todoID,
		ownerID,
	)
	t := &model.Todo{}
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("GetTodoByID: %w", err)
	}
	return t, nil
}

// UpdateTodo replaces title, description and completed of the owner's todo.
func UpdateTodo(ctx context.Context, db database.DB, t *model.Todo) error {
	tag, err := db.Exec(ctx,
		`UPDATE todos SET title = $1, description = $2, completed = $3
		 WHERE id = $4 AND owner_id = $5`,
		t.Title,
		t.Description,
		t.Completed,
		t.ID,
		t.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTodo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTodoNotFound
	}
	return nil
}

func DeleteTodo(ctx context.Context, db database.DB, ownerID, todoID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND owner_id = $2`,
		todoID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTodo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTodoNotFound
	}
	return nil
}
