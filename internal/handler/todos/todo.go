// File: internal/handler/todos/todo.go
package todos

import (
	"errors"
	"net/http"
	"strconv"

	"todo-api/internal/api"
	"todo-api/internal/database"
	"todo-api/internal/middleware"
	"todo-api/internal/model"
	"todo-api/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000

	notFoundMessage = "todo not found"
)

var (
	createTodo       = store.CreateTodo
	listTodosByOwner = store.ListTodosByOwner
	getTodoByID      = store.GetTodoByID
	updateTodo       = store.UpdateTodo
	deleteTodo       = store.DeleteTodo
)

// currentUser reads the authenticated principal RequireAuth put into the
// context. Its id is the only owner id the handlers ever use.
func currentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(middleware.ContextUserKey).(*model.User)
	return u, ok && u != nil
}

func toResponse(t *model.Todo) api.TodoResponse {
	return api.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		OwnerID:     t.OwnerID,
	}
}

// @Summary     Create a todo
// @Description Creates a todo owned by the authenticated user
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       todo body api.CreateTodoRequest true "todo fields"
// @Success     201 {object} api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos [post]
func CreateTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid authentication credentials"})
		}

		var req api.CreateTodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		todo, err := createTodo(c.Request().Context(), db, &model.Todo{
			Title:       req.Title,
			Description: req.Description,
			OwnerID:     user.ID,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create todo"})
		}

		return c.JSON(http.StatusCreated, toResponse(todo))
	}
}

// @Summary     List todos
// @Description Lists the authenticated user's todos, ordered by id
// @Tags        todos
// @Produce     json
// @Param       skip  query int false "offset"  default(0)
// @Param       limit query int false "maximum" default(100)
// @Success     200 {array}  api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos [get]
func ListTodosHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid authentication credentials"})
		}

		skip, err := queryInt(c, "skip", 0)
		if err != nil || skip < 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid skip parameter"})
		}
		limit, err := queryInt(c, "limit", defaultListLimit)
		if err != nil || limit < 0 || limit > maxListLimit {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid limit parameter"})
		}

		todos, err := listTodosByOwner(c.Request().Context(), db, user.ID, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list todos"})
		}

		resp := make([]api.TodoResponse, 0, len(todos))
		for i := range todos {
			resp = append(resp, toResponse(&todos[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a todo
// @Description Returns one of the authenticated user's todos by id
// @Tags        todos
// @Produce     json
// @Param       id path int true "todo id"
// @Success     200 {object} api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos/{id} [get]
func GetTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid authentication credentials"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo id"})
		}

		todo, err := getTodoByID(c.Request().Context(), db, user.ID, id)
		if err != nil {
			if errors.Is(err, store.ErrTodoNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFoundMessage})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to get todo"})
		}

		return c.JSON(http.StatusOK, toResponse(todo))
	}
}

// @Summary     Update a todo
// @Description Fully replaces title, description and completed
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "todo id"
// @Param       todo body api.UpdateTodoRequest true "replacement fields"
// @Success     200 {object} api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos/{id} [put]
func UpdateTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid authentication credentials"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo id"})
		}

		var req api.UpdateTodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		todo := &model.Todo{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Completed:   req.Completed,
			OwnerID:     user.ID,
		}
		if err := updateTodo(c.Request().Context(), db, todo); err != nil {
			if errors.Is(err, store.ErrTodoNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFoundMessage})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update todo"})
		}

		return c.JSON(http.StatusOK, toResponse(todo))
	}
}

// @Summary     Delete a todo
// @Description Deletes one of the authenticated user's todos by id
// @Tags        todos
// @Produce     json
// @Param       id path int true "todo id"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /todos/{id} [delete]
func DeleteTodoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid authentication credentials"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo id"})
		}

		if err := deleteTodo(c.Request().Context(), db, user.ID, id); err != nil {
			if errors.Is(err, store.ErrTodoNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFoundMessage})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete todo"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "todo deleted"})
	}
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
