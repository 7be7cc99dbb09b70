// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/handler"
	"todo-api/internal/handler/auth"
	"todo-api/internal/handler/todos"
	"todo-api/internal/middleware"
	"todo-api/internal/worker"
)

// Setup registers every route. tokenTTL is the access-token validity window.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, tokenTTL time.Duration) {
	e.GET("/health", handler.HealthHandler(db))

	e.POST("/auth/token", auth.TokenHandler(db, wp, tokenTTL))

	apiTodos := e.Group("/todos", middleware.RequireAuth(db, rdb))
	apiTodos.POST("", todos.CreateTodoHandler(db))
	apiTodos.GET("", todos.ListTodosHandler(db))
	apiTodos.GET("/:id", todos.GetTodoHandler(db))
	apiTodos.PUT("/:id", todos.UpdateTodoHandler(db))
	apiTodos.DELETE("/:id", todos.DeleteTodoHandler(db))
}
