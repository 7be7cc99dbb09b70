// File: internal/handler/auth/token.go
package auth

import (
	"net/http"
	"time"

	"todo-api/internal/api"
	"todo-api/internal/database"
	"todo-api/internal/service"
	"todo-api/internal/store"
	"todo-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// invalidCredentialsMessage is identical for unknown emails and wrong
// passwords so the response never confirms whether an account exists.
const invalidCredentialsMessage = "incorrect email or password"

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// TokenHandler authenticates email/password form credentials and issues a
// bearer token. Bcrypt verification runs on the worker pool.
// @Summary     Issue an access token
// @Description Verifies username (email) and password, returns a bearer JWT
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "user email"
// @Param       password formData string true "user password"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/token [post]
func TokenHandler(db database.DB, wp worker.Pool, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: invalidCredentialsMessage})
		}

		authErr := error(nil)
		if wp != nil {
			wp.SubmitWait(func() { authErr = authenticateUser(*user, req.Password) })
		} else {
			authErr = authenticateUser(*user, req.Password)
		}
		if authErr != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: invalidCredentialsMessage})
		}

		token, err := issueAccessToken(*user, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int(ttl.Seconds()),
		})
	}
}
