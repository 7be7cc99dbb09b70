package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"todo-api/internal/cache"
	"todo-api/internal/database"
	"todo-api/internal/model"
	"todo-api/internal/service"
	"todo-api/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where RequireAuth stores the resolved *model.User.
const ContextUserKey = "user"

// authFailedMessage is deliberately the same for every failure mode so the
// response never reveals whether the token, the subject or the header was bad.
const authFailedMessage = "invalid authentication credentials"

const userCacheTTL = time.Minute

var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByEmail    = store.GetUserByEmail
	jsonMarshal       = json.Marshal
	jsonUnmarshal     = json.Unmarshal
)

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, authFailedMessage)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, authFailedMessage)
	}
	return parts[1], nil
}

// resolveUser turns a token subject into a user row, going through a short
// redis cache first. Cache failures fall through to the store; users are
// never mutated in scope, so a stale entry only outlives a deleted account
// by at most userCacheTTL.
func resolveUser(c echo.Context, db database.DB, rdb cache.Cache, email string) (*model.User, error) {
	ctx := c.Request().Context()
	key := "auth:user:" + email

	if rdb != nil {
		if data, err := rdb.Get(ctx, key).Bytes(); err == nil {
			u := &model.User{}
			if jsonUnmarshal(data, u) == nil {
				return u, nil
			}
		}
	}

	u, err := getUserByEmail(ctx, db, email)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		if data, err := jsonMarshal(u); err == nil {
			rdb.Set(ctx, key, data, userCacheTTL)
		}
	}
	return u, nil
}

// RequireAuth validates the bearer token and resolves its subject to a user,
// which downstream handlers read from the context as the sole authenticated
// principal. Caller-supplied owner ids are never trusted.
func RequireAuth(db database.DB, rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractToken(c)
			if err != nil {
				return err
			}
			claims, err := verifyAccessToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, authFailedMessage)
			}
			user, err := resolveUser(c, db, rdb, claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, authFailedMessage)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
