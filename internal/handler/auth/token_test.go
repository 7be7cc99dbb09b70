package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todo-api/internal/database"
	"todo-api/internal/model"
	"todo-api/internal/service"
	"todo-api/internal/store"
	"todo-api/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	getUserByEmail = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
}

// helper to build echo context
func newTokenCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func TestTokenHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{}
	ttl := 30 * time.Minute

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newTokenCtx(e, "")
	h := TokenHandler(db, nil, ttl)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newTokenCtx(e, "username=test@example.com&password=testpass")
	require.NoError(t, TokenHandler(db, nil, ttl)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown email
	e = echo.New()
	e.Validator = okValidator{}
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("no rows")
	}
	ctx, rec = newTokenCtx(e, "username=test@example.com&password=testpass")
	require.NoError(t, TokenHandler(db, nil, ttl)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), invalidCredentialsMessage)

	// wrong password: same status and message as unknown email
	hash, err := service.HashPassword("other")
	require.NoError(t, err)
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return &model.User{ID: 1, Email: "test@example.com", PasswordHash: hash}, nil
	}
	ctx, rec = newTokenCtx(e, "username=test@example.com&password=testpass")
	require.NoError(t, TokenHandler(db, nil, ttl)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), invalidCredentialsMessage)

	// issue token error (JWT_SECRET not set)
	goodHash, err := service.HashPassword("testpass")
	require.NoError(t, err)
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return &model.User{ID: 1, Email: "test@example.com", PasswordHash: goodHash}, nil
	}
	t.Setenv("JWT_SECRET", "")
	ctx, rec = newTokenCtx(e, "username=test@example.com&password=testpass")
	require.NoError(t, TokenHandler(db, nil, ttl)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	t.Setenv("JWT_SECRET", "s")
	ctx, rec = newTokenCtx(e, "username=test@example.com&password=testpass")
	require.NoError(t, TokenHandler(db, nil, ttl)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")
	require.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	require.Contains(t, rec.Body.String(), `"expires_in":1800`)

	// success through a real worker pool
	wp := worker.NewPool(1)
	defer wp.Stop()
	ctx, rec = newTokenCtx(e, "username=test@example.com&password=testpass")
	require.NoError(t, TokenHandler(db, wp, ttl)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}
