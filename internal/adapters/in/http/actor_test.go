package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/user"
	"deliverus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func runActorMiddleware(t *testing.T, users *MockUserRepository, userID string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(echo.GET, "/orders", nil)
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	reached := false
	handler := ActorMiddleware(users)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))
	return rec, reached
}

func TestActorMiddleware_ResolvesActor(t *testing.T) {
	id := kernel.NewUUID()
	customer, err := user.RestoreUser(id, "Pepe", "pepe@example.com", "", user.RoleCustomer)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", mock.Anything, id).Return(customer, nil)

	rec, reached := runActorMiddleware(t, users, id.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestActorMiddleware_MissingHeader(t *testing.T) {
	users := new(MockUserRepository)

	rec, reached := runActorMiddleware(t, users, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestActorMiddleware_MalformedID(t *testing.T) {
	users := new(MockUserRepository)

	rec, reached := runActorMiddleware(t, users, "not-a-uuid")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestActorMiddleware_UnknownUser(t *testing.T) {
	id := kernel.NewUUID()
	users := new(MockUserRepository)
	users.On("Get", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("user", id.String()))

	rec, reached := runActorMiddleware(t, users, id.String())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
