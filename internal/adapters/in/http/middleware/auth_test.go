package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ckms/internal/core/domain/model/kernel"
	"ckms/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuthUser(t *testing.T) {
	subject := kernel.NewUUID()
	storeID := int64(3)

	t.Run("Success", func(t *testing.T) {
		claims := &providerClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: subject.String()},
			Email:            "staff@store.example",
			AppMetadata:      appMetadata{Role: "store_staff", StoreID: &storeID},
		}

		authUser, err := buildAuthUser(claims)
		require.NoError(t, err)

		assert.Equal(t, subject, authUser.ID)
		assert.Equal(t, "staff@store.example", authUser.Email)
		assert.Equal(t, user.RoleStoreStaff, authUser.Role)
		require.NotNil(t, authUser.StoreID)
		assert.Equal(t, storeID, *authUser.StoreID)
	})

	t.Run("MissingRole", func(t *testing.T) {
		claims := &providerClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: subject.String()},
		}

		_, err := buildAuthUser(claims)
		require.Error(t, err)
	})

	t.Run("InvalidSubject", func(t *testing.T) {
		claims := &providerClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
			AppMetadata:      appMetadata{Role: "admin"},
		}

		_, err := buildAuthUser(claims)
		require.Error(t, err)
	})
}

func TestRequireRoles(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	guard := RequireRoles(user.RoleAdmin, user.RoleManager)(next)

	newContext := func() echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("AllowedRole", func(t *testing.T) {
		c := newContext()
		SetUser(c, AuthUser{ID: kernel.NewUUID(), Role: user.RoleManager})

		require.NoError(t, guard(c))
	})

	t.Run("ForbiddenRole", func(t *testing.T) {
		c := newContext()
		SetUser(c, AuthUser{ID: kernel.NewUUID(), Role: user.RoleStoreStaff})

		err := guard(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		err := guard(newContext())
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestAuthUser_StoreScoping(t *testing.T) {
	storeID := int64(3)

	staff := AuthUser{Role: user.RoleStoreStaff, StoreID: &storeID}
	assert.True(t, staff.CanAccessStore(3))
	assert.False(t, staff.CanAccessStore(4))
	require.NotNil(t, staff.StoreScope())
	assert.Equal(t, storeID, *staff.StoreScope())

	manager := AuthUser{Role: user.RoleManager}
	assert.True(t, manager.CanAccessStore(4))
	assert.Nil(t, manager.StoreScope())

	unbound := AuthUser{Role: user.RoleStoreStaff}
	assert.False(t, unbound.CanAccessStore(3))
	assert.Nil(t, unbound.StoreScope())
}
