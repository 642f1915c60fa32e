package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/infrastructure/identity"
	"dropcircle/internal/shared/constants"
	"dropcircle/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingVerifier struct{}

func (f *failingVerifier) Verify(context.Context, string) (string, bool, error) {
	return "", false, errors.New("provider unreachable")
}

func newAuthContext(authorization string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/circles", nil)
	if authorization != "" {
		c.Request.Header.Set(constants.HeaderAuthorization, authorization)
	}
	return c, w
}

func TestCreatorAuth_Require(t *testing.T) {
	verifier := identity.NewStaticVerifier(map[string]string{
		"valid-token": "acct_1",
	})
	auth := NewCreatorAuth(verifier, logger.NewLogger())

	t.Run("valid bearer token sets the account id", func(t *testing.T) {
		c, w := newAuthContext("Bearer valid-token")
		auth.Require()(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)

		accountID, ok := AccountIDFromContext(c)
		require.True(t, ok)
		assert.Equal(t, "acct_1", accountID)
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		c, w := newAuthContext("")
		auth.Require()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown token returns 401", func(t *testing.T) {
		c, w := newAuthContext("Bearer wrong-token")
		auth.Require()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non bearer scheme returns 401", func(t *testing.T) {
		c, w := newAuthContext("Basic dXNlcjpwYXNz")
		auth.Require()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("provider failure returns 503 not 401", func(t *testing.T) {
		failing := NewCreatorAuth(&failingVerifier{}, logger.NewLogger())

		c, w := newAuthContext("Bearer valid-token")
		failing.Require()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAccountIDFromContext(t *testing.T) {
	t.Run("unset context yields no account", func(t *testing.T) {
		c, _ := newAuthContext("")
		_, ok := AccountIDFromContext(c)
		assert.False(t, ok)
	})

	t.Run("empty account id is treated as unset", func(t *testing.T) {
		c, _ := newAuthContext("")
		c.Set(constants.ContextKeyAccountID, "")
		_, ok := AccountIDFromContext(c)
		assert.False(t, ok)
	})
}
