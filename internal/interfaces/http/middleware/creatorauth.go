package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dropcircle/internal/infrastructure/identity"
	"dropcircle/internal/shared/constants"
	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/utils"
)

// CreatorAuth resolves the bearer token to an external account id via the
// identity provider and stores it on the context. It only authenticates;
// whether the account is an admitted visionary is decided per use case,
// since approval can be reversed while a token is still valid.
type CreatorAuth struct {
	verifier identity.Verifier
	logger   logger.Interface
}

func NewCreatorAuth(verifier identity.Verifier, log logger.Interface) *CreatorAuth {
	return &CreatorAuth{
		verifier: verifier,
		logger:   log,
	}
}

func (a *CreatorAuth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		accountID, ok, err := a.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			a.logger.Errorw("identity provider failure", "error", err)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "Temporary problem, please try again")
			c.Abort()
			return
		}
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAccountID, accountID)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	auth := c.GetHeader(constants.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AccountIDFromContext returns the authenticated account id set by
// CreatorAuth.
func AccountIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(constants.ContextKeyAccountID)
	if !exists {
		return "", false
	}
	accountID, ok := v.(string)
	return accountID, ok && accountID != ""
}
