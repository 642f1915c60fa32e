package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/utils"
)

const operatorKeyHeader = "X-Operator-Key"

// OperatorAuth guards the operator surface. The operator key lives in config
// only as a bcrypt hash and the comparison happens server-side; a missing
// hash disables the whole surface rather than opening it.
type OperatorAuth struct {
	keyHash string
	logger  logger.Interface
}

func NewOperatorAuth(keyHash string, log logger.Interface) *OperatorAuth {
	return &OperatorAuth{
		keyHash: keyHash,
		logger:  log,
	}
}

func (a *OperatorAuth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.keyHash == "" {
			a.logger.Warnw("operator endpoint hit with no operator key configured")
			utils.ErrorResponse(c, http.StatusForbidden, "operator access is not configured")
			c.Abort()
			return
		}

		key := c.GetHeader(operatorKeyHeader)
		if key == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "operator key required")
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(a.keyHash), []byte(key)); err != nil {
			a.logger.Warnw("operator key rejected", "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid operator key")
			c.Abort()
			return
		}

		c.Next()
	}
}
