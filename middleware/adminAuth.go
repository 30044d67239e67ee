package middleware

import (
	"context"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker reports whether an email holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminMiddleware must run after JWTAuthMiddleware. A failed role lookup is
// answered as a storage failure, not a denial.
func AdminMiddleware(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := DecodedEmail(c)
		if email == "" {
			utils.AbortAuth(c, utils.ErrAuthenticationMissing)
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), email)
		if err != nil {
			utils.StorageFailure(c, "failed to check admin role", err)
			return
		}
		if !isAdmin {
			zap.L().Warn("Admin access denied", zap.String("email", email))
			utils.AbortAuth(c, utils.ErrAuthorizationDenied)
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
