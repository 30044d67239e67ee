// middleware/auth.go
package middleware

import (
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// DecodedEmailKey is the gin context key holding the verified token subject.
const DecodedEmailKey = "decodedEmail"

// TokenValidator resolves a bearer token to the email it was issued for.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// JWTAuthMiddleware requires a valid bearer token. A missing header is 401,
// a malformed, forged or expired token is 403.
func JWTAuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			utils.AbortAuth(c, err)
			return
		}

		email, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.AbortAuth(c, utils.ErrAuthenticationInvalid)
			return
		}

		c.Set(DecodedEmailKey, email)
		c.Next()
	}
}

// DecodedEmail returns the email stored by JWTAuthMiddleware.
func DecodedEmail(c *gin.Context) string {
	return c.GetString(DecodedEmailKey)
}
