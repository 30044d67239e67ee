package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authentication and authorization failures.
var (
	ErrAuthenticationMissing = errors.New("unauthorized access")
	ErrAuthenticationInvalid = errors.New("invalid or expired token")
	ErrAuthorizationDenied   = errors.New("forbidden access")
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StorageFailureResponse is sent when the backing store fails. It goes out
// with a 200 status for compatibility with existing clients.
type StorageFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// StorageFailure logs err and answers with {success:false, error:message}.
// The driver error itself never reaches the client.
func StorageFailure(c *gin.Context, message string, err error) {
	GetLogger().Error(message, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(http.StatusOK, StorageFailureResponse{Success: false, Error: message})
}

// AuthStatus maps an authentication or authorization error to its HTTP status.
func AuthStatus(err error) int {
	if errors.Is(err, ErrAuthenticationMissing) {
		return http.StatusUnauthorized
	}
	return http.StatusForbidden
}

// AbortAuth stops the request with the status that matches err.
func AbortAuth(c *gin.Context, err error) {
	c.AbortWithStatusJSON(AuthStatus(err), gin.H{"error": err.Error()})
}
