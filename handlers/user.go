package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

// GetJWT handles GET /jwt?email=. Unknown emails get 403 with an empty token.
func (h *UserHandler) GetJWT(c *gin.Context) {
	email := c.Query("email")
	token, err := h.UserService.IssueToken(c.Request.Context(), email)
	if errors.Is(err, user.ErrUserNotFound) {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}
	if err != nil {
		utils.StorageFailure(c, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// GetUsers handles GET /users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.StorageFailure(c, "failed to load users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// PostUser handles POST /users.
func (h *UserHandler) PostUser(c *gin.Context) {
	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user", err.Error())
		return
	}

	result, err := h.UserService.CreateUser(c.Request.Context(), req)
	if errors.Is(err, user.ErrInvalidEmail) {
		utils.JSONError(c, http.StatusBadRequest, "invalid user", "email must not be blank")
		return
	}
	if err != nil {
		utils.StorageFailure(c, "failed to create user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserAdmin handles GET /users/admin/:email.
func (h *UserHandler) GetUserAdmin(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.StorageFailure(c, "failed to check admin role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PutUserAdmin handles PUT /users/admin/:id.
func (h *UserHandler) PutUserAdmin(c *gin.Context) {
	id := c.Param("id")
	result, err := h.UserService.PromoteToAdmin(c.Request.Context(), id)
	if errors.Is(err, user.ErrInvalidUserID) {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id", id)
		return
	}
	if err != nil {
		utils.StorageFailure(c, "failed to promote user", err)
		return
	}
	getLogger(c).Info("User promoted to admin", zap.String("id", id))
	c.JSON(http.StatusOK, result)
}
