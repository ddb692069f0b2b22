package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/utils"
)

// AuthHandler serves admin authentication.
type AuthHandler struct {
	auth *service.AdminAuthService
}

func NewAuthHandler(auth *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /admin/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "email and password are required")
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	utils.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}
