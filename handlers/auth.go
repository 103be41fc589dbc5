package handlers

import (
	"errors"
	"net/http"

	"vaxbook/models"
	"vaxbook/services/user"
	"vaxbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid credentials", "")
			return
		}
		logger.Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterCustomerHandler handles POST /api/auth/register-customer.
func (h *AuthHandler) RegisterCustomerHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	u, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		var inputErr *user.InputError
		switch {
		case errors.Is(err, user.ErrUserExists):
			utils.JSONError(c, http.StatusBadRequest, "User already exists", "")
		case errors.As(err, &inputErr):
			utils.JSONError(c, http.StatusBadRequest, inputErr.Error(), "")
		default:
			logger.Error("Registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "User registered successfully", "user": u.Claims()})
}
