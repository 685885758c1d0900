package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcorey85/timestamp-api/internal/config"
	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/services"
	"github.com/bcorey85/timestamp-api/internal/utils"
	"github.com/bcorey85/timestamp-api/pkg/validator"
)

type AuthHandler struct {
	authService *services.AuthService
	config      *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, h.config.JWT.Secret, h.config.JWT.ExpireHours)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Created(c, "Successfully registered new user", models.AuthResponse{
		ID:    user.ID,
		Token: token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, h.config.JWT.Secret, h.config.JWT.ExpireHours)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, "User was successfully logged in", models.AuthResponse{
		ID:    user.ID,
		Token: token,
	})
}

// ForgotPassword always responds as if the reset email was sent, so the
// endpoint cannot be used to probe which emails have accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, "Please check the provided email for a reset link", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	resetToken := c.Param("token")

	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.ResetPassword(resetToken, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadRequest) {
			utils.Error(c, http.StatusBadRequest, "Please try your password reset request again")
			return
		}
		respondServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, h.config.JWT.Secret, h.config.JWT.ExpireHours)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, "Your password has been updated successfully", models.AuthResponse{
		ID:    user.ID,
		Token: token,
	})
}
