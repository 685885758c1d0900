package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/services"
	"github.com/bcorey85/timestamp-api/internal/utils"
	"github.com/bcorey85/timestamp-api/pkg/validator"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, _ := c.Get("user")

	data, err := h.userService.GetUserData(user.(*models.User))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "User request successful", gin.H{"user": data})
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if _, err := h.userService.UpdateUser(userID.(uint), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "User update successful", nil)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.userService.DeleteUser(userID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "User delete successful", nil)
}
