package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/services"
	"github.com/bcorey85/timestamp-api/internal/utils"
	"github.com/bcorey85/timestamp-api/pkg/validator"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID, _ := c.Get("user_id")

	tasks, err := h.taskService.GetTasks(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Task request success", tasks)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, _ := c.Get("user_id")

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid task id")
		return
	}

	task, err := h.taskService.GetTaskByID(uint(taskID), userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Task request success", task)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	task, err := h.taskService.CreateTask(userID.(uint), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "Task created successfully", task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, _ := c.Get("user_id")

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid task id")
		return
	}

	var req models.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateTask(uint(taskID), userID.(uint), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Task update successful", task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, _ := c.Get("user_id")

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid task id")
		return
	}

	if err := h.taskService.DeleteTask(uint(taskID), userID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Task delete successful", nil)
}

func (h *TaskHandler) TaskActions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid task id")
		return
	}

	if c.Query("completed") == "" {
		utils.Error(c, http.StatusBadRequest, "No action query provided")
		return
	}

	if err := h.taskService.CompleteTask(uint(taskID), userID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Task completion toggled successfully", nil)
}
