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

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	userID, _ := c.Get("user_id")

	projects, err := h.projectService.GetProjects(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Project request success", projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, _ := c.Get("user_id")

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid project id")
		return
	}

	project, err := h.projectService.GetProjectByID(uint(projectID), userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Project request success", project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	project, err := h.projectService.CreateProject(userID.(uint), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "Project created successfully", project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, _ := c.Get("user_id")

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid project id")
		return
	}

	var req models.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(uint(projectID), userID.(uint), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Project update successful", project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, _ := c.Get("user_id")

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid project id")
		return
	}

	if err := h.projectService.DeleteProject(uint(projectID), userID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Project delete successful", nil)
}

// ProjectActions dispatches on the action query. The only supported action
// is the completion toggle.
func (h *ProjectHandler) ProjectActions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid project id")
		return
	}

	if c.Query("completed") == "" {
		utils.Error(c, http.StatusBadRequest, "No action query provided")
		return
	}

	if err := h.projectService.CompleteProject(uint(projectID), userID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Project completion toggled successfully", nil)
}
