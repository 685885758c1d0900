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

type NoteHandler struct {
	noteService *services.NoteService
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID, _ := c.Get("user_id")

	notes, err := h.noteService.GetNotes(userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Note request success", notes)
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid note id")
		return
	}

	note, err := h.noteService.GetNoteByID(uint(noteID), userID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Note request success", note)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	note, err := h.noteService.CreateNote(userID.(uint), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "Note created successfully", note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid note id")
		return
	}

	var req models.NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	note, err := h.noteService.UpdateNote(uint(noteID), userID.(uint), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Note update successful", note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, _ := c.Get("user_id")

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid note id")
		return
	}

	if err := h.noteService.DeleteNote(uint(noteID), userID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Note delete successful", nil)
}

func (h *NoteHandler) NoteActions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please add a valid note id")
		return
	}

	if c.Query("completed") == "" {
		utils.Error(c, http.StatusBadRequest, "No action query provided")
		return
	}

	if err := h.noteService.CompleteNote(uint(noteID), userID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Note completion toggled successfully", nil)
}
