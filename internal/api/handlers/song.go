package handlers

import (
	"net/http"
	"strconv"

	apperrors "choir-management-backend/internal/errors"
	"choir-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SongHandler handles HTTP requests for the song catalog
type SongHandler struct {
	songService *service.SongService
}

// NewSongHandler creates a new song handler
func NewSongHandler(songService *service.SongService) *SongHandler {
	return &SongHandler{
		songService: songService,
	}
}

// CreateSong creates a new song
// @Summary Create a new song
// @Description Add a song to the catalog
// @Tags songs
// @Accept json
// @Produce json
// @Param song body service.CreateSongRequest true "Song data"
// @Success 201 {object} service.SongResponse "Successfully created song"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Song already exists"
// @Security BearerAuth
// @Router /songs [post]
func (h *SongHandler) CreateSong(c *gin.Context) {
	var req service.CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songService.Create(&req)
	if err != nil {
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, song)
}

// GetSong retrieves a song by ID
// @Summary Get song by ID
// @Description Get a specific song by its UUID
// @Tags songs
// @Accept json
// @Produce json
// @Param id path string true "Song ID (UUID)"
// @Success 200 {object} service.SongResponse "Successfully retrieved song"
// @Failure 400 {object} ErrorResponse "Invalid song ID"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [get]
func (h *SongHandler) GetSong(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	song, err := h.songService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, song)
}

// ListSongs retrieves songs with optional search
// @Summary List songs
// @Description List songs in the catalog with pagination. Use q for a title/composer search.
// @Tags songs
// @Accept json
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SongListResponse "Successfully retrieved songs"
// @Security BearerAuth
// @Router /songs [get]
func (h *SongHandler) ListSongs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	songs, err := h.songService.List(c.Query("q"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, songs)
}

// UpdateSong updates an existing song
// @Summary Update song
// @Description Update an existing song by ID
// @Tags songs
// @Accept json
// @Produce json
// @Param id path string true "Song ID (UUID)"
// @Param song body service.UpdateSongRequest true "Updated song data"
// @Success 200 {object} service.SongResponse "Successfully updated song"
// @Failure 400 {object} ErrorResponse "Invalid request body or song ID"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [put]
func (h *SongHandler) UpdateSong(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	var req service.UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, song)
}

// DeleteSong deletes a song
// @Summary Delete song
// @Description Delete a song from the catalog by ID
// @Tags songs
// @Accept json
// @Produce json
// @Param id path string true "Song ID (UUID)"
// @Success 204 "Successfully deleted song"
// @Failure 400 {object} ErrorResponse "Invalid song ID"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [delete]
func (h *SongHandler) DeleteSong(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	if err := h.songService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
