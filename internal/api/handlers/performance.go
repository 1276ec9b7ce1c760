package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"choir-management-backend/internal/database/models"
	apperrors "choir-management-backend/internal/errors"
	"choir-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PerformanceHandler handles HTTP requests for performances
type PerformanceHandler struct {
	performanceService *service.PerformanceService
}

// NewPerformanceHandler creates a new performance handler
func NewPerformanceHandler(performanceService *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
	}
}

// StatusChangeRequest carries the target status for advance and force-set
type StatusChangeRequest struct {
	Status models.PerformanceStatus `json:"status" binding:"required"`
}

// CreatePerformance creates a new performance
// @Summary Create a performance
// @Description Create a performance. Requires an active leadership shift; a shift conflict produces a warning on the response instead of a refusal. One performance per date.
// @Tags performances
// @Accept json
// @Produce json
// @Param performance body service.CreatePerformanceRequest true "Performance data"
// @Success 201 {object} service.PerformanceResponse "Successfully created performance"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Performance exists on date"
// @Failure 422 {object} ErrorResponse "No active shift or shift terminated"
// @Security BearerAuth
// @Router /performances [post]
func (h *PerformanceHandler) CreatePerformance(c *gin.Context) {
	var req service.CreatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performance, err := h.performanceService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoActiveShift), errors.Is(err, apperrors.ErrShiftTerminated):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, performance)
}

// GetPerformance retrieves a performance by ID
// @Summary Get performance by ID
// @Description Get a performance with its full ordered song list and assignments
// @Tags performances
// @Accept json
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Success 200 {object} service.PerformanceResponse "Successfully retrieved performance"
// @Failure 400 {object} ErrorResponse "Invalid performance ID"
// @Failure 404 {object} ErrorResponse "Performance not found"
// @Security BearerAuth
// @Router /performances/{id} [get]
func (h *PerformanceHandler) GetPerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	performance, err := h.performanceService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, performance)
}

// ListPerformances retrieves performances with optional filters
// @Summary List performances
// @Description List performances with pagination. Filter by status or a from/to date range (YYYY-MM-DD).
// @Tags performances
// @Accept json
// @Produce json
// @Param status query string false "Status filter (upcoming, in_preparation, ready, completed)"
// @Param from query string false "Range start date (YYYY-MM-DD)"
// @Param to query string false "Range end date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PerformanceListResponse "Successfully retrieved performances"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /performances [get]
func (h *PerformanceHandler) ListPerformances(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if fromStr, toStr := c.Query("from"), c.Query("to"); fromStr != "" || toStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}

		performances, err := h.performanceService.ListByDateRange(from, to, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, performances)
		return
	}

	var status *models.PerformanceStatus
	if s := c.Query("status"); s != "" {
		parsed := models.PerformanceStatus(s)
		if !parsed.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		status = &parsed
	}

	performances, err := h.performanceService.List(status, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, performances)
}

// UpdatePerformance updates an existing performance
// @Summary Update performance
// @Description Update a performance's details. Status changes go through the advance or force-status endpoints, never through here.
// @Tags performances
// @Accept json
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Param performance body service.UpdatePerformanceRequest true "Updated performance data"
// @Success 200 {object} service.PerformanceResponse "Successfully updated performance"
// @Failure 400 {object} ErrorResponse "Invalid request body or performance ID"
// @Failure 404 {object} ErrorResponse "Performance not found"
// @Failure 409 {object} ErrorResponse "Performance exists on target date"
// @Security BearerAuth
// @Router /performances/{id} [put]
func (h *PerformanceHandler) UpdatePerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	var req service.UpdatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performance, err := h.performanceService.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, performance)
}

// AdvancePerformanceStatus moves a performance to the next status
// @Summary Advance performance status
// @Description Move a performance one step along upcoming, in_preparation, ready, completed. Skips and backward moves are rejected; completed is terminal.
// @Tags performances
// @Accept json
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Param status body StatusChangeRequest true "Target status"
// @Success 200 {object} service.PerformanceResponse "Successfully advanced status"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Performance not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /performances/{id}/status [post]
func (h *PerformanceHandler) AdvancePerformanceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performance, err := h.performanceService.Advance(id, req.Status)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidStatusTransition), errors.Is(err, apperrors.ErrPerformanceCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, performance)
}

// ForcePerformanceStatus sets a performance status directly
// @Summary Force-set performance status
// @Description Administrative override that sets any valid status, skipping transition checks. Never touches the song list.
// @Tags performances
// @Accept json
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Param status body StatusChangeRequest true "Target status"
// @Success 200 {object} service.PerformanceResponse "Successfully set status"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Performance not found"
// @Security BearerAuth
// @Router /performances/{id}/force-status [post]
func (h *PerformanceHandler) ForcePerformanceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performance, err := h.performanceService.ForceStatus(id, req.Status)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, performance)
}

// DeletePerformance deletes a performance
// @Summary Delete performance
// @Description Delete a performance and its song list by ID
// @Tags performances
// @Accept json
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Success 204 "Successfully deleted performance"
// @Failure 400 {object} ErrorResponse "Invalid performance ID"
// @Failure 404 {object} ErrorResponse "Performance not found"
// @Security BearerAuth
// @Router /performances/{id} [delete]
func (h *PerformanceHandler) DeletePerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	if err := h.performanceService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
