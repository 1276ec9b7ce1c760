package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "choir-management-backend/internal/errors"
	"choir-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RehearsalHandler handles HTTP requests for rehearsals and promotion
type RehearsalHandler struct {
	rehearsalService *service.RehearsalService
	promotionService *service.PromotionService
}

// NewRehearsalHandler creates a new rehearsal handler
func NewRehearsalHandler(rehearsalService *service.RehearsalService, promotionService *service.PromotionService) *RehearsalHandler {
	return &RehearsalHandler{
		rehearsalService: rehearsalService,
		promotionService: promotionService,
	}
}

// BulkPromoteRequest carries the rehearsal IDs for a bulk promotion. Mode is
// optional and defaults to add; it exists so a caller asking for replace gets
// an explicit refusal rather than silent add semantics.
type BulkPromoteRequest struct {
	RehearsalIDs []uuid.UUID `json:"rehearsal_ids" binding:"required"`
	Mode         string      `json:"mode,omitempty"`
}

// CreateRehearsal creates a new rehearsal
// @Summary Create a rehearsal
// @Description Create a rehearsal attached to an existing performance, optionally with an initial song list
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param rehearsal body service.CreateRehearsalRequest true "Rehearsal data"
// @Success 201 {object} service.RehearsalResponse "Successfully created rehearsal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Performance not found"
// @Security BearerAuth
// @Router /rehearsals [post]
func (h *RehearsalHandler) CreateRehearsal(c *gin.Context) {
	var req service.CreateRehearsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rehearsal, err := h.rehearsalService.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rehearsal)
}

// GetRehearsal retrieves a rehearsal by ID
// @Summary Get rehearsal by ID
// @Description Get a rehearsal with its full ordered song list and assignments
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 200 {object} service.RehearsalResponse "Successfully retrieved rehearsal"
// @Failure 400 {object} ErrorResponse "Invalid rehearsal ID"
// @Failure 404 {object} ErrorResponse "Rehearsal not found"
// @Security BearerAuth
// @Router /rehearsals/{id} [get]
func (h *RehearsalHandler) GetRehearsal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	rehearsal, err := h.rehearsalService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rehearsal)
}

// ListRehearsals retrieves rehearsals with pagination
// @Summary List rehearsals
// @Description List rehearsals, optionally filtered to one performance
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param performance_id query string false "Performance ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.RehearsalListResponse "Successfully retrieved rehearsals"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /rehearsals [get]
func (h *RehearsalHandler) ListRehearsals(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if pidStr := c.Query("performance_id"); pidStr != "" {
		performanceID, err := uuid.Parse(pidStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
			return
		}
		rehearsals, err := h.rehearsalService.ListByPerformance(performanceID, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rehearsals)
		return
	}

	rehearsals, err := h.rehearsalService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rehearsals)
}

// GetPromotableRehearsals lists rehearsals eligible for promotion
// @Summary List promotable rehearsals
// @Description List completed rehearsals that have not yet been promoted
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Promotable rehearsals"
// @Security BearerAuth
// @Router /rehearsals/promotable [get]
func (h *RehearsalHandler) GetPromotableRehearsals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rehearsals, total, err := h.promotionService.GetPromotable(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rehearsals": rehearsals,
		"total":      total,
		"limit":      limit,
		"offset":     offset,
	})
}

// UpdateRehearsal updates an existing rehearsal
// @Summary Update rehearsal
// @Description Update a rehearsal by ID. Song list edits are rejected once the rehearsal has been promoted.
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Param rehearsal body service.UpdateRehearsalRequest true "Updated rehearsal data"
// @Success 200 {object} service.RehearsalResponse "Successfully updated rehearsal"
// @Failure 400 {object} ErrorResponse "Invalid request body or rehearsal ID"
// @Failure 404 {object} ErrorResponse "Rehearsal not found"
// @Failure 409 {object} ErrorResponse "Rehearsal already promoted"
// @Security BearerAuth
// @Router /rehearsals/{id} [put]
func (h *RehearsalHandler) UpdateRehearsal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	var req service.UpdateRehearsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rehearsal, err := h.rehearsalService.Update(id, &req)
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

	c.JSON(http.StatusOK, rehearsal)
}

// CompleteRehearsal marks a rehearsal completed
// @Summary Complete rehearsal
// @Description Mark a rehearsal completed, making it eligible for promotion
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 200 {object} service.RehearsalResponse "Successfully completed rehearsal"
// @Failure 400 {object} ErrorResponse "Invalid rehearsal ID"
// @Failure 404 {object} ErrorResponse "Rehearsal not found"
// @Security BearerAuth
// @Router /rehearsals/{id}/complete [post]
func (h *RehearsalHandler) CompleteRehearsal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	rehearsal, err := h.rehearsalService.Complete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rehearsal)
}

// PromoteRehearsal merges a rehearsal's songs into its performance
// @Summary Promote rehearsal (add)
// @Description Append the rehearsal's songs to its performance, skipping songs already present. Requires a completed, not yet promoted rehearsal.
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 200 {object} models.Performance "Updated performance"
// @Failure 400 {object} ErrorResponse "Invalid rehearsal ID"
// @Failure 404 {object} ErrorResponse "Rehearsal or performance not found"
// @Failure 409 {object} ErrorResponse "Rehearsal not completed or already promoted"
// @Security BearerAuth
// @Router /rehearsals/{id}/promote [post]
func (h *RehearsalHandler) PromoteRehearsal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	performance, err := h.promotionService.PromoteOne(id)
	if err != nil {
		h.respondPromotionError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

// ReplacePerformanceSongs replaces a performance's song list with a rehearsal's
// @Summary Promote rehearsal (replace)
// @Description Discard the performance's song list and substitute the rehearsal's. The previous list is not recoverable.
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 200 {object} models.Performance "Updated performance"
// @Failure 400 {object} ErrorResponse "Invalid rehearsal ID"
// @Failure 404 {object} ErrorResponse "Rehearsal or performance not found"
// @Failure 409 {object} ErrorResponse "Rehearsal not completed or already promoted"
// @Security BearerAuth
// @Router /rehearsals/{id}/replace [post]
func (h *RehearsalHandler) ReplacePerformanceSongs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	performance, err := h.promotionService.ReplaceOne(id)
	if err != nil {
		h.respondPromotionError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

// BulkPromoteRehearsals promotes several rehearsals in one call
// @Summary Bulk promote rehearsals
// @Description Promote each listed rehearsal under add semantics, sequentially. Failures are reported per rehearsal and never abort the batch. Requesting replace mode is rejected.
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param request body BulkPromoteRequest true "Rehearsal IDs"
// @Success 200 {object} service.BulkPromotionResult "Aggregate promotion result"
// @Failure 400 {object} ErrorResponse "Invalid request body or unsupported mode"
// @Security BearerAuth
// @Router /rehearsals/promote-bulk [post]
func (h *RehearsalHandler) BulkPromoteRehearsals(c *gin.Context) {
	var req BulkPromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := service.MergeModeAdd
	if req.Mode != "" {
		mode = service.MergeMode(req.Mode)
	}

	result, err := h.promotionService.PromoteBulk(req.RehearsalIDs, mode)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidMergeMode), errors.Is(err, apperrors.ErrBulkReplaceNotSupported):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to promote rehearsals"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteRehearsal deletes a rehearsal
// @Summary Delete rehearsal
// @Description Delete a rehearsal and its song list by ID
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 204 "Successfully deleted rehearsal"
// @Failure 400 {object} ErrorResponse "Invalid rehearsal ID"
// @Failure 404 {object} ErrorResponse "Rehearsal not found"
// @Security BearerAuth
// @Router /rehearsals/{id} [delete]
func (h *RehearsalHandler) DeleteRehearsal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	if err := h.rehearsalService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *RehearsalHandler) respondPromotionError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRehearsalNotCompleted), errors.Is(err, apperrors.ErrRehearsalAlreadyPromoted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
