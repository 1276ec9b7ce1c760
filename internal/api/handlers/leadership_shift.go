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

// LeadershipShiftHandler handles HTTP requests for leadership shifts
type LeadershipShiftHandler struct {
	shiftService *service.LeadershipShiftService
}

// NewLeadershipShiftHandler creates a new leadership shift handler
func NewLeadershipShiftHandler(shiftService *service.LeadershipShiftService) *LeadershipShiftHandler {
	return &LeadershipShiftHandler{
		shiftService: shiftService,
	}
}

// CreateShift creates a new leadership shift
// @Summary Create a leadership shift
// @Description Create a leadership assignment window. Rejects overlapping non-cancelled shifts and end dates not after start dates.
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateLeadershipShiftRequest true "Shift data"
// @Success 201 {object} service.LeadershipShiftResponse "Successfully created shift"
// @Failure 400 {object} ErrorResponse "Invalid request body or date range"
// @Failure 404 {object} ErrorResponse "Leader not found"
// @Failure 409 {object} ErrorResponse "Overlapping shift exists"
// @Security BearerAuth
// @Router /leadership-shifts [post]
func (h *LeadershipShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateLeadershipShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeaderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift retrieves a leadership shift by ID
// @Summary Get leadership shift by ID
// @Description Get a specific shift. The response carries both the stored status and the date-derived effective status.
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.LeadershipShiftResponse "Successfully retrieved shift"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /leadership-shifts/{id} [get]
func (h *LeadershipShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListShifts retrieves leadership shifts with pagination
// @Summary List leadership shifts
// @Description List all shifts, most recent start date first
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LeadershipShiftListResponse "Successfully retrieved shifts"
// @Security BearerAuth
// @Router /leadership-shifts [get]
func (h *LeadershipShiftHandler) ListShifts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	shifts, err := h.shiftService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetCurrentShift retrieves the shift currently marked active
// @Summary Get the current leadership shift
// @Description Get the shift the stored data marks active. 404 when none is marked active.
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Success 200 {object} service.LeadershipShiftResponse "Current shift"
// @Failure 404 {object} ErrorResponse "No active shift"
// @Security BearerAuth
// @Router /leadership-shifts/current [get]
func (h *LeadershipShiftHandler) GetCurrentShift(c *gin.Context) {
	shift, err := h.shiftService.GetCurrent()
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// GetUpcomingShifts retrieves shifts starting in the future
// @Summary List upcoming leadership shifts
// @Description List shifts with a future start date, soonest first
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LeadershipShiftListResponse "Upcoming shifts"
// @Security BearerAuth
// @Router /leadership-shifts/upcoming [get]
func (h *LeadershipShiftHandler) GetUpcomingShifts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	shifts, err := h.shiftService.GetUpcoming(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetShiftValidity runs the shift validity monitor
// @Summary Check leadership shift validity
// @Description Classify the stored shift data: valid (at most one active), conflicting (several active) or without an active shift. Always 200; the classification is the payload.
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Success 200 {object} service.ShiftValidityResponse "Validity classification"
// @Security BearerAuth
// @Router /leadership-shifts/validity [get]
func (h *LeadershipShiftHandler) GetShiftValidity(c *gin.Context) {
	validity, err := h.shiftService.GetValidity()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.shiftService.ToValidityResponse(validity))
}

// UpdateShift updates a leadership shift
// @Summary Update leadership shift
// @Description Update an existing shift by ID. The resulting date range must stay valid.
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.UpdateLeadershipShiftRequest true "Updated shift data"
// @Success 200 {object} service.LeadershipShiftResponse "Successfully updated shift"
// @Failure 400 {object} ErrorResponse "Invalid request body or shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /leadership-shifts/{id} [put]
func (h *LeadershipShiftHandler) UpdateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	var req service.UpdateLeadershipShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteShift deletes a leadership shift
// @Summary Delete leadership shift
// @Description Delete a shift by ID. Performances keep their leader reference.
// @Tags leadership-shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Successfully deleted shift"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /leadership-shifts/{id} [delete]
func (h *LeadershipShiftHandler) DeleteShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
