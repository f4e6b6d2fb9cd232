package schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseDay(c *gin.Context) (time.Time, bool) {
	q := c.Query("date")
	if q == "" {
		return time.Now(), true
	}
	day, err := time.Parse("2006-01-02", q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

// --------------------------------------------------
// Shifts
// --------------------------------------------------

func (h *Handler) CreateShift(c *gin.Context) {
	var req struct {
		StaffID   string    `json:"staff_id"`
		Day       time.Time `json:"day" binding:"required"`
		StartTime string    `json:"start_time"`
		EndTime   string    `json:"end_time"`
		Role      string    `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	shift := &Shift{
		StaffID:   req.StaffID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Role:      req.Role,
	}
	if err := h.service.CreateShift(c.Request.Context(), shift); err != nil {
		if errors.Is(err, ErrStaffOnLeave) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, shift)
}

func (h *Handler) ListShifts(c *gin.Context) {
	if staffID := c.Query("staff_id"); staffID != "" {
		shifts, err := h.service.ListShiftsByStaff(c.Request.Context(), staffID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"shifts": shifts})
		return
	}

	day, ok := parseDay(c)
	if !ok {
		return
	}
	shifts, err := h.service.ListShiftsByDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	conflicts, err := h.service.DayConflicts(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts, "leave_conflicts": conflicts})
}

func (h *Handler) DeleteShift(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteShift(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shift deleted"})
}

// --------------------------------------------------
// Leave
// --------------------------------------------------

func (h *Handler) RequestLeave(c *gin.Context) {
	var req struct {
		StartDate time.Time `json:"start_date" binding:"required"`
		EndDate   time.Time `json:"end_date" binding:"required"`
		Reason    string    `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	l := &LeaveRequest{
		StaffID:   c.GetString("userID"),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	}
	if err := h.service.RequestLeave(c.Request.Context(), l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *Handler) ListLeave(c *gin.Context) {
	requests, err := h.service.ListLeave(c.Request.Context(), LeaveStatus(c.Query("status")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leave_requests": requests})
}

func (h *Handler) DecideLeave(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	l, err := h.service.DecideLeave(c.Request.Context(), id, *req.Approve, c.GetString("userID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, l)
}
