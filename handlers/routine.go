package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"routinely/models"
	routineService "routinely/services/routine"
	"routinely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoutineHandler bundles weekly routine endpoints around the routine service.
type RoutineHandler struct {
	RoutineService routineService.RoutineService
}

func NewRoutineHandler(svc routineService.RoutineService) *RoutineHandler {
	return &RoutineHandler{RoutineService: svc}
}

// respondRoutineError maps validation failures to 422 and everything else
// to 500.
func respondRoutineError(c *gin.Context, err error) {
	var verr routineService.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
		return
	}
	utils.GetLogger().Error("Routine operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func dayParam(c *gin.Context) (models.Day, bool) {
	day, err := models.ParseDay(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return day, true
}

func indexParam(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task index"})
		return 0, false
	}
	return idx, true
}

// GetWeekHandler handles GET /api/routine.
func (h *RoutineHandler) GetWeekHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week, err := h.RoutineService.Week(userID)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// GetTimelineHandler handles GET /api/routine/:day/timeline.
func (h *RoutineHandler) GetTimelineHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	blocks, err := h.RoutineService.Timeline(userID, day)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "blocks": blocks})
}

// AddTaskHandler handles POST /api/routine/:day/tasks.
func (h *RoutineHandler) AddTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var cand routineService.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	week, err := h.RoutineService.AddTask(userID, day, cand)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// AddTaskToDaysHandler handles POST /api/routine/tasks. The payload carries
// the candidate plus the list of target days.
func (h *RoutineHandler) AddTaskToDaysHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		Days []string                 `json:"days" binding:"required"`
		Task routineService.Candidate `json:"task" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	days := make([]models.Day, 0, len(req.Days))
	for _, raw := range req.Days {
		day, err := models.ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		days = append(days, day)
	}
	week, err := h.RoutineService.AddTaskToDays(userID, days, req.Task)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// AddTaskEveryDayHandler handles POST /api/routine/every-day/tasks.
func (h *RoutineHandler) AddTaskEveryDayHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var cand routineService.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	week, err := h.RoutineService.AddTaskEveryDay(userID, cand)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// EditTaskHandler handles PUT /api/routine/:day/tasks/:index.
func (h *RoutineHandler) EditTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var cand routineService.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	week, err := h.RoutineService.EditTask(userID, day, idx, cand)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// EditTaskEveryDayHandler handles PUT /api/routine/:day/tasks/:index/every-day.
// The task at (day, index) names the target; every day holding a task with
// that exact name gets the replacement.
func (h *RoutineHandler) EditTaskEveryDayHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	var cand routineService.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	week, err := h.RoutineService.EditTaskEveryDay(userID, day, idx, cand)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// RemoveTaskHandler handles DELETE /api/routine/:day/tasks/:index.
func (h *RoutineHandler) RemoveTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	idx, ok := indexParam(c)
	if !ok {
		return
	}
	week, err := h.RoutineService.RemoveTask(userID, day, idx)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// RemoveTaskEveryDayHandler handles DELETE /api/routine/tasks. The task name
// comes in the query string so clients can target all days at once.
func (h *RoutineHandler) RemoveTaskEveryDayHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task name is required"})
		return
	}
	week, err := h.RoutineService.RemoveTaskEveryDay(userID, name)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}
