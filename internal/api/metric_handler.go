package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/fitness"
	"alcyxob/fitmetric/internal/service"
)

// MetricHandler holds the metric service dependency.
type MetricHandler struct {
	metricService service.MetricService
}

// NewMetricHandler creates a new MetricHandler.
func NewMetricHandler(metricService service.MetricService) *MetricHandler {
	return &MetricHandler{metricService: metricService}
}

// --- Request Structs ---

type LogMetricRequest struct {
	Weight         *float64     `json:"weight" binding:"omitempty,gt=0"`
	Steps          *int         `json:"steps" binding:"omitempty,gte=0"`
	SleepHours     *float64     `json:"sleepHours" binding:"omitempty,gte=0,lte=24"`
	Mood           *domain.Mood `json:"mood" binding:"omitempty,oneof=happy energetic tired stressed neutral"`
	WaterIntake    *float64     `json:"waterIntake" binding:"omitempty,gte=0"`
	CaloriesBurned *int         `json:"caloriesBurned" binding:"omitempty,gte=0"`
	Notes          string       `json:"notes"`
}

// --- Handler Methods ---

// LogMetric records daily measurements for today. Fields omitted from the
// request leave any previously logged values for the day untouched.
func (h *MetricHandler) LogMetric(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req LogMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	metric, err := h.metricService.LogDailyMetric(c.Request.Context(), userID, domain.MetricValues{
		Weight:         req.Weight,
		Steps:          req.Steps,
		SleepHours:     req.SleepHours,
		Mood:           req.Mood,
		WaterIntake:    req.WaterIntake,
		CaloriesBurned: req.CaloriesBurned,
	}, req.Notes)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not save metrics")
		return
	}
	c.JSON(http.StatusOK, metric)
}

// GetHistory returns the metric charting window. ?days=N overrides the
// default 30 day window.
func (h *MetricHandler) GetHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 0 {
			abortWithError(c, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
	}

	metrics, err := h.metricService.GetMetricHistory(c.Request.Context(), userID, days)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load metric history")
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// EstimateCalories returns a MET-based estimate for a session.
// ?duration=45&intensity=moderate (intensity optional).
func (h *MetricHandler) EstimateCalories(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	duration, err := strconv.ParseFloat(c.Query("duration"), 64)
	if err != nil || duration <= 0 {
		abortWithError(c, http.StatusBadRequest, "duration must be a positive number of minutes")
		return
	}
	intensity := fitness.Intensity(c.DefaultQuery("intensity", string(fitness.IntensityModerate)))

	calories, err := h.metricService.EstimateCalories(c.Request.Context(), userID, duration, intensity)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not estimate calories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"durationMinutes": duration, "intensity": intensity, "estimatedCalories": calories})
}
