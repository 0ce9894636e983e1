package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/fitmetric/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	planService service.PlanService,
	workoutService service.WorkoutService,
	metricService service.MetricService,
	exerciseService service.ExerciseService,
) {

	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planService)
	workoutHandler := NewWorkoutHandler(workoutService)
	metricHandler := NewMetricHandler(metricService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", planHandler.GeneratePlan)
			planGroup.GET("/current", planHandler.GetCurrentPlan)
			planGroup.GET("", planHandler.GetPlanHistory)
			planGroup.PUT("/:id/complete", planHandler.CompletePlan)
		}

		// --- Workout Routes ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.LogWorkout)
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			workoutGroup.GET("/:id/feedback", workoutHandler.GetFeedback)
		}

		// --- Daily Metric Routes ---
		metricGroup := protected.Group("/metrics")
		{
			metricGroup.POST("", metricHandler.LogMetric)
			metricGroup.GET("/history", metricHandler.GetHistory)
			metricGroup.GET("/calories/estimate", metricHandler.EstimateCalories)
		}

		// --- Exercise Library ---
		protected.GET("/exercises", exerciseHandler.GetExercises)
	}
}
