package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KaarimHussain/FitFlow-sub000/config"
	"github.com/KaarimHussain/FitFlow-sub000/controllers"
	"github.com/KaarimHussain/FitFlow-sub000/middlewares"
	"github.com/KaarimHussain/FitFlow-sub000/services"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(services.NewAuthService(db, cfg))
	workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(db))
	nutritionCtl := controllers.NewNutritionController(services.NewNutritionService(db))
	progressCtl := controllers.NewProgressController(services.NewProgressService(db))
	adminCtl := controllers.NewAdminController(services.NewAdminService(db))

	protect := middlewares.Protect(cfg.JWTSecret)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
		auth.GET("/me", protect, authCtl.Me)
		auth.POST("/verify", protect, authCtl.Verify)
	}

	workouts := api.Group("/workouts")
	workouts.Use(protect)
	{
		workouts.GET("", workoutCtl.List)
		workouts.POST("", workoutCtl.Create)
		workouts.GET("/:id", workoutCtl.Get)
		workouts.PUT("/:id", workoutCtl.Update)
		workouts.DELETE("/:id", workoutCtl.Delete)
	}

	nutrition := api.Group("/nutrition")
	nutrition.Use(protect)
	{
		nutrition.GET("", nutritionCtl.List)
		nutrition.POST("", nutritionCtl.Create)
		nutrition.GET("/:id", nutritionCtl.Get)
		nutrition.PUT("/:id", nutritionCtl.Update)
		nutrition.DELETE("/:id", nutritionCtl.Delete)
	}

	progress := api.Group("/progress")
	progress.Use(protect)
	{
		progress.GET("", progressCtl.List)
		progress.POST("", progressCtl.Create)
		progress.GET("/:id", progressCtl.Get)
		progress.PUT("/:id", progressCtl.Update)
		progress.DELETE("/:id", progressCtl.Delete)
	}

	admin := api.Group("/admin")
	admin.Use(protect, middlewares.AdminOnly())
	{
		admin.GET("/stats", adminCtl.Stats)
		admin.GET("/users", adminCtl.ListUsers)
		admin.GET("/workouts", adminCtl.ListAllWorkouts)
		admin.GET("/nutrition", adminCtl.ListAllNutrition)
		admin.GET("/progress", adminCtl.ListAllProgress)
		admin.DELETE("/users/:id", adminCtl.DeleteUser)
		admin.PUT("/users/:id/role", adminCtl.UpdateUserRole)
		admin.GET("/users/:id/details", adminCtl.GetUserDetails)
	}

	return r
}
