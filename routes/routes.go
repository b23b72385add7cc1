package routes

import (
	"github.com/Shxreef603/Fitly/controllers"
	"github.com/Shxreef603/Fitly/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", controllers.Health)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/goals", controllers.GetGoals)
		user.PUT("/goals", controllers.UpdateGoals)
		user.POST("/goals/suggest", controllers.SuggestGoals)
	}

	// Meal ledger routes, keyed by YYYY-MM-DD date
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.GET("/:date", controllers.GetMeals)
		meals.GET("/:date/totals", controllers.GetTotals)
		meals.POST("/:date/:slot", controllers.LogMeal)
		meals.PATCH("/:date/:slot/:id", controllers.UpdateMeal)
		meals.DELETE("/:date/:slot/:id", controllers.DeleteMeal)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/streak", controllers.GetStreak)

		protected.GET("/plan", controllers.GetPlan)
		protected.POST("/plan", controllers.SelectPlan)
		protected.PUT("/plan", controllers.ReplacePlan)
		protected.GET("/plan/progress", controllers.GetPlanProgress)

		protected.GET("/sync/status", controllers.SyncStatus)
		protected.GET("/ws/sync", controllers.SyncWS)
	}

	// AI routes carry a per-IP rate limit since each call fans out to a
	// paid upstream.
	aiGroup := r.Group("/ai")
	aiGroup.Use(middlewares.AuthMiddleware(), middlewares.RateLimit(1, 5))
	{
		aiGroup.POST("/food-scan", controllers.FoodScan)
		aiGroup.POST("/food-search", controllers.FoodSearch)
		aiGroup.POST("/chat", controllers.Chat)
	}

	return r
}
