package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campushub/internal/app/controllers"
	"github.com/kerem/campushub/internal/app/models"
	"github.com/kerem/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/students/register", authController.RegisterStudent)
		auth.POST("/students/login", authController.LoginStudent)
		auth.POST("/admins/login", authController.LoginAdmin)
	}

	// --- Public Event routes (read only) ---
	events := v1.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.GET("/:id", eventController.GetEvent)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Student-only routes
	studentProtected := authenticated.Group("")
	studentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		studentProtected.GET("/me", authController.GetProfile)
		studentProtected.PUT("/me/password", authController.ChangePassword)
		studentProtected.GET("/me/registrations", registrationController.ListMine)
		studentProtected.POST("/events/:id/registrations", registrationController.Register)
		studentProtected.DELETE("/registrations/:id", registrationController.Withdraw)
	}

	// Admin-only routes
	adminProtected := authenticated.Group("")
	adminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		adminProtected.POST("/events", eventController.CreateEvent)
		adminProtected.PUT("/events/:id", eventController.UpdateEvent)
		adminProtected.DELETE("/events/:id", eventController.DeleteEvent)
		adminProtected.GET("/events/:id/registrations", registrationController.ListParticipants)
	}
}
