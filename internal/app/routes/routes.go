package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ikatwm/meeting-management-sub000/internal/app/controllers"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/middleware"
)

// SetupRouter configures all application routes under /api. Auth routes are
// public; everything else requires a valid bearer token.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	meetingController *controllers.MeetingController,
	candidateController *controllers.CandidateController,
	positionController *controllers.PositionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)

			usersHROnly := users.Group("")
			usersHROnly.Use(authMiddleware.RoleRequired(string(models.RoleHR)))
			{
				usersHROnly.GET("", userController.List)
			}
		}

		meetings := authenticated.Group("/meetings")
		{
			meetings.GET("", meetingController.List)
			meetings.GET("/:id", meetingController.GetByID)
			meetings.POST("", meetingController.Create)
			meetings.PUT("/:id", meetingController.Update)
			meetings.DELETE("/:id", meetingController.Delete)

			meetings.GET("/:id/participants", meetingController.ListParticipants)
			meetings.POST("/:id/participants", meetingController.AddParticipant)
			meetings.DELETE("/:id/participants/:userId", meetingController.RemoveParticipant)

			meetingsHROnly := meetings.Group("")
			meetingsHROnly.Use(authMiddleware.RoleRequired(string(models.RoleHR)))
			{
				meetingsHROnly.DELETE("/:id/permanent", meetingController.HardDelete)
			}
		}

		candidates := authenticated.Group("/candidates")
		{
			candidates.GET("", candidateController.List)
			candidates.GET("/:id", candidateController.GetByID)
			candidates.POST("", candidateController.Create)
			candidates.PUT("/:id", candidateController.Update)
			candidates.DELETE("/:id", candidateController.Delete)

			candidates.GET("/:id/history", candidateController.ListHistory)
			candidates.POST("/:id/history", candidateController.AddHistory)
		}

		authenticated.GET("/positions", positionController.ListPositions)
		authenticated.GET("/positions/applied", positionController.ListAppliedPositions)
	}
}
