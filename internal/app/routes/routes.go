package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjunrv/mentorhub/internal/app/controllers"
	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/middleware"
	"github.com/arjunrv/mentorhub/internal/pkg/realtime"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	mentorshipController *controllers.MentorshipController,
	historyController *controllers.HistoryController,
	messageController *controllers.MessageController,
	resourceController *controllers.ResourceController,
	realtimeHandler *realtime.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// The resource board is readable without an account
	v1.GET("/resources", resourceController.List)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile
		profile := authenticated.Group("/profile")
		{
			profile.GET("/me", profileController.GetMe)
			profile.PUT("/update", profileController.UpdateProfile)
			profile.GET("/user/:id", profileController.GetUser)
		}

		// Mentor catalog
		authenticated.GET("/mentors", profileController.ListMentors)
		authenticated.GET("/mentors/:id", profileController.GetMentor)

		// Mentorship workflow
		mentorship := authenticated.Group("/mentorship")
		{
			mentorshipStudent := mentorship.Group("")
			mentorshipStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				mentorshipStudent.POST("/request", mentorshipController.Create)
				mentorshipStudent.GET("/my-requests", mentorshipController.ListOwn)
			}

			mentorshipMentor := mentorship.Group("")
			mentorshipMentor.Use(authMiddleware.RoleRequired(models.RoleMentor))
			{
				mentorshipMentor.GET("/requests", mentorshipController.ListIncoming)
				mentorshipMentor.PUT("/respond/:id", mentorshipController.Respond)
			}
		}

		// Academic history. Students address their own record; mentors name
		// the target student in the path.
		history := authenticated.Group("/history")
		{
			history.POST("", historyController.Create)
			history.GET("", historyController.Get)
			history.PUT("", historyController.Update)
			history.DELETE("", historyController.Delete)
			history.PATCH("/semester", historyController.UpsertSemester)

			historyMentor := history.Group("")
			historyMentor.Use(authMiddleware.RoleRequired(models.RoleMentor))
			{
				historyMentor.GET("/all", historyController.ListAll)
				historyMentor.POST("/:studentId", historyController.Create)
				historyMentor.GET("/:studentId", historyController.Get)
				historyMentor.PUT("/:studentId", historyController.Update)
				historyMentor.DELETE("/:studentId", historyController.Delete)
				historyMentor.PATCH("/:studentId/semester", historyController.UpsertSemester)
			}
		}

		// Direct messaging
		messages := authenticated.Group("/messages")
		{
			messages.POST("", messageController.Send)
			messages.GET("/contacts/recent", messageController.RecentContacts)
			messages.GET("/:userId", messageController.GetConversation)
		}

		// Resource board writes
		authenticated.POST("/resources", resourceController.Create)
		authenticated.DELETE("/resources/:id", resourceController.Delete)

		// Realtime websocket endpoint
		authenticated.GET("/ws", realtimeHandler.HandleConnection)
	}
}
