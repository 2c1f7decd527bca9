package routes

import (
	"net/http"
	"time"

	"studyhub/handlers"
	"studyhub/middleware"
	"studyhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRegistrationRoutes registers the staged signup endpoints. All of
// them are public; the flow only yields a token after verification.
func RegisterRegistrationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/registration")
	{
		api.POST("/start", hb.StartRegistrationHandler)
		api.POST("/role", hb.ChooseRoleHandler)
		api.POST("/profile", hb.CompleteProfileHandler)
		api.POST("/resend", hb.ResendCodeHandler)
		api.POST("/verify", hb.VerifyEmailHandler)
	}
}

// RegisterUserRoutes registers login and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.GET("/email/:email", hb.GetUserByEmailHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.DELETE("/revoke", hb.RevokeAuthTokenHandler)
	}
}

// RegisterXPRoutes registers experience endpoints.
func RegisterXPRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/xp")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/progress", hb.GetProgressHandler)
		api.POST("/quiz", hb.SubmitQuizHandler)
	}
}

// RegisterRoomRoutes registers study room endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateRoomHandler)
		api.GET("", hb.ListRoomsHandler)
		api.GET("/:id", hb.GetRoomHandler)
		api.POST("/:id/join", hb.JoinRoomHandler)
		api.POST("/:id/leave", hb.LeaveRoomHandler)
		api.DELETE("/:id", hb.DeleteRoomHandler)
	}
}

// RegisterCalendarRoutes registers calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar/events")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateEventHandler)
		api.GET("", hb.ListEventsHandler)
		api.GET("/:id", hb.GetEventHandler)
		api.PUT("/:id", hb.UpdateEventHandler)
		api.DELETE("/:id", hb.DeleteEventHandler)
	}
}

// RegisterMaterialRoutes registers study material endpoints.
func RegisterMaterialRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/materials")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.AddMaterialHandler)
		api.GET("", hb.ListMaterialsHandler)
		api.GET("/:id", hb.GetMaterialHandler)
		api.DELETE("/:id", hb.RemoveMaterialHandler)
	}
}

// RegisterNotificationRoutes registers stored notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.GET("/unread", hb.UnreadCountHandler)
		api.PUT("/read-all", hb.MarkAllReadHandler)
		api.PUT("/:id/read", hb.MarkReadHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.RequireAdmin(hb.UserRepo))
		adminGroup.GET("/users", hb.GetAllUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterRegistrationRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterXPRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterMaterialRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
