// File: studyhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyhub/config"
	"studyhub/cron"
	"studyhub/database"
	eventRepoPkg "studyhub/database/repository/event"
	experienceRepoPkg "studyhub/database/repository/experience"
	institutionRepoPkg "studyhub/database/repository/institution"
	materialRepoPkg "studyhub/database/repository/material"
	notificationRepoPkg "studyhub/database/repository/notification"
	roomRepoPkg "studyhub/database/repository/room"
	userRepoPkg "studyhub/database/repository/user"
	"studyhub/handlers"
	"studyhub/routes"
	"studyhub/services/calendar"
	"studyhub/services/email"
	"studyhub/services/material"
	"studyhub/services/notification"
	"studyhub/services/room"
	"studyhub/services/user"
	"studyhub/services/xp"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	usersRepo := userRepoPkg.NewMongoUserRepo()
	institutionsRepo := institutionRepoPkg.NewMongoInstitutionRepo()
	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()
	roomsRepo := roomRepoPkg.NewMongoRoomRepo()
	eventsRepo := eventRepoPkg.NewMongoEventRepo()
	materialsRepo := materialRepoPkg.NewMongoMaterialRepo()
	notificationsRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:         usersRepo,
		Institutions: institutionsRepo,
		Pending:      user.NewRedisPendingStore(utils.GetPendingCacheClient()),
		Email:        email.NewSender(config.AppConfig.ResendAPIKey),
	}

	notificationService, err := notification.NewDefaultNotificationService(usersRepo, notificationsRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	xpService := &xp.DefaultXPService{Repo: experienceRepo}

	roomService := &room.DefaultRoomService{
		Repo:     roomsRepo,
		Notifier: notificationService,
	}

	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()

	calendarService := &calendar.DefaultCalendarService{
		Repo:  eventsRepo,
		Queue: reminderQueue,
	}

	materialService := &material.DefaultMaterialService{Repo: materialsRepo}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// handlers.
	userHandler := &handlers.UserHandler{UserService: userService}
	xpHandler := &handlers.XPHandler{XPService: xpService}
	roomHandler := &handlers.RoomHandler{RoomService: roomService}
	calendarHandler := &handlers.CalendarHandler{CalendarService: calendarService}
	materialHandler := &handlers.MaterialHandler{MaterialService: materialService}
	notificationHandler := &handlers.NotificationHandler{NotificationService: notificationService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: usersRepo,

		// Registration workflow endpoints.
		StartRegistrationHandler: userHandler.StartRegistrationHandler,
		ChooseRoleHandler:        userHandler.ChooseRoleHandler,
		CompleteProfileHandler:   userHandler.CompleteProfileHandler,
		ResendCodeHandler:        userHandler.ResendCodeHandler,
		VerifyEmailHandler:       userHandler.VerifyEmailHandler,

		// Auth and profile endpoints.
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		RevokeAuthTokenHandler:  userHandler.RevokeAuthTokenHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		GetUserByEmailHandler:   userHandler.GetUserByEmailHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		DeleteUserHandler:       userHandler.DeleteUserHandler,
		GetAllUsersHandler:      userHandler.GetAllUsersHandler,

		// Experience endpoints.
		GetProgressHandler: xpHandler.GetProgressHandler,
		SubmitQuizHandler:  xpHandler.SubmitQuizHandler,

		// Study room endpoints.
		CreateRoomHandler: roomHandler.CreateRoomHandler,
		GetRoomHandler:    roomHandler.GetRoomHandler,
		ListRoomsHandler:  roomHandler.ListRoomsHandler,
		JoinRoomHandler:   roomHandler.JoinRoomHandler,
		LeaveRoomHandler:  roomHandler.LeaveRoomHandler,
		DeleteRoomHandler: roomHandler.DeleteRoomHandler,

		// Calendar endpoints.
		CreateEventHandler: calendarHandler.CreateEventHandler,
		GetEventHandler:    calendarHandler.GetEventHandler,
		ListEventsHandler:  calendarHandler.ListEventsHandler,
		UpdateEventHandler: calendarHandler.UpdateEventHandler,
		DeleteEventHandler: calendarHandler.DeleteEventHandler,

		// Material endpoints.
		AddMaterialHandler:    materialHandler.AddMaterialHandler,
		GetMaterialHandler:    materialHandler.GetMaterialHandler,
		ListMaterialsHandler:  materialHandler.ListMaterialsHandler,
		RemoveMaterialHandler: materialHandler.RemoveMaterialHandler,

		// Notification endpoints.
		ListNotificationsHandler: notificationHandler.ListNotificationsHandler,
		UnreadCountHandler:       notificationHandler.UnreadCountHandler,
		MarkReadHandler:          notificationHandler.MarkReadHandler,
		MarkAllReadHandler:       notificationHandler.MarkAllReadHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic health snapshot for /health.
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetPendingCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
