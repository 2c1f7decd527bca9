package handlers

import (
	userRepoPkg "studyhub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Registration workflow endpoints
	StartRegistrationHandler gin.HandlerFunc
	ChooseRoleHandler        gin.HandlerFunc
	CompleteProfileHandler   gin.HandlerFunc
	ResendCodeHandler        gin.HandlerFunc
	VerifyEmailHandler       gin.HandlerFunc

	// Auth and profile endpoints
	AuthenticateUserHandler gin.HandlerFunc
	RevokeAuthTokenHandler  gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	GetUserByEmailHandler   gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc
	GetAllUsersHandler      gin.HandlerFunc

	// Experience endpoints
	GetProgressHandler gin.HandlerFunc
	SubmitQuizHandler  gin.HandlerFunc

	// Study room endpoints
	CreateRoomHandler gin.HandlerFunc
	GetRoomHandler    gin.HandlerFunc
	ListRoomsHandler  gin.HandlerFunc
	JoinRoomHandler   gin.HandlerFunc
	LeaveRoomHandler  gin.HandlerFunc
	DeleteRoomHandler gin.HandlerFunc

	// Calendar endpoints
	CreateEventHandler gin.HandlerFunc
	GetEventHandler    gin.HandlerFunc
	ListEventsHandler  gin.HandlerFunc
	UpdateEventHandler gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc

	// Material endpoints
	AddMaterialHandler    gin.HandlerFunc
	GetMaterialHandler    gin.HandlerFunc
	ListMaterialsHandler  gin.HandlerFunc
	RemoveMaterialHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	UnreadCountHandler       gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc
	MarkAllReadHandler       gin.HandlerFunc
}
