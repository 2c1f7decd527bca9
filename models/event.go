package models

import "time"

// CalendarEvent is a dated entry on a user's study calendar. Events with a
// positive RemindBefore get a scheduled push reminder.
type CalendarEvent struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"userId" bson:"userId"`
	RoomID      string    `json:"roomId,omitempty" bson:"roomId,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	StartsAt    time.Time `json:"startsAt" bson:"startsAt"`
	EndsAt      time.Time `json:"endsAt" bson:"endsAt"`

	// RemindBefore is the reminder offset in minutes before StartsAt. Zero
	// means no reminder.
	RemindBefore int `json:"remindBefore,omitempty" bson:"remindBefore,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CreateEventRequest is the payload for creating a calendar event.
type CreateEventRequest struct {
	RoomID       string    `json:"roomId"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	StartsAt     time.Time `json:"startsAt" binding:"required"`
	EndsAt       time.Time `json:"endsAt" binding:"required"`
	RemindBefore int       `json:"remindBefore"`
}

// ReminderPayload is the asynq task payload for a scheduled event reminder.
type ReminderPayload struct {
	EventID  string `json:"eventId"`
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}
