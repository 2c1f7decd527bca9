package models

import "time"

// StudyRoom is a shared space students join to study a subject together.
type StudyRoom struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Subject     string    `json:"subject" bson:"subject"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	OwnerID     string    `json:"ownerId" bson:"ownerId"`
	Capacity    int       `json:"capacity" bson:"capacity"`
	Members     []string  `json:"members" bson:"members"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CreateRoomRequest is the payload for creating a study room.
type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}
