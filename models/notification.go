package models

import "time"

type Notification struct {
	ID        string            `json:"id" bson:"id"`
	UserID    string            `json:"userId" bson:"userId"`
	Type      string            `json:"type" bson:"type"`
	Title     string            `json:"title" bson:"title"`
	Body      string            `json:"body" bson:"body"`
	Data      map[string]string `json:"data,omitempty" bson:"data,omitempty"`
	Read      bool              `json:"read" bson:"read"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt" bson:"updatedAt"`
}
