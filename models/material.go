package models

import "time"

// Material is catalog metadata for a study resource. The binary content
// itself lives behind the URL; this service only keeps the catalog.
type Material struct {
	ID         string    `json:"id" bson:"id"`
	Title      string    `json:"title" bson:"title"`
	Subject    string    `json:"subject" bson:"subject"`
	Kind       string    `json:"kind" bson:"kind"` // e.g. "pdf", "video", "link"
	URL        string    `json:"url" bson:"url"`
	UploaderID string    `json:"uploaderId" bson:"uploaderId"`
	RoomID     string    `json:"roomId,omitempty" bson:"roomId,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CreateMaterialRequest is the payload for cataloguing a material.
type CreateMaterialRequest struct {
	Title   string `json:"title" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Kind    string `json:"kind" binding:"required"`
	URL     string `json:"url" binding:"required"`
	RoomID  string `json:"roomId"`
}
