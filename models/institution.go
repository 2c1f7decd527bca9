package models

import "time"

// Institution is resolved by name during registration (get-or-create).
type Institution struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
