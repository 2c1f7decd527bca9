package models

import "time"

// ExperienceRecord tracks a user's accumulated XP. One record per user,
// created lazily on the first XP-affecting event.
type ExperienceRecord struct {
	ID       string  `json:"id" bson:"id"`
	UserID   string  `json:"userId" bson:"userId"`
	XP       int     `json:"xp" bson:"xp"`
	Level    string  `json:"level" bson:"level"`
	Progress float64 `json:"progress" bson:"progress"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// QuizSubmission is the payload for a graded quiz.
type QuizSubmission struct {
	TotalQuestions int `json:"totalQuestions" binding:"required"`
	CorrectCount   int `json:"correctCount"`
}
