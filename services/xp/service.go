package xp

import (
	"errors"
	"fmt"

	experienceRepo "studyhub/database/repository/experience"
	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidQuiz signals a malformed quiz submission.
var ErrInvalidQuiz = errors.New("invalid quiz submission")

// QuizResult reports the outcome of scoring a graded quiz.
type QuizResult struct {
	Delta      int     `json:"delta"`
	PreviousXP int     `json:"previousXp"`
	NewXP      int     `json:"newXp"`
	Level      string  `json:"level"`
	Progress   float64 `json:"progress"`
	Summary    string  `json:"summary"`
}

// ProgressView is the read model for a user's standing.
type ProgressView struct {
	UserID      string  `json:"userId"`
	XP          int     `json:"xp"`
	Level       string  `json:"level"`
	LevelNumber int     `json:"levelNumber"`
	Progress    float64 `json:"progress"`
}

type XPService interface {
	// GetProgress returns the user's current level standing. Users without
	// an experience record report zero XP.
	GetProgress(userID string) (*ProgressView, error)
	// ScoreQuiz converts a graded quiz into an XP delta and persists the
	// new total.
	ScoreQuiz(userID string, totalQuestions, correctCount int) (*QuizResult, error)
}

// DefaultXPService is the production implementation.
type DefaultXPService struct {
	Repo experienceRepo.ExperienceRepository
}

func (s *DefaultXPService) GetProgress(userID string) (*ProgressView, error) {
	rec, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	total := 0
	if rec != nil {
		total = rec.XP
	}
	band, progress := ProgressFor(total)
	return &ProgressView{
		UserID:      userID,
		XP:          total,
		Level:       band.Name,
		LevelNumber: band.Number,
		Progress:    RoundProgress(progress),
	}, nil
}

func (s *DefaultXPService) ScoreQuiz(userID string, totalQuestions, correctCount int) (*QuizResult, error) {
	if totalQuestions <= 0 || correctCount < 0 || correctCount > totalQuestions {
		return nil, ErrInvalidQuiz
	}

	rec, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	created := false
	if rec == nil {
		rec = &models.ExperienceRecord{
			ID:     uuid.New().String(),
			UserID: userID,
		}
		created = true
	}

	previous := rec.XP
	delta := QuizDelta(totalQuestions, correctCount)
	newTotal := previous + delta

	band, progress := ProgressFor(newTotal)
	rec.XP = newTotal
	rec.Level = band.Name
	rec.Progress = progress

	if created {
		err = s.Repo.Create(rec)
	} else {
		err = s.Repo.Update(rec)
	}
	if err != nil {
		utils.GetLogger().Error("ScoreQuiz: failed to persist experience", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	rounded := RoundProgress(progress)
	summary := fmt.Sprintf("You answered %d of %d correctly and earned %d XP. Total: %d XP. Level %s (%.2f%%).",
		correctCount, totalQuestions, delta, newTotal, band.Name, rounded)

	return &QuizResult{
		Delta:      delta,
		PreviousXP: previous,
		NewXP:      newTotal,
		Level:      band.Name,
		Progress:   rounded,
		Summary:    summary,
	}, nil
}
