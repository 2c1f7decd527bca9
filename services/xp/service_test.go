package xp

import (
	"fmt"
	"testing"

	"studyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExperienceRepo is an in-memory ExperienceRepository.
type fakeExperienceRepo struct {
	records map[string]*models.ExperienceRecord
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{records: make(map[string]*models.ExperienceRecord)}
}

func (r *fakeExperienceRepo) GetByUserID(userID string) (*models.ExperienceRecord, error) {
	rec, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeExperienceRepo) Create(rec *models.ExperienceRecord) error {
	if _, exists := r.records[rec.UserID]; exists {
		return fmt.Errorf("record for %s already exists", rec.UserID)
	}
	cp := *rec
	r.records[rec.UserID] = &cp
	return nil
}

func (r *fakeExperienceRepo) Update(rec *models.ExperienceRecord) error {
	if _, exists := r.records[rec.UserID]; !exists {
		return fmt.Errorf("record for %s not found", rec.UserID)
	}
	cp := *rec
	r.records[rec.UserID] = &cp
	return nil
}

func TestGetProgress_NoRecordReportsZero(t *testing.T) {
	svc := &DefaultXPService{Repo: newFakeExperienceRepo()}

	view, err := svc.GetProgress("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.XP)
	assert.Equal(t, "Iniciante", view.Level)
	assert.Equal(t, 1, view.LevelNumber)
	assert.InDelta(t, 0, view.Progress, 1e-9)
}

func TestScoreQuiz_CreatesRecordLazily(t *testing.T) {
	repo := newFakeExperienceRepo()
	svc := &DefaultXPService{Repo: repo}

	result, err := svc.ScoreQuiz("user-1", 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 11, result.Delta)
	assert.Equal(t, 0, result.PreviousXP)
	assert.Equal(t, 11, result.NewXP)
	assert.Equal(t, "Iniciante", result.Level)

	stored, err := repo.GetByUserID("user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 11, stored.XP)
}

func TestScoreQuiz_ZeroDeltaStillPersists(t *testing.T) {
	repo := newFakeExperienceRepo()
	svc := &DefaultXPService{Repo: repo}

	result, err := svc.ScoreQuiz("user-1", 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Delta)
	assert.Equal(t, 0, result.NewXP)

	stored, err := repo.GetByUserID("user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestScoreQuiz_AccumulatesAcrossSubmissions(t *testing.T) {
	svc := &DefaultXPService{Repo: newFakeExperienceRepo()}

	_, err := svc.ScoreQuiz("user-1", 10, 10)
	require.NoError(t, err)

	result, err := svc.ScoreQuiz("user-1", 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 60, result.PreviousXP)
	assert.Equal(t, 120, result.NewXP)
	assert.Equal(t, "Aprendiz", result.Level)
}

func TestScoreQuiz_LevelCrossing(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.records["user-1"] = &models.ExperienceRecord{
		ID: "rec-1", UserID: "user-1", XP: 95,
	}
	svc := &DefaultXPService{Repo: repo}

	result, err := svc.ScoreQuiz("user-1", 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 106, result.NewXP)
	assert.Equal(t, "Aprendiz", result.Level)
}

func TestScoreQuiz_RejectsMalformedSubmissions(t *testing.T) {
	svc := &DefaultXPService{Repo: newFakeExperienceRepo()}

	cases := []struct {
		name    string
		total   int
		correct int
	}{
		{"zero questions", 0, 0},
		{"negative questions", -1, 0},
		{"negative correct", 10, -1},
		{"correct above total", 10, 11},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ScoreQuiz("user-1", tc.total, tc.correct)
			assert.ErrorIs(t, err, ErrInvalidQuiz)
		})
	}
}

func TestScoreQuiz_SummaryFormat(t *testing.T) {
	svc := &DefaultXPService{Repo: newFakeExperienceRepo()}

	result, err := svc.ScoreQuiz("user-1", 10, 3)
	require.NoError(t, err)
	assert.Equal(t,
		"You answered 3 of 10 correctly and earned 11 XP. Total: 11 XP. Level Iniciante (11.11%).",
		result.Summary)
}
