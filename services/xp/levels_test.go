package xp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		xp   int
		want string
	}{
		{0, "Iniciante"},
		{99, "Iniciante"},
		{100, "Aprendiz"},
		{249, "Aprendiz"},
		{250, "Júnior"},
		{499, "Júnior"},
		{500, "Avançado"},
		{899, "Avançado"},
		{900, "Especialista"},
		{1499, "Especialista"},
		{1500, "Mentor"},
		{2499, "Mentor"},
		{2500, "Elite"},
		{1_000_000, "Elite"},
	}

	for _, tc := range cases {
		band := LevelFor(tc.xp)
		assert.Equalf(t, tc.want, band.Name, "xp=%d", tc.xp)
	}
}

func TestLevelFor_NumbersAreSequential(t *testing.T) {
	for i, band := range Bands {
		assert.Equal(t, i+1, band.Number)
	}
}

func TestProgressFor(t *testing.T) {
	_, progress := ProgressFor(0)
	assert.InDelta(t, 0, progress, 1e-9)

	_, progress = ProgressFor(50)
	assert.InDelta(t, 50.50505, progress, 1e-4)
	assert.InDelta(t, 50.51, RoundProgress(progress), 1e-9)

	_, progress = ProgressFor(99)
	assert.InDelta(t, 100, progress, 1e-9)

	// Band floor resets progress to zero.
	_, progress = ProgressFor(100)
	assert.InDelta(t, 0, progress, 1e-9)

	// The unbounded band always reports 100.
	band, progress := ProgressFor(2500)
	assert.True(t, band.Unbounded)
	assert.InDelta(t, 100, progress, 1e-9)

	_, progress = ProgressFor(999999)
	assert.InDelta(t, 100, progress, 1e-9)
}

func TestQuizDelta(t *testing.T) {
	cases := []struct {
		total   int
		correct int
		want    int
	}{
		{10, 3, 11},
		{5, 0, 0},
		{10, 10, 60},
		{1, 0, 8},
		{4, 0, 2},
		{20, 0, 0},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, QuizDelta(tc.total, tc.correct),
			"total=%d correct=%d", tc.total, tc.correct)
	}
}
