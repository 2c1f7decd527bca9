package xp

import "math"

// LevelBand is a contiguous XP range mapped to a named level. Bands are
// ordered by MinXP, non-overlapping, and the last band has no upper bound.
type LevelBand struct {
	Number    int
	Name      string
	MinXP     int
	MaxXP     int
	Unbounded bool
}

// Bands is the fixed level table.
var Bands = []LevelBand{
	{Number: 1, Name: "Iniciante", MinXP: 0, MaxXP: 99},
	{Number: 2, Name: "Aprendiz", MinXP: 100, MaxXP: 249},
	{Number: 3, Name: "Júnior", MinXP: 250, MaxXP: 499},
	{Number: 4, Name: "Avançado", MinXP: 500, MaxXP: 899},
	{Number: 5, Name: "Especialista", MinXP: 900, MaxXP: 1499},
	{Number: 6, Name: "Mentor", MinXP: 1500, MaxXP: 2499},
	{Number: 7, Name: "Elite", MinXP: 2500, Unbounded: true},
}

// LevelFor returns the band containing the given XP total. The fallback to
// the first band should be unreachable with contiguous bands starting at 0.
func LevelFor(xp int) LevelBand {
	for _, band := range Bands {
		if xp >= band.MinXP && (band.Unbounded || xp <= band.MaxXP) {
			return band
		}
	}
	return Bands[0]
}

// ProgressFor returns the band for the XP total and the progress percentage
// within that band. The unbounded band always reports 100.
func ProgressFor(xp int) (LevelBand, float64) {
	band := LevelFor(xp)
	if band.Unbounded {
		return band, 100
	}
	progress := float64(xp-band.MinXP) / float64(band.MaxXP-band.MinXP) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return band, progress
}

// RoundProgress rounds to 2 decimals for presentation. Stored progress
// stays unrounded.
func RoundProgress(p float64) float64 {
	return math.Round(p*100) / 100
}

// QuizDelta converts right/wrong answer counts into an XP delta. The delta
// never goes negative.
func QuizDelta(totalQuestions, correctCount int) int {
	wrong := totalQuestions - correctCount
	delta := 10 + correctCount*5 - wrong*2
	if delta < 0 {
		return 0
	}
	return delta
}
