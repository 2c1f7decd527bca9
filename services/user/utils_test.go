package user

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordViolations(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     int
	}{
		{"strong password", "Str0ng!pass", 0},
		{"missing uppercase and symbol", "abc12345", 2},
		{"too short only", "Ab1!xyz", 1},
		{"everything missing", "", 5},
		{"no number", "Abcdefg!", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, passwordViolations(tc.password), tc.want)
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	got, err := parseBirthDate("15-03-2004")
	require.NoError(t, err)
	assert.Equal(t, 2004, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())

	got, err = parseBirthDate("2004-03-15")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Day())

	_, err = parseBirthDate("15/03/2004")
	assert.Error(t, err)

	_, err = parseBirthDate("not a date")
	assert.Error(t, err)
}

func TestAgeInYears(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday today", time.Date(2013, time.June, 15, 0, 0, 0, 0, time.UTC), 13},
		{"birthday tomorrow", time.Date(2013, time.June, 16, 0, 0, 0, 0, time.UTC), 12},
		{"birthday passed", time.Date(2013, time.January, 1, 0, 0, 0, 0, time.UTC), 13},
		{"birthday later this year", time.Date(2013, time.December, 31, 0, 0, 0, 0, time.UTC), 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ageInYears(tc.birth, now))
		})
	}
}

func TestGenerateCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{5}$`)
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestUniqueCode_SkipsCodesHeldByOtherPendings(t *testing.T) {
	svc, _, sender := newTestService()

	// Occupy a handful of codes across other registrations, then confirm a
	// new issue never collides with them.
	held := make(map[string]bool)
	for i := 0; i < 3; i++ {
		addr := []string{"a@example.com", "b@example.com", "c@example.com"}[i]
		advanceToVerification(t, svc, sender, addr)
		reg, err := svc.Pending.Get(t.Context(), addr)
		require.NoError(t, err)
		held[reg.VerificationCode] = true
	}

	code, err := svc.uniqueCode(t.Context(), "fresh@example.com")
	require.NoError(t, err)
	assert.False(t, held[code])
}
