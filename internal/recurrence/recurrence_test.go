package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextDueDaily(t *testing.T) {
	assert.Equal(t, day("2023-06-16"), NextDue(day("2023-06-15"), Daily))
}

func TestNextDueWeekly(t *testing.T) {
	assert.Equal(t, day("2023-06-22"), NextDue(day("2023-06-15"), Weekly))
}

func TestNextDueMonthly(t *testing.T) {
	cases := []struct {
		last, want string
	}{
		{"2023-01-31", "2023-02-01"}, // truncate-to-first, not +32 days
		{"2023-01-01", "2023-02-01"},
		{"2023-02-15", "2023-03-01"},
		{"2023-12-05", "2024-01-01"},
		{"2024-02-29", "2024-03-01"},
	}
	for _, c := range cases {
		assert.Equal(t, day(c.want), NextDue(day(c.last), Monthly), "last=%s", c.last)
	}
}

func TestNextDueYearly(t *testing.T) {
	assert.Equal(t, day("2024-06-15"), NextDue(day("2023-06-15"), Yearly))
}

func TestNextDueUnknownFrequency(t *testing.T) {
	last := day("2023-06-15")
	assert.Equal(t, last, NextDue(last, "fortnightly"))
}

func TestDue(t *testing.T) {
	next := day("2023-02-01")

	assert.True(t, Due(day("2023-02-01"), next, nil))
	assert.True(t, Due(day("2023-02-10"), next, nil))
	assert.False(t, Due(day("2023-01-31"), next, nil))
}

func TestDueRespectsEndDate(t *testing.T) {
	next := day("2023-02-01")

	// end date already passed: nothing fires even though the period elapsed
	end := day("2023-01-15")
	assert.False(t, Due(day("2023-02-01"), next, &end))

	end = day("2023-02-01")
	assert.True(t, Due(day("2023-02-01"), next, &end))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2023-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-31", FormatDate(parsed))

	_, err = ParseDate("31/01/2023")
	assert.Error(t, err)
}
