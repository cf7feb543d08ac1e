// Package recurrence decides when a recurring-transaction template spawns
// its next concrete transaction.
package recurrence

import "time"

const (
	Daily   = "daily"
	Weekly  = "weekly"
	Monthly = "monthly"
	Yearly  = "yearly"
)

const dateLayout = "2006-01-02"

// NextDue computes the next occurrence after the last generated date
// (or the start date when nothing was ever generated).
//
// Monthly advances to the first day of the following month regardless of
// month length: first-of-month of last, plus 32 days, truncated back to the
// first. 2023-01-31 therefore yields 2023-02-01, not 2023-03-03.
func NextDue(last time.Time, frequency string) time.Time {
	switch frequency {
	case Daily:
		return last.AddDate(0, 0, 1)
	case Weekly:
		return last.AddDate(0, 0, 7)
	case Monthly:
		first := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, last.Location())
		bumped := first.AddDate(0, 0, 32)
		return time.Date(bumped.Year(), bumped.Month(), 1, 0, 0, 0, 0, last.Location())
	case Yearly:
		return last.AddDate(1, 0, 0)
	}
	return last
}

// Due reports whether a new instance should fire: today has reached the next
// due date and the template's end date, when set, has not passed. At most
// one instance fires per invocation; elapsed periods are never back-filled.
func Due(today, nextDue time.Time, endDate *time.Time) bool {
	if today.Before(nextDue) {
		return false
	}
	return endDate == nil || !today.After(*endDate)
}

// ParseDate parses the YYYY-MM-DD strings the templates store.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders a date back to the stored YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
