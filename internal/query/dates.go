package query

import "time"

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SubtractOneMonth returns the latest date before d that falls in an earlier
// month and whose day-of-month does not exceed d's, so March 31 maps to the
// last day of February rather than overflowing into March.
func SubtractOneMonth(d time.Time) time.Time {
	day := DateOf(d)
	earlier := day.AddDate(0, 0, -1)
	for earlier.Month() == day.Month() || earlier.Day() > day.Day() {
		earlier = earlier.AddDate(0, 0, -1)
	}
	return earlier
}

// PastWeek is the activity cutoff seven days before now's date.
func PastWeek(now time.Time) time.Time {
	return DateOf(now).AddDate(0, 0, -7)
}

// PastMonth is the activity cutoff one calendar month before now's date.
func PastMonth(now time.Time) time.Time {
	return SubtractOneMonth(now)
}
