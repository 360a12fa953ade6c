package types

import (
	"time"
)

// Calendar dates throughout the dashboard core are zero-padded
// YYYY-MM-DD strings. The zero padding makes lexicographic string
// comparison equivalent to date comparison, which is the comparison
// basis for every effective-date check below. Any producer of these
// strings must keep the exact format.
const DateFormat = "2006-01-02"

// DisplayDateFormat is the human readable form ex July 26, 2025
const DisplayDateFormat = "January 2, 2006"

// FormatDate renders a time as a comparable YYYY-MM-DD string
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// FormatDisplayDate converts a YYYY-MM-DD string to its display form.
// Returns the input unchanged when it does not parse.
func FormatDisplayDate(date string) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateFormat)
}

// IsFutureDate reports whether date is strictly after today. Both
// arguments must be YYYY-MM-DD strings. A date equal to today is
// treated as already applied, not future.
func IsFutureDate(date, today string) bool {
	return date > today
}

// IsPastOrToday reports whether date is on or before today.
func IsPastOrToday(date, today string) bool {
	return date <= today
}
