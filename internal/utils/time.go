package utils

import "time"

func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
}

// DaysAgo returns the start of the day n days before now, for trailing-window
// dashboard queries.
func DaysAgo(n int) time.Time {
	return StartOfDay(time.Now().AddDate(0, 0, -n))
}
