package ledger

import "time"

const dateKeyLayout = "2006-01-02"

// ToDateKey formats a calendar day as its canonical "YYYY-MM-DD" key,
// using the local calendar fields of t as-is (no timezone conversion).
func ToDateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey is the inverse of ToDateKey: it yields the local-calendar
// date at midnight. Malformed keys return an error.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.Local)
}
