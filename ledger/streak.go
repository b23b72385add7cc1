package ledger

import "time"

// Ledger maps a date key ("YYYY-MM-DD") to that day's slots. A missing
// key means no data for the day, same as four empty slots.
type Ledger map[string]DaySlots

// maxStreakDays bounds the backward walk to one year.
const maxStreakDays = 365

// CalculateStreak counts consecutive active days ending at (and
// including) today. A day is active when any slot holds at least one
// entry; totals play no part. If today is inactive the streak is 0.
func CalculateStreak(l Ledger, today time.Time) int {
	if len(l) == 0 {
		return 0
	}

	active := make(map[string]bool, len(l))
	for key, day := range l {
		if EntryCount(day) > 0 {
			active[key] = true
		}
	}
	if len(active) == 0 {
		return 0
	}

	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		key := ToDateKey(today.AddDate(0, 0, -i))
		if !active[key] {
			break
		}
		streak++
	}
	return streak
}
