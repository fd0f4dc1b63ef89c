package kernel

import "time"

// Day truncates t to midnight UTC. Tour schedules compare calendar days only,
// so every date entering the domain goes through Day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
