package model

import "fmt"

// TimeInterval is a single weekly meeting of a section. Start and End are
// minutes since midnight, Start < End. Immutable once parsed.
type TimeInterval struct {
	Day         Day
	StartMinute int
	EndMinute   int
	Room        string
}

// Overlaps reports whether two intervals collide. Interval ends are open,
// so back-to-back meetings (End == Start) do not overlap.
func (t TimeInterval) Overlaps(other TimeInterval) bool {
	if t.Day != other.Day {
		return false
	}
	return max(t.StartMinute, other.StartMinute) < min(t.EndMinute, other.EndMinute)
}

func (t TimeInterval) String() string {
	return fmt.Sprintf("%s %s-%s", t.Day, FormatMinutes(t.StartMinute), FormatMinutes(t.EndMinute))
}

// FormatMinutes renders minutes since midnight as 24-hour HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
