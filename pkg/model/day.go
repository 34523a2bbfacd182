package model

import "strings"

// Day is a day of the academic week. The week starts on Sunday to match
// the upstream feed.
type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d Day) String() string {
	if d < Sunday || d > Saturday {
		return "Unknown"
	}
	return dayNames[d]
}

// ParseDay matches a day name case-insensitively.
func ParseDay(s string) (Day, bool) {
	for i, name := range dayNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Day(i), true
		}
	}
	return 0, false
}

// DayNames returns the week in feed order, Sunday first.
func DayNames() []string {
	names := make([]string, len(dayNames))
	copy(names, dayNames[:])
	return names
}
