package feedio

import (
	"fmt"
	"strings"
	"time"
)

var examTimeLayouts = []string{"15:04:05", "15:04"}

// FormatExamDetail renders an exam's date and time window as a short
// human-readable string, e.g. "Dec 19, 2025 9:00 AM - 11:00 AM". When the
// fields cannot be parsed it falls back to the raw strings with times
// truncated to HH:MM; it never fails the record.
func FormatExamDetail(date, start, end string) string {
	if date == "" || start == "" || end == "" {
		return ""
	}
	day, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return rawExamDetail(date, start, end)
	}
	startAt, okStart := parseExamTime(start)
	endAt, okEnd := parseExamTime(end)
	if !okStart || !okEnd {
		return rawExamDetail(date, start, end)
	}
	return fmt.Sprintf("%s %s - %s",
		day.Format("Jan 2, 2006"),
		startAt.Format("3:04 PM"),
		endAt.Format("3:04 PM"))
}

func parseExamTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range examTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func rawExamDetail(date, start, end string) string {
	return fmt.Sprintf("%s %s - %s", date, truncateClock(start), truncateClock(end))
}

func truncateClock(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
