package feedio

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rafin/routine-genius/pkg/model"
)

const chunkSep = "|||"

var (
	dayBoundaryRe = regexp.MustCompile(`(?i)(sunday|monday|tuesday|wednesday|thursday|friday|saturday)`)
	leadingDayRe  = regexp.MustCompile(`(?i)^(sunday|monday|tuesday|wednesday|thursday|friday|saturday)`)
	timePairRe    = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*[AP]M)\s*-\s*(\d{1,2}:\d{2}\s*[AP]M)`)
	clockRe       = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)`)
)

// ParseScheduleString splits a human-readable schedule description into
// day-tagged time intervals. Chunks are delimited by commas, newlines and
// day-name boundaries; a chunk yields an interval only when it starts with
// a day name and contains an "HH:MM AM - HH:MM PM" pair. Anything left
// after the time pair becomes the room. Malformed chunks are dropped.
func ParseScheduleString(raw string) []model.TimeInterval {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	processed := strings.ReplaceAll(raw, ",", chunkSep)
	processed = strings.ReplaceAll(processed, "\n", chunkSep)
	processed = dayBoundaryRe.ReplaceAllString(processed, chunkSep+"$1")

	var intervals []model.TimeInterval
	for _, chunk := range strings.Split(processed, chunkSep) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		dayMatch := leadingDayRe.FindString(chunk)
		if dayMatch == "" {
			continue
		}
		day, ok := model.ParseDay(dayMatch)
		if !ok {
			continue
		}
		loc := timePairRe.FindStringSubmatchIndex(chunk)
		if loc == nil {
			continue
		}
		start, okStart := ToMinutes(chunk[loc[2]:loc[3]])
		end, okEnd := ToMinutes(chunk[loc[4]:loc[5]])
		if !okStart || !okEnd {
			continue
		}
		room := strings.TrimRight(strings.TrimLeft(chunk[loc[1]:], "-(), \t"), "(), \t")
		if room == "" {
			room = "N/A"
		}
		intervals = append(intervals, model.TimeInterval{
			Day:         day,
			StartMinute: start,
			EndMinute:   end,
			Room:        room,
		})
	}
	return intervals
}

// ToMinutes converts a 12-hour "HH:MM AM/PM" clock reading to minutes
// since midnight. PM adds 12 hours unless the hour is already 12; 12 AM
// maps to hour 0.
func ToMinutes(clock string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(clock)))
	if m == nil {
		return 0, false
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil || hours > 12 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil || minutes > 59 {
		return 0, false
	}
	switch m[3] {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}
	return hours*60 + minutes, true
}
