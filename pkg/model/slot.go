package model

// SlotID identifies one of the seven fixed teaching periods of a day,
// e.g. "08:00-09:20". Used for time-block exclusion matching.
type SlotID string

type slotWindow struct {
	ID    SlotID
	Start int // minutes since midnight
	End   int
}

// The week is divided into seven 80-minute periods per day.
var weekSlots = [7]slotWindow{
	{"08:00-09:20", 8 * 60, 9*60 + 20},
	{"09:30-10:50", 9*60 + 30, 10*60 + 50},
	{"11:00-12:20", 11 * 60, 12*60 + 20},
	{"12:30-13:50", 12*60 + 30, 13*60 + 50},
	{"14:00-15:20", 14 * 60, 15*60 + 20},
	{"15:30-16:50", 15*60 + 30, 16*60 + 50},
	{"17:00-18:20", 17 * 60, 18*60 + 20},
}

// SlotIDs returns all period identifiers in day order.
func SlotIDs() []SlotID {
	ids := make([]SlotID, len(weekSlots))
	for i, s := range weekSlots {
		ids[i] = s.ID
	}
	return ids
}

// SlotIndex maps a SlotID to its zero-based row in the daily grid.
func SlotIndex(id SlotID) (int, bool) {
	for i, s := range weekSlots {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

// AffectedSlots returns the periods a [start, end) interval touches.
// A period is affected only on strict overlap: an interval ending exactly
// at a period's start does not count.
func AffectedSlots(startMinute, endMinute int) []SlotID {
	var affected []SlotID
	for _, s := range weekSlots {
		if startMinute < s.End && endMinute > s.Start {
			affected = append(affected, s.ID)
		}
	}
	return affected
}
