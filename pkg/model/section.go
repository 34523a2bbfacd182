package model

import "strings"

// TBA is the sentinel faculty value for sections without an assigned teacher.
const TBA = "TBA"

// Section is one offered instance of a course with its own schedule,
// faculty and seat capacity.
type Section struct {
	CourseCode    string
	Label         string
	Faculty       []string // never empty; [TBA] when unknown
	Intervals     []TimeInterval
	Capacity      int
	ConsumedSeats int
	RawSchedule   string
	ExamMid       string // empty when not announced
	ExamFinal     string
}

// AvailableSeats is capacity minus consumed seats, floored at zero.
func (s *Section) AvailableSeats() int {
	if n := s.Capacity - s.ConsumedSeats; n > 0 {
		return n
	}
	return 0
}

// IsTBAOnly reports whether the section has no real faculty assigned.
func (s *Section) IsTBAOnly() bool {
	return len(s.Faculty) == 1 && s.Faculty[0] == TBA
}

// FacultyLine joins faculty names for display.
func (s *Section) FacultyLine() string {
	return strings.Join(s.Faculty, ", ")
}

// MeetsOn reports whether any meeting of the section falls on the given day.
func (s *Section) MeetsOn(day Day) bool {
	for _, t := range s.Intervals {
		if t.Day == day {
			return true
		}
	}
	return false
}

// ConflictsWith reports a strict time overlap with another section.
func (s *Section) ConflictsWith(other *Section) bool {
	for _, a := range s.Intervals {
		for _, b := range other.Intervals {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}
