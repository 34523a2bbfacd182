package model

// Routine is one complete assignment: exactly one section per selected
// course, pairwise non-conflicting. Produced by search, consumed by
// presentation, never mutated.
type Routine []*Section

// CoursesPerDay counts, for every day, how many sections of the routine
// meet that day. A section contributes at most 1 to a day even when it has
// multiple meetings on it.
func CoursesPerDay(sections []*Section) map[Day]int {
	perDay := make(map[Day]int)
	for _, s := range sections {
		seen := make(map[Day]bool)
		for _, t := range s.Intervals {
			if !seen[t.Day] {
				seen[t.Day] = true
				perDay[t.Day]++
			}
		}
	}
	return perDay
}

// DistinctDays is the number of days with at least one class.
func (r Routine) DistinctDays() int {
	return len(CoursesPerDay(r))
}

// HasConflict reports whether any two sections of the routine overlap in
// time. Valid routines never do; exposed for validation and tests.
func (r Routine) HasConflict() bool {
	for i := 0; i < len(r); i++ {
		for j := i + 1; j < len(r); j++ {
			if r[i].ConflictsWith(r[j]) {
				return true
			}
		}
	}
	return false
}
