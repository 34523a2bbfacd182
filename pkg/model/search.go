package model

// SearchConfig carries one search invocation's constraints. It is built
// fresh per search; the generator never reads ambient state.
type SearchConfig struct {
	Courses       []string // selected course codes, search order
	ExcludedDays  map[Day]bool
	ExcludedSlots map[SlotID]bool
	MinDays       int
	MaxDays       int
	MaxPerDay     int // distinct courses allowed per day, >= 1
	Preferences   map[string]*CoursePreference
}

// Normalize repairs invalid numeric constraints in place: an inverted day
// window is swapped rather than rejected, and MaxPerDay is floored at 1.
func (c *SearchConfig) Normalize() {
	if c.MinDays > c.MaxDays {
		c.MinDays, c.MaxDays = c.MaxDays, c.MinDays
	}
	if c.MaxPerDay < 1 {
		c.MaxPerDay = 1
	}
	if c.ExcludedDays == nil {
		c.ExcludedDays = make(map[Day]bool)
	}
	if c.ExcludedSlots == nil {
		c.ExcludedSlots = make(map[SlotID]bool)
	}
	if c.Preferences == nil {
		c.Preferences = make(map[string]*CoursePreference)
	}
}

// PreferenceFor returns the course's preference, possibly nil (unconstrained).
func (c *SearchConfig) PreferenceFor(courseCode string) *CoursePreference {
	return c.Preferences[courseCode]
}
