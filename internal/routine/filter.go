package routine

import (
	"github.com/rafin/routine-genius/pkg/model"
)

// EligibleSections narrows a course's sections to those matching the
// course preference and not touching an excluded day or time block.
// Order is preserved for deterministic candidate iteration.
func EligibleSections(sections []*model.Section, pref *model.CoursePreference, cfg *model.SearchConfig) []*model.Section {
	var eligible []*model.Section
	for _, s := range sections {
		if !pref.AllowsFaculty(s) || !pref.AllowsSection(s) {
			continue
		}
		if !SectionAllowed(s, cfg) {
			continue
		}
		eligible = append(eligible, s)
	}
	return eligible
}

// SectionAllowed applies the day/time-block exclusion rule: a section is
// invalid outright when any meeting falls on an excluded day or any
// affected period is excluded. Fully asynchronous sections (no meetings)
// are always valid.
func SectionAllowed(s *model.Section, cfg *model.SearchConfig) bool {
	for _, t := range s.Intervals {
		if cfg.ExcludedDays[t.Day] {
			return false
		}
		for _, slot := range model.AffectedSlots(t.StartMinute, t.EndMinute) {
			if cfg.ExcludedSlots[slot] {
				return false
			}
		}
	}
	return true
}
