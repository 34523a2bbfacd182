package model

import "strings"

// CoursePreference narrows a course to preferred faculties and/or sections.
// An empty set means no constraint on that axis. Faculty names are matched
// exactly; section labels are matched upper-cased.
type CoursePreference struct {
	Faculties map[string]bool
	Sections  map[string]bool
}

// NewCoursePreference returns an empty, unconstrained preference.
func NewCoursePreference() *CoursePreference {
	return &CoursePreference{
		Faculties: make(map[string]bool),
		Sections:  make(map[string]bool),
	}
}

// PreferenceOf builds a preference from literal name lists.
func PreferenceOf(faculties, sections []string) *CoursePreference {
	p := NewCoursePreference()
	for _, f := range faculties {
		if f = strings.TrimSpace(f); f != "" {
			p.Faculties[f] = true
		}
	}
	for _, s := range sections {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			p.Sections[s] = true
		}
	}
	return p
}

// Empty reports whether the preference constrains nothing.
func (p *CoursePreference) Empty() bool {
	return p == nil || (len(p.Faculties) == 0 && len(p.Sections) == 0)
}

// AllowsFaculty applies the faculty rule: pass when the set is empty, when
// any of the section's faculty names is preferred, or when TBA is preferred
// and the section's only faculty is TBA.
func (p *CoursePreference) AllowsFaculty(s *Section) bool {
	if p == nil || len(p.Faculties) == 0 {
		return true
	}
	for _, f := range s.Faculty {
		if p.Faculties[f] {
			return true
		}
	}
	return p.Faculties[TBA] && s.IsTBAOnly()
}

// AllowsSection applies the section rule with upper-cased labels.
func (p *CoursePreference) AllowsSection(s *Section) bool {
	if p == nil || len(p.Sections) == 0 {
		return true
	}
	return p.Sections[strings.ToUpper(s.Label)]
}
