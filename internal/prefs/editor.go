// Package prefs maintains per-course faculty/section preferences with the
// cascade rule the search core assumes: the two preference sets are kept
// mutually consistent on every edit.
package prefs

import (
	"strings"

	"github.com/rafin/routine-genius/pkg/model"
)

// Editor edits course preferences against a catalog vocabulary.
type Editor struct {
	catalog model.Catalog
	prefs   map[string]*model.CoursePreference
}

// NewEditor starts with empty (unconstrained) preferences.
func NewEditor(catalog model.Catalog) *Editor {
	return &Editor{
		catalog: catalog,
		prefs:   make(map[string]*model.CoursePreference),
	}
}

// Preference returns the course's preference, creating it on first use.
func (e *Editor) Preference(courseCode string) *model.CoursePreference {
	p, ok := e.prefs[courseCode]
	if !ok {
		p = model.NewCoursePreference()
		e.prefs[courseCode] = p
	}
	return p
}

// Preferences exposes the whole mapping for a SearchConfig.
func (e *Editor) Preferences() map[string]*model.CoursePreference {
	return e.prefs
}

// AddFaculty records a faculty preference and cascades: every section
// taught by that faculty becomes preferred too. Returns false when the
// faculty teaches no section of the course.
func (e *Editor) AddFaculty(courseCode, faculty string) bool {
	faculty = strings.TrimSpace(faculty)
	if faculty == "" {
		return false
	}
	sections := e.SectionsForFaculty(courseCode, faculty)
	if len(sections) == 0 {
		return false
	}
	p := e.Preference(courseCode)
	p.Faculties[faculty] = true
	for _, label := range sections {
		p.Sections[label] = true
	}
	return true
}

// AddSection records a section preference (upper-cased) and cascades:
// every faculty teaching that section becomes preferred too. Returns
// false for unknown sections.
func (e *Editor) AddSection(courseCode, label string) bool {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" || e.catalog.FindSection(courseCode, label) == nil {
		return false
	}
	p := e.Preference(courseCode)
	p.Sections[label] = true
	for _, f := range e.FacultiesForSection(courseCode, label) {
		p.Faculties[f] = true
	}
	return true
}

// RemoveFaculty drops a faculty and every section it teaches, then prunes
// faculties no longer represented by any remaining preferred section.
func (e *Editor) RemoveFaculty(courseCode, faculty string) {
	p := e.Preference(courseCode)
	delete(p.Faculties, faculty)
	for _, label := range e.SectionsForFaculty(courseCode, faculty) {
		delete(p.Sections, label)
	}
	e.cleanupFaculties(courseCode)
}

// RemoveSection drops a section, then prunes faculties no longer
// represented by any remaining preferred section.
func (e *Editor) RemoveSection(courseCode, label string) {
	p := e.Preference(courseCode)
	delete(p.Sections, strings.ToUpper(strings.TrimSpace(label)))
	e.cleanupFaculties(courseCode)
}

// cleanupFaculties removes faculty preferences whose sections are all gone.
func (e *Editor) cleanupFaculties(courseCode string) {
	p := e.Preference(courseCode)
	represented := make(map[string]bool)
	for label := range p.Sections {
		for _, f := range e.FacultiesForSection(courseCode, label) {
			represented[f] = true
		}
	}
	for f := range p.Faculties {
		if !represented[f] {
			delete(p.Faculties, f)
		}
	}
}

// SectionsForFaculty lists the upper-cased labels of sections the faculty
// teaches in this course.
func (e *Editor) SectionsForFaculty(courseCode, faculty string) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, s := range e.catalog.Sections(courseCode) {
		for _, f := range s.Faculty {
			if f == faculty {
				label := strings.ToUpper(s.Label)
				if !seen[label] {
					seen[label] = true
					labels = append(labels, label)
				}
				break
			}
		}
	}
	return labels
}

// FacultiesForSection lists the distinct faculty names of one section.
func (e *Editor) FacultiesForSection(courseCode, label string) []string {
	s := e.catalog.FindSection(courseCode, label)
	if s == nil {
		return nil
	}
	var names []string
	seen := make(map[string]bool)
	for _, f := range s.Faculty {
		if !seen[f] {
			seen[f] = true
			names = append(names, f)
		}
	}
	return names
}
