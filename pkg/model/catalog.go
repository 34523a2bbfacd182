package model

import (
	"sort"
	"strings"
)

// Catalog maps a course code to its sections in feed order. Built once at
// startup and treated as read-only afterwards.
type Catalog map[string][]*Section

// Add appends a section under its course code, preserving feed order.
func (c Catalog) Add(s *Section) {
	c[s.CourseCode] = append(c[s.CourseCode], s)
}

// Sections returns the sections of a course, or nil for unknown codes.
func (c Catalog) Sections(courseCode string) []*Section {
	return c[courseCode]
}

// Has reports whether the course code exists in the catalog.
func (c Catalog) Has(courseCode string) bool {
	_, ok := c[courseCode]
	return ok
}

// Codes returns all course codes sorted alphabetically.
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MatchCodes returns sorted course codes containing the query,
// compared in upper case.
func (c Catalog) MatchCodes(query string) []string {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []string
	for code := range c {
		if strings.Contains(strings.ToUpper(code), q) {
			matches = append(matches, code)
		}
	}
	sort.Strings(matches)
	return matches
}

// Faculties returns the distinct faculty names teaching a course,
// in first-seen order.
func (c Catalog) Faculties(courseCode string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range c[courseCode] {
		for _, f := range s.Faculty {
			if !seen[f] {
				seen[f] = true
				names = append(names, f)
			}
		}
	}
	return names
}

// SectionLabels returns the distinct upper-cased section labels of a course,
// in first-seen order.
func (c Catalog) SectionLabels(courseCode string) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, s := range c[courseCode] {
		label := strings.ToUpper(s.Label)
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}

// FindSection resolves a section by upper-cased label.
func (c Catalog) FindSection(courseCode, label string) *Section {
	want := strings.ToUpper(strings.TrimSpace(label))
	for _, s := range c[courseCode] {
		if strings.ToUpper(s.Label) == want {
			return s
		}
	}
	return nil
}

// BuildCatalog groups sections by course code in the given order.
func BuildCatalog(sections []*Section) Catalog {
	catalog := make(Catalog)
	for _, s := range sections {
		catalog.Add(s)
	}
	return catalog
}
