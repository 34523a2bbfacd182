package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowsFaculty(t *testing.T) {
	taught := &Section{CourseCode: "CSE110", Label: "1", Faculty: []string{"ABC", "XYZ"}}
	tba := &Section{CourseCode: "CSE110", Label: "2", Faculty: []string{TBA}}

	var unset *CoursePreference
	assert.True(t, unset.AllowsFaculty(taught))
	assert.True(t, NewCoursePreference().AllowsFaculty(taught))

	p := PreferenceOf([]string{"XYZ"}, nil)
	assert.True(t, p.AllowsFaculty(taught))
	assert.False(t, p.AllowsFaculty(tba))

	// Faculty names match exactly, not case-folded.
	p = PreferenceOf([]string{"xyz"}, nil)
	assert.False(t, p.AllowsFaculty(taught))

	// TBA preference only matches sections with no real faculty.
	p = PreferenceOf([]string{TBA}, nil)
	assert.True(t, p.AllowsFaculty(tba))
	assert.False(t, p.AllowsFaculty(taught))
}

func TestAllowsSection(t *testing.T) {
	s := &Section{CourseCode: "CSE110", Label: "1a"}

	assert.True(t, NewCoursePreference().AllowsSection(s))

	p := PreferenceOf(nil, []string{"1A"})
	assert.True(t, p.AllowsSection(s))

	p = PreferenceOf(nil, []string{"1a"})
	assert.True(t, p.AllowsSection(s), "labels compare upper-cased")

	p = PreferenceOf(nil, []string{"2A"})
	assert.False(t, p.AllowsSection(s))
}

func TestPreferenceOfTrimsAndSkipsBlank(t *testing.T) {
	p := PreferenceOf([]string{" ABC ", ""}, []string{" 1 ", "  "})
	assert.True(t, p.Faculties["ABC"])
	assert.Len(t, p.Faculties, 1)
	assert.True(t, p.Sections["1"])
	assert.Len(t, p.Sections, 1)
}

func TestEmpty(t *testing.T) {
	var unset *CoursePreference
	assert.True(t, unset.Empty())
	assert.True(t, NewCoursePreference().Empty())
	assert.False(t, PreferenceOf([]string{"ABC"}, nil).Empty())
}
