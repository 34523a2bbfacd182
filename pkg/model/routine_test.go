package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func meeting(day Day, start, end int) TimeInterval {
	return TimeInterval{Day: day, StartMinute: start, EndMinute: end, Room: "N/A"}
}

func TestCoursesPerDayCountsCourseOncePerDay(t *testing.T) {
	// Lecture and lab of the same section on the same day count as one.
	twoMeetings := &Section{
		CourseCode: "CSE110",
		Label:      "1",
		Intervals: []TimeInterval{
			meeting(Monday, 480, 560),
			meeting(Monday, 570, 650),
			meeting(Wednesday, 480, 560),
		},
	}
	other := &Section{
		CourseCode: "MAT110",
		Label:      "2",
		Intervals:  []TimeInterval{meeting(Monday, 660, 740)},
	}

	perDay := CoursesPerDay([]*Section{twoMeetings, other})
	assert.Equal(t, 2, perDay[Monday])
	assert.Equal(t, 1, perDay[Wednesday])
	assert.Len(t, perDay, 2)
}

func TestDistinctDays(t *testing.T) {
	r := Routine{
		&Section{CourseCode: "A", Intervals: []TimeInterval{meeting(Sunday, 480, 560), meeting(Tuesday, 480, 560)}},
		&Section{CourseCode: "B", Intervals: []TimeInterval{meeting(Sunday, 570, 650)}},
	}
	assert.Equal(t, 2, r.DistinctDays())

	assert.Equal(t, 0, Routine{}.DistinctDays())
}

func TestHasConflict(t *testing.T) {
	a := &Section{CourseCode: "A", Intervals: []TimeInterval{meeting(Monday, 480, 560)}}
	b := &Section{CourseCode: "B", Intervals: []TimeInterval{meeting(Monday, 530, 610)}}
	c := &Section{CourseCode: "C", Intervals: []TimeInterval{meeting(Monday, 560, 640)}}

	assert.True(t, Routine{a, b}.HasConflict())
	assert.False(t, Routine{a, c}.HasConflict())
}
