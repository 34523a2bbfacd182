package feedio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafin/routine-genius/pkg/model"
)

const feedDoc = `[
  {
    "courseCode": "CSE110",
    "sectionName": "1",
    "faculties": ["ABC", " XYZ "],
    "preRegSchedule": "Sunday 8:00 AM - 9:20 AM (09A-05C)",
    "preRegLabSchedule": "Tuesday 8:00 AM - 9:20 AM (09A-05C)",
    "capacity": 40,
    "consumedSeat": 35,
    "sectionSchedule": {
      "midExamDetail": "Oct 20, 2025 9:00 AM - 11:00 AM",
      "finalExamDate": "2025-12-19",
      "finalExamStartTime": "09:00:00",
      "finalExamEndTime": "11:00:00"
    }
  },
  {
    "courseCode": "MAT110",
    "sectionName": "2",
    "faculties": "DEF",
    "preRegSchedule": "Monday 11:00 AM - 12:20 PM",
    "capacity": 35,
    "consumedSeat": 35
  },
  {
    "courseCode": "PHY111",
    "sectionName": "3",
    "preRegSchedule": "online, schedule pending",
    "capacity": 30,
    "consumedSeat": 0
  }
]`

func TestDecodeSections(t *testing.T) {
	sections, err := DecodeSections(strings.NewReader(feedDoc), nil)
	require.NoError(t, err)
	require.Len(t, sections, 3)

	cse := sections[0]
	assert.Equal(t, "CSE110", cse.CourseCode)
	assert.Equal(t, []string{"ABC", "XYZ"}, cse.Faculty)
	require.Len(t, cse.Intervals, 2)
	assert.Equal(t, model.Sunday, cse.Intervals[0].Day)
	assert.Equal(t, model.Tuesday, cse.Intervals[1].Day)
	assert.Equal(t, 5, cse.AvailableSeats())
	assert.Equal(t, "Oct 20, 2025 9:00 AM - 11:00 AM", cse.ExamMid, "pre-formatted detail wins")
	assert.Equal(t, "Dec 19, 2025 9:00 AM - 11:00 AM", cse.ExamFinal, "raw fields are formatted")

	mat := sections[1]
	assert.Equal(t, []string{"DEF"}, mat.Faculty, "single string faculty")
	require.Len(t, mat.Intervals, 1)
	assert.Equal(t, "N/A", mat.Intervals[0].Room)
	assert.Equal(t, 0, mat.AvailableSeats())

	phy := sections[2]
	assert.Equal(t, []string{model.TBA}, phy.Faculty, "absent faculty defaults to TBA")
	assert.Empty(t, phy.Intervals, "unparseable schedule drops to zero meetings")
	assert.True(t, phy.IsTBAOnly())
}

func TestDecodeSectionsBadDocument(t *testing.T) {
	_, err := DecodeSections(strings.NewReader("{not a list"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode feed")
}

func TestNormalizeFaculties(t *testing.T) {
	assert.Equal(t, []string{model.TBA}, normalizeFaculties(nil))
	assert.Equal(t, []string{model.TBA}, normalizeFaculties([]byte(`""`)))
	assert.Equal(t, []string{model.TBA}, normalizeFaculties([]byte(`[" ", ""]`)))
	assert.Equal(t, []string{"ABC"}, normalizeFaculties([]byte(`"ABC"`)))
	assert.Equal(t, []string{"ABC", "XYZ"}, normalizeFaculties([]byte(`["ABC", "XYZ"]`)))
}
