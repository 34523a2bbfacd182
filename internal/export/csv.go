package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/rafin/routine-genius/pkg/model"
)

// RoutineCSVRow is one meeting of a confirmed routine, flattened for CSV.
type RoutineCSVRow struct {
	CourseCode string `csv:"course_code"`
	Section    string `csv:"section"`
	Faculty    string `csv:"faculty"`
	Day        string `csv:"day"`
	Start      string `csv:"start"`
	End        string `csv:"end"`
	Room       string `csv:"room"`
	Seats      string `csv:"seats"`
}

// ExportRoutine formats the routine into CSV rows and writes them to the
// file at path, replacing any previous export.
func ExportRoutine(routine model.Routine, path string) error {
	rows := formatRoutine(routine)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write routine csv: %w", err)
	}
	return nil
}

// ExportRoutineString renders the same rows as an in-memory CSV document.
func ExportRoutineString(routine model.Routine) (string, error) {
	rows := formatRoutine(routine)
	s, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshal routine csv: %w", err)
	}
	return s, nil
}

func formatRoutine(routine model.Routine) []*RoutineCSVRow {
	var rows []*RoutineCSVRow
	for _, s := range routine {
		seats := SeatStatus(s)
		if len(s.Intervals) == 0 {
			// Asynchronous section: keep it visible with an empty meeting.
			rows = append(rows, &RoutineCSVRow{
				CourseCode: s.CourseCode,
				Section:    s.Label,
				Faculty:    s.FacultyLine(),
				Seats:      seats,
			})
			continue
		}
		for _, t := range s.Intervals {
			rows = append(rows, &RoutineCSVRow{
				CourseCode: s.CourseCode,
				Section:    s.Label,
				Faculty:    s.FacultyLine(),
				Day:        t.Day.String(),
				Start:      model.FormatMinutes(t.StartMinute),
				End:        model.FormatMinutes(t.EndMinute),
				Room:       t.Room,
				Seats:      seats,
			})
		}
	}
	return rows
}

// SeatStatus renders seat availability the way the status table shows it.
func SeatStatus(s *model.Section) string {
	if s.AvailableSeats() == 0 {
		return "Full"
	}
	return fmt.Sprintf("%d/%d", s.AvailableSeats(), s.Capacity)
}
