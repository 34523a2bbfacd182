package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/rafin/routine-genius/pkg/model"
)

// RenderPDF draws the routine as a weekly day/slot grid followed by a
// status table (faculty, seats, exam details) and returns the document.
func RenderPDF(routine model.Routine, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	drawGrid(pdf, routine)
	pdf.Ln(6)
	drawStatusTable(pdf, routine)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render routine pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePDF renders the routine and writes it to the file at path.
func WritePDF(routine model.Routine, title, path string) error {
	data, err := RenderPDF(routine, title)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write routine pdf: %w", err)
	}
	return nil
}

// gridCells maps (slot row, day column) to cell text for a routine.
func gridCells(routine model.Routine) map[int]map[model.Day]string {
	cells := make(map[int]map[model.Day]string)
	for _, s := range routine {
		for _, t := range s.Intervals {
			for _, slot := range model.AffectedSlots(t.StartMinute, t.EndMinute) {
				row, ok := model.SlotIndex(slot)
				if !ok {
					continue
				}
				if cells[row] == nil {
					cells[row] = make(map[model.Day]string)
				}
				detail := fmt.Sprintf("%s [%s] %s", s.CourseCode, s.Label, t.Room)
				if existing := cells[row][t.Day]; existing != "" {
					detail = existing + " / " + detail
				}
				cells[row][t.Day] = detail
			}
		}
	}
	return cells
}

func drawGrid(pdf *gofpdf.Fpdf, routine model.Routine) {
	days := model.DayNames()
	const timeColWidth = 27.0
	colWidth := (277.0 - timeColWidth) / float64(len(days))

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(timeColWidth, 8, "Time/Day", "1", 0, "C", false, 0, "")
	for _, day := range days {
		pdf.CellFormat(colWidth, 8, day, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	cells := gridCells(routine)
	pdf.SetFont("Arial", "", 7)
	for row, slot := range model.SlotIDs() {
		pdf.SetFont("Arial", "B", 7)
		pdf.CellFormat(timeColWidth, 10, string(slot), "1", 0, "C", false, 0, "")
		pdf.SetFont("Arial", "", 7)
		for d := range days {
			pdf.CellFormat(colWidth, 10, cells[row][model.Day(d)], "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func drawStatusTable(pdf *gofpdf.Fpdf, routine model.Routine) {
	headers := []string{"Course-Sec", "Faculty", "Seats", "Mid Exam", "Final Exam"}
	widths := []float64{40, 70, 25, 71, 71}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, s := range routine {
		cols := []string{
			fmt.Sprintf("%s-%s", s.CourseCode, s.Label),
			s.FacultyLine(),
			SeatStatus(s),
			orNA(s.ExamMid),
			orNA(s.ExamFinal),
		}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, strings.TrimSpace(col), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
