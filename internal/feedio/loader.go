package feedio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rafin/routine-genius/pkg/model"
)

// SectionRecord mirrors one entry of the preregistration feed. Faculties
// arrives as a string, a list, or not at all, so it is decoded lazily.
type SectionRecord struct {
	CourseCode        string          `json:"courseCode"`
	SectionName       string          `json:"sectionName"`
	Faculties         json.RawMessage `json:"faculties"`
	PreRegSchedule    string          `json:"preRegSchedule"`
	PreRegLabSchedule string          `json:"preRegLabSchedule"`
	Capacity          int             `json:"capacity"`
	ConsumedSeat      int             `json:"consumedSeat"`
	SectionSchedule   *ExamSchedule   `json:"sectionSchedule"`
}

// ExamSchedule carries either pre-formatted exam detail strings or raw
// date/start/end fields to format locally.
type ExamSchedule struct {
	MidExamDetail      string `json:"midExamDetail"`
	MidExamDate        string `json:"midExamDate"`
	MidExamStartTime   string `json:"midExamStartTime"`
	MidExamEndTime     string `json:"midExamEndTime"`
	FinalExamDetail    string `json:"finalExamDetail"`
	FinalExamDate      string `json:"finalExamDate"`
	FinalExamStartTime string `json:"finalExamStartTime"`
	FinalExamEndTime   string `json:"finalExamEndTime"`
}

// LoadSections reads and parses the feed snapshot at path.
func LoadSections(path string, logger *zap.Logger) ([]*model.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed file: %w", err)
	}
	defer f.Close()
	return DecodeSections(f, logger)
}

// DecodeSections parses a feed document into catalog sections. Record
// fields that cannot be parsed degrade (dropped schedule chunks, TBA
// faculty, truncated exam strings) and never fail the load.
func DecodeSections(r io.Reader, logger *zap.Logger) ([]*model.Section, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var records []SectionRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	sections := make([]*model.Section, 0, len(records))
	for _, rec := range records {
		scheduleText := strings.TrimSpace(rec.PreRegSchedule + " " + rec.PreRegLabSchedule)
		intervals := ParseScheduleString(scheduleText)
		if len(intervals) == 0 && scheduleText != "" {
			logger.Debug("no parseable meeting times",
				zap.String("course", rec.CourseCode),
				zap.String("section", rec.SectionName))
		}

		section := &model.Section{
			CourseCode:    rec.CourseCode,
			Label:         rec.SectionName,
			Faculty:       normalizeFaculties(rec.Faculties),
			Intervals:     intervals,
			Capacity:      rec.Capacity,
			ConsumedSeats: rec.ConsumedSeat,
			RawSchedule:   strings.ReplaceAll(rec.PreRegSchedule, "\n", " "),
		}
		if ss := rec.SectionSchedule; ss != nil {
			section.ExamMid = ss.MidExamDetail
			if section.ExamMid == "" {
				section.ExamMid = FormatExamDetail(ss.MidExamDate, ss.MidExamStartTime, ss.MidExamEndTime)
			}
			section.ExamFinal = ss.FinalExamDetail
			if section.ExamFinal == "" {
				section.ExamFinal = FormatExamDetail(ss.FinalExamDate, ss.FinalExamStartTime, ss.FinalExamEndTime)
			}
		}
		sections = append(sections, section)
	}

	logger.Info("feed loaded", zap.Int("sections", len(sections)))
	return sections, nil
}

// normalizeFaculties accepts a JSON string, list of strings, or nothing,
// and always yields a non-empty name list with the TBA sentinel as default.
func normalizeFaculties(raw json.RawMessage) []string {
	var names []string

	var list []string
	var single string
	if err := json.Unmarshal(raw, &list); err == nil {
		names = list
	} else if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		names = []string{single}
	}

	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	if len(cleaned) == 0 {
		return []string{model.TBA}
	}
	return cleaned
}
