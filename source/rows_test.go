package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Spyro1/semester-planner/config"
)

func TestRecordsToSemester(t *testing.T) {
	records := [][]string{
		{"Analysis I", "BMETE90AX", "6", "L01", "H:08:15-10:00", "L02", "CS:10:15-12:00"},
		{"", "", ""},
		{"Programming", "BMEVIEEA1", "5", "G01", "K:12:15-14:00;P:08:15-10:00"},
	}

	err, semester := recordsToSemester(records, config.ParserConfig{})
	if err != nil {
		t.Fatalf("recordsToSemester returned error %v", err)
	}
	if len(semester) != 2 {
		t.Fatalf("parsed %d subjects, want 2", len(semester))
	}

	analysis := semester[0]
	if analysis.Name != "Analysis I" || analysis.Code != "BMETE90AX" || analysis.Credits != 6 {
		t.Errorf("subject = %+v, want Analysis I / BMETE90AX / 6 credits", analysis)
	}
	if len(analysis.Courses) != 2 {
		t.Fatalf("Analysis has %d sections, want 2", len(analysis.Courses))
	}
	if analysis.Courses[1].Code != "L02" {
		t.Errorf("second section code = %q, want L02", analysis.Courses[1].Code)
	}

	programming := semester[1]
	if len(programming.Courses) != 1 {
		t.Fatalf("Programming has %d sections, want 1", len(programming.Courses))
	}
	if len(programming.Courses[0].Slots) != 2 {
		t.Errorf("G01 has %d slots, want 2 (joined with ;)", len(programming.Courses[0].Slots))
	}
}

func TestRecordsToSemesterNamesBadRow(t *testing.T) {
	cases := []struct {
		name string
		rows [][]string
	}{
		{"too few columns", [][]string{{"Analysis I", "BMETE90AX"}}},
		{"bad credits", [][]string{{"Analysis I", "BMETE90AX", "six"}}},
		{"unknown day code", [][]string{{"Analysis I", "BMETE90AX", "6", "L01", "X:08:15-10:00"}}},
		{"malformed time", [][]string{{"Analysis I", "BMETE90AX", "6", "L01", "H:08:15"}}},
		{"inverted slot", [][]string{{"Analysis I", "BMETE90AX", "6", "L01", "H:10:00-08:15"}}},
		{"dangling course code", [][]string{{"Analysis I", "BMETE90AX", "6", "L01"}}},
		{"time without code", [][]string{{"Analysis I", "BMETE90AX", "6", "", "H:08:15-10:00"}}},
	}

	for _, c := range cases {
		// A leading blank row keeps the numbering honest.
		rows := append([][]string{{"", ""}}, c.rows...)
		err, _ := recordsToSemester(rows, config.ParserConfig{})
		if err == nil {
			t.Errorf("%s: no error, want parse failure", c.name)
			continue
		}
		if !strings.Contains(err.Error(), "row 2") {
			t.Errorf("%s: error %q does not name row 2", c.name, err)
		}
	}
}

func TestRecordsToSemesterSkipsBlankPairs(t *testing.T) {
	records := [][]string{
		{"Analysis I", "BMETE90AX", "6", "", "", "L02", "CS:10:15-12:00", "", ""},
	}
	err, semester := recordsToSemester(records, config.ParserConfig{})
	if err != nil {
		t.Fatalf("recordsToSemester returned error %v", err)
	}
	if len(semester[0].Courses) != 1 {
		t.Errorf("parsed %d sections, want 1 (blank pairs skipped)", len(semester[0].Courses))
	}
}

func TestRecordsToSemesterFilters(t *testing.T) {
	records := [][]string{
		{"Analysis I", "BMETE90AX", "6", "L01", "H:08:15-10:00", "L02", "CS:10:15-12:00"},
		{"Programming", "BMEVIEEA1", "5", "G01", "K:12:15-14:00"},
	}

	var cfg config.ParserConfig
	cfg.SubjectMatcher.MatchRaw = []string{"BMETE90AX"}
	err, semester := recordsToSemester(records, cfg)
	if err != nil {
		t.Fatalf("recordsToSemester returned error %v", err)
	}
	if len(semester) != 1 || semester[0].Code != "BMETE90AX" {
		t.Fatalf("subject filter kept %d subjects, want just BMETE90AX", len(semester))
	}

	cfg = config.ParserConfig{}
	cfg.DayMatcher.MatchRaw = []string{"CS"}
	err, semester = recordsToSemester(records, cfg)
	if err != nil {
		t.Fatalf("recordsToSemester returned error %v", err)
	}
	// Programming lost its only slot, so the whole subject is gone.
	if len(semester) != 1 {
		t.Fatalf("day filter kept %d subjects, want 1", len(semester))
	}
	if len(semester[0].Courses) != 1 || semester[0].Courses[0].Code != "L02" {
		t.Errorf("day filter kept sections %+v, want just L02", semester[0].Courses)
	}

	cfg = config.ParserConfig{}
	cfg.CourseMatcher.MatchRaw = []string{"~^G"}
	err, semester = recordsToSemester(records, cfg)
	if err != nil {
		t.Fatalf("recordsToSemester returned error %v", err)
	}
	if len(semester) != 1 || semester[0].Courses[0].Code != "G01" {
		t.Errorf("regexp course filter kept %+v, want just G01", semester)
	}
}

func TestCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	content := "\uFEFFAnalysis I,BMETE90AX,6,L01,H:08:15-10:00,L02,CS:10:15-12:00\n" +
		"\n" +
		"Programming,BMEVIEEA1,5,G01,K:12:15-14:00\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	src := NewSource("csv", path, config.ParserConfig{})
	if src == nil {
		t.Fatal("csv source not found")
	}
	err, semester := src.GetSemester()
	if err != nil {
		t.Fatalf("GetSemester returned error %v", err)
	}
	if len(semester) != 2 {
		t.Fatalf("parsed %d subjects, want 2", len(semester))
	}
	if semester[0].Name != "Analysis I" {
		t.Errorf("BOM not stripped, first subject name = %q", semester[0].Name)
	}
}

func TestNewSourceUnknown(t *testing.T) {
	if src := NewSource("html", "x", config.ParserConfig{}); src != nil {
		t.Errorf("NewSource(\"html\") = %T, want nil", src)
	}
}
