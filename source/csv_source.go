package source

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/Spyro1/semester-planner/config"
	"github.com/Spyro1/semester-planner/model"
)

// CSVSource reads the catalog from a CSV file.
type CSVSource struct {
	path   string
	config config.ParserConfig
}

func (s *CSVSource) GetName() string {
	return "csv"
}

func (s *CSVSource) GetSemester() (error, model.Semester) {
	f, err := os.Open(s.path)
	if err != nil {
		return err, nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Rows carry a variable number of course code/time pairs.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return err, nil
	}

	// Spreadsheets exported on Windows tend to start with a BOM.
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\uFEFF")
	}

	return recordsToSemester(records, s.config)
}
