package source

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/Spyro1/semester-planner/config"
	"github.com/Spyro1/semester-planner/model"
)

// XLSXSource reads the catalog from the first sheet of a workbook,
// using the same column layout as the CSV source.
type XLSXSource struct {
	path   string
	config config.ParserConfig
}

func (s *XLSXSource) GetName() string {
	return "xlsx"
}

func (s *XLSXSource) GetSemester() (error, model.Semester) {
	wb, err := xlsx.OpenFile(s.path)
	if err != nil {
		return err, nil
	}
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("%s has no sheets", s.path), nil
	}

	sh := wb.Sheets[0]
	records := make([][]string, 0, sh.MaxRow)
	for r := 0; r < sh.MaxRow; r++ {
		row := make([]string, 0, sh.MaxCol)
		for c := 0; c < sh.MaxCol; c++ {
			cell, err := sh.Cell(r, c)
			if err != nil {
				return err, nil
			}
			row = append(row, cell.String())
		}
		records = append(records, row)
	}

	return recordsToSemester(records, s.config)
}
