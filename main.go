package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Spyro1/semester-planner/config"
	"github.com/Spyro1/semester-planner/converter"
	"github.com/Spyro1/semester-planner/source"
)

func main() {
	var cfg = config.ParserConfig{}

	flag.Var(&cfg.SubjectMatcher.MatchRaw, "subject", "Keep only subjects with this code or name")
	flag.Var(&cfg.CourseMatcher.MatchRaw, "course", "Keep only sections with this course code")
	flag.Var(&cfg.DayMatcher.MatchRaw, "day", "Keep only slots on this day code (H, K, SZE, CS, P)")

	var (
		csvPath,
		xlsxPath,
		output,
		sourceName,
		converterName string
	)

	flag.StringVar(&csvPath, "csv", "", "Catalog CSV file")
	flag.StringVar(&xlsxPath, "xlsx", "", "Catalog XLSX workbook")
	flag.StringVar(&output, "out", "", "Output file (text converter writes to stdout when empty)")
	flag.StringVar(&sourceName, "source", "csv", "Input format")
	flag.StringVar(&converterName, "converter", "html", "Output format")

	flag.Parse()

	_ = godotenv.Load()

	path := csvPath
	if xlsxPath != "" {
		sourceName = "xlsx"
		path = xlsxPath
	}
	if path == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	src := source.NewSource(sourceName, path, cfg)
	if src == nil {
		fmt.Println(sourceName + " source not found")
		os.Exit(1)
	}

	err, semester := src.GetSemester()
	if err != nil {
		fmt.Println("Failed to parse the catalog,", err)
		os.Exit(1)
	}

	c := converter.Converter(converterName)
	if c == nil {
		fmt.Println(converterName + " converter not found")
		os.Exit(1)
	}

	if err = c.Write(semester, output); err != nil {
		fmt.Println("Failed to write the timetable,", err)
		os.Exit(1)
	}
}
