package source

import "github.com/Spyro1/semester-planner/model"

// Source produces the semester catalog from some input file.
type Source interface {
	GetName() string
	GetSemester() (error, model.Semester)
}
