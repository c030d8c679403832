package converter

import "github.com/Spyro1/semester-planner/model"

type IConverter interface {
	Write(semester model.Semester, out string) error
}
