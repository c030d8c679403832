package converter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Spyro1/semester-planner/model"
)

type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(semester model.Semester, out string) error {
	if out == "" {
		return fmt.Errorf("-out can not be empty")
	}

	var ret []byte
	var err error
	if j.Pretty {
		ret, err = json.MarshalIndent(semester, "", "  ")
	} else {
		ret, err = json.Marshal(semester)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(out, ret, 0644)
}
