package source

import "github.com/Spyro1/semester-planner/config"

// NewSource returns the source registered under the given name, or nil
// when the name is unknown.
func NewSource(name, path string, cfg config.ParserConfig) Source {
	switch name {
	case "csv":
		return &CSVSource{path: path, config: cfg}
	case "xlsx":
		return &XLSXSource{path: path, config: cfg}
	default:
		return nil
	}
}
