package converter

// Converter returns the converter registered under the given name, or
// nil when the name is unknown.
func Converter(converter string) IConverter {
	switch converter {
	case "json":
		return JSONConverter{}
	case "pjson":
		return JSONConverter{Pretty: true}
	case "text":
		return TextConverter{}
	case "html":
		return HTMLConverter{}
	case "svg":
		return SVGConverter{}
	case "pgsql":
		return PGSQLConverter{}
	default:
		return nil
	}
}
