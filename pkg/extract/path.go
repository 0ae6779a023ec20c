package extract

import "github.com/tidwall/gjson"

type pathExtractor struct{}

func (pathExtractor) Name() string {
	return ExtractorPath
}

func (pathExtractor) Extract(body string, field Field) string {
	path := field.Path
	if path == "" {
		path = field.Key
	}
	if value, ok := Lookup(body, path); ok {
		return value
	}
	return NotFound
}

// Lookup resolves a dotted JSON path against body. Strings are returned
// unquoted, every other scalar in its raw JSON form so numbers keep the
// precision the API sent them with.
func Lookup(body, path string) (string, bool) {
	if !gjson.Valid(body) {
		return "", false
	}
	result := gjson.Get(body, path)
	if !result.Exists() {
		return "", false
	}
	switch result.Type {
	case gjson.String:
		return result.Str, true
	default:
		return result.Raw, true
	}
}
