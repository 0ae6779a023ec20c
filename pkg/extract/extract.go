package extract

import (
	"fmt"
	"slices"
	"strings"
)

// NotFound is returned in place of a value when a field can't be located.
const NotFound = "Not found"

const (
	ExtractorScan = "scan"
	ExtractorPath = "path"

	DefaultExtractor = ExtractorScan
)

// Field names a value in a weather response. Key is the bare object key used by
// the scan extractor, Path is the dotted JSON path used by the path extractor.
type Field struct {
	Key  string
	Path string
}

// Extractor pulls a single field value out of a raw response body.
type Extractor interface {
	Name() string
	Extract(body string, field Field) string
}

var extractors = map[string]Extractor{
	ExtractorScan: scanExtractor{},
	ExtractorPath: pathExtractor{},
}

// ByName returns the extractor registered under name.
func ByName(name string) (Extractor, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultExtractor
	}
	ext, ok := extractors[name]
	if !ok {
		return nil, fmt.Errorf("unknown extractor %q (expected one of %s)", name, strings.Join(Names(), ", "))
	}
	return ext, nil
}

// Names returns the registered extractor names in sorted order.
func Names() []string {
	out := make([]string, 0, len(extractors))
	for name := range extractors {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
