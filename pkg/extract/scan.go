package extract

import "strings"

type scanExtractor struct{}

func (scanExtractor) Name() string {
	return ExtractorScan
}

func (scanExtractor) Extract(body string, field Field) string {
	return Value(body, field.Key)
}

// Value finds the first `"<key>":` in body and returns the value after it.
//
// This is a plain substring scan, not a JSON parser. String values end at the
// next quote with no escape handling, and bare values end at the first comma,
// closing brace or closing bracket. The first occurrence wins at any nesting
// depth. If a value runs off the end of the body, the remainder of the body is
// returned.
func Value(body, key string) string {
	pattern := `"` + key + `":`
	keyPos := strings.Index(body, pattern)
	if keyPos < 0 {
		return NotFound
	}

	start := keyPos + len(pattern)
	for start < len(body) && body[start] == ' ' {
		start++
	}
	if start >= len(body) {
		return ""
	}

	if body[start] == '"' {
		start++
		end := strings.IndexByte(body[start:], '"')
		if end < 0 {
			return body[start:]
		}
		return body[start : start+end]
	}

	end := strings.IndexAny(body[start:], ",}]")
	if end < 0 {
		return body[start:]
	}
	return body[start : start+end]
}
