package extract

import "testing"

const sampleBody = `{"location":{"name":"Fullerton","region":"California","country":"USA"},"current":{"temp_c":21.5,"temp_f":70.7,"condition":{"text":"Sunny"},"humidity":40,"wind_kph":9.4}}`

var sampleFields = []struct {
	field Field
	want  string
}{
	{Field{Key: "name", Path: "location.name"}, "Fullerton"},
	{Field{Key: "region", Path: "location.region"}, "California"},
	{Field{Key: "country", Path: "location.country"}, "USA"},
	{Field{Key: "temp_c", Path: "current.temp_c"}, "21.5"},
	{Field{Key: "temp_f", Path: "current.temp_f"}, "70.7"},
	{Field{Key: "text", Path: "current.condition.text"}, "Sunny"},
	{Field{Key: "humidity", Path: "current.humidity"}, "40"},
	{Field{Key: "wind_kph", Path: "current.wind_kph"}, "9.4"},
}

func TestExtractorsAgreeOnSampleBody(t *testing.T) {
	for _, name := range Names() {
		ext, err := ByName(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		for _, tc := range sampleFields {
			if got := ext.Extract(sampleBody, tc.field); got != tc.want {
				t.Fatalf("%s: field %s = %q, want %q", name, tc.field.Key, got, tc.want)
			}
		}
	}
}

func TestByNameDefaultsToScan(t *testing.T) {
	ext, err := ByName("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.Name() != ExtractorScan {
		t.Fatalf("expected default extractor %q, got %q", ExtractorScan, ext.Name())
	}
	if ext, err = ByName(" PATH "); err != nil || ext.Name() != ExtractorPath {
		t.Fatalf("expected case-insensitive path lookup, got %v / %v", ext, err)
	}
	if _, err = ByName("regex"); err == nil {
		t.Fatalf("expected error for unknown extractor")
	}
}

func TestDefaultExtractorToleratesBrokenJSON(t *testing.T) {
	truncated := sampleBody[:len(sampleBody)-1]
	ext, err := ByName(DefaultExtractor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tc := range sampleFields {
		if got := ext.Extract(truncated, tc.field); got != tc.want {
			t.Fatalf("field %s = %q, want %q", tc.field.Key, got, tc.want)
		}
	}
	pretty := "{\n  \"wind_kph\": 9.4\n}"
	if got := ext.Extract(pretty, Field{Key: "wind_kph", Path: "wind_kph"}); got != "9.4\n" {
		t.Fatalf("expected the raw token up to the brace, got %q", got)
	}
}

func TestPathExtractorMissingField(t *testing.T) {
	ext, _ := ByName(ExtractorPath)
	if got := ext.Extract(sampleBody, Field{Key: "uv", Path: "current.uv"}); got != NotFound {
		t.Fatalf("expected %q, got %q", NotFound, got)
	}
	if got := ext.Extract("not json", Field{Key: "name", Path: "location.name"}); got != NotFound {
		t.Fatalf("expected %q for invalid json, got %q", NotFound, got)
	}
}

func TestPathExtractorFallsBackToKey(t *testing.T) {
	ext, _ := ByName(ExtractorPath)
	if got := ext.Extract(`{"humidity":55}`, Field{Key: "humidity"}); got != "55" {
		t.Fatalf("expected key lookup without path, got %q", got)
	}
}

func TestPathExtractorHandlesEscapes(t *testing.T) {
	body := `{"location":{"name":"St. \"Bob\" Town"}}`
	got, ok := Lookup(body, "location.name")
	if !ok {
		t.Fatalf("expected value to be found")
	}
	if got != `St. "Bob" Town` {
		t.Fatalf("unexpected unescaped value: %q", got)
	}
	// The scan extractor stops at the first quote, escaped or not.
	if got := Value(body, "name"); got != `St. \` {
		t.Fatalf("unexpected scan value: %q", got)
	}
}

func TestLookupRawScalars(t *testing.T) {
	body := `{"a":true,"b":null,"c":1.50}`
	for path, want := range map[string]string{"a": "true", "b": "null", "c": "1.50"} {
		got, ok := Lookup(body, path)
		if !ok || got != want {
			t.Fatalf("path %s: got %q (found=%v), want %q", path, got, ok, want)
		}
	}
}
