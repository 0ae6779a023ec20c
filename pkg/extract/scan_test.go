package extract

import "testing"

func TestValue(t *testing.T) {
	cases := []struct {
		name string
		body string
		key  string
		want string
	}{
		{"number", `{"temp_c":21.5,"temp_f":70.7}`, "temp_c", "21.5"},
		{"string", `{"name":"Fullerton","region":"California"}`, "name", "Fullerton"},
		{"missing", `{"name":"Fullerton"}`, "region", NotFound},
		{"leading spaces", `{"humidity":   40}`, "humidity", "40"},
		{"token ends at bracket", `{"list":[1,2],"x":[7]}`, "x", "[7"},
		{"token ends at brace", `{"a":{"b":3}}`, "b", "3"},
		{"first match wins", `{"name":"first","inner":{"name":"second"}}`, "name", "first"},
		{"empty string", `{"name":""}`, "name", ""},
		{"unterminated string", `{"name":"Fuller`, "name", "Fuller"},
		{"unterminated token", `{"temp_c":21.5`, "temp_c", "21.5"},
		{"value past end", `{"temp_c":`, "temp_c", ""},
		{"only spaces after colon", `{"temp_c":   `, "temp_c", ""},
		{"pretty printed", "{\n  \"wind_kph\": 9.4\n}", "wind_kph", "9.4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Value(tc.body, tc.key); got != tc.want {
				t.Fatalf("Value(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestValueKeyBoundaries(t *testing.T) {
	body := `{"context":"wrong","text":"right"}`
	if got := Value(body, "text"); got != "right" {
		t.Fatalf("unexpected value: %q", got)
	}
	body = `{"sub_text":"wrong","text":"right"}`
	if got := Value(body, "text"); got != "right" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestValueIgnoresNesting(t *testing.T) {
	body := `{"condition":{"text":"Sunny"},"text":"outer"}`
	if got := Value(body, "text"); got != "Sunny" {
		t.Fatalf("expected first occurrence regardless of depth, got %q", got)
	}
}
