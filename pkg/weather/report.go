package weather

import "github.com/beeper/weather-demo/pkg/extract"

// Fields are the values shown for a current-conditions response, in display order.
var Fields = []extract.Field{
	{Key: "name", Path: "location.name"},
	{Key: "region", Path: "location.region"},
	{Key: "country", Path: "location.country"},
	{Key: "temp_c", Path: "current.temp_c"},
	{Key: "temp_f", Path: "current.temp_f"},
	{Key: "text", Path: "current.condition.text"},
	{Key: "humidity", Path: "current.humidity"},
	{Key: "wind_kph", Path: "current.wind_kph"},
}

// Report holds the extracted fields as text. Any of them may be extract.NotFound.
type Report struct {
	Name      string
	Region    string
	Country   string
	TempC     string
	TempF     string
	Condition string
	Humidity  string
	WindKPH   string
}

// BuildReport runs ext over body once for each entry in Fields.
func BuildReport(body string, ext extract.Extractor) Report {
	values := make([]string, len(Fields))
	for i, field := range Fields {
		values[i] = ext.Extract(body, field)
	}
	return Report{
		Name:      values[0],
		Region:    values[1],
		Country:   values[2],
		TempC:     values[3],
		TempF:     values[4],
		Condition: values[5],
		Humidity:  values[6],
		WindKPH:   values[7],
	}
}

// Missing lists the keys that came back as extract.NotFound.
func (r Report) Missing() []string {
	var out []string
	for i, value := range []string{r.Name, r.Region, r.Country, r.TempC, r.TempF, r.Condition, r.Humidity, r.WindKPH} {
		if value == extract.NotFound {
			out = append(out, Fields[i].Key)
		}
	}
	return out
}
