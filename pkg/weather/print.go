package weather

import (
	"fmt"
	"io"
)

const sectionRule = "-------------------"

func printBanner(w io.Writer, location string) {
	fmt.Fprintln(w, "=== Weather API Demo ===")
	fmt.Fprintln(w, "This program demonstrates how to use Web APIs in Go")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Requesting weather data for:", location)
	fmt.Fprintln(w, "Please wait...")
	fmt.Fprintln(w)
}

func printRaw(w io.Writer, body string) {
	fmt.Fprintln(w, "Raw API Response:")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintln(w, body)
	fmt.Fprintln(w)
}

// PrintReport writes the parsed section followed by the closing banner.
func PrintReport(w io.Writer, r Report) {
	fmt.Fprintln(w, "Parsed Weather Information:")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Location: %s, %s, %s\n", r.Name, r.Region, r.Country)
	fmt.Fprintf(w, "Temperature: %s°C (%s°F)\n", r.TempC, r.TempF)
	fmt.Fprintf(w, "Conditions: %s\n", r.Condition)
	fmt.Fprintf(w, "Humidity: %s%%\n", r.Humidity)
	fmt.Fprintf(w, "Wind Speed: %s km/h\n", r.WindKPH)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== End of Demo ===")
}
