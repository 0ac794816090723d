package tui

import "github.com/charmbracelet/bubbles/textinput"

// newInput builds a textinput with the conventions shared by all step screens
func newInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	return ti
}

// countryOptions are the countries offered for phone/zip/VAT validation.
// Lowercase ISO codes; anything else falls back to the generic patterns.
var countryOptions = []string{"us", "in", "gb", "ca", "de", "au", "fr"}

func countryIndex(cc string) int {
	for i, c := range countryOptions {
		if c == cc {
			return i
		}
	}
	return -1
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
