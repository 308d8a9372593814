// Package colors classifies a task's running value into the qualitative
// buckets the service uses for its red-to-blue task coloring, and carries the
// terminal styles the report renderer applies per bucket.
package colors

import "github.com/charmbracelet/lipgloss"

// Bucket is a qualitative slot for a task's value score.
type Bucket string

const (
	Best    Bucket = "best"
	Better  Bucket = "better"
	Good    Bucket = "good"
	Neutral Bucket = "neutral"
	Bad     Bucket = "bad"
	Worse   Bucket = "worse"
	Worst   Bucket = "worst"
)

// ForValue maps a task value onto its bucket. Thresholds match the service's
// coloring breakpoints.
func ForValue(v float64) Bucket {
	switch {
	case v > 11:
		return Best
	case v > 5:
		return Better
	case v > 0:
		return Good
	case v == 0:
		return Neutral
	case v > -9:
		return Bad
	case v > -16:
		return Worse
	default:
		return Worst
	}
}

// ANSI-256 codes, roughly the service's blue-through-red ramp.
var bucketStyles = map[Bucket]lipgloss.Style{
	Best:    lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	Better:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	Good:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	Neutral: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	Bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	Worse:   lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	Worst:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// Style returns the terminal style for a bucket.
func Style(b Bucket) lipgloss.Style {
	if s, ok := bucketStyles[b]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
