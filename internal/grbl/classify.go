// internal/grbl/classify.go
package grbl

import "strings"

// Prefix binds a line prefix to the status it announces.
type Prefix struct {
	Text   string
	Status Status
}

// DefaultPrefixes is the prefix table for Grbl / FluidNC status output.
// Order matters: the first matching entry wins.
var DefaultPrefixes = []Prefix{
	{Text: "Grbl", Status: Booted},
	{Text: "[MSG:INFO: Connected", Status: Booted},
	{Text: "<Idle", Status: Idle},
	{Text: "<Run", Status: Run},
	{Text: "<Hold", Status: Hold},
	{Text: "<Jog", Status: Jog},
	{Text: "<Door", Status: Door},
	{Text: "<Home", Status: Home},
	{Text: "<Alarm", Status: Alarm},
}

// Classifier maps complete lines to statuses using an ordered prefix table.
type Classifier struct {
	table []Prefix
}

// NewClassifier copies table so later edits by the caller do not leak in.
// A nil table selects DefaultPrefixes.
func NewClassifier(table []Prefix) *Classifier {
	if table == nil {
		table = DefaultPrefixes
	}
	return &Classifier{table: append([]Prefix(nil), table...)}
}

// Classify returns the status of the first case-sensitive prefix match.
// Empty and unmatched lines yield Unknown.
func (c *Classifier) Classify(line string) Status {
	if line == "" {
		return Unknown
	}
	for _, p := range c.table {
		if p.Text != "" && strings.HasPrefix(line, p.Text) {
			return p.Status
		}
	}
	return Unknown
}

// Classify classifies line against DefaultPrefixes.
func Classify(line string) Status {
	return defaultClassifier.Classify(line)
}

var defaultClassifier = NewClassifier(nil)
