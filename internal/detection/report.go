package detection

import (
	"fmt"
	"strings"
)

// MatchSet maps each category to its matched substrings in scan order.
type MatchSet map[Category][]string

// Total counts matches across all categories.
func (s MatchSet) Total() int {
	n := 0
	for _, m := range s {
		n += len(m)
	}
	return n
}

// Summary renders one category's matches as a comma-separated list, or a
// "No <category> patterns detected." line when there are none.
func (s MatchSet) Summary(c Category) string {
	if found := s[c]; len(found) > 0 {
		return strings.Join(found, ", ")
	}
	return fmt.Sprintf("No %s patterns detected.", c)
}

// Lines renders "<category>: <summary>" for every category in display order.
func (s MatchSet) Lines() []string {
	lines := make([]string, 0, len(Categories))
	for _, c := range Categories {
		lines = append(lines, fmt.Sprintf("%s: %s", c, s.Summary(c)))
	}
	return lines
}

// PatternsPanel is the text shown in the detected-patterns panel.
func PatternsPanel(s MatchSet) string {
	return "Detected Patterns:\n" + strings.Join(s.Lines(), "\n")
}

// TextPanel is the text shown in the extracted-text panel.
func TextPanel(text string) string {
	return "Extracted Text:\n" + text
}
