package detection

import (
	"regexp"
	"strings"
)

// Category names one family of dark patterns.
type Category string

const (
	FOMO          Category = "FOMO"
	FalseScarcity Category = "False Scarcity"
	FalseUrgency  Category = "False Urgency"
)

// Categories lists every category in display order.
var Categories = []Category{FOMO, FalseScarcity, FalseUrgency}

// phrases holds the regex fragments for each category. \d+ stands for any run
// of digits; ['’] accepts the typographic apostrophe OCR often produces.
var phrases = map[Category][]string{
	FOMO: {
		`don['’]t delay`,
		`lowest price in \d+ days`,
		`save \d+% more with subscribe & save`,
		`ends soon`,
		`high demand`,
		`exclusive deal`,
		`ending soon`,
		`last few left`,
		`only a few left`,
		`limited time only`,
	},
	FalseScarcity: {
		`limited stock`,
		`only \d+ left`,
		`while supplies last`,
		`act fast`,
		`limited edition`,
		`exclusive offer`,
		`limited quantity`,
		`grab yours now`,
		`few items left`,
		`running out`,
		`last opportunity`,
		`almost gone`,
		`final call`,
	},
	FalseUrgency: {
		`order within \d+ hrs`,
		`ends in \d+ mins`,
		`timer`,
		`limited time`,
		`get it now`,
		`don['’]t wait`,
		`final hours`,
		`hurry up`,
		`only today`,
		`ending soon`,
		`limited availability`,
		`last chance`,
		`act now`,
	},
}

// Rule pairs a category with its compiled alternation.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
}

// Matcher scans text against a fixed table of rules.
type Matcher struct {
	rules []Rule
}

// NewMatcher compiles the built-in phrase table.
func NewMatcher() *Matcher {
	rules := make([]Rule, 0, len(Categories))
	for _, c := range Categories {
		rules = append(rules, Rule{
			Category: c,
			Pattern:  regexp.MustCompile(`(?i)` + strings.Join(phrases[c], "|")),
		})
	}
	return &Matcher{rules: rules}
}

// Match returns every match per category. All categories are present in the
// result; a category with no matches maps to an empty slice.
func (m *Matcher) Match(text string) MatchSet {
	set := make(MatchSet, len(m.rules))
	for _, r := range m.rules {
		found := r.Pattern.FindAllString(text, -1)
		if found == nil {
			found = []string{}
		}
		set[r.Category] = found
	}
	return set
}
