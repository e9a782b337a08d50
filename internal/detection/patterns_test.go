package detection

import (
	"reflect"
	"testing"
)

func TestMatch_EmptyString(t *testing.T) {
	set := NewMatcher().Match("")

	if len(set) != len(Categories) {
		t.Fatalf("expected %d categories, got %d", len(Categories), len(set))
	}
	for _, c := range Categories {
		found, ok := set[c]
		if !ok {
			t.Errorf("category %q missing", c)
			continue
		}
		if found == nil || len(found) != 0 {
			t.Errorf("category %q: got %#v, want empty non-nil slice", c, found)
		}
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	m := NewMatcher()

	for _, text := range []string{"LIMITED STOCK", "limited stock", "Limited Stock"} {
		got := m.Match(text)[FalseScarcity]
		if !reflect.DeepEqual(got, []string{text}) {
			t.Errorf("%q: got %v", text, got)
		}
	}
}

func TestMatch_DigitPatterns(t *testing.T) {
	tests := []struct {
		text     string
		category Category
		want     []string
	}{
		{"Only 3 left", FalseScarcity, []string{"Only 3 left"}},
		{"only 125 left in stock", FalseScarcity, []string{"only 125 left"}},
		{"Order within 2 hrs", FalseUrgency, []string{"Order within 2 hrs"}},
		{"deal ends in 45 mins!", FalseUrgency, []string{"ends in 45 mins"}},
		{"Lowest price in 30 days", FOMO, []string{"Lowest price in 30 days"}},
		{"Save 15% more with Subscribe & Save", FOMO, []string{"Save 15% more with Subscribe & Save"}},
	}

	m := NewMatcher()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := m.Match(tt.text)[tt.category]; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatch_DigitsRequired(t *testing.T) {
	m := NewMatcher()
	if got := m.Match("Only a handful left")[FalseScarcity]; len(got) != 0 {
		t.Errorf("no digits should not match, got %v", got)
	}
	if got := m.Match("Order within two hrs")[FalseUrgency]; len(got) != 0 {
		t.Errorf("spelled-out number should not match, got %v", got)
	}
}

func TestMatch_NoPatterns(t *testing.T) {
	set := NewMatcher().Match("Welcome to our store")

	if set.Total() != 0 {
		t.Fatalf("expected no matches, got %v", set)
	}
	want := []string{
		"FOMO: No FOMO patterns detected.",
		"False Scarcity: No False Scarcity patterns detected.",
		"False Urgency: No False Urgency patterns detected.",
	}
	if got := set.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines: got %v, want %v", got, want)
	}
}

func TestMatch_EndToEndPhrase(t *testing.T) {
	set := NewMatcher().Match("Hurry up! Only 2 left, ends in 10 mins")

	if got, want := set[FalseUrgency], []string{"Hurry up", "ends in 10 mins"}; !reflect.DeepEqual(got, want) {
		t.Errorf("False Urgency: got %v, want %v", got, want)
	}
	if got, want := set[FalseScarcity], []string{"Only 2 left"}; !reflect.DeepEqual(got, want) {
		t.Errorf("False Scarcity: got %v, want %v", got, want)
	}
	if got := set[FOMO]; len(got) != 0 {
		t.Errorf("FOMO: got %v, want none", got)
	}
}

func TestMatch_DuplicatesInScanOrder(t *testing.T) {
	set := NewMatcher().Match("act now, really, ACT NOW. last chance to act now")

	want := []string{"act now", "ACT NOW", "last chance", "act now"}
	if got := set[FalseUrgency]; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatch_SubstringNotWholeWord(t *testing.T) {
	set := NewMatcher().Match("countdowntimers")
	if got := set[FalseUrgency]; !reflect.DeepEqual(got, []string{"timer"}) {
		t.Errorf("got %v, want [timer]", got)
	}
}

func TestMatch_CategoriesOverlap(t *testing.T) {
	set := NewMatcher().Match("Limited time only - sale ending soon")

	if got, want := set[FOMO], []string{"Limited time only", "ending soon"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FOMO: got %v, want %v", got, want)
	}
	if got, want := set[FalseUrgency], []string{"Limited time", "ending soon"}; !reflect.DeepEqual(got, want) {
		t.Errorf("False Urgency: got %v, want %v", got, want)
	}
}

func TestMatch_LeftmostFirstAlternation(t *testing.T) {
	// "ends soon" precedes "ending soon" but both cannot start at the same
	// offset; the scan resumes after each match without overlap
	set := NewMatcher().Match("ends soonends soon")
	if got := set[FOMO]; !reflect.DeepEqual(got, []string{"ends soon", "ends soon"}) {
		t.Errorf("got %v", got)
	}
}

func TestMatch_TypographicApostrophe(t *testing.T) {
	set := NewMatcher().Match("Don’t delay, don't wait")

	if got := set[FOMO]; !reflect.DeepEqual(got, []string{"Don’t delay"}) {
		t.Errorf("FOMO: got %v", got)
	}
	if got := set[FalseUrgency]; !reflect.DeepEqual(got, []string{"don't wait"}) {
		t.Errorf("False Urgency: got %v", got)
	}
}

func TestNewMatcher_DisplayOrder(t *testing.T) {
	rules := NewMatcher().rules
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	for i, c := range Categories {
		if rules[i].Category != c {
			t.Errorf("rule %d: got %q, want %q", i, rules[i].Category, c)
		}
		if rules[i].Pattern == nil {
			t.Errorf("rule %d has no pattern", i)
		}
	}
}
