//nolint:testpackage // Testing internal classifier requires same package access
package classifier

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"high school collapses to highsch", "HIGH SCHOOL", "highsch"},
		{"national abbreviated", "CLARIN NATIONAL SCHOOL OF FISHERIES", "clarin nat sch of fisheries"},
		{"special characters stripped", "St. Mary's Academy!", "st. marys academy"},
		{"whitespace collapsed", "TUBIGON   WEST    CENTRAL", "tubigon west central"},
		{"leading and trailing trimmed", "  INABANGA  ", "inabanga"},
		{"kept punctuation", "INABANGA, BOHOL - EAST", "inabanga, bohol - east"},
		{"school alone", "SCHOOL", "sch"},
		{"embedded school", "PRESCHOOL", "presch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_SubstitutionOrder(t *testing.T) {
	// "high school" must collapse before "school" fires, otherwise the
	// output would be "high sch" instead of "highsch".
	if got := Normalize("high school"); got != "highsch" {
		t.Errorf("expected highsch, got %q", got)
	}

	// "national high school" exercises all three abbreviations.
	if got := Normalize("NATIONAL HIGH SCHOOL"); got != "nat highsch" {
		t.Errorf("expected nat highsch, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"HIGH SCHOOL", "CLARIN NATIONAL SCHOOL", "st. marys academy"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not stable for %q: %q then %q", in, once, twice)
		}
	}
}
