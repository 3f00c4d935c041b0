package culture

import (
	"errors"
	"strings"
	"testing"
)

func TestToInternal(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"yoruba_inspired", "yoruba"},
		{"secular", "secular"},
		{"turkish", "turkish"},
		{"biblical", "biblical"},
		{"norse", "norse"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToInternal(tt.in); got != tt.want {
			t.Errorf("ToInternal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookup_AllModes(t *testing.T) {
	for _, m := range AllModes() {
		p, err := Lookup(string(m))
		if err != nil {
			t.Fatalf("Lookup(%q): %v", m, err)
		}
		if p.Mode != m {
			t.Errorf("Lookup(%q) returned profile for %q", m, p.Mode)
		}
		if p.MinLines != 3 || p.MaxLines != 7 {
			t.Errorf("%s: line bounds %d-%d, want 3-7", m, p.MinLines, p.MaxLines)
		}
		if len(p.Openings) == 0 || len(p.Metaphors) == 0 || len(p.Forbidden) == 0 {
			t.Errorf("%s: profile is missing template data", m)
		}
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	p, err := Lookup("Turkish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Mode != ModeTurkish {
		t.Errorf("got %q, want turkish", p.Mode)
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, mode := range []string{"norse", "yoruba_inspired", ""} {
		_, err := Lookup(mode)
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("Lookup(%q): got %v, want ErrUnknownMode", mode, err)
		}
	}
}

func TestYorubaProfile_ForbidsDeitiesAndDiacritics(t *testing.T) {
	p, _ := Lookup("yoruba")
	joined := strings.Join(p.Forbidden, "\n")
	for _, want := range []string{"deities", "diacritical", "proverbs", "names"} {
		if !strings.Contains(joined, want) {
			t.Errorf("yoruba forbidden list missing %q", want)
		}
	}
	if len(p.MetaphorImages()) != 8 {
		t.Errorf("got %d approved metaphors, want 8", len(p.MetaphorImages()))
	}
}

func TestPronounInstruction(t *testing.T) {
	tests := []struct {
		p    Pronoun
		name string
		want string
	}{
		{PronounHeHim, "", "he/him"},
		{PronounSheHer, "Ignored", "she/her"},
		{PronounTheyThem, "", "they/them"},
		{PronounNameOnly, "", "no pronouns (use 'The one who...' style instead)"},
		{PronounNameOnly, "Ada", "the name 'Ada' (no pronouns, just use the name)"},
		{Pronoun("xe_xem"), "", "they/them"},
	}
	for _, tt := range tests {
		if got := tt.p.Instruction(tt.name); got != tt.want {
			t.Errorf("%s.Instruction(%q) = %q, want %q", tt.p, tt.name, got, tt.want)
		}
	}
}
