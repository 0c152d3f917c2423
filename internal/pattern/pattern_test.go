package pattern

import (
	"regexp"
	"testing"
)

func TestCombinatorStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"opt", Opt("ab"), "(?:ab)?"},
		{"optRepeat", OptRepeat("ab"), "(?:ab)*"},
		{"hyphenRepeat", HyphenRepeat("a"), "(?:a-)*a"},
		{"blankRepeat", BlankRepeat("a"), "(?:a" + Blank + ")*a"},
		{"or", Or("a", "b"), "(?:a|b)"},
		{"group", Group("a"), "(a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestCombinatorsCompile(t *testing.T) {
	// Every combinator output must stay a valid pattern when anchored.
	fragments := []string{
		Opt(Upper),
		OptRepeat(Upper + Lower),
		HyphenRepeat(Upper + Lower),
		BlankRepeat(Upper + Lower + "+"),
		Or(Upper, Digit),
		Group(Opt(Letter)),
		Blank,
		BlankOrComma,
	}
	for _, frag := range fragments {
		if _, err := regexp.Compile(`\A(?:` + frag + `)\z`); err != nil {
			t.Errorf("fragment %q does not compile: %v", frag, err)
		}
	}
}

func TestHyphenRepeatMatching(t *testing.T) {
	re := regexp.MustCompile(`\A(?:` + HyphenRepeat(Upper+Lower+"+") + `)\z`)

	for _, s := range []string{"Jean", "Jean-Paul", "Jean-Paul-Marie"} {
		if !re.MatchString(s) {
			t.Errorf("expected %q to match", s)
		}
	}
	for _, s := range []string{"", "Jean-", "-Paul", "jean"} {
		if re.MatchString(s) {
			t.Errorf("expected %q not to match", s)
		}
	}
}

func TestBlankRepeatMatching(t *testing.T) {
	re := regexp.MustCompile(`\A(?:` + BlankRepeat(Upper+Lower+"+") + `)\z`)

	for _, s := range []string{"Anna", "Anna Maria", "Anna_Maria", "Anna  Maria Luisa"} {
		if !re.MatchString(s) {
			t.Errorf("expected %q to match", s)
		}
	}
	if re.MatchString("Anna-Maria") {
		t.Error("hyphen is not a blank separator")
	}
}
