// Package grammar defines the regular grammars that recognize person names,
// company names and abbreviations. Fragments are composed from the building
// blocks in internal/pattern; a Grammar anchors a fragment so that it must
// cover the whole input.
package grammar

import (
	"fmt"
	"regexp"
)

// Grammar matches a whole string against one grammar fragment and exposes the
// fragment's capture groups.
type Grammar struct {
	re *regexp.Regexp
}

// Never is a grammar that matches nothing. It stands in for grammars whose
// lexicon resources could not be loaded.
var Never = &Grammar{}

// Compile anchors fragment to the whole input and compiles it.
func Compile(fragment string) (*Grammar, error) {
	re, err := regexp.Compile(`\A(?:` + fragment + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("grammar: compiling %q: %w", fragment, err)
	}
	return &Grammar{re: re}, nil
}

// MustCompile is Compile for static fragments known to be valid.
func MustCompile(fragment string) *Grammar {
	g, err := Compile(fragment)
	if err != nil {
		panic(err)
	}
	return g
}

// Matches reports whether s as a whole belongs to the grammar.
func (g *Grammar) Matches(s string) bool {
	return g.re != nil && g.re.MatchString(s)
}

// Groups returns the capture groups of a whole-string match, with the full
// match at index 0, or nil when s does not belong to the grammar. Groups that
// did not participate are empty strings.
func (g *Grammar) Groups(s string) []string {
	if g.re == nil {
		return nil
	}
	return g.re.FindStringSubmatch(s)
}
