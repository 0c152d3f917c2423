// Package language defines the set of natural languages the name parser
// understands. Each language selects its own lexicon resources and grammar
// variants; adding a language is a data-only change in the packages that
// consume this enum.
package language

import "errors"

// ErrUnsupported is returned when a language-dependent operation is invoked
// with a value outside the supported set. This indicates a programming error,
// not a data condition.
var ErrUnsupported = errors.New("unsupported language")

// Language identifies one of the supported natural languages.
type Language int

const (
	English Language = iota
	German
	French
	Spanish
	Italian
)

// All lists every supported language, in enum order.
var All = []Language{English, German, French, Spanish, Italian}

var codes = [...]string{"en", "de", "fr", "es", "it"}

var names = [...]string{"English", "German", "French", "Spanish", "Italian"}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l >= English && l <= Italian
}

// Code returns the two-letter resource code for the language ("en", "de", ...).
func (l Language) Code() string {
	if !l.Valid() {
		return ""
	}
	return codes[l]
}

// String returns the English name of the language.
func (l Language) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return names[l]
}

// Parse resolves a two-letter code (or full English name) to a Language.
func Parse(s string) (Language, error) {
	for _, l := range All {
		if s == codes[l] || s == names[l] {
			return l, nil
		}
	}
	return English, ErrUnsupported
}
