// Package pattern provides the regex fragment combinators and fixed character
// classes from which every category grammar is assembled. All functions are
// pure string constructors; nothing here performs matching. Compilation into a
// matcher happens in the grammar package.
package pattern

// Fixed character classes. These are composed, never altered at runtime.
const (
	// Upper matches one uppercase letter.
	Upper = `\p{Lu}`
	// Lower matches one lowercase letter.
	Lower = `\p{Ll}`
	// Letter matches any letter.
	Letter = `\p{L}`
	// Digit matches one decimal digit.
	Digit = `\d`
	// Boundary is a word boundary assertion.
	Boundary = `\b`
	// Blank matches one or more whitespace or underscore characters.
	Blank = `(?:[\s_]+)`
	// BlankOrComma matches one or more whitespace, underscore or comma characters.
	BlankOrComma = `[,\s_]+`
	// Hyphen is a literal hyphen.
	Hyphen = `-`
)

// Opt wraps p as a zero-or-one occurrence.
func Opt(p string) string {
	return "(?:" + p + ")?"
}

// OptRepeat wraps p as zero-or-more occurrences with no separator.
func OptRepeat(p string) string {
	return "(?:" + p + ")*"
}

// HyphenRepeat repeats p one or more times joined by literal hyphens.
func HyphenRepeat(p string) string {
	return "(?:" + p + Hyphen + ")*" + p
}

// BlankRepeat repeats p one or more times joined by blanks.
func BlankRepeat(p string) string {
	return "(?:" + p + Blank + ")*" + p
}

// Or matches either a or b, preferring a.
func Or(a, b string) string {
	return "(?:" + a + "|" + b + ")"
}

// Group wraps p as a capturing group whose matched text is retrievable by
// position. Every other combinator emits non-capturing constructs, so group
// numbering is determined solely by Group call order.
func Group(p string) string {
	return "(" + p + ")"
}
