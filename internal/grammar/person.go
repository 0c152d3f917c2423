package grammar

import (
	"regexp"
	"strings"

	"name-scan/internal/pattern"
)

// Capture group indices of the lax person grammar, as returned by
// Grammar.Groups (index 0 is the full match).
const (
	GroupTitles = iota + 1
	GroupGivenNames
	GroupNickname
	GroupAttributePrefix
	GroupFamilyNamePrefix
	GroupFamilyName
	GroupFamilyNameSuffix
	GroupRoman
	GroupCity
	GroupTrailingNickname

	// NumPersonGroups counts the capture groups of the lax person grammar.
	NumPersonGroups = GroupTrailingNickname
)

// TitlePattern builds the title fragment for a language from its title list.
// Titles are matched literally; an empty list yields "".
func TitlePattern(titles []string) string {
	if len(titles) == 0 {
		return ""
	}
	quoted := make([]string, len(titles))
	for i, t := range titles {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return `\b(?:` + strings.Join(quoted, "|") + `)`
}

// LaxPerson builds the permissive person grammar for one language. Its ten
// capture groups decompose the name (see the Group constants). With no titles
// the grammar degrades to Never.
func LaxPerson(title string) (*Grammar, error) {
	if title == "" {
		return Never, nil
	}
	fragment := pattern.Group(pattern.OptRepeat(title+pattern.Blank)) +
		pattern.Group(pattern.OptRepeat(GivenName+pattern.Blank)) +
		pattern.Opt(pattern.Group(Nickname)+pattern.Blank) +
		pattern.Opt(pattern.Group(AttributePrefix)+pattern.Blank) +
		pattern.Opt(pattern.Group(FamilyNamePrefix)+pattern.Blank) +
		pattern.Group(FamilyName) +
		pattern.Opt(pattern.BlankOrComma+pattern.Group(FamilyNameSuffix)) +
		pattern.Opt(pattern.Blank+pattern.Group(Roman)) +
		pattern.Opt(pattern.Blank+of+pattern.Blank+pattern.Group(PersonNameComponent)) +
		pattern.Opt(pattern.Blank+pattern.Group(Nickname))
	return Compile(fragment)
}

// SafePerson builds the conservative person grammar for one language. It
// admits only shapes that are unmistakably person names: a title, a
// generational suffix, a roman numeral or initials must be present. With no
// titles the grammar degrades to Never.
func SafePerson(title string) (*Grammar, error) {
	if title == "" {
		return Never, nil
	}
	optPrefix := pattern.Opt(FamilyNamePrefix + pattern.Blank)
	optSuffix := pattern.Opt(pattern.BlankOrComma + FamilyNameSuffix)
	initial := pattern.Upper + `\.`
	fragment := pattern.Or(
		pattern.Or(
			pattern.Or(
				title+pattern.Blank+GivenNames+pattern.Blank+optPrefix+FamilyName+optSuffix,
				title+pattern.Blank+optPrefix+FamilyName+optSuffix),
			pattern.Or(
				GivenName+pattern.Blank+Roman,
				GivenNames+pattern.Blank+optPrefix+FamilyName+pattern.BlankOrComma+FamilyNameSuffix)),
		pattern.Or(
			pattern.Or(
				optPrefix+FamilyName+pattern.BlankOrComma+FamilyNameSuffix,
				GivenName+pattern.Blank+initial+pattern.Blank+optPrefix+FamilyName+optSuffix),
			GivenName+pattern.Blank+initial+pattern.Blank+initial+pattern.Blank+optPrefix+FamilyName+optSuffix))
	return Compile(fragment)
}
