package grammar

import (
	"name-scan/internal/pattern"
)

// Language-independent fragments. These are shared verbatim across all
// supported languages; only titles vary per language (see person.go).
const (
	// Roman recognizes roman numerals as they occur in regnal names. It
	// accepts some non-numerals ("IXI") in exchange for simplicity.
	Roman = `\b(?:[XIV]+)\b`

	of = `\bof\b`

	// FamilyNamePrefix recognizes nobiliary and patronymic particles that
	// precede a family name ("von", "de la", "bin").
	FamilyNamePrefix = `(?:[aA]l|[dD][ea]|[dD]el|[dD]e las|[bB]in|[dD]e la|[dD]e los|[dD]i|[zZ]u[mr]|[aA]m|[vV][oa]n de[rnm]|[vV][oa][nm]|[dD]o|[dD]')`

	// AttributePrefix introduces an epithet ("the" in "Alexander the Great").
	AttributePrefix = `(?:the|der|die|il|la|le)`

	// FamilyNameSuffix recognizes generational and honorific suffixes.
	FamilyNameSuffix = `(?:CBE|DBE|GBE|[jJ]r\.?|[jJ]unior|hijo|hija|P[hH]\.?[dD]\.?|KBE|MBE|M\.?D\.|OBE|[sS]enior|[sS]r\.?)`

	// CompanySuffix recognizes legal-form markers ("Inc.", "GmbH", "& Co.").
	CompanySuffix = `(?:[cC][oO]\.|[cC][oO]\b|&(?:[\s_]+)?[cC][oO]\.|&(?:[\s_]+)?[cC][oO]\b|\b[cC][oO][rR][pP]\.|\b[cC][oO][rR][pP]\b|\bR[cC]orporation\b|\b[iI][nN][cC]\.|\b[iI][nN][cC]\b|\b[iI]ncorporated\b|\b[iI]ncorporation\b|\b[iI]ncorp\.?|\b[iI]ncorp\b|\b[lL][tT][dD]\.|\b[lL][tT][dD]\b|\b[lL]imited\b|\bp\.l\.c\.\b|\bPty\.\b|\bLLC\b|\bAG\b|\bGmbH\b|\bKG\b|\bOHG\b|\bS\.R\.L\.\b|\bS\.p\.A\.\b|\bS\.A\.\b)`

	// LaxName accepts anything capitalized; SafeName insists on at least three
	// name characters with hyphens only before capitals or digits.
	LaxName  = `\b` + pattern.Upper + `.*\b`
	SafeName = `\b` + pattern.Upper + `(?:-[` + pattern.Upper + pattern.Digit + `]|[` + pattern.Upper + pattern.Lower + pattern.Digit + `]){2,}\b`

	prep = `(?:on|of|for)`

	// LaxAbbreviation tolerates blanks inside an abbreviation ("U N"), the
	// safe form does not.
	LaxAbbreviation  = `\b` + pattern.Upper + `[` + pattern.Upper + pattern.Digit + `\s_-]+\b`
	SafeAbbreviation = `\b` + pattern.Upper + `[` + pattern.Upper + pattern.Digit + `.-]+\b`

	// PersonNameComponent is one capitalized word of a person name.
	PersonNameComponent = pattern.Upper + pattern.Lower + `+`

	// Nickname is a quoted single character ('X').
	Nickname = `(?:'[^']')`
)

// Composed name fragments.
var (
	// SafeNames is a sequence of safe names, optionally joined by short
	// prepositions ("Centers for Disease Control").
	SafeNames = SafeName + pattern.OptRepeat(pattern.Blank+pattern.Opt(prep+pattern.Blank)+SafeName)

	safeNamesNoPrep = SafeName + pattern.OptRepeat(pattern.Blank+SafeName)

	// DirectFamilyNamePrefix binds to the family name without a blank
	// ("McDonald", "O'Brien", "al-Din").
	DirectFamilyNamePrefix = `\b(?:(?:al-|Mc|Di|De|Mac|O')` + pattern.Opt(pattern.Blank) + `)`

	// GivenNameComponent also admits initials ("J.") and single capitals.
	GivenNameComponent = pattern.Or(pattern.Or(PersonNameComponent+`\b`, pattern.Upper+pattern.Lower+`*\.`), pattern.Upper+`\b`)

	// GivenName allows hyphenated compounds ("Jean-Paul").
	GivenName = `\b` + pattern.HyphenRepeat(GivenNameComponent)

	// GivenNames is a blank-separated sequence of given names.
	GivenNames = pattern.BlankRepeat(GivenName)

	// FamilyName allows hyphenated compounds and direct prefixes on each part.
	FamilyName = `\b` + pattern.HyphenRepeat(pattern.Opt(DirectFamilyNamePrefix)+PersonNameComponent) + `\b`

	laxCompany = pattern.Group(LaxName) + pattern.BlankOrComma + pattern.Group(CompanySuffix)

	safeCompany = pattern.Group(safeNamesNoPrep+pattern.Opt(pattern.Opt(pattern.Blank)+`&`+pattern.Opt(pattern.Blank)+safeNamesNoPrep)) +
		pattern.BlankOrComma + pattern.Group(CompanySuffix)
)

// Compiled language-independent grammars.
var (
	familyNamePrefixG = MustCompile(FamilyNamePrefix)
	attributePrefixG  = MustCompile(AttributePrefix)
	familyNameSuffixG = MustCompile(FamilyNameSuffix)
	companySuffixG    = MustCompile(CompanySuffix)

	laxAbbreviationG  = MustCompile(LaxAbbreviation)
	safeAbbreviationG = MustCompile(SafeAbbreviation)

	laxNameG   = MustCompile(LaxName)
	safeNameG  = MustCompile(SafeName)
	safeNamesG = MustCompile(SafeNames)

	// LaxCompany and SafeCompany capture two groups: the company name proper
	// and the legal-form suffix.
	LaxCompany  = MustCompile(laxCompany)
	SafeCompany = MustCompile(safeCompany)
)

// IsFamilyNamePrefix reports whether s is a family name particle ("von").
func IsFamilyNamePrefix(s string) bool { return familyNamePrefixG.Matches(s) }

// IsAttributePrefix reports whether s introduces an epithet ("the").
func IsAttributePrefix(s string) bool { return attributePrefixG.Matches(s) }

// IsPersonNameSuffix reports whether s is a generational or honorific suffix.
func IsPersonNameSuffix(s string) bool { return familyNameSuffixG.Matches(s) }

// IsCompanyNameSuffix reports whether s is a legal-form marker ("GmbH").
func IsCompanyNameSuffix(s string) bool { return companySuffixG.Matches(s) }

// CouldBeAbbreviation reports whether s looks like an abbreviation, blanks
// allowed inside ("U N").
func CouldBeAbbreviation(s string) bool { return laxAbbreviationG.Matches(s) }

// IsAbbreviation reports whether s is certainly an abbreviation ("UNESCO").
func IsAbbreviation(s string) bool { return safeAbbreviationG.Matches(s) }

// CouldBeName reports whether s could be a name of anything (capitalized).
func CouldBeName(s string) bool { return laxNameG.Matches(s) }

// IsName reports whether s is certainly a single name.
func IsName(s string) bool { return safeNameG.Matches(s) }

// IsNames reports whether s is a sequence of names, possibly joined by
// prepositions.
func IsNames(s string) bool { return safeNamesG.Matches(s) }

// CouldBeCompanyName reports whether s ends in a legal-form marker.
func CouldBeCompanyName(s string) bool { return LaxCompany.Matches(s) }

// IsCompanyName reports whether s is certainly a company name.
func IsCompanyName(s string) bool { return SafeCompany.Matches(s) }
