package names

import (
	"strings"

	"name-scan/internal/grammar"
	"name-scan/internal/lexicon"
)

// trimBlank removes surrounding whitespace and underscores from an extracted
// capture group.
func trimBlank(s string) string {
	return strings.Trim(s, " \t\r\n_")
}

// newPerson reads the capture groups of a lax person match into fields and
// repairs likely mis-segmentations. The four rewrite rules run in a fixed
// order; each one is conditioned on the state the previous rules left behind.
func newPerson(groups []string, lex *lexicon.Lexicon) *Person {
	g := func(i int) string { return trimBlank(groups[i]) }
	p := &Person{
		Titles:           g(grammar.GroupTitles),
		GivenNames:       g(grammar.GroupGivenNames),
		Nickname:         g(grammar.GroupNickname),
		AttributePrefix:  g(grammar.GroupAttributePrefix),
		FamilyNamePrefix: g(grammar.GroupFamilyNamePrefix),
		FamilyName:       g(grammar.GroupFamilyName),
		FamilyNameSuffix: g(grammar.GroupFamilyNameSuffix),
		Roman:            g(grammar.GroupRoman),
		City:             g(grammar.GroupCity),
	}
	if p.Nickname == "" {
		p.Nickname = g(grammar.GroupTrailingNickname)
	}

	// "Alexander the Great": with an epithet marker the family name slot
	// holds the attribute, not a family name.
	if p.AttributePrefix != "" {
		p.Attribute = p.FamilyName
		p.FamilyName = ""
	}

	// "Queen Elizabeth": a title that governs a given name turns the family
	// name slot into the given name.
	if p.GivenNames == "" && p.Titles != "" && p.FamilyName != "" &&
		lex.TitlesForGivenName[strings.ToLower(p.Titles)] {
		p.GivenNames = p.FamilyName
		p.FamilyName = ""
	}

	// "Elizabeth II": a regnal number follows a given name.
	if p.GivenNames == "" && p.Roman != "" && p.FamilyName != "" {
		p.GivenNames = p.FamilyName
		p.FamilyName = ""
	}

	// "John Miller Jr." can match with familyName="Jr.": when the slot holds
	// a generational suffix, the real family name is the last given name.
	if p.GivenNames != "" && p.FamilyName != "" && grammar.IsPersonNameSuffix(p.FamilyName) {
		p.FamilyNameSuffix = p.FamilyName
		fields := strings.Fields(p.GivenNames)
		p.FamilyName = fields[len(fields)-1]
		p.GivenNames = strings.Join(fields[:len(fields)-1], " ")
	}

	return p
}

// newCompany reads the two capture groups of a company match.
func newCompany(groups []string) *Company {
	return &Company{
		Name:   trimBlank(groups[1]),
		Suffix: trimBlank(groups[2]),
	}
}
