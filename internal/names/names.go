// Package names classifies short strings into name categories (person,
// company, abbreviation, generic) and decomposes person names into their
// structural components. A Classifier is built once from the lexicon
// resources of all supported languages and is read-only afterwards.
package names

import (
	"regexp"
	"strings"
)

// Category is the semantic category of a classified string.
type Category int

const (
	GenericName Category = iota
	PersonName
	CompanyName
	Abbreviation
)

func (c Category) String() string {
	switch c {
	case PersonName:
		return "PersonName"
	case CompanyName:
		return "CompanyName"
	case Abbreviation:
		return "Abbreviation"
	default:
		return "GenericName"
	}
}

// Person holds the structural components of a person name. Every field is
// optional; exactly one of FamilyName and Attribute is populated.
type Person struct {
	Titles           string
	GivenNames       string
	Nickname         string
	AttributePrefix  string
	FamilyNamePrefix string
	FamilyName       string
	Attribute        string
	FamilyNameSuffix string
	Roman            string
	City             string
}

// GivenName returns the first given name, or "".
func (p *Person) GivenName() string {
	fields := strings.Fields(p.GivenNames)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Company holds the decomposition of a company name into its core name and
// legal-form suffix.
type Company struct {
	Name   string
	Suffix string
}

// ParsedName is the result of parsing one string. Original is the verbatim
// input; Normalized is computed at construction and never recomputed. Person
// and Company carry the category payload and are nil for other categories.
type ParsedName struct {
	Original   string
	Category   Category
	Normalized string
	Person     *Person
	Company    *Company
}

var (
	blankRun    = regexp.MustCompile(`[\s_]+`)
	nonNameChar = regexp.MustCompile(`[^\p{L}\d_]`)
)

// normalizeGeneric collapses blank runs (whitespace and underscores) to a
// single underscore and strips everything that is not a letter, digit or
// underscore.
func normalizeGeneric(s string) string {
	return nonNameChar.ReplaceAllString(blankRun.ReplaceAllString(s, "_"), "")
}

// normalized renders the canonical form of a person name. With a family name
// the form is "[givenNames ]familyName[, Jr.|, Sr.]"; without one it is
// "givenNames[ roman][ attribute]"; with neither the original stands.
func (p *Person) normalized(original string) string {
	if p.FamilyName != "" {
		var b strings.Builder
		if p.GivenNames != "" {
			b.WriteString(p.GivenNames)
			b.WriteByte(' ')
		}
		b.WriteString(p.FamilyName)
		if p.FamilyNameSuffix != "" {
			switch p.FamilyNameSuffix[0] {
			case 'j', 'J':
				b.WriteString(", Jr.")
			case 's', 'S':
				b.WriteString(", Sr.")
			}
		}
		return b.String()
	}
	if p.GivenNames != "" {
		b := p.GivenNames
		if p.Roman != "" {
			b += " " + p.Roman
		}
		if p.Attribute != "" {
			b += " " + p.Attribute
		}
		return b
	}
	return original
}

// Describe renders a multi-line diagnostic of the parsed name with a stable
// field order. Empty fields are printed empty.
func (n *ParsedName) Describe() string {
	var b strings.Builder
	b.WriteString(n.Category.String())
	line := func(key, value string) {
		b.WriteString("\n  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
	}
	line("Original", n.Original)
	switch n.Category {
	case PersonName:
		p := n.Person
		line("Titles", p.Titles)
		line("Given Name", p.GivenName())
		line("Given Names", p.GivenNames)
		line("Nickname", p.Nickname)
		line("Family Name Prefix", p.FamilyNamePrefix)
		line("Attribute Prefix", p.AttributePrefix)
		line("Family Name", p.FamilyName)
		line("Attribute", p.Attribute)
		line("Family Name Suffix", p.FamilyNameSuffix)
		line("Roman", p.Roman)
		line("City", p.City)
	case CompanyName:
		line("Name", n.Company.Name)
		line("Suffix", n.Company.Suffix)
	}
	line("Normalized", n.Normalized)
	return b.String()
}
