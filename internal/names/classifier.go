package names

import (
	"strings"

	"name-scan/internal/grammar"
	"name-scan/internal/language"
	"name-scan/internal/lexicon"
	"name-scan/internal/observability"
)

// bundle holds one language's lexicon and compiled person grammars.
type bundle struct {
	lex        *lexicon.Lexicon
	titles     *grammar.Grammar
	laxPerson  *grammar.Grammar
	safePerson *grammar.Grammar
}

// Classifier classifies strings for all supported languages. Built once by
// New and read-only afterwards, so it is safe for concurrent use.
type Classifier struct {
	bundles  map[language.Language]*bundle
	observer *observability.StandardObserver
}

// New loads the lexicons under dataDir and compiles the per-language person
// grammars. A language whose resources are missing degrades to never-matching
// person grammars; the failure is logged through observer, never returned.
func New(dataDir string, observer *observability.StandardObserver) *Classifier {
	c := &Classifier{
		bundles:  make(map[language.Language]*bundle, len(language.All)),
		observer: observer,
	}

	for _, lang := range language.All {
		lex, err := lexicon.Load(dataDir, lang)
		b := &bundle{
			lex:        lex,
			titles:     grammar.Never,
			laxPerson:  grammar.Never,
			safePerson: grammar.Never,
		}
		if title := grammar.TitlePattern(lex.Titles); title != "" {
			if g, cerr := grammar.Compile(title); cerr == nil {
				b.titles = g
			} else if err == nil {
				err = cerr
			}
			if g, cerr := grammar.LaxPerson(title); cerr == nil {
				b.laxPerson = g
			} else if err == nil {
				err = cerr
			}
			if g, cerr := grammar.SafePerson(title); cerr == nil {
				b.safePerson = g
			} else if err == nil {
				err = cerr
			}
		}
		c.bundles[lang] = b

		data := observability.OperationData{
			Component: "classifier",
			Operation: "init_language",
			Language:  lang.Code(),
			Success:   err == nil,
			Metadata: map[string]interface{}{
				"titles": len(lex.Titles),
			},
		}
		if err != nil {
			data.Error = err.Error()
		}
		observer.LogOperation(data)
	}

	return c
}

func (c *Classifier) bundle(lang language.Language) (*bundle, error) {
	b, ok := c.bundles[lang]
	if !ok {
		return nil, language.ErrUnsupported
	}
	return b, nil
}

// blanked treats underscores as blanks for person matching.
func blanked(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// Classify maps s to its category for lang. Priority is fixed: certain
// company, then plausible person (companies rechecked), then certain
// abbreviation, then generic.
func (c *Classifier) Classify(s string, lang language.Language) (Category, error) {
	b, err := c.bundle(lang)
	if err != nil {
		return GenericName, err
	}
	switch {
	case grammar.IsCompanyName(s):
		return CompanyName, nil
	case b.laxPerson.Matches(blanked(s)):
		return PersonName, nil
	case grammar.IsAbbreviation(s):
		return Abbreviation, nil
	default:
		return GenericName, nil
	}
}

// Parse classifies s and extracts the category payload. The returned
// ParsedName is fully populated; parsing never fails for ordinary text.
func (c *Classifier) Parse(s string, lang language.Language) (*ParsedName, error) {
	b, err := c.bundle(lang)
	if err != nil {
		return nil, err
	}

	n := &ParsedName{Original: s}
	if grammar.IsCompanyName(s) {
		n.Category = CompanyName
		n.Company = newCompany(grammar.SafeCompany.Groups(s))
		n.Normalized = n.Company.Name
		return n, nil
	}
	if groups := b.laxPerson.Groups(blanked(s)); groups != nil {
		n.Category = PersonName
		n.Person = newPerson(groups, b.lex)
		n.Normalized = n.Person.normalized(s)
		return n, nil
	}
	if grammar.IsAbbreviation(s) {
		n.Category = Abbreviation
		n.Normalized = strings.ToUpper(normalizeGeneric(s))
		return n, nil
	}
	n.Category = GenericName
	n.Normalized = normalizeGeneric(s)
	return n, nil
}

// IsPersonName reports whether s is certainly a person name in lang.
func (c *Classifier) IsPersonName(s string, lang language.Language) (bool, error) {
	b, err := c.bundle(lang)
	if err != nil {
		return false, err
	}
	return b.safePerson.Matches(blanked(s)) && !grammar.IsCompanyName(s), nil
}

// CouldBePersonName reports whether s plausibly is a person name in lang.
// Strings that are certainly company names are rejected.
func (c *Classifier) CouldBePersonName(s string, lang language.Language) (bool, error) {
	b, err := c.bundle(lang)
	if err != nil {
		return false, err
	}
	return b.laxPerson.Matches(blanked(s)) && !grammar.IsCompanyName(s), nil
}

// IsTitle reports whether s is an honorific of lang.
func (c *Classifier) IsTitle(s string, lang language.Language) (bool, error) {
	b, err := c.bundle(lang)
	if err != nil {
		return false, err
	}
	return b.titles.Matches(s), nil
}

// IsStopWord reports whether s is a stop word of lang.
func (c *Classifier) IsStopWord(s string, lang language.Language) (bool, error) {
	b, err := c.bundle(lang)
	if err != nil {
		return false, err
	}
	return b.lex.IsStopWord(s), nil
}

// Language-independent predicates, re-exported so callers only need this
// package for the whole query surface.

func IsCompanyName(s string) bool      { return grammar.IsCompanyName(s) }
func CouldBeCompanyName(s string) bool { return grammar.CouldBeCompanyName(s) }
func IsAbbreviation(s string) bool     { return grammar.IsAbbreviation(s) }
func CouldBeAbbreviation(s string) bool {
	return grammar.CouldBeAbbreviation(s)
}
func IsName(s string) bool      { return grammar.IsName(s) }
func CouldBeName(s string) bool { return grammar.CouldBeName(s) }
