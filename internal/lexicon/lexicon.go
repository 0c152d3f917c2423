// Package lexicon loads the per-language vocabulary resources (titles,
// given-name titles, stop words) and holds the fixed lookup tables for US
// states, language codes and nationalities.
//
// Resources are UTF-8 text files named <kind>.<code> (titles.en,
// stopwords.de, ...) with one entry per line; blank lines and lines starting
// with "##" are skipped. A missing or unreadable resource degrades to an
// empty set — callers treat that as "feature unavailable", never as fatal.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"name-scan/internal/language"
)

// LoadError reports that a lexicon resource could not be read.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("lexicon: loading %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Lexicon bundles the vocabulary of one language. Built once, read-only
// afterwards.
type Lexicon struct {
	// Titles holds honorifics in file order ("Mr.", "Dr.", ...).
	Titles []string
	// TitlesForGivenName holds, lowercase, the titles that attach to a given
	// name rather than a family name ("queen" in "Queen Elizabeth").
	TitlesForGivenName map[string]bool
	// StopWords holds the language's stop words.
	StopWords map[string]bool
}

// LoadLines reads a resource and returns its trimmed, non-empty, non-comment
// lines in order. The error, if any, is a *LoadError.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Resource: path, Err: err}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "##") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Resource: path, Err: err}
	}
	return lines, nil
}

// LoadSet reads a resource into a membership set. On load failure it returns
// an empty set alongside the error; callers log the error and carry on.
func LoadSet(path string) (map[string]bool, error) {
	set := make(map[string]bool)
	lines, err := LoadLines(path)
	if err != nil {
		return set, err
	}
	for _, line := range lines {
		set[line] = true
	}
	return set, nil
}

// Load reads all resources of one language from dir. Every resource degrades
// independently: a missing stopwords file still yields usable titles. The
// returned error is the first load failure, for logging only — the Lexicon is
// always usable.
func Load(dir string, lang language.Language) (*Lexicon, error) {
	code := lang.Code()
	lex := &Lexicon{}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	titles, err := LoadLines(filepath.Join(dir, "titles."+code))
	keep(err)
	lex.Titles = titles

	lex.TitlesForGivenName, err = LoadSet(filepath.Join(dir, "giventitles."+code))
	keep(err)

	lex.StopWords, err = LoadSet(filepath.Join(dir, "stopwords."+code))
	keep(err)

	return lex, firstErr
}

// IsStopWord reports whether w is a stop word of this lexicon.
func (l *Lexicon) IsStopWord(w string) bool {
	return l.StopWords[w]
}
