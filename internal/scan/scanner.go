// Package scan runs the classifier over text sources, one candidate name per
// line, and collects the findings. PDF inputs go through text extraction
// first; everything else is read as plain text.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"name-scan/internal/language"
	"name-scan/internal/names"
	"name-scan/internal/observability"
)

// Finding is one classified input line.
type Finding struct {
	Line   int
	Text   string
	Result *names.ParsedName
}

// Scanner classifies every non-blank line of a source for one language.
type Scanner struct {
	classifier *names.Classifier
	lang       language.Language
	observer   *observability.StandardObserver
}

// New creates a scanner bound to one language.
func New(classifier *names.Classifier, lang language.Language, observer *observability.StandardObserver) *Scanner {
	return &Scanner{
		classifier: classifier,
		lang:       lang,
		observer:   observer,
	}
}

// ScanReader classifies every non-blank line of r. Line numbers are 1-based
// and count blank lines too.
func (s *Scanner) ScanReader(r io.Reader) ([]Finding, error) {
	var findings []Finding
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		parsed, err := s.classifier.Parse(text, s.lang)
		if err != nil {
			return nil, err
		}
		findings = append(findings, Finding{Line: lineNo, Text: text, Result: parsed})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return findings, nil
}

// ScanFile classifies the contents of one file. A ".pdf" extension routes the
// file through PDF text extraction.
func (s *Scanner) ScanFile(path string) ([]Finding, error) {
	finish := s.observer.StartTiming("scanner", "scan_file", path)

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := ExtractPDFText(path)
		if err != nil {
			finish(false, nil)
			return nil, fmt.Errorf("extracting PDF text from %s: %w", path, err)
		}
		findings, err := s.ScanReader(strings.NewReader(text))
		finish(err == nil, map[string]interface{}{"findings": len(findings)})
		return findings, err
	}

	f, err := os.Open(path)
	if err != nil {
		finish(false, nil)
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	findings, err := s.ScanReader(f)
	finish(err == nil, map[string]interface{}{"findings": len(findings)})
	return findings, err
}
