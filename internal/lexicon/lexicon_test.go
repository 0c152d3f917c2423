package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"name-scan/internal/language"
)

func writeResource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write resource: %v", err)
	}
}

func TestLoadLines(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, "titles.en", "## header comment\nMr.\n\n  Dr.  \n## trailing comment\nQueen\n")

	lines, err := LoadLines(filepath.Join(dir, "titles.en"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Mr.", "Dr.", "Queen"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}

func TestLoadLinesMissingFile(t *testing.T) {
	_, err := LoadLines(filepath.Join(t.TempDir(), "missing.en"))
	if err == nil {
		t.Fatal("expected an error for a missing resource")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if !errors.Is(loadErr.Err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", loadErr.Err)
	}
}

func TestLoadSetDegradesToEmpty(t *testing.T) {
	set, err := LoadSet(filepath.Join(t.TempDir(), "missing.en"))
	if err == nil {
		t.Fatal("expected an error for a missing resource")
	}
	if set == nil {
		t.Fatal("expected a usable empty set despite the error")
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %v", set)
	}
}

func TestLoadFullLexicon(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, "titles.en", "Mr.\nQueen\n")
	writeResource(t, dir, "giventitles.en", "queen\n")
	writeResource(t, dir, "stopwords.en", "the\nand\n")

	lex, err := Load(dir, language.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lex.Titles) != 2 || lex.Titles[0] != "Mr." {
		t.Errorf("unexpected titles: %v", lex.Titles)
	}
	if !lex.TitlesForGivenName["queen"] {
		t.Error("expected queen in giventitles")
	}
	if !lex.IsStopWord("the") || lex.IsStopWord("queen") {
		t.Error("unexpected stop word membership")
	}
}

func TestLoadDegradesPerResource(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, "titles.en", "Mr.\n")
	// giventitles.en and stopwords.en are missing on purpose.

	lex, err := Load(dir, language.English)
	if err == nil {
		t.Fatal("expected a load error for the missing resources")
	}

	// The lexicon stays usable: titles loaded, sets empty.
	if len(lex.Titles) != 1 {
		t.Errorf("expected titles to load, got %v", lex.Titles)
	}
	if lex.IsStopWord("the") {
		t.Error("missing stopwords resource must behave as empty")
	}
	if lex.TitlesForGivenName["queen"] {
		t.Error("missing giventitles resource must behave as empty")
	}
}
