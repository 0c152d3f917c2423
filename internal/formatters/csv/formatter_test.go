package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"name-scan/internal/formatters"
	"name-scan/internal/names"
	"name-scan/internal/scan"
)

func TestFormat(t *testing.T) {
	findings := []scan.Finding{
		{
			Line: 3,
			Text: "Acme, Inc.",
			Result: &names.ParsedName{
				Original:   "Acme, Inc.",
				Category:   names.CompanyName,
				Normalized: "Acme",
				Company:    &names.Company{Name: "Acme", Suffix: "Inc."},
			},
		},
	}

	out, err := NewFormatter().Format(findings, formatters.FormatterOptions{})
	require.NoError(t, err)

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "Line,Text,Category,Normalized", rows[0])
	// The comma in the text forces quoting.
	assert.Equal(t, `3,"Acme, Inc.",CompanyName,Acme`, rows[1])
}

func TestEscapeCSVField(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, "plain", f.escapeCSVField("plain"))
	assert.Equal(t, `"with ""quotes"""`, f.escapeCSVField(`with "quotes"`))
	// Formula characters are neutralized to prevent CSV injection.
	assert.Equal(t, "'=SUM(A1)", f.escapeCSVField("=SUM(A1)"))
}

func TestVerboseColumns(t *testing.T) {
	findings := []scan.Finding{
		{
			Line: 1,
			Text: "John Miller Jr.",
			Result: &names.ParsedName{
				Original:   "John Miller Jr.",
				Category:   names.PersonName,
				Normalized: "John Miller, Jr.",
				Person: &names.Person{
					GivenNames:       "John",
					FamilyName:       "Miller",
					FamilyNameSuffix: "Jr.",
				},
			},
		},
	}

	out, err := NewFormatter().Format(findings, formatters.FormatterOptions{Verbose: true})
	require.NoError(t, err)

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "Family Name Suffix")
	assert.Contains(t, rows[1], "Jr.")
	assert.Contains(t, rows[1], "Miller")
}
