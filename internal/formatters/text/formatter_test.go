package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"name-scan/internal/formatters"
	"name-scan/internal/names"
	"name-scan/internal/scan"
)

func sampleFindings() []scan.Finding {
	return []scan.Finding{
		{
			Line: 1,
			Text: "Queen Elizabeth",
			Result: &names.ParsedName{
				Original:   "Queen Elizabeth",
				Category:   names.PersonName,
				Normalized: "Elizabeth",
				Person:     &names.Person{Titles: "Queen", GivenNames: "Elizabeth"},
			},
		},
	}
}

func TestFormatSummary(t *testing.T) {
	out, err := NewFormatter().Format(sampleFindings(), formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "LINE")
	assert.Contains(t, out, "PersonName")
	assert.Contains(t, out, "Queen Elizabeth")
	assert.Contains(t, out, "Elizabeth")
}

func TestFormatVerbose(t *testing.T) {
	out, err := NewFormatter().Format(sampleFindings(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	require.NoError(t, err)

	assert.Contains(t, out, "Titles:")
	assert.Contains(t, out, "Given Names:")
	assert.NotContains(t, out, "Family Name:") // empty fields are omitted
}

func TestFormatVerboseAttributePrefix(t *testing.T) {
	findings := []scan.Finding{
		{
			Line: 1,
			Text: "Alexander the Great",
			Result: &names.ParsedName{
				Original:   "Alexander the Great",
				Category:   names.PersonName,
				Normalized: "Alexander Great",
				Person: &names.Person{
					GivenNames:      "Alexander",
					AttributePrefix: "the",
					Attribute:       "Great",
				},
			},
		},
	}

	out, err := NewFormatter().Format(findings, formatters.FormatterOptions{NoColor: true, Verbose: true})
	require.NoError(t, err)

	assert.Contains(t, out, "Attribute Prefix:")
	assert.Contains(t, out, "Attribute:")
}

func TestFormatDescribe(t *testing.T) {
	out, err := NewFormatter().Format(sampleFindings(), formatters.FormatterOptions{NoColor: true, Describe: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "PersonName\n  Original: Queen Elizabeth"))
}

func TestFormatNoFindings(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "No names found.", out)
}
