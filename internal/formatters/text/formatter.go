// Package text renders findings as human-readable colored text.
package text

import (
	"fmt"
	"strings"

	"name-scan/internal/formatters"
	"name-scan/internal/names"
	"name-scan/internal/scan"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[names.Category]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[names.Category]*color.Color{
			names.PersonName:   color.New(color.FgGreen),
			names.CompanyName:  color.New(color.FgCyan),
			names.Abbreviation: color.New(color.FgYellow),
			names.GenericName:  color.New(color.FgWhite),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(findings []scan.Finding, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(findings) == 0 {
		return "No names found.", nil
	}

	var builder strings.Builder
	if !options.Verbose && !options.Describe {
		f.appendHeaders(&builder)
	}

	for _, finding := range findings {
		switch {
		case options.Describe:
			f.appendDescription(&builder, finding)
		case options.Verbose:
			f.appendDetailedFinding(&builder, finding)
		default:
			f.appendSummaryLine(&builder, finding)
		}
	}

	return builder.String(), nil
}

// appendHeaders adds column headers to the string builder
func (f *Formatter) appendHeaders(builder *strings.Builder) {
	builder.WriteString(fmt.Sprintf("%-6s %-14s %-30s %s\n", "LINE", "CATEGORY", "TEXT", "NORMALIZED"))
	builder.WriteString(strings.Repeat("-", 80) + "\n")
}

// appendSummaryLine prints a single line summary of one finding
func (f *Formatter) appendSummaryLine(builder *strings.Builder, finding scan.Finding) {
	category := f.colorize(finding.Result.Category, fmt.Sprintf("%-14s", finding.Result.Category))
	builder.WriteString(fmt.Sprintf("%-6d %s %-30s %s\n",
		finding.Line, category, truncate(finding.Text, 30), finding.Result.Normalized))
}

// appendDetailedFinding prints the structural fields of one finding
func (f *Formatter) appendDetailedFinding(builder *strings.Builder, finding scan.Finding) {
	result := finding.Result
	builder.WriteString(f.colorize(result.Category, result.Category.String()))
	builder.WriteString(fmt.Sprintf(" (line %d)\n", finding.Line))
	builder.WriteString(fmt.Sprintf("  Text:       %s\n", finding.Text))
	builder.WriteString(fmt.Sprintf("  Normalized: %s\n", result.Normalized))
	switch result.Category {
	case names.PersonName:
		p := result.Person
		writeField(builder, "Titles", p.Titles)
		writeField(builder, "Given Names", p.GivenNames)
		writeField(builder, "Nickname", p.Nickname)
		writeField(builder, "Family Name Prefix", p.FamilyNamePrefix)
		writeField(builder, "Attribute Prefix", p.AttributePrefix)
		writeField(builder, "Family Name", p.FamilyName)
		writeField(builder, "Attribute", p.Attribute)
		writeField(builder, "Family Name Suffix", p.FamilyNameSuffix)
		writeField(builder, "Roman", p.Roman)
		writeField(builder, "City", p.City)
	case names.CompanyName:
		writeField(builder, "Name", result.Company.Name)
		writeField(builder, "Suffix", result.Company.Suffix)
	}
	builder.WriteString("\n")
}

// appendDescription prints the canonical multi-line description
func (f *Formatter) appendDescription(builder *strings.Builder, finding scan.Finding) {
	builder.WriteString(finding.Result.Describe())
	builder.WriteString("\n\n")
}

func (f *Formatter) colorize(category names.Category, s string) string {
	if c, ok := f.colors[category]; ok {
		return c.Sprint(s)
	}
	return s
}

func writeField(builder *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	builder.WriteString(fmt.Sprintf("  %-18s %s\n", name+":", value))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
