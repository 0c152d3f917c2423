// Package csv renders findings as comma-separated values.
package csv

import (
	"fmt"
	"strings"

	"name-scan/internal/formatters"
	"name-scan/internal/names"
	"name-scan/internal/scan"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(findings []scan.Finding, options formatters.FormatterOptions) (string, error) {
	headers := []string{"Line", "Text", "Category", "Normalized"}
	if options.Verbose {
		headers = append(headers, "Titles", "Given Names", "Family Name", "Attribute", "Family Name Suffix", "Company Name", "Company Suffix")
	}

	csvRows := []string{strings.Join(headers, ",")}
	for _, finding := range findings {
		csvRows = append(csvRows, f.createCSVRow(finding, options))
	}

	return strings.Join(csvRows, "\n"), nil
}

// createCSVRow creates a CSV row for a finding
func (f *Formatter) createCSVRow(finding scan.Finding, options formatters.FormatterOptions) string {
	parsed := finding.Result
	row := []string{
		fmt.Sprintf("%d", finding.Line),
		f.escapeCSVField(finding.Text),
		parsed.Category.String(),
		f.escapeCSVField(parsed.Normalized),
	}

	if options.Verbose {
		var p names.Person
		if parsed.Person != nil {
			p = *parsed.Person
		}
		var c names.Company
		if parsed.Company != nil {
			c = *parsed.Company
		}
		row = append(row,
			f.escapeCSVField(p.Titles),
			f.escapeCSVField(p.GivenNames),
			f.escapeCSVField(p.FamilyName),
			f.escapeCSVField(p.Attribute),
			f.escapeCSVField(p.FamilyNameSuffix),
			f.escapeCSVField(c.Name),
			f.escapeCSVField(c.Suffix),
		)
	}

	return strings.Join(row, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.ContainsAny(field, ",\"\n\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		// Prefix with single quote to prevent formula execution
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
