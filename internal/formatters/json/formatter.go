// Package json renders findings as structured JSON.
package json

import (
	"encoding/json"
	"fmt"

	"name-scan/internal/formatters"
	"name-scan/internal/names"
	"name-scan/internal/scan"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic processing"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type output struct {
	Summary summary  `json:"summary"`
	Results []result `json:"results"`
}

type summary struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}

type result struct {
	Line       int      `json:"line"`
	Text       string   `json:"text"`
	Category   string   `json:"category"`
	Normalized string   `json:"normalized"`
	Person     *person  `json:"person,omitempty"`
	Company    *company `json:"company,omitempty"`
}

type person struct {
	Titles           string `json:"titles,omitempty"`
	GivenNames       string `json:"given_names,omitempty"`
	Nickname         string `json:"nickname,omitempty"`
	AttributePrefix  string `json:"attribute_prefix,omitempty"`
	FamilyNamePrefix string `json:"family_name_prefix,omitempty"`
	FamilyName       string `json:"family_name,omitempty"`
	Attribute        string `json:"attribute,omitempty"`
	FamilyNameSuffix string `json:"family_name_suffix,omitempty"`
	Roman            string `json:"roman,omitempty"`
	City             string `json:"city,omitempty"`
}

type company struct {
	Name   string `json:"name"`
	Suffix string `json:"suffix"`
}

func (f *Formatter) Format(findings []scan.Finding, options formatters.FormatterOptions) (string, error) {
	out := output{
		Summary: summary{
			Total:      len(findings),
			ByCategory: make(map[string]int),
		},
		Results: make([]result, 0, len(findings)),
	}

	for _, finding := range findings {
		parsed := finding.Result
		out.Summary.ByCategory[parsed.Category.String()]++

		r := result{
			Line:       finding.Line,
			Text:       finding.Text,
			Category:   parsed.Category.String(),
			Normalized: parsed.Normalized,
		}
		switch parsed.Category {
		case names.PersonName:
			p := parsed.Person
			r.Person = &person{
				Titles:           p.Titles,
				GivenNames:       p.GivenNames,
				Nickname:         p.Nickname,
				AttributePrefix:  p.AttributePrefix,
				FamilyNamePrefix: p.FamilyNamePrefix,
				FamilyName:       p.FamilyName,
				Attribute:        p.Attribute,
				FamilyNameSuffix: p.FamilyNameSuffix,
				Roman:            p.Roman,
				City:             p.City,
			}
		case names.CompanyName:
			r.Company = &company{
				Name:   parsed.Company.Name,
				Suffix: parsed.Company.Suffix,
			}
		}
		out.Results = append(out.Results, r)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling results to JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
