package lexicon

import "strings"

// usStates maps US state (and territory) abbreviations to their full names.
var usStates = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AS": "American Samoa", "AZ": "Arizona",
	"AR": "Arkansas", "CA": "California", "CALIF": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FM": "Federated States of Micronesia",
	"FL": "Florida", "GA": "Georgia", "GU": "Guam", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MH": "Marshall Islands", "MD": "Maryland", "MA": "Massachusetts",
	"MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota",
	"MP": "Northern Mariana Islands", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PW": "Palau", "PA": "Pennsylvania", "PR": "Puerto Rico",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VI": "Virgin Islands", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

var usStateNames = valueSet(usStates)

// valueSet builds a membership set over a table's values for reverse lookups.
func valueSet(m map[string]string) map[string]bool {
	set := make(map[string]bool, len(m))
	for _, v := range m {
		set[v] = true
	}
	return set
}

// stripTrailingPeriod removes one trailing "." from an abbreviation before
// lookup ("Calif." -> "Calif").
func stripTrailingPeriod(s string) string {
	return strings.TrimSuffix(s, ".")
}

// IsUSState reports whether s is the full name of a US state. Underscores are
// treated as blanks.
func IsUSState(s string) bool {
	return usStateNames[strings.ReplaceAll(s, "_", " ")]
}

// IsUSStateAbbreviation reports whether s abbreviates a US state.
func IsUSStateAbbreviation(s string) bool {
	_, ok := usStates[strings.ToUpper(stripTrailingPeriod(s))]
	return ok
}

// UnabbreviateUSState returns the state name for an abbreviation, or "".
func UnabbreviateUSState(s string) string {
	return usStates[strings.ToUpper(stripTrailingPeriod(s))]
}
