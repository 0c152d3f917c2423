package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeverMatchesNothing(t *testing.T) {
	assert.False(t, Never.Matches(""))
	assert.False(t, Never.Matches("anything"))
	assert.Nil(t, Never.Groups("anything"))
}

func TestCompileAnchorsWholeString(t *testing.T) {
	g, err := Compile(`\p{Lu}\p{Ll}+`)
	require.NoError(t, err)

	assert.True(t, g.Matches("Word"))
	assert.False(t, g.Matches("Word extra"))
	assert.False(t, g.Matches("two Word"))
}

func TestCompileRejectsBadFragment(t *testing.T) {
	_, err := Compile("(unbalanced")
	require.Error(t, err)
}

func TestAffixPredicates(t *testing.T) {
	assert.True(t, IsFamilyNamePrefix("von"))
	assert.True(t, IsFamilyNamePrefix("de la"))
	assert.True(t, IsFamilyNamePrefix("van der"))
	assert.True(t, IsFamilyNamePrefix("bin"))
	assert.False(t, IsFamilyNamePrefix("from"))

	assert.True(t, IsAttributePrefix("the"))
	assert.True(t, IsAttributePrefix("der"))
	assert.False(t, IsAttributePrefix("a"))

	assert.True(t, IsPersonNameSuffix("Jr."))
	assert.True(t, IsPersonNameSuffix("Junior"))
	assert.True(t, IsPersonNameSuffix("Sr"))
	assert.True(t, IsPersonNameSuffix("PhD"))
	assert.True(t, IsPersonNameSuffix("OBE"))
	assert.False(t, IsPersonNameSuffix("III"))

	assert.True(t, IsCompanyNameSuffix("Inc."))
	assert.True(t, IsCompanyNameSuffix("GmbH"))
	assert.True(t, IsCompanyNameSuffix("& Co."))
	assert.True(t, IsCompanyNameSuffix("Ltd"))
	assert.False(t, IsCompanyNameSuffix("Street"))
}

func TestAbbreviationTiers(t *testing.T) {
	// Safe: no blanks inside.
	assert.True(t, IsAbbreviation("PMM"))
	assert.True(t, IsAbbreviation("B2B"))
	assert.True(t, IsAbbreviation("UN-X"))
	assert.False(t, IsAbbreviation("U N"))
	assert.False(t, IsAbbreviation("Word"))
	assert.False(t, IsAbbreviation("U.N.")) // trailing period breaks the word boundary

	// Lax: blanks allowed.
	assert.True(t, CouldBeAbbreviation("U N"))
	assert.True(t, CouldBeAbbreviation("PMM"))
	assert.False(t, CouldBeAbbreviation("lower"))

	// Safe implies lax.
	for _, s := range []string{"PMM", "B2B", "UN-X", "A1"} {
		if IsAbbreviation(s) {
			assert.True(t, CouldBeAbbreviation(s), "safe abbreviation %q must also be lax", s)
		}
	}
}

func TestNameTiers(t *testing.T) {
	assert.True(t, IsName("Acme"))
	assert.True(t, IsName("Jean-Luc"))
	assert.False(t, IsName("Al")) // too short for the safe tier
	assert.False(t, IsName("lower"))

	assert.True(t, CouldBeName("Al"))
	assert.True(t, CouldBeName("Acme"))
	assert.False(t, CouldBeName("lower"))

	assert.True(t, IsNames("Disease Control"))
	assert.True(t, IsNames("Centers for Disease Control"))
	assert.False(t, IsNames("for Disease"))
}

func TestCompanyTiers(t *testing.T) {
	assert.True(t, IsCompanyName("Acme Inc."))
	assert.True(t, IsCompanyName("Acme & Co."))
	assert.True(t, IsCompanyName("Audi AG"))
	assert.True(t, IsCompanyName("Acme & Best Co."))
	assert.False(t, IsCompanyName("Acme"))
	assert.False(t, IsCompanyName("lower Inc."))

	assert.True(t, CouldBeCompanyName("Acme Inc."))
	assert.True(t, CouldBeCompanyName("Some thing Ltd."))
	assert.False(t, CouldBeCompanyName("Acme"))
}

func TestSafeCompanyGroups(t *testing.T) {
	groups := SafeCompany.Groups("Acme & Co.")
	require.Len(t, groups, 3)
	assert.Equal(t, "Acme", groups[1])
	assert.Equal(t, "& Co.", groups[2])

	groups = SafeCompany.Groups("Acme Best Inc.")
	require.Len(t, groups, 3)
	assert.Equal(t, "Acme Best", groups[1])
	assert.Equal(t, "Inc.", groups[2])
}

func TestTitlePattern(t *testing.T) {
	assert.Equal(t, "", TitlePattern(nil))

	frag := TitlePattern([]string{"Mr.", "Dr."})
	g, err := Compile(frag)
	require.NoError(t, err)
	assert.True(t, g.Matches("Mr."))
	assert.True(t, g.Matches("Dr."))
	// The period is literal, not a wildcard.
	assert.False(t, g.Matches("Mrs"))
	assert.False(t, g.Matches("DrX"))
}

func testTitle(t *testing.T) string {
	t.Helper()
	return TitlePattern([]string{"Mr.", "Dr.", "Prof.", "Queen", "King"})
}

func TestLaxPersonGroups(t *testing.T) {
	lax, err := LaxPerson(testTitle(t))
	require.NoError(t, err)

	tests := []struct {
		input string
		want  map[int]string
	}{
		{
			input: "Dr. John Smith",
			want: map[int]string{
				GroupTitles:     "Dr. ",
				GroupGivenNames: "John ",
				GroupFamilyName: "Smith",
			},
		},
		{
			input: "John Miller Jr.",
			want: map[int]string{
				GroupGivenNames:       "John ",
				GroupFamilyName:       "Miller",
				GroupFamilyNameSuffix: "Jr.",
			},
		},
		{
			input: "Elizabeth II",
			want: map[int]string{
				GroupFamilyName: "Elizabeth",
				GroupRoman:      "II",
			},
		},
		{
			input: "Alexander the Great",
			want: map[int]string{
				GroupGivenNames:      "Alexander ",
				GroupAttributePrefix: "the",
				GroupFamilyName:      "Great",
			},
		},
		{
			input: "Ludwig van Beethoven",
			want: map[int]string{
				GroupGivenNames:       "Ludwig ",
				GroupFamilyNamePrefix: "van",
				GroupFamilyName:       "Beethoven",
			},
		},
		{
			input: "Henry of Navarra",
			want: map[int]string{
				GroupFamilyName: "Henry",
				GroupCity:       "Navarra",
			},
		},
		{
			input: "Dwayne 'R' Johnson",
			want: map[int]string{
				GroupGivenNames: "Dwayne ",
				GroupNickname:   "'R'",
				GroupFamilyName: "Johnson",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			groups := lax.Groups(tt.input)
			require.NotNil(t, groups, "expected a match")
			require.Len(t, groups, NumPersonGroups+1)
			for idx, want := range tt.want {
				assert.Equal(t, want, groups[idx], "group %d", idx)
			}
		})
	}

	assert.Nil(t, lax.Groups("lowercase name"))
	assert.Nil(t, lax.Groups("PMM"))
}

func TestSafePersonOrderings(t *testing.T) {
	safe, err := SafePerson(testTitle(t))
	require.NoError(t, err)

	matching := []string{
		"Dr. John Smith",          // title + given + family
		"Mr. Smith",               // title + family
		"Elizabeth II",            // given + roman
		"John Miller Jr.",         // given + family + suffix
		"Miller, Jr.",             // family + suffix
		"John F. Kennedy",         // given + initial + family
		"George H. W. Bush",       // given + two initials + family
		"Dr. Ludwig van Beethoven", // title + given + prefix + family
	}
	for _, s := range matching {
		assert.True(t, safe.Matches(s), "expected safe match for %q", s)
	}

	nonMatching := []string{
		"Mickey Mouse", // no title, suffix, roman or initial
		"Smith",
		"PMM",
		"lower case",
	}
	for _, s := range nonMatching {
		assert.False(t, safe.Matches(s), "expected no safe match for %q", s)
	}
}

func TestEmptyTitleDegradesToNever(t *testing.T) {
	lax, err := LaxPerson("")
	require.NoError(t, err)
	assert.False(t, lax.Matches("Dr. John Smith"))

	safe, err := SafePerson("")
	require.NoError(t, err)
	assert.False(t, safe.Matches("Dr. John Smith"))
}
