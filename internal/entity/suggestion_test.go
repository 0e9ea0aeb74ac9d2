package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11999999999", NormalizePhone("(11) 99999-9999"))
	assert.Equal(t, "12345", NormalizePhone(" 12345 "))
	assert.Equal(t, "555", NormalizePhone("555"))
}

func TestLegacyStringFormat(t *testing.T) {
	s := PhoneSuggestion{Phone: "3333333333", DisplayName: "John Doe"}
	assert.Equal(t, "3333333333(John Doe)", s.LegacyString())

	unnamed := PhoneSuggestion{Phone: "555"}
	assert.Equal(t, "555(Unknown)", unnamed.LegacyString())
}

// O match exato tem que vir antes do match de prefixo mesmo sendo
// logicamente um subconjunto dele: especificidade, não recência.
func TestRankSuggestionsExactBeforePrefix(t *testing.T) {
	input := []PhoneSuggestion{
		{Phone: "1234567890", DisplayName: "Long"},
		{Phone: "99999", DisplayName: "Other"},
		{Phone: "12345", DisplayName: "Exact"},
	}

	ranked := RankSuggestions("12345", input)

	assert.Equal(t, "12345", ranked[0].Phone)
	assert.Equal(t, "1234567890", ranked[1].Phone)
	assert.Equal(t, "99999", ranked[2].Phone)
}

func TestRankSuggestionsPrefixBucketLexicographic(t *testing.T) {
	input := []PhoneSuggestion{
		{Phone: "1234567890"},
		{Phone: "12345"},
	}

	// Sem match exato para "1234", ambos são prefixo: ordem lexicográfica.
	ranked := RankSuggestions("1234", input)

	assert.Equal(t, "12345", ranked[0].Phone)
	assert.Equal(t, "1234567890", ranked[1].Phone)
}

func TestRankSuggestionsDoesNotMutateInput(t *testing.T) {
	input := []PhoneSuggestion{{Phone: "99999"}, {Phone: "12345"}}
	RankSuggestions("12345", input)

	assert.Equal(t, "99999", input[0].Phone)
}
