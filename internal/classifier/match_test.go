package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSet_LongKeywordsMatchAsSubstrings(t *testing.T) {
	set := NewKeywordSet([]string{"werkplekbeheer", "datacenter"})

	assert.True(t, set.MatchAny("Outsourcing ICT-werkplekbeheer"))
	assert.True(t, set.MatchAny("migratie naar een nieuw datacenterpand"))
	assert.False(t, set.MatchAny("schoonmaak van kantoren"))
}

func TestKeywordSet_ShortKeywordsMatchWholeWordsOnly(t *testing.T) {
	set := NewKeywordSet([]string{"lan", "soc", "erp"})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"standalone short keyword", "beheer van het LAN op drie locaties", true},
		{"short keyword before hyphen", "inrichting SOC-dienstverlening", true},
		{"embedded in longer word", "klantvolgsysteem voor het sociaal domein", false},
		{"embedded mid word", "verpleeghuiszorg en thuiszorg", false},
		{"keyword with hyphen suffix", "levering ERP-systeem", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.MatchAny(tt.text))
		})
	}
}

func TestKeywordSet_MatchingIsCaseInsensitive(t *testing.T) {
	set := NewKeywordSet([]string{"Microsoft 365", "WLAN"})

	assert.True(t, set.MatchAny("migratie naar MICROSOFT 365"))
	assert.True(t, set.MatchAny("vernieuwing wlan infrastructuur"))
}

func TestKeywordSet_Matches(t *testing.T) {
	set := NewKeywordSet([]string{"cloud", "hosting", "soc"})

	hits := set.Matches("hosting in de cloud met SOC monitoring")
	assert.ElementsMatch(t, []string{"cloud", "hosting", "soc"}, hits)
}

func TestKeywordSet_EmptyAndBlankKeywordsDropped(t *testing.T) {
	set := NewKeywordSet([]string{"", "  ", "cloud"})

	assert.Equal(t, 1, set.Len())
	assert.False(t, set.MatchAny(""))
}
