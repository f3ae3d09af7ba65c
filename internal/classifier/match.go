// Package classifier implements rule-based IT tender classification for
// managed service providers.
// match.go provides Aho-Corasick based keyword matching.
package classifier

import (
	"regexp"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// shortKeywordMax is the length at or below which keywords match as
// whole words only. Short terms like "lan" or "soc" appear inside
// ordinary Dutch words and would otherwise fire constantly.
const shortKeywordMax = 4

// KeywordSet matches a fixed set of lowercase keywords against text.
// Keywords longer than shortKeywordMax match as substrings through a
// single Aho-Corasick automaton; shorter ones match on word boundaries.
type KeywordSet struct {
	long    []string
	matcher *ahocorasick.Matcher
	short   []shortKeyword
}

type shortKeyword struct {
	keyword string
	pattern *regexp.Regexp
}

// NewKeywordSet builds a set from keywords. Input casing is ignored;
// empty entries are dropped.
func NewKeywordSet(keywords []string) *KeywordSet {
	s := &KeywordSet{}
	for _, kw := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" {
			continue
		}
		if len([]rune(normalized)) <= shortKeywordMax {
			s.short = append(s.short, shortKeyword{
				keyword: normalized,
				pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(normalized) + `\b`),
			})
		} else {
			s.long = append(s.long, normalized)
		}
	}
	if len(s.long) > 0 {
		s.matcher = ahocorasick.NewStringMatcher(s.long)
	}
	return s
}

// MatchAny reports whether any keyword occurs in text.
func (s *KeywordSet) MatchAny(text string) bool {
	lowered := strings.ToLower(text)
	if s.matcher != nil && len(s.matcher.Match([]byte(lowered))) > 0 {
		return true
	}
	for _, sk := range s.short {
		if sk.pattern.MatchString(lowered) {
			return true
		}
	}
	return false
}

// Matches returns the keywords that occur in text, long matches first.
func (s *KeywordSet) Matches(text string) []string {
	lowered := strings.ToLower(text)
	var hits []string
	if s.matcher != nil {
		for _, idx := range s.matcher.Match([]byte(lowered)) {
			hits = append(hits, s.long[idx])
		}
	}
	for _, sk := range s.short {
		if sk.pattern.MatchString(lowered) {
			hits = append(hits, sk.keyword)
		}
	}
	return hits
}

// Len returns the number of keywords in the set.
func (s *KeywordSet) Len() int {
	return len(s.long) + len(s.short)
}
