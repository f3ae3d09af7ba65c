// classifier/client.go classifies the contracting authority.
package classifier

import (
	"strings"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

// classifyClient determines the client type from the authority name,
// falling back to the description when the name yields nothing. Rules
// run most specific first so "gemeenschappelijke regeling" wins over
// the "gemeente" it contains.
func classifyClient(rs *RuleSet, name, description string) domain.ClientType {
	if ct, ok := matchClient(rs, name); ok {
		return ct
	}
	if ct, ok := matchClient(rs, description); ok {
		return ct
	}
	return domain.ClientOther
}

func matchClient(rs *RuleSet, text string) (domain.ClientType, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.ClientOther, false
	}
	for _, m := range rs.clientMatchers {
		if m.keywords.MatchAny(text) {
			return m.clientType, true
		}
	}
	// Foundations are education when the name hints at schooling.
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "stichting") && rs.foundationEdu.MatchAny(lowered) {
		return domain.ClientEducation, true
	}
	return domain.ClientOther, false
}
