// classifier/gate.go decides whether a tender is IT work at all.
package classifier

import "strings"

// gateOutcome records why the gate passed or rejected, for result
// explanations and logging.
type gateOutcome struct {
	passed bool
	reason string
}

// Gate rejection and pass reasons.
const (
	gateEmptyTitle    = "empty_title"
	gateNegativeTitle = "negative_title_keyword"
	gateCodePrefix    = "it_code_prefix"
	gateStrongKeyword = "strong_keyword"
	gateSegmentMatch  = "segment_keyword"
	gateNoSignal      = "no_it_signal"
)

// evaluateGate runs the IT relevance gate. Checks run in order: an
// empty title rejects, a negative title keyword rejects, then any of
// the positive checks passes. Tenders with no IT signal at all are
// rejected.
func evaluateGate(rs *RuleSet, title, description string, codes []string) gateOutcome {
	if strings.TrimSpace(title) == "" {
		return gateOutcome{passed: false, reason: gateEmptyTitle}
	}
	if rs.negativeTitle.MatchAny(title) {
		return gateOutcome{passed: false, reason: gateNegativeTitle}
	}

	combined := title + " " + description

	// An IT code prefix passes unless the title sounds purely physical;
	// codes are coarse and maintenance lots get tagged with them.
	if matchesCodePrefix(rs.codePrefixes, codes) && !rs.physicalTitle.MatchAny(title) {
		return gateOutcome{passed: true, reason: gateCodePrefix}
	}

	if rs.strong.MatchAny(combined) {
		return gateOutcome{passed: true, reason: gateStrongKeyword}
	}
	if rs.ambiguous.MatchAny(combined) && rs.itContext.MatchAny(combined) {
		return gateOutcome{passed: true, reason: gateStrongKeyword}
	}

	for _, set := range rs.segmentGate {
		if set.MatchAny(combined) {
			return gateOutcome{passed: true, reason: gateSegmentMatch}
		}
	}

	return gateOutcome{passed: false, reason: gateNoSignal}
}

// matchesCodePrefix reports whether any code starts with an IT prefix.
// Codes are normalized by dropping everything after the first hyphen.
func matchesCodePrefix(prefixes, codes []string) bool {
	for _, code := range codes {
		normalized := strings.TrimSpace(code)
		if idx := strings.IndexByte(normalized, '-'); idx >= 0 {
			normalized = normalized[:idx]
		}
		if normalized == "" {
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(normalized, prefix) {
				return true
			}
		}
	}
	return false
}
