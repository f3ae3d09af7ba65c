// classifier/segments.go tags tenders with managed-services segments.
package classifier

import "github.com/EpikourosNafplio/tenderagent-msp/internal/domain"

// fullServiceMinSegments is the number of base segments at which the
// full-service segment is added.
const fullServiceMinSegments = 3

// classifySegments returns the matched segments in the canonical base
// order, with the synthetic full-service segment appended when the
// tender spans enough of them.
func classifySegments(rs *RuleSet, title, description string) []domain.Segment {
	combined := title + " " + description

	var matched []domain.Segment
	for _, seg := range domain.BaseSegments {
		set, ok := rs.segments[seg]
		if !ok {
			continue
		}
		if set.MatchAny(combined) {
			matched = append(matched, seg)
		}
	}

	if len(matched) >= fullServiceMinSegments {
		matched = append(matched, domain.SegmentFullService)
	}
	return matched
}

// baseSegmentCount counts segments excluding the synthetic
// full-service marker.
func baseSegmentCount(segments []domain.Segment) int {
	n := 0
	for _, seg := range segments {
		if seg != domain.SegmentFullService {
			n++
		}
	}
	return n
}

func hasSegment(segments []domain.Segment, seg domain.Segment) bool {
	for _, s := range segments {
		if s == seg {
			return true
		}
	}
	return false
}
