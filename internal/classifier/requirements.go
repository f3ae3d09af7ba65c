// classifier/requirements.go derives certification expectations and
// spots certifications literally named in the tender text.
package classifier

import (
	"strings"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

// deriveCertifications returns the expected certification demands for a
// client type. A security segment upgrades ISO 27001 to likely when the
// table has it lower or not at all. The returned slices are copies.
func deriveCertifications(clientType domain.ClientType, segments []domain.Segment) domain.Certifications {
	certs := copyCertifications(certTable[clientType])

	if hasSegment(segments, domain.SegmentSecurity) {
		if !containsKeyword(certs.Mandatory, "ISO 27001") && !containsKeyword(certs.Likely, "ISO 27001") {
			certs.Common = removeKeyword(certs.Common, "ISO 27001")
			certs.Likely = append(certs.Likely, "ISO 27001")
		}
	}
	return certs
}

// detectExplicitCertifications scans the text for certification names.
// Results follow the fixed table order so output is deterministic.
func detectExplicitCertifications(text string) []string {
	// Padding lets standalone-word fragments like " bio " match at the
	// edges of the text.
	padded := " " + strings.ToLower(text) + " "
	var found []string
	for _, cp := range certPatterns {
		for _, fragment := range cp.fragments {
			if strings.Contains(padded, fragment) {
				found = append(found, cp.name)
				break
			}
		}
	}
	return found
}

func copyCertifications(c domain.Certifications) domain.Certifications {
	return domain.Certifications{
		Mandatory: append([]string(nil), c.Mandatory...),
		Likely:    append([]string(nil), c.Likely...),
		Common:    append([]string(nil), c.Common...),
	}
}

func removeKeyword(keywords []string, kw string) []string {
	out := keywords[:0]
	for _, k := range keywords {
		if k != kw {
			out = append(out, k)
		}
	}
	return out
}
