// classifier/signals.go raises qualitative tension signals: demands out
// of proportion to the client or budget, notable combinations worth a
// closer look, and concrete sales opportunities.
package classifier

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

// Signal thresholds.
const (
	heavyCertCount        = 3
	tightBudgetCeilingEUR = 300_000
	broadScopeSegments    = 3
	shortDeadlineDays     = 21
	substantialValueEUR   = 500_000
)

// authorityNamePattern matches a named contracting authority, such as
// "gemeente Utrecht" or "waterschap Rivierenland". The capitalized name
// requirement keeps ordinary prose ("de gemeente wil") out.
var authorityNamePattern = regexp.MustCompile(
	`(?:[Gg]emeente|[Pp]rovincie|[Ww]aterschap|[Hh]oogheemraadschap)\s+(?:van\s+)?[A-Z][\p{L}-]+`)

// countDistinctAuthorities counts the distinct contracting authorities
// named in the text.
func countDistinctAuthorities(text string) int {
	seen := make(map[string]bool)
	for _, m := range authorityNamePattern.FindAllString(text, -1) {
		seen[strings.ToLower(m)] = true
	}
	return len(seen)
}

// signalContext carries everything the detectors consult.
type signalContext struct {
	tender        *domain.TenderRecord
	clientType    domain.ClientType
	segments      []domain.Segment
	certs         domain.Certifications
	value         domain.EstimatedValue
	fitScore      int
	isAppSoftware bool
	now           time.Time
}

// detectSignals runs every detector in a fixed order so output is
// stable across runs.
func detectSignals(rs *RuleSet, c *signalContext) []domain.TensionSignal {
	var signals []domain.TensionSignal
	add := func(kind domain.SignalKind, reason string) {
		signals = append(signals, domain.TensionSignal{Kind: kind, Reason: reason})
	}

	combined := c.tender.Title + " " + c.tender.Description
	baseCount := baseSegmentCount(c.segments)
	demanded := len(c.certs.Mandatory) + len(c.certs.Likely)

	// Heavy certification demands on clients that rarely carry matching
	// budgets.
	smallClient := c.clientType == domain.ClientEducation || c.clientType == domain.ClientOther
	tightBudget := c.value.High > 0 && c.value.High <= tightBudgetCeilingEUR
	if demanded >= heavyCertCount && (smallClient || tightBudget) {
		add(domain.SignalDisproportionate,
			fmt.Sprintf("heavy certification demands (%d expected) for a small client or budget", demanded))
	}

	if baseCount >= broadScopeSegments && tightBudget {
		add(domain.SignalDisproportionate,
			fmt.Sprintf("broad scope (%d segments) against a limited budget", baseCount))
	}

	if c.tender.Procurement == domain.ProcurementSupplies && rs.serviceHints.MatchAny(combined) {
		add(domain.SignalDisproportionate,
			"typed as supplies but the scope describes ongoing services")
	}

	// Notable combinations.
	if hasSegment(c.segments, domain.SegmentWorkplace) && hasSegment(c.segments, domain.SegmentSecurity) {
		add(domain.SignalNotable,
			"workplace scope with a security focus, check scope versus demands")
	}

	// Joint procurement: several authorities named in the text, or a
	// joint-venture client that exists to buy for its members.
	if countDistinctAuthorities(combined) >= 2 || c.clientType == domain.ClientJointVenture {
		add(domain.SignalNotable,
			"multiple organizations behind one contract, check governance complexity")
	}

	if baseCount >= broadScopeSegments && c.tender.Closes != nil {
		days := int(c.tender.Closes.Sub(c.now).Hours() / 24)
		if days >= 0 && days < shortDeadlineDays {
			add(domain.SignalNotable,
				fmt.Sprintf("complex scope (%d segments) with a short deadline (%d days)", baseCount, days))
		}
	}

	if rs.supplierSwitch.MatchAny(combined) {
		add(domain.SignalNotable,
			"possible supplier switch, check transition risk")
	}

	// Opportunities only apply to tenders that are at least possibly
	// relevant and not application software procurement.
	if c.fitScore >= 0 && !c.isAppSoftware {
		if c.clientType.GovernmentFamily() &&
			(hasSegment(c.segments, domain.SegmentWorkplace) || hasSegment(c.segments, domain.SegmentFullService)) &&
			c.tender.Procurement == domain.ProcurementServices {
			add(domain.SignalOpportunity,
				"government workplace or full service scope procured as services")
		}

		if c.clientType.GovernmentFamily() &&
			hasSegment(c.segments, domain.SegmentCloud) &&
			c.tender.Procurement == domain.ProcurementServices {
			add(domain.SignalOpportunity,
				"cloud and hosting work for a government client")
		}
	}

	if fitLabelFor(rs, c.fitScore) == domain.FitRelevant && c.value.Low >= substantialValueEUR {
		add(domain.SignalOpportunity,
			"relevant fit with substantial contract value")
	}

	return signals
}
