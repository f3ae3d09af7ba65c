// classifier/fit.go scores how well a tender fits a managed service
// provider's portfolio.
package classifier

import "github.com/EpikourosNafplio/tenderagent-msp/internal/domain"

// Fit score deltas. The additive model keeps every contribution
// explainable in the result breakdown.
const (
	deltaServices       = 20
	deltaCoreScope      = 15
	deltaMunicipalFam   = 10
	deltaMultiSegment   = 5
	deltaAppSoftware    = -25
	deltaPhysicalInfra  = -10
	deltaSupplies       = -10
	multiSegmentMinimum = 2
)

// fitContext carries the precomputed facts the scoring rules consult.
type fitContext struct {
	procurement   domain.ProcurementType
	clientType    domain.ClientType
	segments      []domain.Segment
	isAppSoftware bool
	isPhysical    bool
	hasCoreScope  bool
}

// fitRule is one scoring rule. Rules apply independently; order only
// matters for the breakdown listing.
type fitRule struct {
	name    string
	applies func(*fitContext) bool
	delta   int
}

var fitRules = []fitRule{
	{
		name:    "services_contract",
		applies: func(c *fitContext) bool { return c.procurement == domain.ProcurementServices },
		delta:   deltaServices,
	},
	{
		// Application software procurement blocks the core scope bonus:
		// running someone's payroll package is not infrastructure work.
		name:    "core_managed_scope",
		applies: func(c *fitContext) bool { return c.hasCoreScope && !c.isAppSoftware },
		delta:   deltaCoreScope,
	},
	{
		name:    "municipal_family_client",
		applies: func(c *fitContext) bool { return c.clientType.MunicipalFamily() },
		delta:   deltaMunicipalFam,
	},
	{
		name: "multi_segment_scope",
		applies: func(c *fitContext) bool {
			return baseSegmentCount(c.segments) >= multiSegmentMinimum
		},
		delta: deltaMultiSegment,
	},
	{
		name:    "application_software",
		applies: func(c *fitContext) bool { return c.isAppSoftware },
		delta:   deltaAppSoftware,
	},
	{
		name:    "physical_infrastructure",
		applies: func(c *fitContext) bool { return c.isPhysical },
		delta:   deltaPhysicalInfra,
	},
	{
		name:    "supplies_contract",
		applies: func(c *fitContext) bool { return c.procurement == domain.ProcurementSupplies },
		delta:   deltaSupplies,
	},
}

// scoreFit applies every matching rule and returns the total.
func scoreFit(c *fitContext) int {
	score := 0
	for _, rule := range fitRules {
		if rule.applies(c) {
			score += rule.delta
		}
	}
	return score
}

// fitLabelFor maps a score to a label using the configured relevance
// threshold.
func fitLabelFor(rs *RuleSet, score int) domain.FitLabel {
	switch {
	case score > rs.RelevantAbove:
		return domain.FitRelevant
	case score >= 0:
		return domain.FitPossible
	default:
		return domain.FitNotMSP
	}
}
