// classifier/value.go estimates contract value when the tender does not
// state one.
package classifier

import (
	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

// estimateValue returns the value estimate for a tender. A stated value
// wins outright. Otherwise the band table keyed by client type and
// scope category applies; without a qualifying scope the estimate stays
// unknown. EU procedures floor the band at the EU services threshold.
func estimateValue(rs *RuleSet, tender *domain.TenderRecord, clientType domain.ClientType, segments []domain.Segment) domain.EstimatedValue {
	if tender.StatedValue != nil && *tender.StatedValue > 0 {
		v := int64(*tender.StatedValue)
		return domain.EstimatedValue{
			Low:        v,
			High:       v,
			Currency:   "EUR",
			Confidence: domain.ValueExact,
		}
	}

	band, ok := bandFor(clientType, segments)
	if !ok {
		if tender.EUProcedure {
			// No band, but an EU procedure implies at least the
			// threshold value.
			return domain.EstimatedValue{
				Low:        rs.EUThresholdEUR,
				Currency:   "EUR",
				Confidence: domain.ValueRange,
			}
		}
		return domain.EstimatedValue{Currency: "EUR", Confidence: domain.ValueUnknown}
	}

	if tender.EUProcedure && band.low < rs.EUThresholdEUR {
		band.low = rs.EUThresholdEUR
	}

	return domain.EstimatedValue{
		Low:        band.low,
		High:       band.high,
		Currency:   "EUR",
		Confidence: domain.ValueRange,
	}
}

// bandFor looks up the value band for a client type and scope. The
// scope category is infrastructure-like when a cloud, network or
// workplace segment is present, application-like when application
// management is; with neither there is no band.
func bandFor(clientType domain.ClientType, segments []domain.Segment) (valueBand, bool) {
	infra := hasSegment(segments, domain.SegmentCloud) ||
		hasSegment(segments, domain.SegmentNetwork) ||
		hasSegment(segments, domain.SegmentWorkplace)
	app := hasSegment(segments, domain.SegmentApplication)
	if !infra && !app {
		return valueBand{}, false
	}
	if clientType == domain.ClientMunicipality {
		if infra {
			return bandMunicipalityInfra, true
		}
		return bandMunicipalityApp, true
	}
	band, ok := valueBandTable[clientType]
	return band, ok
}
