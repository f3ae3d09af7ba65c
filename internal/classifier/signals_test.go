package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

func signalKinds(signals []domain.TensionSignal) []domain.SignalKind {
	kinds := make([]domain.SignalKind, 0, len(signals))
	for _, s := range signals {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestDetectSignals_Disproportionate(t *testing.T) {
	rs := NewRuleSet(nil)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("heavy certs for small client", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender:     &domain.TenderRecord{Title: "ICT beheer"},
			clientType: domain.ClientEducation,
			certs: domain.Certifications{
				Mandatory: []string{"BIO"},
				Likely:    []string{"ISO 27001", "ISAE 3402"},
			},
			now: now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalDisproportionate)
	})

	t.Run("broad scope against tight budget", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{Title: "Integrale dienstverlening"},
			segments: []domain.Segment{
				domain.SegmentWorkplace, domain.SegmentCloud,
				domain.SegmentNetwork, domain.SegmentFullService,
			},
			clientType: domain.ClientMunicipality,
			value:      domain.EstimatedValue{Low: 50_000, High: 300_000},
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalDisproportionate)
	})

	t.Run("supplies describing services", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Levering werkplekapparatuur",
				Description: "inclusief beheer en support gedurende de looptijd",
				Procurement: domain.ProcurementSupplies,
			},
			clientType: domain.ClientMunicipality,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalDisproportionate)
	})
}

func TestDetectSignals_Notable(t *testing.T) {
	rs := NewRuleSet(nil)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("workplace with security focus", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender:     &domain.TenderRecord{Title: "Werkplek en security"},
			segments:   []domain.Segment{domain.SegmentWorkplace, domain.SegmentSecurity},
			clientType: domain.ClientMunicipality,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalNotable)
	})

	t.Run("joint venture governance", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender:     &domain.TenderRecord{Title: "Gezamenlijke ICT"},
			clientType: domain.ClientJointVenture,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalNotable)
	})

	t.Run("multiple authorities named in the text", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Gezamenlijke werkplekdiensten",
				Description: "aanbesteed door gemeente Zwolle mede namens gemeente Kampen",
			},
			clientType: domain.ClientMunicipality,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalNotable)
	})

	t.Run("single authority raises nothing", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Werkplekbeheer",
				Description: "ten behoeve van de gemeente Zwolle",
			},
			clientType: domain.ClientMunicipality,
			now:        now,
		})
		assert.NotContains(t, signalKinds(signals), domain.SignalNotable)
	})

	t.Run("complex scope with short deadline", func(t *testing.T) {
		closes := now.AddDate(0, 0, 10)
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{Title: "Integrale ICT", Closes: &closes},
			segments: []domain.Segment{
				domain.SegmentWorkplace, domain.SegmentCloud, domain.SegmentNetwork,
			},
			clientType: domain.ClientMunicipality,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalNotable)
	})

	t.Run("long deadline raises nothing", func(t *testing.T) {
		closes := now.AddDate(0, 2, 0)
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{Title: "Integrale ICT", Closes: &closes},
			segments: []domain.Segment{
				domain.SegmentWorkplace, domain.SegmentCloud, domain.SegmentNetwork,
			},
			clientType: domain.ClientMunicipality,
			now:        now,
		})
		assert.NotContains(t, signalKinds(signals), domain.SignalNotable)
	})

	t.Run("supplier switch hints", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Werkplekdiensten",
				Description: "het contract loopt af en de huidige leverancier stopt",
			},
			clientType: domain.ClientMunicipality,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalNotable)
	})
}

func TestDetectSignals_Opportunities(t *testing.T) {
	rs := NewRuleSet(nil)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("municipal workplace services", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Werkplekbeheer",
				Procurement: domain.ProcurementServices,
			},
			clientType: domain.ClientMunicipality,
			segments:   []domain.Segment{domain.SegmentWorkplace},
			fitScore:   45,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalOpportunity)
	})

	t.Run("central government workplace services", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Werkplekdienstverlening",
				Procurement: domain.ProcurementServices,
			},
			clientType: domain.ClientCentralGov,
			segments:   []domain.Segment{domain.SegmentWorkplace},
			value:      domain.EstimatedValue{Low: 100_000, High: 100_000, Confidence: domain.ValueExact},
			fitScore:   35,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalOpportunity)
	})

	t.Run("full service scope counts as workplace alternative", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Integrale ICT-dienstverlening",
				Procurement: domain.ProcurementServices,
			},
			clientType: domain.ClientMunicipality,
			segments: []domain.Segment{
				domain.SegmentSecurity, domain.SegmentNetwork,
				domain.SegmentData, domain.SegmentFullService,
			},
			fitScore: 35,
			now:      now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalOpportunity)
	})

	t.Run("government cloud services", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Cloudmigratie",
				Procurement: domain.ProcurementServices,
			},
			clientType: domain.ClientCentralGov,
			segments:   []domain.Segment{domain.SegmentCloud},
			fitScore:   20,
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalOpportunity)
	})

	t.Run("no opportunities for negative fit", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Werkplekbeheer",
				Procurement: domain.ProcurementServices,
			},
			clientType: domain.ClientMunicipality,
			segments:   []domain.Segment{domain.SegmentWorkplace},
			value:      domain.EstimatedValue{Low: 500_000},
			fitScore:   -5,
			now:        now,
		})
		assert.NotContains(t, signalKinds(signals), domain.SignalOpportunity)
	})

	t.Run("no opportunities for app software", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Zaaksysteem",
				Procurement: domain.ProcurementServices,
			},
			clientType:    domain.ClientMunicipality,
			segments:      []domain.Segment{domain.SegmentWorkplace},
			value:         domain.EstimatedValue{Low: 300_000},
			fitScore:      10,
			isAppSoftware: true,
			now:           now,
		})
		assert.NotContains(t, signalKinds(signals), domain.SignalOpportunity)
	})

	t.Run("relevant fit with substantial value", func(t *testing.T) {
		signals := detectSignals(rs, &signalContext{
			tender: &domain.TenderRecord{
				Title:       "Hosting diensten",
				Procurement: domain.ProcurementServices,
			},
			clientType: domain.ClientHealthcare,
			fitScore:   35,
			value:      domain.EstimatedValue{Low: 500_000, High: 5_000_000},
			now:        now,
		})
		assert.Contains(t, signalKinds(signals), domain.SignalOpportunity)
	})
}
