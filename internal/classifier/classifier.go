// classifier/classifier.go wires the rule stages into one pipeline.
package classifier

import (
	"fmt"
	"time"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/logger"
)

// Pipeline classifies tender records against a compiled RuleSet. It is
// safe for concurrent use; all state is immutable after construction.
type Pipeline struct {
	rules  *RuleSet
	logger logger.Logger
	now    func() time.Time
}

// NewPipeline creates a classification pipeline. A nil logger falls
// back to a no-op logger.
func NewPipeline(rules *RuleSet, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNop()
	}
	return &Pipeline{
		rules:  rules,
		logger: log,
		now:    time.Now,
	}
}

// Rules exposes the compiled rule set, mainly for version reporting.
func (p *Pipeline) Rules() *RuleSet { return p.rules }

// Classify runs the full pipeline on one tender. A nil tender is
// invalid input; no-match outcomes are values, never errors. The IT
// gate runs first; rejected tenders still get a client type so
// downstream views can group them, but no segments, score or signals.
func (p *Pipeline) Classify(tender *domain.TenderRecord) (*domain.ClassificationResult, error) {
	if tender == nil {
		return nil, fmt.Errorf("classify: nil tender record: %w", domain.ErrInvalidInput)
	}
	return p.classify(tender), nil
}

func (p *Pipeline) classify(tender *domain.TenderRecord) *domain.ClassificationResult {
	result := &domain.ClassificationResult{
		TenderID:     tender.ID,
		RulesVersion: p.rules.Version,
	}

	result.ClientType = p.resolveClientType(tender)

	gate := evaluateGate(p.rules, tender.Title, tender.Description, tender.Codes)
	result.PassesITGate = gate.passed
	result.GateReason = gate.reason

	if !gate.passed {
		result.FitLabel = domain.FitNotMSP
		result.EstimatedValue = domain.EstimatedValue{Currency: "EUR", Confidence: domain.ValueUnknown}
		p.logger.Debug("tender rejected by gate",
			logger.String("tender_id", tender.ID),
			logger.String("reason", gate.reason))
		return result
	}

	combined := tender.Title + " " + tender.Description
	result.Segments = classifySegments(p.rules, tender.Title, tender.Description)

	fc := &fitContext{
		procurement:   tender.Procurement,
		clientType:    result.ClientType,
		segments:      result.Segments,
		isAppSoftware: p.rules.appSoftware.MatchAny(combined),
		isPhysical:    p.rules.physicalInfra.MatchAny(combined),
		hasCoreScope:  p.rules.mspCore.MatchAny(combined),
	}
	result.FitScore = scoreFit(fc)
	result.FitLabel = fitLabelFor(p.rules, result.FitScore)

	result.Certifications = deriveCertifications(result.ClientType, result.Segments)
	result.ExplicitCertifications = detectExplicitCertifications(combined)
	result.EstimatedValue = estimateValue(p.rules, tender, result.ClientType, result.Segments)

	result.Signals = detectSignals(p.rules, &signalContext{
		tender:        tender,
		clientType:    result.ClientType,
		segments:      result.Segments,
		certs:         result.Certifications,
		value:         result.EstimatedValue,
		fitScore:      result.FitScore,
		isAppSoftware: fc.isAppSoftware,
		now:           p.now(),
	})

	p.logger.Debug("tender classified",
		logger.String("tender_id", tender.ID),
		logger.String("client_type", string(result.ClientType)),
		logger.Int("fit_score", result.FitScore),
		logger.String("fit_label", string(result.FitLabel)),
		logger.Int("segments", len(result.Segments)))

	return result
}

// ClassifyAll classifies a batch, preserving input order.
func (p *Pipeline) ClassifyAll(tenders []domain.TenderRecord) []*domain.ClassificationResult {
	results := make([]*domain.ClassificationResult, len(tenders))
	for i := range tenders {
		results[i] = p.classify(&tenders[i])
	}
	return results
}

// resolveClientType prefers an explicit upstream hint when it parses,
// falling back to name-based classification.
func (p *Pipeline) resolveClientType(tender *domain.TenderRecord) domain.ClientType {
	if tender.ClientTypeHint != "" {
		if ct, ok := domain.ParseClientType(tender.ClientTypeHint); ok {
			return ct
		}
	}
	return classifyClient(p.rules, tender.ClientName, tender.Description)
}

// ClientTypeFor classifies a bare authority name. Used by the history
// layer to enrich dataset rows.
func (p *Pipeline) ClientTypeFor(name string) domain.ClientType {
	return classifyClient(p.rules, name, "")
}

// SegmentsFor tags free text with segments. Used by the history layer.
func (p *Pipeline) SegmentsFor(text string) []domain.Segment {
	return classifySegments(p.rules, text, "")
}

// ITCode reports whether a procurement code carries an IT prefix.
func (p *Pipeline) ITCode(code string) bool {
	return matchesCodePrefix(p.rules.codePrefixes, []string{code})
}
