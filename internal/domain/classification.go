package domain

// Segment is one MSP service line a tender may be labelled with.
type Segment string

const (
	SegmentWorkplace   Segment = "workplace"
	SegmentCloud       Segment = "cloud_hosting"
	SegmentSecurity    Segment = "cybersecurity"
	SegmentNetwork     Segment = "network"
	SegmentApplication Segment = "application_management"
	SegmentData        Segment = "data_bi"
	// SegmentFullService is synthesized when at least three base segments
	// match; it never counts toward that threshold itself.
	SegmentFullService Segment = "full_service"
)

// BaseSegments lists the six keyword-derived segments in their fixed
// evaluation order. SegmentFullService is deliberately absent.
var BaseSegments = []Segment{
	SegmentWorkplace,
	SegmentCloud,
	SegmentSecurity,
	SegmentNetwork,
	SegmentApplication,
	SegmentData,
}

// ClientType is the organizational category of a contracting authority.
type ClientType string

const (
	ClientMunicipality    ClientType = "municipality"
	ClientProvince        ClientType = "province"
	ClientWaterAuthority  ClientType = "water_authority"
	ClientJointVenture    ClientType = "joint_venture"
	ClientCentralGov      ClientType = "central_government"
	ClientIndependentBody ClientType = "independent_body"
	ClientCriticalInfra   ClientType = "critical_infrastructure"
	ClientHealthcare      ClientType = "healthcare"
	ClientEducation       ClientType = "education"
	ClientOther           ClientType = "other"
)

var knownClientTypes = map[ClientType]bool{
	ClientMunicipality:    true,
	ClientProvince:        true,
	ClientWaterAuthority:  true,
	ClientJointVenture:    true,
	ClientCentralGov:      true,
	ClientIndependentBody: true,
	ClientCriticalInfra:   true,
	ClientHealthcare:      true,
	ClientEducation:       true,
	ClientOther:           true,
}

// ParseClientType maps an upstream hint string to a known client type.
func ParseClientType(s string) (ClientType, bool) {
	ct := ClientType(s)
	if knownClientTypes[ct] {
		return ct, true
	}
	return ClientOther, false
}

// MunicipalFamily reports whether the client belongs to the local-government
// family that scores an MSP-fit bonus (municipality, province, water
// authority, joint venture).
func (c ClientType) MunicipalFamily() bool {
	switch c {
	case ClientMunicipality, ClientProvince, ClientWaterAuthority, ClientJointVenture:
		return true
	}
	return false
}

// GovernmentFamily reports whether the client is any public-sector body
// relevant for opportunity signals (municipal family plus central
// government and independent administrative bodies).
func (c ClientType) GovernmentFamily() bool {
	if c.MunicipalFamily() {
		return true
	}
	switch c {
	case ClientCentralGov, ClientIndependentBody:
		return true
	}
	return false
}

// FitLabel buckets an MSP-fit score.
type FitLabel string

const (
	FitRelevant FitLabel = "relevant"
	FitPossible FitLabel = "possible"
	FitNotMSP   FitLabel = "not_msp"
)

// Certifications holds the certification expectations derived from the
// client type. These are expectations, not confirmed requirements.
type Certifications struct {
	Mandatory []string `json:"mandatory"`
	Likely    []string `json:"likely"`
	Common    []string `json:"common"`
}

// ValueConfidence qualifies an estimated contract value.
type ValueConfidence string

const (
	ValueExact   ValueConfidence = "exact"
	ValueRange   ValueConfidence = "range"
	ValueUnknown ValueConfidence = "unknown"
)

// EstimatedValue is the estimated contract value band in euros.
type EstimatedValue struct {
	Low        int64           `json:"low,omitempty"`
	High       int64           `json:"high,omitempty"`
	Currency   string          `json:"currency"`
	Confidence ValueConfidence `json:"confidence"`
}

// SignalKind is the family of a tension signal.
type SignalKind string

const (
	SignalDisproportionate SignalKind = "disproportionate"
	SignalNotable          SignalKind = "notable"
	SignalOpportunity      SignalKind = "opportunity"
)

// TensionSignal is a qualitative flag raised by the signal detector.
type TensionSignal struct {
	Kind   SignalKind `json:"kind"`
	Reason string     `json:"reason"`
}

// ClassificationResult is the enriched view of one tender record. It is
// recomputed per request and never persisted.
type ClassificationResult struct {
	TenderID     string `json:"tender_id"`
	PassesITGate bool   `json:"passes_it_gate"`
	// GateReason names the gate check that decided the outcome.
	GateReason     string         `json:"gate_reason,omitempty"`
	ClientType     ClientType     `json:"client_type"`
	Segments       []Segment      `json:"segments"`
	FitScore       int            `json:"msp_fit_score"`
	FitLabel       FitLabel       `json:"msp_fit_label"`
	Certifications Certifications `json:"certifications"`
	// ExplicitCertifications lists certifications literally named in the
	// tender text, distinct from the derived expectations above.
	ExplicitCertifications []string        `json:"explicit_certifications,omitempty"`
	EstimatedValue         EstimatedValue  `json:"estimated_value"`
	Signals                []TensionSignal `json:"signals"`
	// RulesVersion tags the rule tables that produced this result so
	// scoring changes stay traceable across releases.
	RulesVersion string `json:"rules_version"`
}

// HasSegment reports whether the result carries the given segment.
func (r *ClassificationResult) HasSegment(s Segment) bool {
	for _, seg := range r.Segments {
		if seg == s {
			return true
		}
	}
	return false
}
