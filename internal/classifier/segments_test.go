package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

func TestClassifySegments(t *testing.T) {
	rs := NewRuleSet(nil)

	tests := []struct {
		name        string
		title       string
		description string
		want        []domain.Segment
	}{
		{
			name:  "workplace only",
			title: "Outsourcing ICT-werkplekbeheer",
			want:  []domain.Segment{domain.SegmentWorkplace},
		},
		{
			name:        "cloud via hosting keyword",
			title:       "Cloud diensten",
			description: "hosting van applicaties in een private cloud",
			want:        []domain.Segment{domain.SegmentCloud},
		},
		{
			name:        "security",
			title:       "Inrichting SOC/SIEM dienstverlening",
			description: "security monitoring en incident response",
			want:        []domain.Segment{domain.SegmentSecurity},
		},
		{
			name:        "network short keyword on word boundary",
			title:       "Vernieuwing LAN en wifi",
			description: "bekabeling en access points",
			want:        []domain.Segment{domain.SegmentNetwork},
		},
		{
			name:        "application management",
			title:       "Applicatiebeheer zaaksysteem",
			description: "beheer en doorontwikkeling van het zaaksysteem",
			want:        []domain.Segment{domain.SegmentApplication},
		},
		{
			name:        "data and bi",
			title:       "Datawarehouse en rapportage",
			description: "inrichting Power BI omgeving",
			want:        []domain.Segment{domain.SegmentData},
		},
		{
			name:  "no segments",
			title: "Levering kantoormeubilair",
			want:  nil,
		},
		{
			name:        "three segments add full service",
			title:       "Integrale IT-dienstverlening",
			description: "werkplekbeheer, hosting in een private cloud en netwerkbeheer",
			want: []domain.Segment{
				domain.SegmentWorkplace,
				domain.SegmentCloud,
				domain.SegmentNetwork,
				domain.SegmentFullService,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifySegments(rs, tt.title, tt.description)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySegments_OrderIsCanonical(t *testing.T) {
	rs := NewRuleSet(nil)

	// Mention segments in reverse order; output follows the fixed base
	// segment order regardless.
	got := classifySegments(rs, "Datawarehouse en werkplekbeheer", "")
	assert.Equal(t, []domain.Segment{domain.SegmentWorkplace, domain.SegmentData}, got)
}

func TestBaseSegmentCount(t *testing.T) {
	segments := []domain.Segment{
		domain.SegmentWorkplace,
		domain.SegmentCloud,
		domain.SegmentNetwork,
		domain.SegmentFullService,
	}
	assert.Equal(t, 3, baseSegmentCount(segments))
	assert.Equal(t, 0, baseSegmentCount(nil))
}
