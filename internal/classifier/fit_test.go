package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

func TestScoreFit(t *testing.T) {
	tests := []struct {
		name string
		ctx  fitContext
		want int
	}{
		{
			name: "municipal workplace services sweet spot",
			ctx: fitContext{
				procurement:  domain.ProcurementServices,
				clientType:   domain.ClientMunicipality,
				segments:     []domain.Segment{domain.SegmentWorkplace},
				hasCoreScope: true,
			},
			want: 45,
		},
		{
			name: "app software supplies penalized",
			ctx: fitContext{
				procurement:   domain.ProcurementSupplies,
				clientType:    domain.ClientMunicipality,
				segments:      []domain.Segment{domain.SegmentApplication},
				isAppSoftware: true,
			},
			want: -25,
		},
		{
			name: "app software suppresses core scope bonus",
			ctx: fitContext{
				procurement:   domain.ProcurementServices,
				clientType:    domain.ClientOther,
				isAppSoftware: true,
				hasCoreScope:  true,
			},
			want: -5,
		},
		{
			name: "multi segment bonus counts base segments only",
			ctx: fitContext{
				procurement: domain.ProcurementServices,
				clientType:  domain.ClientOther,
				segments: []domain.Segment{
					domain.SegmentWorkplace,
					domain.SegmentCloud,
				},
			},
			want: 25,
		},
		{
			name: "full service marker does not reach the threshold alone",
			ctx: fitContext{
				procurement: domain.ProcurementServices,
				clientType:  domain.ClientOther,
				segments: []domain.Segment{
					domain.SegmentWorkplace,
					domain.SegmentFullService,
				},
			},
			want: 20,
		},
		{
			name: "physical infrastructure penalty",
			ctx: fitContext{
				procurement: domain.ProcurementServices,
				clientType:  domain.ClientOther,
				isPhysical:  true,
			},
			want: 10,
		},
		{
			name: "works contract scores nothing",
			ctx: fitContext{
				procurement: domain.ProcurementWorks,
				clientType:  domain.ClientOther,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreFit(&tt.ctx))
		})
	}
}

func TestFitLabelFor_Boundaries(t *testing.T) {
	rs := NewRuleSet(nil)

	tests := []struct {
		score int
		want  domain.FitLabel
	}{
		{21, domain.FitRelevant},
		{45, domain.FitRelevant},
		{20, domain.FitPossible},
		{1, domain.FitPossible},
		{0, domain.FitPossible},
		{-1, domain.FitNotMSP},
		{-25, domain.FitNotMSP},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fitLabelFor(rs, tt.score), "score %d", tt.score)
	}
}

func TestFitLabelFor_ConfigurableThreshold(t *testing.T) {
	rs := NewRuleSet(nil)
	rs.RelevantAbove = 30

	assert.Equal(t, domain.FitPossible, fitLabelFor(rs, 25))
	assert.Equal(t, domain.FitRelevant, fitLabelFor(rs, 31))
}
