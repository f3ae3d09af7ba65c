package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

func TestClassifyClient(t *testing.T) {
	rs := NewRuleSet(nil)

	tests := []struct {
		name       string
		clientName string
		want       domain.ClientType
	}{
		{"municipality", "Gemeente Utrecht", domain.ClientMunicipality},
		{"province", "Provincie Gelderland", domain.ClientProvince},
		{"water authority", "Hoogheemraadschap van Rijnland", domain.ClientWaterAuthority},
		{"frisian water authority", "Wetterskip Fryslân", domain.ClientWaterAuthority},
		{"joint venture beats municipality", "Gemeenschappelijke Regeling ICT Samenwerking Gemeenten", domain.ClientJointVenture},
		{"joint venture abbreviation", "GR Drechtsteden", domain.ClientJointVenture},
		{"ministry", "Ministerie van Binnenlandse Zaken", domain.ClientCentralGov},
		{"police", "Politie Nederland", domain.ClientCentralGov},
		{"critical infrastructure beats central government", "Rijkswaterstaat", domain.ClientCriticalInfra},
		{"rail operator", "ProRail B.V.", domain.ClientCriticalInfra},
		{"independent body", "UWV", domain.ClientIndependentBody},
		{"tax authority", "Belastingdienst", domain.ClientIndependentBody},
		{"hospital", "Ziekenhuis Gelderse Vallei", domain.ClientHealthcare},
		{"medical center", "Universitair Medisch Centrum Groningen", domain.ClientHealthcare},
		{"university", "Universiteit Utrecht", domain.ClientEducation},
		{"vocational school", "ROC Midden Nederland", domain.ClientEducation},
		{"education foundation", "Stichting Openbaar Onderwijs Rotterdam", domain.ClientEducation},
		{"plain foundation", "Stichting Wereldwijd Welzijn", domain.ClientOther},
		{"company", "Acme Consultancy B.V.", domain.ClientOther},
		{"empty name", "", domain.ClientOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyClient(rs, tt.clientName, ""))
		})
	}
}

func TestClassifyClient_DescriptionFallback(t *testing.T) {
	rs := NewRuleSet(nil)

	got := classifyClient(rs, "Inkooporganisatie Midden", "aanbesteding namens de gemeente Apeldoorn")
	assert.Equal(t, domain.ClientMunicipality, got)
}
