// classifier/tables.go holds the built-in rule tables and the compiled
// RuleSet the pipeline runs against. Keyword lists are Dutch because the
// notices are; English terms appear where the market uses them.
package classifier

import (
	"github.com/EpikourosNafplio/tenderagent-msp/internal/config"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
)

// Defaults for tunable scoring parameters.
const (
	DefaultRulesVersion   = "2026.1"
	DefaultEUThresholdEUR = 221_000
	DefaultRelevantAbove  = 20
)

// Title keywords that mark a tender as non-IT regardless of codes or
// description. Physical services, construction, green maintenance and
// the like.
var defaultNegativeTitleKeywords = []string{
	"verhuisdiensten", "verhuizing", "schoonmaak", "catering",
	"pendeldiensten", "pendeldienst", "vervoerdiensten", "vervoerdienst",
	"reisorganisatiediensten", "reisorganisatie",
	"groenonderhoud", "groenvoorziening", "ruw gras", "bloemrijk gras",
	"watergangen", "openbare ruimte", "herinrichting",
	"bouwkundig onderhoud", "renovatie", "nieuwbouw",
	"sportpark", "sportaccommodatie", "kindcentrum",
	"kavel op", "bestek",
	"openbare verlichting", "straatverlichting",
	"objectbeveiliging",
	"deurdrangers", "schuifdeuren", "roldeuren", "slagbomen",
	"verpakkingsglas", "afvoer en verwerking",
	"persoonsgebonden was", "wasgoed", "woningaanpassingen",
	"speelgroepen", "samenspeelgroepen",
	"car verzekering",
	"foto- en video", "fotografie en video",
	"veiligheidsinspecties elektrische",
	"verkeersregeltechnische",
	"anpr-camera",
	"logistiek laadadvies", "laadadvies",
	"bedrijventerreinaanpak",
	"correctief bouwkundig", "raamovereenkomst onderhoud",
	"ingenieursdiensten", "natuurherstel", "wissels",
	"bio-coalitie", "coördinatie en realisatie",
	"vergunningverlening milieu", "meldingen en vergunningverlening",
}

// Strong IT keywords. Any hit in title or description passes the gate.
// "hosting" is handled separately because it also names physical
// accommodation of equipment and people.
var defaultStrongKeywords = []string{
	"ict", "it-dienst", "software", "hosting", "cloud", "saas", "iaas", "paas",
	"datacenter", "datacentrum", "cybersecurity", "informatiebeveiliging",
	"digitalisering", "applicatie", "licentie", "microsoft", "azure", "aws",
	"informatievoorziening", "erp", "crm", "dms", "zaaksysteem", "siem",
	"managed services", "servicedesk", "helpdesk", "werkplek",
	"server", "storage", "backup", "disaster recovery",
	"voip", "unified communications", "multifunctional",
	"informatiesysteem", "informatiesystemen", "netwerk", "firewall",
	"wifi", "wlan",
	"document management", "datawarehouse", "business intelligence",
	"informatiemanagement", "digitale werkplek", "end user",
}

// ambiguousStrongKeywords only count as IT signals when an IT context
// term also appears.
var ambiguousStrongKeywords = []string{"hosting"}

// itContextKeywords disambiguate ambiguous strong keywords.
var itContextKeywords = []string{
	"ict", "it-", "software", "cloud", "server", "data", "digitaal",
	"web", "applicatie", "informatievoorziening", "cyber", "saas",
	"iaas", "paas", "azure", "microsoft",
}

// IT procurement code prefixes: IT services (72), software (48),
// computer equipment (302), telecom (642), computer maintenance (503)
// and installation (516).
var defaultCodePrefixes = []string{"72", "48", "302", "642", "503", "516"}

// Titles that sound purely physical override a code-prefix match.
var physicalTitleKeywords = []string{
	"onderhoud gras", "onderhoud verlichting", "onderhoud deuren",
	"onderhoud gebouw", "correctief bouwkundig", "raamovereenkomst onderhoud",
}

// Segment keyword tables. A hit tags the tender with that segment.
var defaultSegmentKeywords = map[domain.Segment][]string{
	domain.SegmentWorkplace: {
		"werkplekbeheer", "workplace management", "endpoint management",
		"digitale werkomgeving", "dwr", "printbeheer", "multifunctional",
		"mfp", "modern workplace", "microsoft 365", "m365", "office 365",
		"servicedesk", "itsm", "client management", "end user computing",
		"kantoorautomatisering", "repro",
	},
	domain.SegmentCloud: {
		"hosting", "iaas", "paas", "cloudmigratie", "vmware",
		"virtualisatie", "compute", "storage", "backup",
		"disaster recovery", "datacenter", "datacentrum", "containerisatie",
		"hybride cloud", "private cloud", "public cloud",
	},
	domain.SegmentSecurity: {
		"soc", "siem", "soar", "penetratietest", "pentest",
		"vulnerability scan", "informatiebeveiliging", "cybersecurity",
		"security operations", "dreigingsanalyse", "incident response",
		"security monitoring",
	},
	domain.SegmentNetwork: {
		"sd-wan", "lan", "wan", "firewall", "connectiviteit",
		"glasvezel", "wifi", "wlan", "switching", "routing",
		"vpn", "netwerkbeheer", "netwerk infrastructuur",
	},
	domain.SegmentApplication: {
		"applicatiebeheer", "softwareimplementatie", "zaaksysteem",
		"servicemanagement", "itsm", "erp-implementatie",
		"crm-implementatie", "document management", "dms",
		"informatiebeheer", "maatwerk software", "erp", "crm", "hrm",
	},
	domain.SegmentData: {
		"datawarehouse", "business intelligence", "power bi", "tableau",
		"datafundament", "data-integratie", "etl", "data analytics",
		"rapportage-omgeving", "dataverzameling",
	},
}

// Application software indicators. These describe line-of-business
// software procurement, which is not managed infrastructure work.
var appSoftwareKeywords = []string{
	"salarisverwerking", "salarissoftware", "salaris applicatie", "salarissysteem",
	"e-hrm", "hrm-systeem", "hrm systeem", "personeelsinformatie",
	"woz-applicatie", "woz applicatie", "woz taxatie", "woz waardering",
	"financieel pakket", "financiele applicatie",
	"basisregistratie", "burgerzaken", "vergunningen",
	"klantvolgsysteem", "clientvolgsysteem", "cliëntvolgsysteem",
	"sociaal domein software", "jeugdhulp applicatie",
	"erp", "hrm",
}

// Physical infrastructure indicators.
var physicalInfraKeywords = []string{
	"meettrein", "civiel", "graafwerk", "aanleg glasvezel",
	"straatverlichting", "verkeersregelinstallatie",
	"fysieke toegangscontrole", "tourniquets", "slagboom",
	"camerabewaking", "cctv", "installatie gebouw",
	"elektrotechnisch", "werktuigbouwkundig",
}

// Core managed-services terms that earn the scope bonus.
var mspCoreKeywords = []string{
	"werkplekbeheer", "werkplek", "compute", "storage", "backup",
	"hosting", "cloud", "datacenter", "infrastructuur", "connectiviteit",
	"managed service", "servicedesk", "helpdesk", "endpoint",
	"digitale werkomgeving", "disaster recovery",
}

// Terms that describe ongoing service delivery. Used to flag supply
// tenders whose scope is really a service.
var serviceHintKeywords = []string{
	"beheer", "onderhoud", "support", "service", "hosting", "managed",
}

// Terms that hint at an incumbent supplier being replaced.
var supplierSwitchKeywords = []string{
	"huidige leverancier", "incumbent", "transitie", "migratie van",
	"overgang van", "contract loopt af", "leverancierswisseling",
}

// certPattern maps a certification name to the text fragments that
// announce it. Fragments with leading and trailing spaces only match
// as standalone words in padded text.
type certPattern struct {
	name      string
	fragments []string
}

var certPatterns = []certPattern{
	{"ISO 27001", []string{"iso 27001", "iso27001", "iso-27001"}},
	{"ISO 9001", []string{"iso 9001", "iso9001", "iso-9001"}},
	{"ISO 14001", []string{"iso 14001", "iso14001", "iso-14001"}},
	{"NEN 7510", []string{"nen 7510", "nen7510", "nen-7510"}},
	{"ISAE 3402", []string{"isae 3402", "isae3402"}},
	{"SOC 2", []string{"soc 2", "soc2", "soc-2"}},
	{"BIO", []string{"baseline informatiebeveiliging", " bio "}},
	{"DigiD", []string{"digid"}},
	{"NIS2", []string{"nis2", "nis 2", "nis-2"}},
	{"DORA", []string{" dora "}},
	{"PSO", []string{"prestatieladder socialer ondernemen", " pso "}},
	{"CO2-prestatieladder", []string{"co2-prestatieladder", "co2 prestatieladder"}},
	{"SROI", []string{"sroi", "social return"}},
}

// Expected certification demands per client type.
var certTable = map[domain.ClientType]domain.Certifications{
	domain.ClientMunicipality: {
		Mandatory: []string{"BIO"},
		Likely:    []string{"ISO 27001"},
		Common:    []string{"SROI"},
	},
	domain.ClientJointVenture: {
		Mandatory: []string{"BIO"},
		Likely:    []string{"ISO 27001"},
		Common:    []string{"SROI"},
	},
	domain.ClientProvince: {
		Mandatory: []string{"BIO"},
		Likely:    []string{"ISO 27001"},
	},
	domain.ClientWaterAuthority: {
		Mandatory: []string{"BIO"},
		Likely:    []string{"ISO 27001"},
	},
	domain.ClientCentralGov: {
		Mandatory: []string{"BIO"},
		Likely:    []string{"ISO 27001"},
		Common:    []string{"DigiD", "ISAE 3402"},
	},
	domain.ClientIndependentBody: {
		Mandatory: []string{"BIO"},
		Likely:    []string{"ISO 27001"},
		Common:    []string{"DigiD", "ISAE 3402"},
	},
	domain.ClientCriticalInfra: {
		Mandatory: []string{"BIO"},
		Likely:    []string{"ISO 27001", "ISAE 3402", "NIS2"},
	},
	domain.ClientHealthcare: {
		Mandatory: []string{"NEN 7510"},
		Likely:    []string{"ISO 27001"},
		Common:    []string{"BIO"},
	},
	domain.ClientEducation: {
		Likely: []string{"AVG/DPIA"},
		Common: []string{"ISO 27001"},
	},
}

// clientRule pairs a client type with the name fragments that identify
// it. Rules run in order, most specific first.
type clientRule struct {
	clientType domain.ClientType
	keywords   []string
}

var clientRules = []clientRule{
	{domain.ClientCriticalInfra, []string{
		"rijkswaterstaat", "prorail", "tennet", "gasunie", "rws",
	}},
	{domain.ClientJointVenture, []string{
		"gemeenschappelijke regeling", "samenwerkingsverband", "gr",
	}},
	{domain.ClientIndependentBody, []string{
		"uwv", "svb", "duo", "belastingdienst", "rivm", "rvo", "rdw",
		"kadaster", "knmi", "cbs", "cbr", "ind", "kvk",
		"kamer van koophandel", "cjib", "nfi", "nvwa",
	}},
	{domain.ClientHealthcare, []string{
		"ziekenhuis", "ggz", "ggd", "zorggroep", "huisartsen",
		"medisch centrum", "verpleeghuis", "thuiszorg",
		"gehandicaptenzorg", "umc",
	}},
	{domain.ClientCentralGov, []string{
		"ministerie", "politie", "raad van state", "hoge raad",
		"eerste kamer", "tweede kamer", "rekenkamer", "defensie",
		"justitie", "dienst uitvoering",
	}},
	{domain.ClientWaterAuthority, []string{
		"waterschap", "hoogheemraadschap", "wetterskip",
	}},
	{domain.ClientMunicipality, []string{"gemeente"}},
	{domain.ClientProvince, []string{"provincie"}},
	{domain.ClientEducation, []string{
		"universiteit", "hogeschool", "roc", "lyceum",
		"scholengemeenschap", "surf", "mbo",
	}},
}

// foundationEducationHints turn a "stichting" into an education client.
var foundationEducationHints = []string{"onderwijs", "school", "lyceum", "college"}

// valueBand is an estimated contract value range in euros.
type valueBand struct {
	low, high int64
}

// Value bands by client type. Municipalities get separate bands for
// infrastructure and application scope.
var (
	bandMunicipalityInfra = valueBand{200_000, 1_000_000}
	bandMunicipalityApp   = valueBand{100_000, 500_000}

	valueBandTable = map[domain.ClientType]valueBand{
		domain.ClientJointVenture:    {300_000, 2_000_000},
		domain.ClientCentralGov:      {500_000, 5_000_000},
		domain.ClientIndependentBody: {500_000, 5_000_000},
		domain.ClientCriticalInfra:   {500_000, 5_000_000},
		domain.ClientHealthcare:      {100_000, 500_000},
		domain.ClientEducation:       {50_000, 300_000},
		domain.ClientProvince:        {200_000, 1_500_000},
		domain.ClientWaterAuthority:  {200_000, 1_500_000},
	}
)

// RuleSet is the compiled rule state the pipeline classifies against.
// Build one with NewRuleSet and share it; it is immutable after
// construction.
type RuleSet struct {
	Version        string
	EUThresholdEUR int64
	RelevantAbove  int

	negativeTitle *KeywordSet
	strong        *KeywordSet
	ambiguous     *KeywordSet
	itContext     *KeywordSet
	codePrefixes  []string
	physicalTitle *KeywordSet

	segments    map[domain.Segment]*KeywordSet
	segmentGate map[domain.Segment]*KeywordSet

	appSoftware    *KeywordSet
	physicalInfra  *KeywordSet
	mspCore        *KeywordSet
	serviceHints   *KeywordSet
	supplierSwitch *KeywordSet

	clientMatchers []clientMatcher
	foundationEdu  *KeywordSet
}

type clientMatcher struct {
	clientType domain.ClientType
	keywords   *KeywordSet
}

// NewRuleSet compiles the built-in tables with any overrides applied.
// A nil overrides pointer yields the defaults.
func NewRuleSet(overrides *config.Rules) *RuleSet {
	version := DefaultRulesVersion
	euThreshold := int64(DefaultEUThresholdEUR)
	relevantAbove := DefaultRelevantAbove

	negative := defaultNegativeTitleKeywords
	strong := defaultStrongKeywords
	prefixes := defaultCodePrefixes
	segments := defaultSegmentKeywords

	if overrides != nil {
		if overrides.Version != "" {
			version = overrides.Version
		}
		if overrides.EUThresholdEUR > 0 {
			euThreshold = overrides.EUThresholdEUR
		}
		if overrides.RelevantAbove > 0 {
			relevantAbove = overrides.RelevantAbove
		}
		if len(overrides.NegativeTitleKeywords) > 0 {
			negative = overrides.NegativeTitleKeywords
		}
		if len(overrides.StrongKeywords) > 0 {
			strong = overrides.StrongKeywords
		}
		if len(overrides.CodePrefixes) > 0 {
			prefixes = overrides.CodePrefixes
		}
		if len(overrides.SegmentKeywords) > 0 {
			merged := make(map[domain.Segment][]string, len(segments))
			for seg, kws := range segments {
				merged[seg] = kws
			}
			for name, kws := range overrides.SegmentKeywords {
				merged[domain.Segment(name)] = kws
			}
			segments = merged
		}
	}

	rs := &RuleSet{
		Version:        version,
		EUThresholdEUR: euThreshold,
		RelevantAbove:  relevantAbove,
		negativeTitle:  NewKeywordSet(negative),
		strong:         NewKeywordSet(excludeKeywords(strong, ambiguousStrongKeywords)),
		ambiguous:      NewKeywordSet(intersectKeywords(strong, ambiguousStrongKeywords)),
		itContext:      NewKeywordSet(itContextKeywords),
		codePrefixes:   prefixes,
		physicalTitle:  NewKeywordSet(physicalTitleKeywords),
		segments:       make(map[domain.Segment]*KeywordSet, len(segments)),
		segmentGate:    make(map[domain.Segment]*KeywordSet, len(segments)),
		appSoftware:    NewKeywordSet(appSoftwareKeywords),
		physicalInfra:  NewKeywordSet(physicalInfraKeywords),
		mspCore:        NewKeywordSet(mspCoreKeywords),
		serviceHints:   NewKeywordSet(serviceHintKeywords),
		supplierSwitch: NewKeywordSet(supplierSwitchKeywords),
		foundationEdu:  NewKeywordSet(foundationEducationHints),
	}

	for seg, kws := range segments {
		rs.segments[seg] = NewKeywordSet(kws)
		rs.segmentGate[seg] = NewKeywordSet(excludeKeywords(kws, ambiguousStrongKeywords))
	}

	rs.clientMatchers = make([]clientMatcher, 0, len(clientRules))
	for _, rule := range clientRules {
		rs.clientMatchers = append(rs.clientMatchers, clientMatcher{
			clientType: rule.clientType,
			keywords:   NewKeywordSet(rule.keywords),
		})
	}

	return rs
}

func excludeKeywords(keywords, drop []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if !containsKeyword(drop, kw) {
			out = append(out, kw)
		}
	}
	return out
}

func intersectKeywords(keywords, keep []string) []string {
	var out []string
	for _, kw := range keywords {
		if containsKeyword(keep, kw) {
			out = append(out, kw)
		}
	}
	return out
}

func containsKeyword(keywords []string, kw string) bool {
	for _, k := range keywords {
		if k == kw {
			return true
		}
	}
	return false
}
