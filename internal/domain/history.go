package domain

import "time"

// Notice types used in the historical award dataset.
const (
	NoticeAward              = "award"
	NoticePriorInformation   = "prior_information"
	NoticeMarketConsultation = "market_consultation"
)

// HistoricalAward is one row of the read-only bulk award dataset.
type HistoricalAward struct {
	Client         string     `json:"client"`
	Description    string     `json:"description"`
	Supplier       string     `json:"supplier,omitempty"`
	AwardDate      time.Time  `json:"award_date"`
	Bids           int        `json:"bids,omitempty"`
	EstimatedValue *float64   `json:"estimated_value,omitempty"`
	AwardedValue   *float64   `json:"awarded_value,omitempty"`
	Code           string     `json:"code,omitempty"`
	ContractType   string     `json:"contract_type,omitempty"`
}

// RepeatPrediction is a predicted re-tender derived from an old award.
// It is computed on demand, never stored.
type RepeatPrediction struct {
	Client      string          `json:"client"`
	ClientType  ClientType      `json:"client_type"`
	Award       HistoricalAward `json:"award"`
	Segments    []Segment       `json:"segments,omitempty"`
	WindowStart time.Time       `json:"window_start"`
	WindowEnd   time.Time       `json:"window_end"`
}

// PreAnnouncement is an early-stage notice (prior information or market
// consultation) from the dataset.
type PreAnnouncement struct {
	Client      string     `json:"client"`
	ClientType  ClientType `json:"client_type"`
	Description string     `json:"description"`
	Published   time.Time  `json:"published"`
	NoticeType  string     `json:"notice_type"`
	Code        string     `json:"code,omitempty"`
	Segments    []Segment  `json:"segments,omitempty"`
}
