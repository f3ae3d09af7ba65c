package api

import "github.com/EpikourosNafplio/tenderagent-msp/internal/domain"

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClassifyResponse wraps a single classification result.
type ClassifyResponse struct {
	Result *domain.ClassificationResult `json:"result"`
}

// BatchClassifyResponse wraps batch classification results.
type BatchClassifyResponse struct {
	Results []*domain.ClassificationResult `json:"results"`
	Total   int                            `json:"total"`
}

// AwardHistoryResponse lists past awards for one client.
type AwardHistoryResponse struct {
	Client           string                   `json:"client"`
	DatasetAvailable bool                     `json:"dataset_available"`
	Awards           []domain.HistoricalAward `json:"awards"`
	Total            int                      `json:"total"`
}

// RepeatPatternsResponse lists predicted re-tenders.
type RepeatPatternsResponse struct {
	DatasetAvailable bool                      `json:"dataset_available"`
	Predictions      []domain.RepeatPrediction `json:"predictions"`
	Total            int                       `json:"total"`
}

// PreAnnouncementsResponse lists early-stage notices.
type PreAnnouncementsResponse struct {
	DatasetAvailable bool                     `json:"dataset_available"`
	Announcements    []domain.PreAnnouncement `json:"announcements"`
	Total            int                      `json:"total"`
}

// DiscoverResponse describes the service and its endpoints.
type DiscoverResponse struct {
	Service          string            `json:"service"`
	Version          string            `json:"version"`
	RulesVersion     string            `json:"rules_version"`
	DatasetAvailable bool              `json:"dataset_available"`
	Endpoints        map[string]string `json:"endpoints"`
}
