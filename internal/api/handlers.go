// Package api exposes the classification pipeline and historical views
// over HTTP.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/classifier"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/config"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/history"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/logger"
)

// Batch size bound for classify requests.
const maxBatchSize = 100

// Handler handles HTTP requests for the tender agent API.
type Handler struct {
	pipeline *classifier.Pipeline
	store    *history.Store
	cfg      *config.Config
	metrics  *Metrics
	logger   logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(pipeline *classifier.Pipeline, store *history.Store, cfg *config.Config, metrics *Metrics, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		pipeline: pipeline,
		store:    store,
		cfg:      cfg,
		metrics:  metrics,
		logger:   log,
	}
}

// ClassifyRequest is a single classification request.
type ClassifyRequest struct {
	Tender *domain.TenderRecord `json:"tender" binding:"required"`
}

// BatchClassifyRequest is a batch classification request.
type BatchClassifyRequest struct {
	Tenders []domain.TenderRecord `json:"tenders" binding:"required,min=1,max=100"`
}

// Classify handles POST /api/v1/classify.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	result, err := h.pipeline.Classify(req.Tender)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	h.observe(result, time.Since(start))

	c.JSON(http.StatusOK, ClassifyResponse{Result: result})
}

// ClassifyBatch handles POST /api/v1/classify/batch.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if len(req.Tenders) > maxBatchSize {
		badRequest(c, "batch too large")
		return
	}

	results := make([]*domain.ClassificationResult, 0, len(req.Tenders))
	for i := range req.Tenders {
		start := time.Now()
		result, err := h.pipeline.Classify(&req.Tenders[i])
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		h.observe(result, time.Since(start))
		results = append(results, result)
	}

	c.JSON(http.StatusOK, BatchClassifyResponse{Results: results, Total: len(results)})
}

// AwardHistory handles GET /api/v1/history/awards/:client.
func (h *Handler) AwardHistory(c *gin.Context) {
	client := c.Param("client")
	h.metrics.HistoryQueries.WithLabelValues("awards").Inc()

	awards, err := h.store.AwardHistory(c.Request.Context(), client)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			badRequest(c, err.Error())
			return
		}
		h.serverError(c, "award history query failed", err)
		return
	}

	c.JSON(http.StatusOK, AwardHistoryResponse{
		Client:           client,
		DatasetAvailable: h.store.Available(),
		Awards:           awards,
		Total:            len(awards),
	})
}

// RepeatPatterns handles GET /api/v1/history/repeat-patterns.
func (h *Handler) RepeatPatterns(c *gin.Context) {
	h.metrics.HistoryQueries.WithLabelValues("repeat_patterns").Inc()

	predictions, err := h.store.RepeatPatterns(c.Request.Context())
	if err != nil {
		h.serverError(c, "repeat pattern query failed", err)
		return
	}

	c.JSON(http.StatusOK, RepeatPatternsResponse{
		DatasetAvailable: h.store.Available(),
		Predictions:      predictions,
		Total:            len(predictions),
	})
}

// PreAnnouncements handles GET /api/v1/history/pre-announcements.
func (h *Handler) PreAnnouncements(c *gin.Context) {
	h.metrics.HistoryQueries.WithLabelValues("pre_announcements").Inc()

	announcements, err := h.store.PreAnnouncements(c.Request.Context())
	if err != nil {
		h.serverError(c, "pre-announcement query failed", err)
		return
	}

	c.JSON(http.StatusOK, PreAnnouncementsResponse{
		DatasetAvailable: h.store.Available(),
		Announcements:    announcements,
		Total:            len(announcements),
	})
}

// Discover handles GET /api/v1/discover with service metadata.
func (h *Handler) Discover(c *gin.Context) {
	c.JSON(http.StatusOK, DiscoverResponse{
		Service:          h.cfg.Service.Name,
		Version:          h.cfg.Service.Version,
		RulesVersion:     h.pipeline.Rules().Version,
		DatasetAvailable: h.store.Available(),
		Endpoints: map[string]string{
			"classify":          "POST /api/v1/classify",
			"classify_batch":    "POST /api/v1/classify/batch",
			"award_history":     "GET /api/v1/history/awards/:client",
			"repeat_patterns":   "GET /api/v1/history/repeat-patterns",
			"pre_announcements": "GET /api/v1/history/pre-announcements",
			"metrics":           "GET /metrics",
		},
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": h.cfg.Service.Name})
}

// ReadyCheck handles GET /ready. The service is ready as soon as the
// rule set is compiled; the dataset is optional.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ready",
		"dataset_available": h.store.Available(),
	})
}

func (h *Handler) observe(result *domain.ClassificationResult, took time.Duration) {
	h.metrics.ClassifyDuration.Observe(took.Seconds())
	h.metrics.ClassifiedTotal.WithLabelValues(string(result.FitLabel)).Inc()
	if !result.PassesITGate {
		h.metrics.GateRejectedTotal.WithLabelValues(result.GateReason).Inc()
	}
}

func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, logger.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
