// Package history reads the bulk historical notice dataset and derives
// award history, repeat tender predictions and pre-announcement views.
// The dataset is an offline-built SQLite file; the store never writes
// to it.
package history

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/domain"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/logger"
)

// Query limits keep responses bounded on large datasets.
const (
	awardHistoryLimit    = 20
	repeatPatternLimit   = 50
	preAnnouncementLimit = 50
)

// Schema is the dataset layout the store expects. Exposed so the import
// tooling and tests build the same tables.
const Schema = `
CREATE TABLE IF NOT EXISTS awards (
	id               TEXT PRIMARY KEY,
	client           TEXT NOT NULL,
	description      TEXT,
	notice_type      TEXT NOT NULL,
	contract_type    TEXT,
	code             TEXT,
	published        TEXT,
	award_date       TEXT,
	supplier         TEXT,
	bids             INTEGER,
	estimated_value  REAL,
	awarded_value    REAL
);
CREATE INDEX IF NOT EXISTS idx_awards_client ON awards(client);
CREATE INDEX IF NOT EXISTS idx_awards_notice ON awards(notice_type);
CREATE INDEX IF NOT EXISTS idx_awards_award_date ON awards(award_date);
`

// Enricher classifies dataset rows the same way live tenders are
// classified. Implemented by the classifier pipeline.
type Enricher interface {
	ClientTypeFor(name string) domain.ClientType
	SegmentsFor(text string) []domain.Segment
	ITCode(code string) bool
}

// Options tune the derived views.
type Options struct {
	// RepeatMinYears and RepeatMaxYears bound the lookback window for
	// repeat predictions, in years before now.
	RepeatMinYears int
	RepeatMaxYears int
	// LeadMonths bounds how far back pre-announcements are reported.
	LeadMonths int
}

func (o *Options) setDefaults() {
	if o.RepeatMinYears == 0 {
		o.RepeatMinYears = 3
	}
	if o.RepeatMaxYears == 0 {
		o.RepeatMaxYears = 5
	}
	if o.LeadMonths == 0 {
		o.LeadMonths = 12
	}
}

// Store serves read-only queries over the historical dataset. All
// history features degrade to empty results when the dataset file is
// absent; the service keeps running either way.
type Store struct {
	db        *sqlx.DB
	enrich    Enricher
	logger    logger.Logger
	opts      Options
	available bool
	now       func() time.Time
}

// Open connects to the dataset at path. A missing file is not an
// error: the returned store reports Available() == false and serves
// empty results.
func Open(path string, enrich Enricher, log logger.Logger, opts Options) (*Store, error) {
	if log == nil {
		log = logger.NewNop()
	}
	opts.setDefaults()

	s := &Store{enrich: enrich, logger: log, opts: opts, now: time.Now}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Warn("historical dataset not found, history features disabled",
			logger.String("path", path))
		return s, nil
	}

	db, err := sqlx.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping dataset %s: %w", path, err)
	}

	s.db = db
	s.available = true
	log.Info("historical dataset loaded", logger.String("path", path))
	return s, nil
}

// NewWithDB wraps an existing connection. Used by tests with an
// in-memory database.
func NewWithDB(db *sqlx.DB, enrich Enricher, log logger.Logger, opts Options) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	opts.setDefaults()
	return &Store{db: db, enrich: enrich, logger: log, opts: opts, available: true, now: time.Now}
}

// Available reports whether the dataset is loaded.
func (s *Store) Available() bool { return s.available }

// Close releases the dataset connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// awardRow mirrors one dataset row.
type awardRow struct {
	ID             string   `db:"id"`
	Client         string   `db:"client"`
	Description    string   `db:"description"`
	NoticeType     string   `db:"notice_type"`
	ContractType   string   `db:"contract_type"`
	Code           string   `db:"code"`
	Published      string   `db:"published"`
	AwardDate      string   `db:"award_date"`
	Supplier       string   `db:"supplier"`
	Bids           int      `db:"bids"`
	EstimatedValue *float64 `db:"estimated_value"`
	AwardedValue   *float64 `db:"awarded_value"`
}

// AwardHistory returns past IT awards for a client, newest first. The
// match is a case-insensitive substring so "Utrecht" finds "Gemeente
// Utrecht".
func (s *Store) AwardHistory(ctx context.Context, client string) ([]domain.HistoricalAward, error) {
	if !s.available {
		return []domain.HistoricalAward{}, nil
	}
	if strings.TrimSpace(client) == "" {
		return nil, fmt.Errorf("%w: empty client name", domain.ErrInvalidInput)
	}

	query := `
		SELECT id, client, COALESCE(description, '') AS description,
		       notice_type, COALESCE(contract_type, '') AS contract_type,
		       COALESCE(code, '') AS code, COALESCE(published, '') AS published,
		       COALESCE(award_date, '') AS award_date,
		       COALESCE(supplier, '') AS supplier, COALESCE(bids, 0) AS bids,
		       estimated_value, awarded_value
		FROM awards
		WHERE notice_type = ? AND LOWER(client) LIKE ?
		ORDER BY award_date DESC
	`

	var rows []awardRow
	pattern := "%" + strings.ToLower(client) + "%"
	if err := s.db.SelectContext(ctx, &rows, query, domain.NoticeAward, pattern); err != nil {
		return nil, fmt.Errorf("query award history: %w", err)
	}

	awards := make([]domain.HistoricalAward, 0, len(rows))
	for _, row := range rows {
		if !s.enrich.ITCode(row.Code) {
			continue
		}
		awards = append(awards, toAward(row))
		if len(awards) >= awardHistoryLimit {
			break
		}
	}
	return awards, nil
}

// RepeatPatterns predicts upcoming re-tenders from IT service awards
// made between RepeatMaxYears and RepeatMinYears ago. Contracts in the
// public sector typically run three to five years, so an old award
// means a new tender is due in the window after it.
func (s *Store) RepeatPatterns(ctx context.Context) ([]domain.RepeatPrediction, error) {
	if !s.available {
		return []domain.RepeatPrediction{}, nil
	}

	now := s.now()
	oldest := now.AddDate(-s.opts.RepeatMaxYears, 0, 0)
	newest := now.AddDate(-s.opts.RepeatMinYears, 0, 0)

	query := `
		SELECT id, client, COALESCE(description, '') AS description,
		       notice_type, COALESCE(contract_type, '') AS contract_type,
		       COALESCE(code, '') AS code, COALESCE(published, '') AS published,
		       COALESCE(award_date, '') AS award_date,
		       COALESCE(supplier, '') AS supplier, COALESCE(bids, 0) AS bids,
		       estimated_value, awarded_value
		FROM awards
		WHERE notice_type = ? AND contract_type = ?
		  AND award_date >= ? AND award_date <= ?
		ORDER BY award_date DESC
	`

	var rows []awardRow
	if err := s.db.SelectContext(ctx, &rows, query,
		domain.NoticeAward, string(domain.ProcurementServices),
		oldest.Format(time.DateOnly), newest.Format(time.DateOnly)); err != nil {
		return nil, fmt.Errorf("query repeat patterns: %w", err)
	}

	predictions := make([]domain.RepeatPrediction, 0, len(rows))
	for _, row := range rows {
		if !s.enrich.ITCode(row.Code) {
			continue
		}
		award := toAward(row)
		if award.AwardDate.IsZero() {
			continue
		}
		predictions = append(predictions, domain.RepeatPrediction{
			Client:      row.Client,
			ClientType:  s.enrich.ClientTypeFor(row.Client),
			Award:       award,
			Segments:    s.enrich.SegmentsFor(row.Description),
			WindowStart: award.AwardDate.AddDate(s.opts.RepeatMinYears, 0, 0),
			WindowEnd:   award.AwardDate.AddDate(s.opts.RepeatMaxYears, 0, 0),
		})
		if len(predictions) >= repeatPatternLimit {
			break
		}
	}
	return predictions, nil
}

// PreAnnouncements returns recent prior information notices and market
// consultations for IT work, newest first.
func (s *Store) PreAnnouncements(ctx context.Context) ([]domain.PreAnnouncement, error) {
	if !s.available {
		return []domain.PreAnnouncement{}, nil
	}

	cutoff := s.now().AddDate(0, -s.opts.LeadMonths, 0)

	query := `
		SELECT id, client, COALESCE(description, '') AS description,
		       notice_type, COALESCE(contract_type, '') AS contract_type,
		       COALESCE(code, '') AS code, COALESCE(published, '') AS published,
		       COALESCE(award_date, '') AS award_date,
		       COALESCE(supplier, '') AS supplier, COALESCE(bids, 0) AS bids,
		       estimated_value, awarded_value
		FROM awards
		WHERE notice_type IN (?, ?) AND published >= ?
		ORDER BY published DESC
	`

	var rows []awardRow
	if err := s.db.SelectContext(ctx, &rows, query,
		domain.NoticePriorInformation, domain.NoticeMarketConsultation,
		cutoff.Format(time.DateOnly)); err != nil {
		return nil, fmt.Errorf("query pre-announcements: %w", err)
	}

	announcements := make([]domain.PreAnnouncement, 0, len(rows))
	for _, row := range rows {
		if !s.enrich.ITCode(row.Code) {
			continue
		}
		announcements = append(announcements, domain.PreAnnouncement{
			Client:      row.Client,
			ClientType:  s.enrich.ClientTypeFor(row.Client),
			Description: row.Description,
			Published:   parseDate(row.Published),
			NoticeType:  row.NoticeType,
			Code:        row.Code,
			Segments:    s.enrich.SegmentsFor(row.Description),
		})
		if len(announcements) >= preAnnouncementLimit {
			break
		}
	}
	return announcements, nil
}

func toAward(row awardRow) domain.HistoricalAward {
	return domain.HistoricalAward{
		Client:         row.Client,
		Description:    row.Description,
		Supplier:       row.Supplier,
		AwardDate:      parseDate(row.AwardDate),
		Bids:           row.Bids,
		EstimatedValue: row.EstimatedValue,
		AwardedValue:   row.AwardedValue,
		Code:           row.Code,
		ContractType:   row.ContractType,
	}
}

// parseDate handles the date layouts seen in dataset exports. Unknown
// layouts yield a zero time rather than an error; a single bad row
// should not break a listing.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
