package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsreel/internal/domain"
)

// NewsStore persists NewsRecords and enforces the claim discipline that
// admits records into a stage.
type NewsStore struct {
	db *sqlx.DB
}

func NewNewsStore(db *sqlx.DB) *NewsStore {
	return &NewsStore{db: db}
}

const recordColumns = `
	id, headline, article, domain, source, published_at,
	status, relevancy, sentiment,
	video_title, hashtags, caption, script, image_urls,
	voiceover_url, video_url, video_local_path, instagram_id,
	reject_reason, error_type, error_message, error_at,
	claimed_by, claimed_at, created_at, mod_at`

func (s *NewsStore) Insert(ctx context.Context, rec *domain.NewsRecord) (int64, error) {
	query := `
		INSERT INTO news_records (headline, article, domain, source, published_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (source, headline) DO NOTHING
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		rec.Headline,
		rec.Article,
		rec.Domain,
		rec.Source,
		rec.PublishedAt,
		rec.Status,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrDuplicate
	}
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	return id, nil
}

// FindCandidates returns up to limit records whose status is in statuses and
// which are not under a live claim lease, ordered by relevancy descending
// then recency descending.
func (s *NewsStore) FindCandidates(ctx context.Context, statuses []domain.Status, limit int, lease time.Duration) ([]domain.NewsRecord, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM news_records
		WHERE status = ANY($1)
		  AND (claimed_at IS NULL OR claimed_at < NOW() - ($2 * INTERVAL '1 second'))
		ORDER BY relevancy DESC NULLS LAST, published_at DESC
		LIMIT $3`, recordColumns)

	rows, err := s.db.QueryContext(ctx, query, pq.Array(statusStrings(statuses)), lease.Seconds(), limit)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Claim marks a record as in-flight for owner. The update is gated on the
// expected status and on any previous lease having expired, so exactly one
// of two concurrent claimants wins.
func (s *NewsStore) Claim(ctx context.Context, id int64, expected domain.Status, owner string, lease time.Duration) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE news_records
		SET claimed_by = $1, claimed_at = NOW(), mod_at = NOW()
		WHERE id = $2
		  AND status = $3
		  AND (claimed_at IS NULL OR claimed_at < NOW() - ($4 * INTERVAL '1 second'))`,
		owner, id, expected, lease.Seconds(),
	)
	if err != nil {
		return false, fmt.Errorf("claim record %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// UpdateFields applies fields to a record in one atomic statement, stamps
// mod_at, and releases the claim. Slice and script values are converted to
// their column representations here so callers pass plain domain values.
func (s *NewsStore) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	converted := make(map[string]any, len(fields)+3)
	for col, val := range fields {
		switch v := val.(type) {
		case []string:
			converted[col] = pq.Array(v)
		case []domain.ScriptSlide:
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("marshal %s: %w", col, err)
			}
			converted[col] = data
		default:
			converted[col] = val
		}
	}
	converted["mod_at"] = sq.Expr("NOW()")
	converted["claimed_by"] = nil
	converted["claimed_at"] = nil

	query, args, err := sq.Update("news_records").
		SetMap(converted).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update record %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TopRecords serves the read-only query surface: the best records in the
// given statuses, optionally windowed to those published after since.
func (s *NewsStore) TopRecords(ctx context.Context, statuses []domain.Status, limit int, since *time.Time) ([]domain.NewsRecord, error) {
	qb := sq.Select(recordColumns).
		From("news_records").
		Where(sq.Eq{"status": statusStrings(statuses)}).
		OrderBy("relevancy DESC NULLS LAST", "published_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if since != nil {
		qb = qb.Where(sq.GtOrEq{"published_at": *since})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetByID fetches a single record.
func (s *NewsStore) GetByID(ctx context.Context, id int64) (*domain.NewsRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM news_records WHERE id = $1`, recordColumns)

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}
	defer rows.Close()

	recs, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &recs[0], nil
}

// CountByStatus returns the number of records per status.
func (s *NewsStore) CountByStatus(ctx context.Context) (map[domain.Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM news_records GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Status]int)
	for rows.Next() {
		var status domain.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func statusStrings(statuses []domain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanRecords(rows *sql.Rows) ([]domain.NewsRecord, error) {
	var records []domain.NewsRecord
	for rows.Next() {
		var rec domain.NewsRecord
		var hashtags, imageURLs pq.StringArray
		var script []byte
		var sentiment, errorType sql.NullString

		err := rows.Scan(
			&rec.ID, &rec.Headline, &rec.Article, &rec.Domain, &rec.Source, &rec.PublishedAt,
			&rec.Status, &rec.Relevancy, &sentiment,
			&rec.VideoTitle, &hashtags, &rec.Caption, &script, &imageURLs,
			&rec.VoiceoverURL, &rec.VideoURL, &rec.VideoLocalPath, &rec.InstagramID,
			&rec.RejectReason, &errorType, &rec.ErrorMessage, &rec.ErrorAt,
			&rec.ClaimedBy, &rec.ClaimedAt, &rec.CreatedAt, &rec.ModAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		rec.Hashtags = hashtags
		rec.ImageURLs = imageURLs
		if sentiment.Valid {
			s := domain.Sentiment(sentiment.String)
			rec.Sentiment = &s
		}
		if errorType.Valid {
			t := domain.ErrorType(errorType.String)
			rec.ErrorType = &t
		}
		if len(script) > 0 {
			if err := json.Unmarshal(script, &rec.Script); err != nil {
				return nil, fmt.Errorf("decode script for record %d: %w", rec.ID, err)
			}
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}
