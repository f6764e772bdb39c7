package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/justext-go/justext"
)

// RunService is a SQLite-backed justext.RunStore.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

var _ justext.RunStore = (*RunService)(nil)

// CreateRun inserts run, assigning it an ID and CreatedAt if unset.
func (s *RunService) CreateRun(ctx context.Context, run *justext.Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, source, content_hash,
			length_low, length_high, stopwords_low, stopwords_high,
			max_link_density, max_heading_distance, no_headings,
			good_count, near_good_count, short_count, bad_count,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.ContentHash,
		run.Config.LengthLow, run.Config.LengthHigh, run.Config.StopwordsLow, run.Config.StopwordsHigh,
		run.Config.MaxLinkDensity, run.Config.MaxHeadingDistance, run.Config.NoHeadings,
		run.Summary.Good, run.Summary.NearGood, run.Summary.Short, run.Summary.Bad,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return justext.Errorf(justext.EINTERNAL, "create run: %v", err)
	}
	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*justext.Run, error) {
	row := s.db.QueryRowContext(ctx, runSelectColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, justext.Errorf(justext.ENOTFOUND, "run %q not found", id)
		}
		return nil, justext.Errorf(justext.EINTERNAL, "find run: %v", err)
	}
	return run, nil
}

// FindRuns retrieves runs ordered most-recent-first, with optional pagination.
func (s *RunService) FindRuns(ctx context.Context, limit, offset int) ([]*justext.Run, error) {
	var query strings.Builder
	query.WriteString(runSelectColumns + " FROM runs ORDER BY created_at DESC")
	var args []any
	appendPagination(&query, &args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, justext.Errorf(justext.EINTERNAL, "find runs: %v", err)
	}
	defer rows.Close()

	var runs []*justext.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, justext.Errorf(justext.EINTERNAL, "scan run: %v", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, justext.Errorf(justext.EINTERNAL, "find runs: %v", err)
	}
	return runs, nil
}

const runSelectColumns = `SELECT
	id, source, content_hash,
	length_low, length_high, stopwords_low, stopwords_high,
	max_link_density, max_heading_distance, no_headings,
	good_count, near_good_count, short_count, bad_count,
	created_at`

// rowScanner abstracts over *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*justext.Run, error) {
	var run justext.Run
	var createdAt string
	var noHeadings int
	err := row.Scan(
		&run.ID, &run.Source, &run.ContentHash,
		&run.Config.LengthLow, &run.Config.LengthHigh, &run.Config.StopwordsLow, &run.Config.StopwordsHigh,
		&run.Config.MaxLinkDensity, &run.Config.MaxHeadingDistance, &noHeadings,
		&run.Summary.Good, &run.Summary.NearGood, &run.Summary.Short, &run.Summary.Bad,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	run.Config.NoHeadings = noHeadings != 0

	t, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, fmt.Errorf("scan run %s: %w", run.ID, err)
	}
	run.CreatedAt = t

	return &run, nil
}
