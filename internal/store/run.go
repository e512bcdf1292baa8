package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// runRepo implements RunRepo with raw SQL.
type runRepo struct {
	db *sql.DB
}

func (r *runRepo) Create(ctx context.Context, run RunRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (id, scenario, level, model, questions_total)
		VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Scenario, run.Level, run.Model, run.QuestionsTotal,
	)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

func (r *runRepo) Finish(ctx context.Context, run RunRecord) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE runs
		SET pre_score = ?, post_score = ?, improvement = ?, learned = ?,
			questions_taught = ?, summaries_json = ?, finished_at = ?
		WHERE id = ?`,
		run.PreScore, run.PostScore, run.Improvement, run.Learned,
		run.QuestionsTaught, run.SummariesJSON, time.Now().UTC(), run.ID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("finish run: run %q not found", run.ID)
	}
	return nil
}

const runColumns = `id, scenario, level, model, pre_score, post_score,
	improvement, learned, questions_total, questions_taught, summaries_json,
	started_at, finished_at`

func scanRun(row interface{ Scan(...any) error }) (*RunRecord, error) {
	var run RunRecord
	// finished_at is scanned as a bare column and coalesced here: SQLite
	// reports no declared type for expressions like COALESCE(...), so the
	// driver would hand back a string instead of a time.Time.
	var finishedAt sql.NullTime
	err := row.Scan(
		&run.ID, &run.Scenario, &run.Level, &run.Model,
		&run.PreScore, &run.PostScore, &run.Improvement, &run.Learned,
		&run.QuestionsTotal, &run.QuestionsTaught, &run.SummariesJSON,
		&run.StartedAt, &finishedAt,
	)
	if err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	} else {
		run.FinishedAt = run.StartedAt
	}
	return &run, nil
}

func (r *runRepo) Get(ctx context.Context, id string) (*RunRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

func (r *runRepo) List(ctx context.Context, limit int) ([]RunRecord, error) {
	q := "SELECT " + runColumns + " FROM runs ORDER BY started_at DESC"
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}
