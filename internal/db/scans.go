package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-scanner/internal/types"
)

// DefaultListLimit bounds ListScans when the caller does not give a limit.
const DefaultListLimit = 20

// MaxListLimit is the hard ceiling on a single listing.
const MaxListLimit = 100

// SaveScan stores a completed scan and returns its ID.
func (db *DB) SaveScan(ctx context.Context, resume types.ResumeRecord, jobDescription string, result types.ScanResult, aiAssisted bool) (uuid.UUID, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scans (resume, job_description, result, overall_score, ai_assisted)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		resumeJSON, jobDescription, resultJSON, result.OverallScore, aiAssisted,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save scan: %w", err)
	}
	return id, nil
}

// GetScan retrieves a scan by ID. Returns (nil, nil) when no scan exists.
func (db *DB) GetScan(ctx context.Context, id uuid.UUID) (*Scan, error) {
	var s Scan
	var resumeJSON, resultJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, resume, job_description, result, overall_score, ai_assisted, created_at
		 FROM scans WHERE id = $1`,
		id,
	).Scan(&s.ID, &resumeJSON, &s.JobDescription, &resultJSON, &s.OverallScore, &s.AIAssisted, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	if err := json.Unmarshal(resumeJSON, &s.Resume); err != nil {
		return nil, fmt.Errorf("failed to parse stored resume: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &s.Result); err != nil {
		return nil, fmt.Errorf("failed to parse stored result: %w", err)
	}

	return &s, nil
}

// ListScans returns the most recent scans, newest first. A non-positive
// limit uses DefaultListLimit; limits above MaxListLimit are clamped.
func (db *DB) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, overall_score, ai_assisted, created_at
		 FROM scans ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	summaries := []ScanSummary{}
	for rows.Next() {
		var s ScanSummary
		if err := rows.Scan(&s.ID, &s.OverallScore, &s.AIAssisted, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scan rows: %w", err)
	}

	return summaries, nil
}

// DeleteScan removes a scan. Returns false when no scan had that ID.
func (db *DB) DeleteScan(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM scans WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete scan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
