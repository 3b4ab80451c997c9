package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/brand-auditor/internal/types"
)

// CreateAuditRun creates a new audit run record and returns its ID
func (db *DB) CreateAuditRun(ctx context.Context, kitID uuid.UUID, assetName string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO audit_runs (kit_id, asset_name, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		kitID, assetName,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create audit run: %w", err)
	}
	return id, nil
}

// SaveAuditResults stores the verdicts for a run and marks it completed
func (db *DB) SaveAuditResults(ctx context.Context, runID uuid.UUID, results []types.AuditResult) error {
	doc, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal audit results: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE audit_runs SET results = $1, status = $2, completed_at = NOW() WHERE id = $3`,
		doc, RunStatusCompleted, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit results: %w", err)
	}
	return nil
}

// FailAuditRun marks a run as failed with an error message in its results slot
func (db *DB) FailAuditRun(ctx context.Context, runID uuid.UUID, runErr error) error {
	doc, _ := json.Marshal(map[string]string{"error": runErr.Error()})
	_, err := db.pool.Exec(ctx,
		`UPDATE audit_runs SET results = $1, status = $2, completed_at = NOW() WHERE id = $3`,
		doc, RunStatusFailed, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark audit run failed: %w", err)
	}
	return nil
}

// GetAuditRun retrieves an audit run by ID. Returns nil without error when the
// run does not exist.
func (db *DB) GetAuditRun(ctx context.Context, runID uuid.UUID) (*AuditRun, error) {
	var run AuditRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, kit_id, asset_name, status, results, created_at, completed_at
		 FROM audit_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.KitID, &run.AssetName, &run.Status, &run.Results, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get audit run: %w", err)
	}
	return &run, nil
}

// GetAuditResults retrieves the verdicts stored for a completed run
func (db *DB) GetAuditResults(ctx context.Context, runID uuid.UUID) ([]types.AuditResult, error) {
	run, err := db.GetAuditRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil || len(run.Results) == 0 {
		return nil, nil
	}
	if run.Status != RunStatusCompleted {
		return nil, fmt.Errorf("audit run %s is %s, not completed", runID, run.Status)
	}

	var results []types.AuditResult
	if err := json.Unmarshal(run.Results, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit results: %w", err)
	}
	return results, nil
}

// ListAuditRuns retrieves recent runs for a kit, newest first
func (db *DB) ListAuditRuns(ctx context.Context, kitID uuid.UUID, limit int) ([]AuditRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, kit_id, asset_name, status, created_at, completed_at
		 FROM audit_runs WHERE kit_id = $1 ORDER BY created_at DESC LIMIT $2`,
		kitID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit runs: %w", err)
	}
	defer rows.Close()

	var runs []AuditRun
	for rows.Next() {
		var run AuditRun
		// results intentionally omitted (large field)
		if err := rows.Scan(&run.ID, &run.KitID, &run.AssetName, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
