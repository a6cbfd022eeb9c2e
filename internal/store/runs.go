package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thoughtforge-ai/thoughtforge-go/models"
)

func (s *runStore) CreateRun(ctx context.Context, run models.Run) error {
	_, err := s.DB.ExecContext(ctx, createRun,
		run.ID,
		run.SessionID,
		run.ParamsFile,
		run.Host,
		run.Port,
		run.Status,
		run.Steps,
		run.StartedAt,
	)
	if err != nil {
		s.logger.Err(err).
			Str("run_id", run.ID).
			Msg("failed to insert run")
		return fmt.Errorf("failed to create run (id=%s): %w", run.ID, err)
	}

	return nil
}

func (s *runStore) FinishRun(ctx context.Context, runID string, status string, steps int64) error {
	result, err := s.DB.ExecContext(ctx, finishRun, status, steps, runID)
	if err != nil {
		s.logger.Err(err).
			Str("run_id", runID).
			Str("status", status).
			Msg("failed to finish run")
		return fmt.Errorf("failed to finish run (id=%s): %w", runID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", runID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id=%s", ErrRunNotFound, runID)
	}

	return nil
}

func (s *runStore) AppendLogs(ctx context.Context, runID string, messages []string) error {
	now := time.Now().UTC()

	for _, message := range messages {
		_, err := s.DB.ExecContext(ctx, appendRunLog, runID, runID, message, now)
		if err != nil {
			s.logger.Err(err).
				Str("run_id", runID).
				Msg("failed to append run log")
			return fmt.Errorf("failed to append run log (id=%s): %w", runID, err)
		}
	}

	return nil
}

func (s *runStore) GetRun(ctx context.Context, runID string) (models.Run, error) {
	var run models.Run
	var finishedAt sql.NullTime

	row := s.DB.QueryRowContext(ctx, getRun, runID)
	err := row.Scan(
		&run.ID,
		&run.SessionID,
		&run.ParamsFile,
		&run.Host,
		&run.Port,
		&run.Status,
		&run.Steps,
		&run.StartedAt,
		&finishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Run{}, fmt.Errorf("%w: id=%s", ErrRunNotFound, runID)
	}
	if err != nil {
		s.logger.Err(err).
			Str("run_id", runID).
			Msg("failed to scan run row")
		return models.Run{}, fmt.Errorf("failed to get run (id=%s): %w", runID, err)
	}

	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	return run, nil
}

func (s *runStore) ListRuns(ctx context.Context, filter RunFilter) ([]models.Run, error) {
	query, args, err := buildListRunsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build list runs query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Msg("failed to query runs")
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run

	for rows.Next() {
		var run models.Run
		var finishedAt sql.NullTime

		scanErr := rows.Scan(
			&run.ID,
			&run.SessionID,
			&run.ParamsFile,
			&run.Host,
			&run.Port,
			&run.Status,
			&run.Steps,
			&run.StartedAt,
			&finishedAt,
		)
		if scanErr != nil {
			s.logger.Err(scanErr).Msg("failed to scan run row")
			return nil, fmt.Errorf("failed to scan run row: %w", scanErr)
		}

		if finishedAt.Valid {
			run.FinishedAt = &finishedAt.Time
		}

		runs = append(runs, run)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", rowsErr)
	}

	return runs, nil
}

func (s *runStore) GetRunLogs(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, getRunLogs, runID)
	if err != nil {
		s.logger.Err(err).
			Str("run_id", runID).
			Msg("failed to query run logs")
		return nil, fmt.Errorf("failed to get run logs (id=%s): %w", runID, err)
	}
	defer rows.Close()

	var messages []string

	for rows.Next() {
		var message string
		if scanErr := rows.Scan(&message); scanErr != nil {
			return nil, fmt.Errorf("failed to scan run log row: %w", scanErr)
		}
		messages = append(messages, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating run log rows: %w", rowsErr)
	}

	return messages, nil
}
