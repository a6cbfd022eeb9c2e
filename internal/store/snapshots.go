package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thoughtforge-ai/thoughtforge-go/models"
)

func (s *runStore) SaveSnapshot(ctx context.Context, record models.SnapshotRecord) error {
	specification, err := json.Marshal(record.Snapshot.Specification)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot specification: %w", err)
	}
	modelData, err := json.Marshal(record.Snapshot.ModelData)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot model data: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, saveSnapshot,
		record.ID,
		record.RunID,
		record.Name,
		string(specification),
		string(modelData),
		record.CreatedAt,
	)
	if err != nil {
		s.logger.Err(err).
			Str("snapshot", record.Name).
			Msg("failed to save snapshot")
		return fmt.Errorf("failed to save snapshot (name=%s): %w", record.Name, err)
	}

	return nil
}

func (s *runStore) GetSnapshot(ctx context.Context, name string) (models.SnapshotRecord, error) {
	var record models.SnapshotRecord
	var specification, modelData string

	row := s.DB.QueryRowContext(ctx, getSnapshot, name)
	err := row.Scan(
		&record.ID,
		&record.RunID,
		&record.Name,
		&specification,
		&modelData,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SnapshotRecord{}, fmt.Errorf("%w: name=%s", ErrSnapshotNotFound, name)
	}
	if err != nil {
		s.logger.Err(err).
			Str("snapshot", name).
			Msg("failed to scan snapshot row")
		return models.SnapshotRecord{}, fmt.Errorf("failed to get snapshot (name=%s): %w", name, err)
	}

	if err = json.Unmarshal([]byte(specification), &record.Snapshot.Specification); err != nil {
		return models.SnapshotRecord{}, fmt.Errorf("failed to decode snapshot specification (name=%s): %w", name, err)
	}
	if err = json.Unmarshal([]byte(modelData), &record.Snapshot.ModelData); err != nil {
		return models.SnapshotRecord{}, fmt.Errorf("failed to decode snapshot model data (name=%s): %w", name, err)
	}

	return record, nil
}

func (s *runStore) ListSnapshots(ctx context.Context) ([]models.SnapshotRecord, error) {
	rows, err := s.DB.QueryContext(ctx, listSnapshots)
	if err != nil {
		s.logger.Err(err).Msg("failed to query snapshots")
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var records []models.SnapshotRecord

	for rows.Next() {
		var record models.SnapshotRecord

		scanErr := rows.Scan(&record.ID, &record.RunID, &record.Name, &record.CreatedAt)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", rowsErr)
	}

	return records, nil
}
