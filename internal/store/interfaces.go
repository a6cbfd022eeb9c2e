package store

//go:generate mockgen -source=interfaces.go -destination=../mock/run_store_mock.go -package=mock

import (
	"context"

	"github.com/thoughtforge-ai/thoughtforge-go/models"
)

// RunStore records simulation runs, the server log messages they produced,
// and named model snapshots in a local SQLite database.
type RunStore interface {
	// CreateRun inserts a new run in the running state.
	CreateRun(ctx context.Context, run models.Run) error
	// FinishRun marks the run finished with the given status and final
	// step count.
	FinishRun(ctx context.Context, runID string, status string, steps int64) error
	// AppendLogs appends server log messages to the run, preserving order.
	AppendLogs(ctx context.Context, runID string, messages []string) error
	// GetRun returns a single run by id.
	GetRun(ctx context.Context, runID string) (models.Run, error)
	// ListRuns returns runs matching the filter, most recent first.
	ListRuns(ctx context.Context, filter RunFilter) ([]models.Run, error)
	// GetRunLogs returns the run's server log messages in order.
	GetRunLogs(ctx context.Context, runID string) ([]string, error)

	// SaveSnapshot stores a named model snapshot.
	SaveSnapshot(ctx context.Context, record models.SnapshotRecord) error
	// GetSnapshot returns a snapshot by name.
	GetSnapshot(ctx context.Context, name string) (models.SnapshotRecord, error)
	// ListSnapshots returns all snapshot records, most recent first,
	// without their payloads decoded.
	ListSnapshots(ctx context.Context) ([]models.SnapshotRecord, error)

	// Close releases the underlying database handle.
	Close() error
}

// RunFilter narrows ListRuns results.
type RunFilter struct {
	// Status keeps only runs in the given state when non-empty.
	Status string
	// Limit caps the number of returned runs when positive.
	Limit uint64
}
