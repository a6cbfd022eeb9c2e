package models

import "time"

// Run statuses recorded in the local store.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run is a single simulation run recorded in the local store.
type Run struct {
	// ID is the client-generated run identifier (UUID).
	ID string
	// SessionID is the server-assigned session id for the run.
	SessionID int64
	// ParamsFile is the path of the specification file the run was started
	// from; empty when the specification was supplied in-memory.
	ParamsFile string
	// Host and Port identify the server the run talked to.
	Host string
	Port int
	// Status is one of the RunStatus constants.
	Status string
	// Steps counts the updateSim calls completed by the run.
	Steps int64
	// StartedAt marks session initialisation.
	StartedAt time.Time
	// FinishedAt marks session shutdown; nil while the run is live.
	FinishedAt *time.Time
}

// RunLog is a single server log message attributed to a run.
type RunLog struct {
	RunID    string
	Seq      int64
	Message  string
	LoggedAt time.Time
}

// SnapshotRecord is a named snapshot persisted in the local store.
type SnapshotRecord struct {
	// ID is the client-generated record identifier (UUID).
	ID string
	// RunID links the snapshot to the run that produced it; empty for
	// snapshots imported from files.
	RunID string
	// Name is the unique user-facing snapshot name.
	Name string
	// Snapshot is the stored payload.
	Snapshot Snapshot
	// CreatedAt marks record creation.
	CreatedAt time.Time
}
