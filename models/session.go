package models

// SessionState describes a server-side session established by initSession.
// The motor and sensor maps translate the user-facing names declared in the
// specification to the numeric ids the server expects on the wire.
type SessionState struct {
	// ID is the server-assigned session identifier. Negative values mean
	// the server rejected the session.
	ID int64

	// MotorIDs maps motor names to server-side motor ids.
	MotorIDs map[string]int64

	// SensorIDs maps sensor names to server-side sensor ids.
	SensorIDs map[string]int64

	// Log carries the server messages emitted during initialisation.
	Log []string
}

// UpdateResult is the decoded outcome of a single updateSim call.
type UpdateResult struct {
	// Motors maps server-side motor ids to the next motor actions.
	Motors map[int64]float64

	// Log carries the server messages emitted during the update.
	Log []string
}
