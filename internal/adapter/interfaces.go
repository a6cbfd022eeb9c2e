package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

import (
	"context"

	"github.com/thoughtforge-ai/thoughtforge-go/models"
	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

// ServerAdapter abstracts the remote ThoughtForge API for the session
// runtime. The production implementation speaks HTTP; tests substitute mocks.
type ServerAdapter interface {
	// InitSession creates a server-side session from the given model
	// specification. A non-nil model restores previously trained model data
	// instead of building a fresh model. The returned state carries the
	// session id and the motor/sensor name-to-id maps.
	InitSession(ctx context.Context, spec params.Params, model *models.ModelData) (models.SessionState, error)

	// UpdateSim submits one step of sensor readings (keyed by server-side
	// sensor id) and returns the next motor actions for the requested motor
	// ids.
	UpdateSim(ctx context.Context, sessionID int64, sensors map[int64]float64, motorIDs []int64) (models.UpdateResult, error)

	// ShutdownSession closes the server-side session and returns the final
	// server log messages.
	ShutdownSession(ctx context.Context, sessionID int64) ([]string, error)
}
