package thoughtforge

import (
	"errors"

	"github.com/thoughtforge-ai/thoughtforge-go/internal/config"
)

var (
	// ErrMissingCredential indicates that no ThoughtForge API key is
	// configured at the point an authenticated call is attempted.
	ErrMissingCredential = config.ErrMissingCredential

	// ErrSessionRejected indicates that the server refused to initialise
	// the session; the server's reasons are in the session log.
	ErrSessionRejected = errors.New("session initialization rejected by server")

	// ErrUnknownSensor indicates that the environment reported a sensor
	// name absent from the model specification.
	ErrUnknownSensor = errors.New("sensor not declared in model specification")

	// ErrNilEnvironment indicates that Run was called without an environment.
	ErrNilEnvironment = errors.New("environment is nil")
)
