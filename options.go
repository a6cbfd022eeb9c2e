package thoughtforge

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/thoughtforge-ai/thoughtforge-go/internal/logger"
	"github.com/thoughtforge-ai/thoughtforge-go/models"
	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

// Option customises session construction.
type Option func(*sessionOptions)

type sessionOptions struct {
	model     *models.ModelData
	spec      *params.Params
	log       *logger.Logger
	withStore bool

	apiKey  string
	host    string
	port    int
	timeout time.Duration
}

// WithModelData uploads previously trained model data on session
// initialisation, restoring the model instead of building a fresh one.
func WithModelData(model models.ModelData) Option {
	return func(o *sessionOptions) {
		if model.Empty() {
			return
		}
		o.model = &model
	}
}

// WithSnapshot restores the model state saved in a snapshot. The snapshot's
// embedded specification replaces the one the session was created with, so a
// restored model always runs against the specification it was trained on.
func WithSnapshot(snapshot models.Snapshot) Option {
	return func(o *sessionOptions) {
		spec := snapshot.Specification
		o.spec = &spec
		o.model = &models.ModelData{
			Weights: snapshot.ModelData.Weights,
			Values:  snapshot.ModelData.Values,
		}
	}
}

// WithAPIKey sets the credential programmatically, overriding the
// THOUGHTFORGE_API_KEY environment variable.
func WithAPIKey(key string) Option {
	return func(o *sessionOptions) {
		o.apiKey = key
	}
}

// WithHostPort targets a specific server, overriding the configured host and
// port. A zero port keeps the configured value.
func WithHostPort(host string, port int) Option {
	return func(o *sessionOptions) {
		o.host = host
		o.port = port
	}
}

// WithRequestTimeout overrides the per-request timeout of the HTTP transport.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *sessionOptions) {
		o.timeout = timeout
	}
}

// WithLogger routes the SDK's own log output through the given zerolog
// logger instead of the default stdout JSON logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *sessionOptions) {
		o.log = &logger.Logger{Logger: l}
	}
}

// WithQuietLogging discards the SDK's own log output. Server session
// messages remain available through [Session.Logs].
func WithQuietLogging() Option {
	return func(o *sessionOptions) {
		o.log = logger.Nop()
	}
}

// WithRunStore enables the local run-history store for this session. The
// store path comes from the THOUGHTFORGE_STORE_PATH configuration; session
// construction fails when the store is enabled but no path is configured.
func WithRunStore() Option {
	return func(o *sessionOptions) {
		o.withStore = true
	}
}
