package thoughtforge

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thoughtforge-ai/thoughtforge-go/internal/adapter"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/config"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/logger"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/store"
	"github.com/thoughtforge-ai/thoughtforge-go/models"
	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

// Session drives one ThoughtForge model against a user environment. A
// Session is built from a model specification, holds the immutable client
// configuration, and is good for a single Run.
type Session struct {
	cfg     *config.ClientConfig
	adapter adapter.ServerAdapter
	store   store.RunStore
	log     *logger.Logger

	spec       params.Params
	paramsFile string
	model      *models.ModelData

	mu      sync.Mutex
	state   models.SessionState
	stopped bool
	steps   int64
	logs    []string
}

// New creates a session from the specification file at paramsPath.
// Configuration is loaded from the environment (and the optional .env file);
// a missing API key fails immediately with [ErrMissingCredential].
func New(paramsPath string, opts ...Option) (*Session, error) {
	spec, err := params.Load(paramsPath)
	if err != nil {
		return nil, fmt.Errorf("load params: %w", err)
	}

	s, err := NewFromParams(spec, opts...)
	if err != nil {
		return nil, err
	}

	s.paramsFile = paramsPath
	return s, nil
}

// NewFromParams creates a session from an already-loaded specification, e.g.
// one embedded in a model snapshot.
func NewFromParams(spec params.Params, opts ...Option) (*Session, error) {
	options := &sessionOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.spec != nil {
		spec = *options.spec
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// programmatic overrides win over every configuration source
	if options.apiKey != "" {
		cfg.API.Key = options.apiKey
	}
	if options.host != "" {
		cfg.API.Host = options.host
	}
	if options.port != 0 {
		cfg.API.Port = options.port
	}
	if options.timeout > 0 {
		cfg.API.RequestTimeout = options.timeout
	}

	if err = cfg.ValidateCredential(); err != nil {
		return nil, err
	}

	log := options.log
	if log == nil {
		log = logger.NewLogger("thoughtforge-client")
	}

	s := &Session{
		cfg:     cfg,
		adapter: adapter.NewHTTPServerAdapter(cfg, log),
		log:     log,
		spec:    spec,
		model:   options.model,
	}

	if options.withStore {
		runStore, storeErr := store.NewRunStore(cfg.Store, log)
		if storeErr != nil {
			return nil, fmt.Errorf("open run store: %w", storeErr)
		}
		s.store = runStore
	}

	return s, nil
}

// Run initialises the server-side session and drives env until the
// environment fails, ctx is cancelled, or [Session.Stop] is called. The
// server session is always shut down once it has been established, whatever
// ends the run.
func (s *Session) Run(ctx context.Context, env Environment) error {
	if env == nil {
		return ErrNilEnvironment
	}

	state, err := s.adapter.InitSession(ctx, s.spec, s.model)
	if err != nil {
		return fmt.Errorf("init session: %w", err)
	}

	runID := uuid.NewString()
	s.recordRunStart(ctx, runID, state.ID)
	s.processServerLog(ctx, runID, state.Log)

	if state.ID < 0 {
		s.recordRunEnd(ctx, runID, models.RunStatusFailed)
		return ErrSessionRejected
	}

	s.mu.Lock()
	s.state = state
	s.stopped = false
	s.steps = 0
	s.mu.Unlock()

	s.log.Info().Int64("session_id", state.ID).Msg("session initialized")

	runErr := s.loop(ctx, env, runID)

	s.shutdown(ctx, runID)

	if runErr != nil {
		s.recordRunEnd(ctx, runID, models.RunStatusFailed)
		return runErr
	}

	s.recordRunEnd(ctx, runID, models.RunStatusCompleted)
	return nil
}

func (s *Session) loop(ctx context.Context, env Environment, runID string) error {
	if notifier, ok := env.(StartNotifier); ok {
		notifier.SimStarted()
	}
	if notifier, ok := env.(EndNotifier); ok {
		defer notifier.SimEnded()
	}

	s.mu.Lock()
	motorMap := s.state.MotorIDs
	sensorMap := s.state.SensorIDs
	sessionID := s.state.ID
	s.mu.Unlock()

	motorIDs := make([]int64, 0, len(motorMap))
	for _, id := range motorMap {
		motorIDs = append(motorIDs, id)
	}
	sort.Slice(motorIDs, func(i, j int) bool { return motorIDs[i] < motorIDs[j] })

	// first update delivers all motors at rest
	actions := make(map[string]float64, len(motorMap))
	for name := range motorMap {
		actions[name] = 0.0
	}

	s.log.Info().Int64("session_id", sessionID).Msg("starting simulation")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.stopRequested() {
			return nil
		}

		sensors, err := env.Update(actions)
		if err != nil {
			return fmt.Errorf("environment update: %w", err)
		}

		sensorsByID, err := mapSensors(sensors, sensorMap)
		if err != nil {
			return err
		}

		result, err := s.adapter.UpdateSim(ctx, sessionID, sensorsByID, motorIDs)
		if err != nil {
			return fmt.Errorf("update sim: %w", err)
		}

		s.processServerLog(ctx, runID, result.Log)

		s.mu.Lock()
		s.steps++
		s.mu.Unlock()

		// absent motor values default to rest
		for name, id := range motorMap {
			actions[name] = result.Motors[id]
		}
	}
}

func mapSensors(sensors map[string]float64, sensorMap map[string]int64) (map[int64]float64, error) {
	byID := make(map[int64]float64, len(sensors))
	for name, value := range sensors {
		id, ok := sensorMap[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSensor, name)
		}
		byID[id] = value
	}

	return byID, nil
}

// shutdown closes the server-side session. It runs on a detached context so
// a cancelled run still releases the server resources.
func (s *Session) shutdown(ctx context.Context, runID string) {
	s.mu.Lock()
	sessionID := s.state.ID
	s.state = models.SessionState{}
	s.mu.Unlock()

	if sessionID < 0 {
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.API.RequestTimeout)
	defer cancel()

	log, err := s.adapter.ShutdownSession(shutdownCtx, sessionID)
	if err != nil {
		s.log.Err(err).Int64("session_id", sessionID).Msg("session shutdown failed")
		return
	}

	s.processServerLog(shutdownCtx, runID, log)
	s.log.Info().Int64("session_id", sessionID).Msg("session shut down")
}

// Stop requests termination of a running simulation loop. It is safe to call
// from other goroutines and from environment callbacks.
func (s *Session) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

func (s *Session) stopRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// NumMotors returns the number of motors in the established session model.
func (s *Session) NumMotors() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.MotorIDs)
}

// NumSensors returns the number of sensors in the established session model.
func (s *Session) NumSensors() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.SensorIDs)
}

// Steps returns the number of completed simulation steps of the current run.
func (s *Session) Steps() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

// Logs returns a copy of all server messages received so far.
func (s *Session) Logs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := make([]string, len(s.logs))
	copy(logs, s.logs)
	return logs
}

// Snapshot returns the session's specification together with the model data
// it was created with, in the interchangeable snapshot format.
func (s *Session) Snapshot() models.Snapshot {
	snapshot := models.Snapshot{Specification: s.spec}
	if s.model != nil {
		snapshot.ModelData = *s.model
	}
	return snapshot
}

// Close releases resources held by the session (currently the optional run
// store). A session is not reusable after Close.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func (s *Session) processServerLog(ctx context.Context, runID string, messages []string) {
	if len(messages) == 0 {
		return
	}

	for _, message := range messages {
		s.log.Info().Str("origin", "server").Msg(message)
	}

	s.mu.Lock()
	s.logs = append(s.logs, messages...)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.AppendLogs(ctx, runID, messages); err != nil {
			s.log.Err(err).Str("run_id", runID).Msg("failed to persist server log")
		}
	}
}

func (s *Session) recordRunStart(ctx context.Context, runID string, sessionID int64) {
	if s.store == nil {
		return
	}

	run := models.Run{
		ID:         runID,
		SessionID:  sessionID,
		ParamsFile: s.paramsFile,
		Host:       s.cfg.API.Host,
		Port:       s.cfg.API.Port,
		Status:     models.RunStatusRunning,
		StartedAt:  time.Now().UTC(),
	}
	if err := s.store.CreateRun(ctx, run); err != nil {
		s.log.Err(err).Str("run_id", runID).Msg("failed to record run start")
	}
}

func (s *Session) recordRunEnd(ctx context.Context, runID string, status string) {
	if s.store == nil {
		return
	}

	endCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.API.RequestTimeout)
	defer cancel()

	if err := s.store.FinishRun(endCtx, runID, status, s.Steps()); err != nil {
		s.log.Err(err).Str("run_id", runID).Msg("failed to record run end")
	}
}
