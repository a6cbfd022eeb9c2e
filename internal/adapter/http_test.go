package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoughtforge-ai/thoughtforge-go/internal/config"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/logger"
	"github.com/thoughtforge-ai/thoughtforge-go/models"
	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	cfg := &config.ClientConfig{
		API: config.ClientAPI{
			Key:            "test-api-key",
			Host:           u.Hostname(),
			Port:           port,
			RequestTimeout: 5 * time.Second,
		},
	}

	return NewHTTPServerAdapter(cfg, logger.Nop())
}

func testSpec() params.Params {
	return params.Params{
		Version:              params.CurrentVersion,
		InternalTimescale:    1,
		TicksPerSensorSample: 1,
		CenterBlockStride:    1,
		RandomSeed:           42,
		Motors:               []params.Spec{{"name": "motor"}},
		Sensors:              []params.Spec{{"name": "pos_sensor"}},
	}
}

func TestInitSession_SendsKeyAndSpecification(t *testing.T) {
	var gotHeader, gotMotors, gotSeed string

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/initSession", r.URL.Path)

		gotHeader = r.Header.Get("X-thoughtforge-key")
		gotMotors = r.URL.Query().Get("motors")
		gotSeed = r.URL.Query().Get("random_seed")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id":  7,
			"motor_ids":   `{"motor": 0}`,
			"sensor_ids":  `{"pos_sensor": 1}`,
			"session_log": `["model built"]`,
		})
	}))

	state, err := adapter.InitSession(context.Background(), testSpec(), nil)
	require.NoError(t, err)

	assert.Equal(t, "test-api-key", gotHeader)
	assert.JSONEq(t, `[{"name": "motor"}]`, gotMotors)
	assert.Equal(t, "42", gotSeed)

	assert.Equal(t, int64(7), state.ID)
	assert.Equal(t, map[string]int64{"motor": 0}, state.MotorIDs)
	assert.Equal(t, map[string]int64{"pos_sensor": 1}, state.SensorIDs)
	assert.Equal(t, []string{"model built"}, state.Log)
}

func TestInitSession_UploadsModelData(t *testing.T) {
	var gotBody models.ModelData

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id":  1,
			"motor_ids":   `{}`,
			"sensor_ids":  `{}`,
			"session_log": `[]`,
		})
	}))

	model := &models.ModelData{
		Weights: [][]float64{{0.1, 0.2}, {0.3}},
		Values:  []float64{1, 2, 3},
	}

	_, err := adapter.InitSession(context.Background(), testSpec(), model)
	require.NoError(t, err)

	assert.Equal(t, *model, gotBody)
}

func TestInitSession_RejectedSessionSkipsIDMaps(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id":  -1,
			"session_log": `["capacity exceeded"]`,
		})
	}))

	state, err := adapter.InitSession(context.Background(), testSpec(), nil)
	require.NoError(t, err)

	assert.Equal(t, int64(-1), state.ID)
	assert.Nil(t, state.MotorIDs)
	assert.Equal(t, []string{"capacity exceeded"}, state.Log)
}

func TestUpdateSim_RoundTrip(t *testing.T) {
	var gotSessionID, gotSensors, gotMotorIDs string

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/updateSim", r.URL.Path)
		gotSessionID = r.URL.Query().Get("session_id")
		gotSensors = r.URL.Query().Get("sensor_dict")
		gotMotorIDs = r.URL.Query().Get("motor_ids_requested")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"motor_dict":  map[string]float64{"0": 0.5, "3": -1.25},
			"session_log": `["tick"]`,
		})
	}))

	sensors := map[int64]float64{1: 0.25, 2: -0.5}
	result, err := adapter.UpdateSim(context.Background(), 7, sensors, []int64{0, 3})
	require.NoError(t, err)

	assert.Equal(t, "7", gotSessionID)
	assert.JSONEq(t, `{"1": 0.25, "2": -0.5}`, gotSensors)
	assert.JSONEq(t, `[0, 3]`, gotMotorIDs)

	assert.Equal(t, map[int64]float64{0: 0.5, 3: -1.25}, result.Motors)
	assert.Equal(t, []string{"tick"}, result.Log)
}

func TestUpdateSim_EmptySessionLog(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"motor_dict":  map[string]float64{},
			"session_log": "",
		})
	}))

	result, err := adapter.UpdateSim(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Log)
}

func TestShutdownSession_ReturnsFinalLog(t *testing.T) {
	var gotSessionID string

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/shutdownSession", r.URL.Path)
		gotSessionID = r.URL.Query().Get("session_id")
		_ = json.NewEncoder(w).Encode(map[string]any{"session_log": `["bye"]`})
	}))

	log, err := adapter.ShutdownSession(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "7", gotSessionID)
	assert.Equal(t, []string{"bye"}, log)
}

func TestErrorMapping_PreservesServerBody(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))

	_, err := adapter.InitSession(context.Background(), testSpec(), nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestPost_RetriesTransientStatuses(t *testing.T) {
	var calls atomic.Int64

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"session_log": `[]`})
	}))

	_, err := adapter.ShutdownSession(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestPost_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int64

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad session", http.StatusBadRequest)
	}))

	_, err := adapter.ShutdownSession(context.Background(), 1)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, int64(1), calls.Load())
}
