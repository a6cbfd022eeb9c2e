package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/thoughtforge-ai/thoughtforge-go/internal/config"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/logger"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/utils"
	"github.com/thoughtforge-ai/thoughtforge-go/models"
	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

// apiKeyHeader carries the credential on every request. Header name is fixed
// by the server.
const apiKeyHeader = "X-thoughtforge-key"

// Transient failures are retried with a fibonacci backoff before surfacing.
const (
	retryBaseDelay  = 200 * time.Millisecond
	retryMaxRetries = 3
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// from the resolved client configuration. The underlying client is bound to
// the configured base URL and request timeout, and attaches the API key
// header to every outbound request.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) ServerAdapter {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(cfg.BaseURL()).
		SetTimeout(cfg.API.RequestTimeout).
		SetHeader(apiKeyHeader, cfg.API.Key)

	return &httpServerAdapter{client: client, logger: logger}
}

type initSessionResponse struct {
	SessionID  int64  `json:"session_id"`
	MotorIDs   string `json:"motor_ids"`
	SensorIDs  string `json:"sensor_ids"`
	SessionLog string `json:"session_log"`
}

type updateSimResponse struct {
	MotorDict  map[string]float64 `json:"motor_dict"`
	SessionLog string             `json:"session_log"`
}

type shutdownSessionResponse struct {
	SessionLog string `json:"session_log"`
}

// InitSession implements [ServerAdapter]. It POSTs the model specification to
// POST /initSession. The specification travels in the query string with the
// motor and sensor declarations serialised as JSON strings; previously
// trained model data, when present, travels as the JSON request body. The
// motor/sensor id maps and the session log arrive JSON-encoded inside the
// JSON response and are decoded here.
func (h *httpServerAdapter) InitSession(ctx context.Context, spec params.Params, model *models.ModelData) (models.SessionState, error) {
	motors, err := json.Marshal(spec.Motors)
	if err != nil {
		return models.SessionState{}, fmt.Errorf("encode motors: %w", err)
	}
	sensors, err := json.Marshal(spec.Sensors)
	if err != nil {
		return models.SessionState{}, fmt.Errorf("encode sensors: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"version":                 strconv.Itoa(spec.Version),
			"internal_timescale":      strconv.Itoa(spec.InternalTimescale),
			"ticks_per_sensor_sample": strconv.Itoa(spec.TicksPerSensorSample),
			"center_block_size_extra": strconv.Itoa(spec.CenterBlockSizeExtra),
			"center_block_stride":     strconv.Itoa(spec.CenterBlockStride),
			"random_seed":             strconv.Itoa(spec.RandomSeed),
			"motors":                  string(motors),
			"sensors":                 string(sensors),
		})
	if model != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(model)
	}

	resp, err := h.post(ctx, req, "/initSession")
	if err != nil {
		return models.SessionState{}, fmt.Errorf("init session request: %w", err)
	}

	var dto initSessionResponse
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.SessionState{}, fmt.Errorf("decode init session response: %w", err)
	}

	state := models.SessionState{ID: dto.SessionID}
	if state.Log, err = decodeSessionLog(dto.SessionLog); err != nil {
		return models.SessionState{}, fmt.Errorf("decode init session log: %w", err)
	}

	// rejected sessions carry no id maps
	if dto.SessionID < 0 {
		return state, nil
	}

	if err = json.Unmarshal([]byte(dto.MotorIDs), &state.MotorIDs); err != nil {
		return models.SessionState{}, fmt.Errorf("decode motor ids: %w", err)
	}
	if err = json.Unmarshal([]byte(dto.SensorIDs), &state.SensorIDs); err != nil {
		return models.SessionState{}, fmt.Errorf("decode sensor ids: %w", err)
	}

	return state, nil
}

// UpdateSim implements [ServerAdapter]. It POSTs one step of sensor readings
// to POST /updateSim and decodes the next motor actions. Sensor readings and
// requested motor ids travel as JSON strings in the query, matching the
// server's expectations.
func (h *httpServerAdapter) UpdateSim(ctx context.Context, sessionID int64, sensors map[int64]float64, motorIDs []int64) (models.UpdateResult, error) {
	sensorDict, err := json.Marshal(sensors)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("encode sensor dict: %w", err)
	}
	motorIDsRequested, err := json.Marshal(motorIDs)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("encode motor ids: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"session_id":          strconv.FormatInt(sessionID, 10),
			"sensor_dict":         string(sensorDict),
			"motor_ids_requested": string(motorIDsRequested),
		})

	resp, err := h.post(ctx, req, "/updateSim")
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update sim request: %w", err)
	}

	var dto updateSimResponse
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.UpdateResult{}, fmt.Errorf("decode update sim response: %w", err)
	}

	result := models.UpdateResult{Motors: make(map[int64]float64, len(dto.MotorDict))}
	for key, value := range dto.MotorDict {
		id, parseErr := strconv.ParseInt(key, 10, 64)
		if parseErr != nil {
			return models.UpdateResult{}, fmt.Errorf("parse motor id %q: %w", key, parseErr)
		}
		result.Motors[id] = value
	}

	if result.Log, err = decodeSessionLog(dto.SessionLog); err != nil {
		return models.UpdateResult{}, fmt.Errorf("decode update sim log: %w", err)
	}

	return result, nil
}

// ShutdownSession implements [ServerAdapter]. It POSTs the session id to
// POST /shutdownSession and returns the final server log messages.
func (h *httpServerAdapter) ShutdownSession(ctx context.Context, sessionID int64) ([]string, error) {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("session_id", strconv.FormatInt(sessionID, 10))

	resp, err := h.post(ctx, req, "/shutdownSession")
	if err != nil {
		return nil, fmt.Errorf("shutdown session request: %w", err)
	}

	var dto shutdownSessionResponse
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return nil, fmt.Errorf("decode shutdown session response: %w", err)
	}

	log, err := decodeSessionLog(dto.SessionLog)
	if err != nil {
		return nil, fmt.Errorf("decode shutdown session log: %w", err)
	}

	return log, nil
}

// post executes the request, retrying transport errors and gateway-class
// statuses with a bounded fibonacci backoff. Non-retryable HTTP errors are
// mapped to the adapter sentinels with the server's body preserved.
func (h *httpServerAdapter) post(ctx context.Context, req *resty.Request, path string) (*resty.Response, error) {
	var resp *resty.Response

	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewFibonacci(retryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reqErr error
		resp, reqErr = req.Post(path)
		if reqErr != nil {
			h.logger.Warn().Err(reqErr).Str("path", path).Msg("transport error, retrying")
			return retry.RetryableError(reqErr)
		}

		if isRetryableStatus(resp.StatusCode()) {
			h.logger.Warn().Int("status", resp.StatusCode()).Str("path", path).Msg("transient server error, retrying")
			return retry.RetryableError(mapHTTPError(resp))
		}

		return mapHTTPError(resp)
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// decodeSessionLog unpacks the JSON-encoded log list the server embeds as a
// string field in every response. An empty field means no messages.
func decodeSessionLog(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var log []string
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, err
	}

	return log, nil
}
