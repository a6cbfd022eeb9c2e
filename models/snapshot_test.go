package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

func TestSnapshot_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trained.snapshot")
	original := Snapshot{
		Specification: params.Params{
			Version:              params.CurrentVersion,
			InternalTimescale:    2,
			TicksPerSensorSample: params.DefaultTicksPerSensorSample,
			CenterBlockStride:    params.DefaultCenterBlockStride,
			RandomSeed:           1234,
			Motors:               []params.Spec{{"name": "force_motor"}},
			Sensors:              []params.Spec{{"name": "pos_sensor"}},
		},
		ModelData: ModelData{
			Weights: [][]float64{{0.5, -0.25}, {1.5}},
			Values:  []float64{0.1, 0.2, 0.3},
		},
	}

	require.NoError(t, SaveSnapshot(path, original))

	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, original.ModelData, loaded.ModelData)
	assert.Equal(t, original.Specification.Version, loaded.Specification.Version)
	assert.Equal(t, original.Specification.InternalTimescale, loaded.Specification.InternalTimescale)
	assert.Equal(t, original.Specification.RandomSeed, loaded.Specification.RandomSeed)
}

func TestLoadSnapshot_EmbeddedSpecGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.snapshot")
	content := `{
		"specification": {"version": 0},
		"model_data": {"weights": [[1]], "values": [2]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, params.DefaultInternalTimescale, loaded.Specification.InternalTimescale)
	assert.Equal(t, params.DefaultRandomSeed, loaded.Specification.RandomSeed)
	assert.Equal(t, [][]float64{{1}}, loaded.ModelData.Weights)
}

func TestLoadSnapshot_RejectsUnsupportedSpecVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.snapshot")
	content := `{"specification": {"version": 3}, "model_data": {}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadSnapshot(path)
	require.ErrorIs(t, err, params.ErrUnsupportedVersion)
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.snapshot"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading snapshot file")
}

func TestLoadSnapshot_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.snapshot")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadSnapshot(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding snapshot file")
}

func TestModelData_Empty(t *testing.T) {
	assert.True(t, ModelData{}.Empty())
	assert.False(t, ModelData{Values: []float64{1}}.Empty())
	assert.False(t, ModelData{Weights: [][]float64{{1}}}.Empty())
}
