// Package params loads and validates ThoughtForge model-specification files.
//
// A specification file carries the ".params" extension and contains a JSON
// document describing the model to be built server-side: a version marker,
// tuning values, and the motor and sensor declarations. Motor and sensor
// entries are forwarded to the server verbatim; the SDK never interprets
// their contents beyond serialising them.
package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CurrentVersion is the specification format version this SDK speaks.
// Files declaring any other version are rejected.
const CurrentVersion = 0

// FileExtension is the required extension of specification files.
const FileExtension = ".params"

// Defaults applied to tuning fields absent from the file.
const (
	DefaultInternalTimescale    = 1
	DefaultTicksPerSensorSample = 1
	DefaultCenterBlockSizeExtra = 0
	DefaultCenterBlockStride    = 1
	DefaultRandomSeed           = 42
)

// Spec is a single motor or sensor declaration. Entries are opaque to the
// client and passed through to the server as-is.
type Spec map[string]any

// Params is a parsed and validated model specification.
type Params struct {
	// Version is the specification format version. Always equals
	// CurrentVersion after a successful Load.
	Version int `json:"version"`

	// InternalTimescale controls how many internal server ticks elapse per
	// simulated time unit.
	InternalTimescale int `json:"internal_timescale"`

	// TicksPerSensorSample controls how many internal ticks elapse between
	// consecutive sensor samples.
	TicksPerSensorSample int `json:"ticks_per_sensor_sample"`

	// CenterBlockSizeExtra enlarges the server-side center block.
	CenterBlockSizeExtra int `json:"center_block_size_extra"`

	// CenterBlockStride is the server-side center block stride.
	CenterBlockStride int `json:"center_block_stride"`

	// RandomSeed seeds the server-side model construction.
	RandomSeed int `json:"random_seed"`

	// Motors declares the model's motors.
	Motors []Spec `json:"motors"`

	// Sensors declares the model's sensors.
	Sensors []Spec `json:"sensors"`
}

// rawParams mirrors Params with pointer tuning fields so absent values can be
// distinguished from explicit zeros before defaults are applied.
type rawParams struct {
	Version              *int   `json:"version"`
	InternalTimescale    *int   `json:"internal_timescale"`
	TicksPerSensorSample *int   `json:"ticks_per_sensor_sample"`
	CenterBlockSizeExtra *int   `json:"center_block_size_extra"`
	CenterBlockStride    *int   `json:"center_block_stride"`
	RandomSeed           *int   `json:"random_seed"`
	Motors               []Spec `json:"motors"`
	Sensors              []Spec `json:"sensors"`
}

// Load reads, parses, and validates the specification file at path.
//
// The file must carry the ".params" extension, contain valid JSON, and
// declare version equal to [CurrentVersion]. Tuning fields absent from the
// file receive the package defaults. Returns the populated specification or
// an error describing the first violation found.
func Load(path string) (Params, error) {
	if filepath.Ext(path) != FileExtension {
		return Params{}, fmt.Errorf("%w: got %q", ErrWrongExtension, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Params{}, fmt.Errorf("error reading params file: %w", err)
	}
	defer file.Close()

	var raw rawParams
	if err = json.NewDecoder(file).Decode(&raw); err != nil {
		return Params{}, fmt.Errorf("error decoding params file %q: %w", path, err)
	}

	return raw.resolve()
}

// Parse validates an already-decoded JSON specification document. It is used
// when the specification arrives embedded in another file, e.g. a model
// snapshot.
func Parse(data []byte) (Params, error) {
	var raw rawParams
	if err := json.Unmarshal(data, &raw); err != nil {
		return Params{}, fmt.Errorf("error decoding params document: %w", err)
	}

	return raw.resolve()
}

func (raw *rawParams) resolve() (Params, error) {
	if raw.Version == nil || *raw.Version != CurrentVersion {
		return Params{}, fmt.Errorf("%w: want %d", ErrUnsupportedVersion, CurrentVersion)
	}

	p := Params{
		Version:              *raw.Version,
		InternalTimescale:    DefaultInternalTimescale,
		TicksPerSensorSample: DefaultTicksPerSensorSample,
		CenterBlockSizeExtra: DefaultCenterBlockSizeExtra,
		CenterBlockStride:    DefaultCenterBlockStride,
		RandomSeed:           DefaultRandomSeed,
		Motors:               raw.Motors,
		Sensors:              raw.Sensors,
	}

	if raw.InternalTimescale != nil {
		p.InternalTimescale = *raw.InternalTimescale
	}
	if raw.TicksPerSensorSample != nil {
		p.TicksPerSensorSample = *raw.TicksPerSensorSample
	}
	if raw.CenterBlockSizeExtra != nil {
		p.CenterBlockSizeExtra = *raw.CenterBlockSizeExtra
	}
	if raw.CenterBlockStride != nil {
		p.CenterBlockStride = *raw.CenterBlockStride
	}
	if raw.RandomSeed != nil {
		p.RandomSeed = *raw.RandomSeed
	}

	return p, nil
}
