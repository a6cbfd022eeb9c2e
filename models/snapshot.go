package models

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thoughtforge-ai/thoughtforge-go/params"
)

// Snapshot is the on-disk save format for a trained model: the model
// specification it was built from plus the trained model data. The layout
// matches the files produced by earlier ThoughtForge clients, so snapshots
// are interchangeable between them.
type Snapshot struct {
	// Specification is the model specification the session was built from.
	Specification params.Params `json:"specification"`

	// ModelData is the trained model state.
	ModelData ModelData `json:"model_data"`
}

// LoadSnapshot reads and decodes a snapshot file. The embedded specification
// is validated the same way a .params file is, including the version check.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("error reading snapshot file: %w", err)
	}

	var raw struct {
		Specification json.RawMessage `json:"specification"`
		ModelData     ModelData       `json:"model_data"`
	}
	if err = json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("error decoding snapshot file %q: %w", path, err)
	}

	spec, err := params.Parse(raw.Specification)
	if err != nil {
		return Snapshot{}, fmt.Errorf("error validating snapshot specification: %w", err)
	}

	return Snapshot{Specification: spec, ModelData: raw.ModelData}, nil
}

// SaveSnapshot encodes the snapshot and writes it to path.
func SaveSnapshot(path string, snapshot Snapshot) error {
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("error writing snapshot file: %w", err)
	}

	return nil
}
