package models

// ModelData is a trained model state previously returned by the ThoughtForge
// server. Uploading it on session initialisation restores the model instead
// of building a fresh one from the specification.
type ModelData struct {
	// Weights holds one weight array per model block.
	Weights [][]float64 `json:"weights"`

	// Values holds the flat model value vector.
	Values []float64 `json:"values"`
}

// Empty reports whether the model data carries no state at all.
func (m ModelData) Empty() bool {
	return len(m.Weights) == 0 && len(m.Values) == 0
}
