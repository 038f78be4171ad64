package models

// SetLabelsRequest replaces all labels of a cell.
type SetLabelsRequest struct {
	Labels []string `json:"labels"`
}

// AddLabelRequest appends a single label to a cell.
type AddLabelRequest struct {
	Label string `json:"label"`
}

// PresetsResponse is the body of GET /api/presets.
type PresetsResponse struct {
	PresetSet
	// Origin is the presets file path, or "built-in defaults".
	Origin string `json:"origin"`
	// Defaulted lists the kinds that fell back to the built-in labels.
	Defaulted []Kind `json:"defaulted"`
}

// CandidateReport describes one presets location tried at startup.
type CandidateReport struct {
	Path    string `json:"path"`
	Source  string `json:"source"`
	Outcome string `json:"outcome,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ResolutionResponse is the body of GET /api/presets/resolution. Candidates
// that were never tried have an empty Outcome.
type ResolutionResponse struct {
	Origin     string            `json:"origin"`
	Candidates []CandidateReport `json:"candidates"`
}

// DaysResponse is the body of GET /api/journal.
type DaysResponse struct {
	Days []string `json:"days"`
}
