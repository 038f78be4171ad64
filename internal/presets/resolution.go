package presets

import "github.com/MKhiriev/trade-journal/models"

// DefaultsOrigin is how the built-in origin is printed.
const DefaultsOrigin = "built-in defaults"

// Origin records where the active preset set came from.
// The zero value means the built-in defaults.
type Origin struct {
	Path string
}

// IsDefault reports whether no file supplied the presets.
func (o Origin) IsDefault() bool {
	return o.Path == ""
}

func (o Origin) String() string {
	if o.IsDefault() {
		return DefaultsOrigin
	}
	return o.Path
}

// Source tells which search tier produced a candidate.
type Source int

const (
	SourceOverride Source = iota
	SourceExecutableDir
	SourceExecutableParent
	SourceWorkingDir
	SourceBundled
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceExecutableDir:
		return "executable-dir"
	case SourceExecutableParent:
		return "executable-parent"
	case SourceWorkingDir:
		return "working-dir"
	case SourceBundled:
		return "bundled"
	}
	return "unknown"
}

// Candidate is one location considered during resolution.
type Candidate struct {
	Path   string
	Source Source
}

// Outcome is the result of trying a single candidate.
type Outcome int

const (
	Loaded Outcome = iota
	SkippedMissing
	SkippedNotRegular
	SkippedUnreadable
	SkippedMalformed
)

func (o Outcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case SkippedMissing:
		return "missing"
	case SkippedNotRegular:
		return "not-regular-file"
	case SkippedUnreadable:
		return "unreadable"
	case SkippedMalformed:
		return "malformed"
	}
	return "unknown"
}

// Attempt is the typed result of trying one candidate. Err is nil for
// Loaded and for SkippedMissing.
type Attempt struct {
	Candidate Candidate
	Outcome   Outcome
	Err       error
}

// Resolution is everything Resolve learned. Set is always usable.
type Resolution struct {
	Set    models.PresetSet
	Origin Origin

	// Defaulted lists the kinds whose file value was missing, not an array
	// or blank, and so came from the built-in defaults. When Origin is the
	// defaults it lists every kind.
	Defaulted []models.Kind

	// Candidates is the de-duplicated search list, in priority order.
	Candidates []Candidate

	// Attempts holds one entry per candidate tried, ending with the loaded
	// one if any. Candidates after the loaded one are not tried.
	Attempts []Attempt
}

// Loaded returns the attempt that supplied the presets, if any.
func (r Resolution) Loaded() (Attempt, bool) {
	for _, a := range r.Attempts {
		if a.Outcome == Loaded {
			return a, true
		}
	}
	return Attempt{}, false
}

// Report pairs every candidate with its outcome for display. Candidates
// after the loaded one were never tried and have an empty Outcome.
func (r Resolution) Report() models.ResolutionResponse {
	reports := make([]models.CandidateReport, len(r.Candidates))
	for i, c := range r.Candidates {
		reports[i] = models.CandidateReport{Path: c.Path, Source: c.Source.String()}
		if i >= len(r.Attempts) {
			continue
		}
		reports[i].Outcome = r.Attempts[i].Outcome.String()
		if err := r.Attempts[i].Err; err != nil {
			reports[i].Error = err.Error()
		}
	}

	return models.ResolutionResponse{
		Origin:     r.Origin.String(),
		Candidates: reports,
	}
}
