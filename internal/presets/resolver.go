// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/models"
)

const (
	// OverrideEnv names the environment variable holding an explicit
	// presets file path. When set it is the first candidate, ahead of the
	// configured path.
	OverrideEnv = "TRADE_JOURNAL_PRESETS_PATH"

	// DefaultName is the logical name of the presets document.
	DefaultName = "presets"
)

// bundledSubdir is where installers put data files, relative to the parent
// of the executable directory (bin/../share/trade-journal).
var bundledSubdir = filepath.Join("share", "trade-journal")

// Resolver finds and loads the presets document. Build it with NewResolver
// and call Resolve once at startup.
type Resolver struct {
	override      string
	executableDir string
	bundledDir    string
	workingDir    func() (string, error)

	logger *logger.Logger
}

// Option adjusts a Resolver built by NewResolver.
type Option func(*Resolver)

// WithExecutableDir replaces the executable directory used for the second
// and third search tiers. An empty dir disables both tiers.
func WithExecutableDir(dir string) Option {
	return func(r *Resolver) {
		r.executableDir = dir
	}
}

// WithWorkingDir fixes the directory whose ancestors form the fourth search
// tier. An empty dir disables the tier.
func WithWorkingDir(dir string) Option {
	return func(r *Resolver) {
		r.workingDir = func() (string, error) { return dir, nil }
	}
}

// WithBundledDir replaces the install data directory. An empty dir disables
// the last search tier.
func WithBundledDir(dir string) Option {
	return func(r *Resolver) {
		r.bundledDir = dir
	}
}

// NewResolver builds a Resolver. The OverrideEnv variable, read at resolve
// time, is the first candidate; cfg.Path, when set, is the next one.
func NewResolver(cfg config.Presets, log *logger.Logger, opts ...Option) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	r := &Resolver{
		override:      cfg.Path,
		executableDir: executableDir(),
		workingDir:    os.Getwd,
		logger:        log,
	}
	if r.executableDir != "" {
		r.bundledDir = filepath.Join(filepath.Dir(r.executableDir), bundledSubdir)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve searches for the document with the given logical name ("presets"
// becomes presets.json) and returns the first one that loads, or the
// built-in defaults. It never fails.
//
// Exactly one info line is logged naming the origin. Skipped candidates are
// logged at debug level.
func (r *Resolver) Resolve(name string) Resolution {
	fileName := fileNameFor(name)
	candidates := r.candidates(fileName)

	res := Resolution{
		Candidates: candidates,
		Attempts:   make([]Attempt, 0, len(candidates)),
	}

	for _, c := range candidates {
		set, defaulted, attempt := r.try(c)
		res.Attempts = append(res.Attempts, attempt)

		if attempt.Outcome != Loaded {
			r.logger.Debug().
				Err(attempt.Err).
				Str("path", c.Path).
				Str("source", c.Source.String()).
				Str("outcome", attempt.Outcome.String()).
				Msg("presets candidate skipped")
			continue
		}

		res.Set = set
		res.Origin = Origin{Path: c.Path}
		res.Defaulted = defaulted

		r.logger.Info().
			Str("origin", c.Path).
			Str("source", c.Source.String()).
			Strs("defaulted", kindNames(defaulted)).
			Msgf("loaded presets from: %s", c.Path)
		return res
	}

	res.Set = Defaults()
	res.Defaulted = append([]models.Kind(nil), models.Kinds...)

	r.logger.Info().
		Str("origin", DefaultsOrigin).
		Int("candidates", len(candidates)).
		Msgf("using built-in preset defaults (%s not found)", fileName)
	return res
}

// try loads a single candidate.
func (r *Resolver) try(c Candidate) (models.PresetSet, []models.Kind, Attempt) {
	attempt := Attempt{Candidate: c}

	info, err := os.Stat(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			attempt.Outcome = SkippedMissing
		} else {
			attempt.Outcome = SkippedUnreadable
			attempt.Err = err
		}
		return models.PresetSet{}, nil, attempt
	}

	if !info.Mode().IsRegular() {
		attempt.Outcome = SkippedNotRegular
		attempt.Err = ErrNotRegularFile
		return models.PresetSet{}, nil, attempt
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		attempt.Outcome = SkippedUnreadable
		attempt.Err = err
		return models.PresetSet{}, nil, attempt
	}

	set, defaulted, err := Parse(data)
	if err != nil {
		attempt.Outcome = SkippedMalformed
		attempt.Err = fmt.Errorf("error parsing %s: %w", c.Path, err)
		return models.PresetSet{}, nil, attempt
	}

	attempt.Outcome = Loaded
	return set, defaulted, attempt
}

// overridePaths lists the OverrideEnv path first and the configured path
// second. Either may be absent; equal paths collapse in dedupe.
func (r *Resolver) overridePaths() []string {
	paths := make([]string, 0, 2)
	if p := strings.TrimSpace(os.Getenv(OverrideEnv)); p != "" {
		paths = append(paths, p)
	}
	if p := strings.TrimSpace(r.override); p != "" {
		paths = append(paths, p)
	}
	return paths
}

// fileNameFor maps a logical name to a file name: "presets" -> "presets.json".
func fileNameFor(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	return name
}

func kindNames(kinds []models.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
