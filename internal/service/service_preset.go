package service

import (
	"context"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/presets"
	"github.com/MKhiriev/trade-journal/models"
)

type presetService struct {
	resolution presets.Resolution
	layout     models.Layout

	logger *logger.Logger
}

// NewPresetService serves res, the result of the single startup resolution.
func NewPresetService(res presets.Resolution, logger *logger.Logger) PresetService {
	logger.Debug().Str("origin", res.Origin.String()).Msg("creating preset service...")

	return &presetService{
		resolution: res,
		layout:     models.DefaultLayout(),
		logger:     logger,
	}
}

// Presets returns a copy; callers may modify it freely.
func (s *presetService) Presets(ctx context.Context) models.PresetSet {
	return s.resolution.Set.Clone()
}

func (s *presetService) Origin(ctx context.Context) presets.Origin {
	return s.resolution.Origin
}

func (s *presetService) Resolution(ctx context.Context) presets.Resolution {
	res := s.resolution
	res.Set = res.Set.Clone()
	res.Defaulted = append([]models.Kind(nil), res.Defaulted...)
	res.Candidates = append([]presets.Candidate(nil), res.Candidates...)
	res.Attempts = append([]presets.Attempt(nil), res.Attempts...)
	return res
}

func (s *presetService) Layout(ctx context.Context) models.Layout {
	return models.Layout{
		Columns: append([]models.Column(nil), s.layout.Columns...),
		Bars:    append([]string(nil), s.layout.Bars...),
	}
}
