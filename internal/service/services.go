package service

import (
	"fmt"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/presets"
	"github.com/MKhiriev/trade-journal/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	PresetService  PresetService
	JournalService JournalService
}

func NewServices(storages *store.Storages, res presets.Resolution, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	journal := NewJournalValidationService().Wrap(NewJournalService(storages.JournalRepository, logger))

	return &Services{
		AppInfoService: appInfo,
		PresetService:  NewPresetService(res, logger),
		JournalService: journal,
	}, nil
}
