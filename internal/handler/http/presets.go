package http

import (
	"net/http"

	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/models"
)

func (h *Handler) getPresets(w http.ResponseWriter, r *http.Request) {
	res := h.services.PresetService.Resolution(r.Context())

	defaulted := res.Defaulted
	if defaulted == nil {
		defaulted = []models.Kind{}
	}

	utils.WriteJSON(w, models.PresetsResponse{
		PresetSet: res.Set,
		Origin:    res.Origin.String(),
		Defaulted: defaulted,
	}, http.StatusOK)
}

func (h *Handler) getResolution(w http.ResponseWriter, r *http.Request) {
	res := h.services.PresetService.Resolution(r.Context())

	utils.WriteJSON(w, res.Report(), http.StatusOK)
}

func (h *Handler) getLayout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PresetService.Layout(r.Context()), http.StatusOK)
}
