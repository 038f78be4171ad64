package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/models"
)

func (h *Handler) listDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.services.JournalService.ListDays(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listDays", err)
		return
	}
	if days == nil {
		days = []string{}
	}

	utils.WriteJSON(w, models.DaysResponse{Days: days}, http.StatusOK)
}

func (h *Handler) getDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.services.JournalService.GetDay(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, r, "*Handler.getDay", err)
		return
	}

	utils.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) deleteDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	n, err := h.services.JournalService.DeleteDay(r.Context(), date)
	if err != nil {
		writeError(w, r, "*Handler.deleteDay", err)
		return
	}

	logger.FromRequest(r).Debug().Str("date", date).Int64("cells", n).Msg("day deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCell(w http.ResponseWriter, r *http.Request) {
	key, err := cellKeyFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getCell", err)
		return
	}

	cell, err := h.services.JournalService.GetCell(r.Context(), key)
	if err != nil {
		writeError(w, r, "*Handler.getCell", err)
		return
	}

	utils.WriteJSON(w, cell, http.StatusOK)
}

func (h *Handler) setLabels(w http.ResponseWriter, r *http.Request) {
	key, err := cellKeyFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.setLabels", err)
		return
	}

	var req models.SetLabelsRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setLabels", ErrInvalidRequestBody)
		return
	}

	cell, err := h.services.JournalService.SetLabels(r.Context(), key, req.Labels)
	if err != nil {
		writeError(w, r, "*Handler.setLabels", err)
		return
	}

	utils.WriteJSON(w, cell, http.StatusOK)
}

func (h *Handler) addLabel(w http.ResponseWriter, r *http.Request) {
	key, err := cellKeyFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.addLabel", err)
		return
	}

	var req models.AddLabelRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.addLabel", ErrInvalidRequestBody)
		return
	}

	cell, err := h.services.JournalService.AddLabel(r.Context(), key, req.Label)
	if err != nil {
		writeError(w, r, "*Handler.addLabel", err)
		return
	}

	utils.WriteJSON(w, cell, http.StatusOK)
}

func (h *Handler) removeLabel(w http.ResponseWriter, r *http.Request) {
	key, err := cellKeyFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.removeLabel", err)
		return
	}

	label := r.URL.Query().Get("label")
	if strings.TrimSpace(label) == "" {
		writeError(w, r, "*Handler.removeLabel", ErrMissingLabel)
		return
	}

	cell, err := h.services.JournalService.RemoveLabel(r.Context(), key, label)
	if err != nil {
		writeError(w, r, "*Handler.removeLabel", err)
		return
	}

	utils.WriteJSON(w, cell, http.StatusOK)
}

func (h *Handler) clearCell(w http.ResponseWriter, r *http.Request) {
	key, err := cellKeyFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.clearCell", err)
		return
	}

	if err = h.services.JournalService.ClearCell(r.Context(), key); err != nil {
		writeError(w, r, "*Handler.clearCell", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// cellKeyFromRequest reads {date}/{bar}/{kind}. Kind and the RTH/ETH bar
// names are case-insensitive; the date is checked by the service layer.
func cellKeyFromRequest(r *http.Request) (models.CellKey, error) {
	kind, err := models.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return models.CellKey{}, err
	}

	return models.CellKey{
		Date: chi.URLParam(r, "date"),
		Bar:  strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "bar"))),
		Kind: kind,
	}, nil
}
