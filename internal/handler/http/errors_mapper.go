package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/service"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/validators"
	"github.com/MKhiriev/trade-journal/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrMissingLabel:       http.StatusBadRequest,

	models.ErrUnknownKind:      http.StatusBadRequest,
	models.ErrInvalidTradeDate: http.StatusBadRequest,

	validators.ErrInvalidDate:    http.StatusBadRequest,
	validators.ErrInvalidBar:     http.StatusBadRequest,
	validators.ErrInvalidKind:    http.StatusBadRequest,
	validators.ErrEmptyLabel:     http.StatusBadRequest,
	validators.ErrLabelTooLong:   http.StatusBadRequest,
	validators.ErrTooManyLabels:  http.StatusBadRequest,
	validators.ErrEmptyDateField: http.StatusBadRequest,

	service.ErrEmptyLabel:    http.StatusBadRequest,
	service.ErrCellNotFound:  http.StatusNotFound,
	service.ErrLabelNotFound: http.StatusNotFound,

	store.ErrCellNotFound: http.StatusNotFound,
	store.ErrInvalidCell:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrDecodingLabels:   http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status mapped from it. Client
// errors echo the error text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
