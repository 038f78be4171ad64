package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/trade-journal/internal/service"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/validators"
	"github.com/MKhiriev/trade-journal/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad kind", err: fmt.Errorf("%w: %q", models.ErrUnknownKind, "x"), want: http.StatusBadRequest},
		{name: "bad date", err: fmt.Errorf("wrap: %w", validators.ErrInvalidDate), want: http.StatusBadRequest},
		{name: "label too long", err: validators.ErrLabelTooLong, want: http.StatusBadRequest},
		{name: "check constraint", err: store.ErrInvalidCell, want: http.StatusBadRequest},
		{name: "cell not found", err: service.ErrCellNotFound, want: http.StatusNotFound},
		{name: "label not found", err: fmt.Errorf("%w: %q", service.ErrLabelNotFound, "a"), want: http.StatusNotFound},
		{name: "query failed", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "timeout", err: fmt.Errorf("get day: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("something else"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	t.Run("client error echoes message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, req, "test", fmt.Errorf("%w: %q", validators.ErrInvalidBar, "99"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `invalid bar: "99"`)
	})

	t.Run("server error hides message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, req, "test", errors.New("connection refused to 10.0.0.5"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError)+"\n", rec.Body.String())
	})
}
