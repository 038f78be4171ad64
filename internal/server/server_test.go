package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/handler"
	"github.com/MKhiriev/trade-journal/internal/logger"
)

func pingHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
}

func waitReady(t *testing.T, h *httpServer) string {
	t.Helper()
	select {
	case <-h.ready:
		return h.addr.String()
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
		return ""
	}
}

func TestNewServer_NoHTTP(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_NoServer(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	h := newHTTPServer(pingHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	s := &server{httpServer: h, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	addr := waitReady(t, h)
	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	_, err = http.Get("http://" + addr + "/")
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	h := newHTTPServer(pingHandler(), config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop())
	s := &server{httpServer: h, logger: logger.Nop()}

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
