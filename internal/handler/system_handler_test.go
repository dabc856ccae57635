package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"item-api/internal/config"
	"item-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err   error
	calls int
}

func (p *fakePinger) Ping(ctx context.Context) error {
	p.calls++
	return p.err
}

func newSystemHandler(db Pinger) *SystemHandler {
	app := config.AppConfig{Name: "Item API", Version: "1.2.3", Environment: "testing"}
	return NewSystemHandler(app, db, zerolog.Nop())
}

func TestSystemHandler_Root(t *testing.T) {
	h := newSystemHandler(&fakePinger{})

	w := serve(http.HandlerFunc(h.Root), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Welcome to Item API", body["message"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, "/api/v1/items", body["items"])
}

func TestSystemHandler_Health(t *testing.T) {
	db := &fakePinger{err: errors.New("down")}
	h := newSystemHandler(db)

	w := serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.Zero(t, db.calls)
}

func TestSystemHandler_Ready(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
	}{
		{name: "Database reachable", expectedStatus: http.StatusOK},
		{name: "Database unreachable", pingErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakePinger{err: tt.pingErr}
			h := newSystemHandler(db)

			w := serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, 1, db.calls)

			if tt.pingErr != nil {
				resp := decodeError(t, w)
				assert.Equal(t, model.ErrCodeServiceUnavailable, resp.Error)
				assert.NotContains(t, w.Body.String(), "connection refused")
			} else {
				assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
			}
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	w := serve(NotFound(zerolog.Nop()), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, model.ErrCodeNotFound, decodeError(t, w).Error)

	w = serve(MethodNotAllowed(zerolog.Nop()), http.MethodPatch, "/items", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, model.ErrCodeMethodNotAllowed, decodeError(t, w).Error)
}
