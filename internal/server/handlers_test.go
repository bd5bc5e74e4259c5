package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snaplevel/snaplevel/internal/core/level"
	"github.com/snaplevel/snaplevel/internal/core/observability/log"
	"github.com/snaplevel/snaplevel/internal/core/physics"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(DefaultConfig(), log.New(log.LevelError))
}

const detectionsBody = `{
	"image": {"w": 640, "h": 480},
	"detections": [
		{"label": "sofa", "category": "furniture", "confidence": 0.91,
		 "bounds_normalized": {"x": 0.1, "y": 0.5, "w": 0.4, "h": 0.3}},
		{"label": "apple", "category": "food", "confidence": 0.77,
		 "bounds_normalized": {"x": 0.6, "y": 0.4, "w": 0.05, "h": 0.05}},
		{"label": "fern", "category": "plant", "confidence": 0.6,
		 "bounds_normalized": {"x": 0.8, "y": 0.3, "w": 0.15, "h": 0.25}}
	]
}`

func postJSON(s *Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleBuildLevel(t *testing.T) {
	s := newTestServer(t)

	t.Run("builds a valid scene", func(t *testing.T) {
		rec := postJSON(s, "/v1/levels", detectionsBody)
		require.Equal(t, http.StatusOK, rec.Code)

		var scene level.SceneV1
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scene))
		require.Equal(t, 1, scene.Version)
		require.NotEmpty(t, scene.Objects)
		require.NotEmpty(t, scene.Spawns.Pickups)
		require.NotEmpty(t, rec.Header().Get("ETag"))
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("same photo same level same etag", func(t *testing.T) {
		a := postJSON(s, "/v1/levels", detectionsBody)
		b := postJSON(s, "/v1/levels", detectionsBody)
		require.Equal(t, a.Header().Get("ETag"), b.Header().Get("ETag"))
		require.True(t, bytes.Equal(a.Body.Bytes(), b.Body.Bytes()))
	})

	t.Run("empty detections still build", func(t *testing.T) {
		rec := postJSON(s, "/v1/levels", `{"image":{"w":100,"h":100},"detections":[]}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		rec := postJSON(s, "/v1/levels", `{"image":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Equal(t, "invalid_body", envelope.Error.Code)
	})
}

func TestHandlePhysics(t *testing.T) {
	s := newTestServer(t)

	t.Run("fallback without scene", func(t *testing.T) {
		rec := postJSON(s, "/v1/physics", `{"world":{"w":1000,"h":1000}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var p physics.Computed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		require.InDelta(t, 1200.0, p.GravityY, 1e-9)
		require.InDelta(t, -916.515, p.JumpVelocity, 0.01)
	})

	t.Run("scene-driven jump", func(t *testing.T) {
		buildRec := postJSON(s, "/v1/levels", detectionsBody)
		body := `{"world":{"w":1280,"h":720},"scene":` + buildRec.Body.String() + `}`

		rec := postJSON(s, "/v1/physics", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var p physics.Computed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		require.Less(t, p.JumpVelocity, 0.0)
		require.InDelta(t, 1.2*720, p.GravityY, 1e-9)
	})

	t.Run("non-positive world rejected", func(t *testing.T) {
		rec := postJSON(s, "/v1/physics", `{"world":{"w":0,"h":720}}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty listen addr", mutate: func(c *Config) { c.ListenAddr = "" }, wantErr: true},
		{name: "zero body limit", mutate: func(c *Config) { c.MaxBodyBytes = 0 }, wantErr: true},
		{name: "bad default world", mutate: func(c *Config) { c.DefaultWorld.H = 0 }, wantErr: true},
		{name: "http3 without certs", mutate: func(c *Config) { c.HTTP3.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
