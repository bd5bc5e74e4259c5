package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"

	"github.com/snaplevel/snaplevel/internal/core/detect"
	"github.com/snaplevel/snaplevel/internal/core/level"
	"github.com/snaplevel/snaplevel/internal/core/observability/log"
	"github.com/snaplevel/snaplevel/internal/core/physics"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleBuildLevel turns a detection response into a scene. Building is
// deterministic, so the ETag (xxhash of the encoded scene) identifies the
// level: the same photo always produces the same tag.
func (s *Server) handleBuildLevel(w http.ResponseWriter, r *http.Request) {
	var resp detect.Response
	if !s.decodeBody(w, r, &resp) {
		return
	}

	scene := level.Build(resp)

	body, err := json.Marshal(scene)
	if err != nil {
		s.logger.Error("Failed to encode scene", log.Error(err))
		writeError(w, http.StatusInternalServerError, "encode_failed", "failed to encode scene")
		return
	}

	s.logger.Info("Level built",
		log.Int("detections", len(resp.Detections)),
		log.Int("objects", len(scene.Objects)))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", fmt.Sprintf("%q", fmt.Sprintf("%016x", xxhash.Sum64(body))))
	_, _ = w.Write(body)
}

// physicsRequest is the body of POST /v1/physics.
type physicsRequest struct {
	World WorldSize      `json:"world"`
	Scene *level.SceneV1 `json:"scene,omitempty"`
}

func (s *Server) handlePhysics(w http.ResponseWriter, r *http.Request) {
	var req physicsRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.World.W <= 0 || req.World.H <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_world", ErrInvalidWorld.Error())
		return
	}

	computed := physics.Compute(req.World.W, req.World.H, req.Scene)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(computed)
}

// decodeBody decodes a size-limited JSON body into v, writing a 400 and
// returning false on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", ErrInvalidBody.Error())
		return false
	}
	return true
}
