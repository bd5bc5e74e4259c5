package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/snaplevel/snaplevel/internal/core/detect"
	"github.com/snaplevel/snaplevel/internal/core/level"
	"github.com/snaplevel/snaplevel/internal/core/observability/log"
	"github.com/snaplevel/snaplevel/internal/core/physics"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// previewFrame is the server's answer to each detection frame: the rebuilt
// scene plus the physics for the configured default world size.
type previewFrame struct {
	Scene   level.SceneV1    `json:"scene"`
	Physics physics.Computed `json:"physics"`
}

// handlePreview streams live rebuilds: the client sends a DetectionResponse
// per frame (e.g. while pointing the camera around) and receives the scene
// and physics it would get from a full upload.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade preview connection", log.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	connLogger := s.logger.With(log.String("remote_addr", conn.RemoteAddr().String()))
	connLogger.Debug("Preview session started")

	for {
		var resp detect.Response
		if err = conn.ReadJSON(&resp); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				connLogger.Warn("Preview session aborted", log.Error(err))
			} else {
				connLogger.Debug("Preview session closed")
			}
			return
		}

		scene := level.Build(resp)
		frame := previewFrame{
			Scene:   scene,
			Physics: physics.Compute(s.config.DefaultWorld.W, s.config.DefaultWorld.H, &scene),
		}

		if err = conn.WriteJSON(frame); err != nil {
			connLogger.Warn("Failed to write preview frame", log.Error(err))
			return
		}
	}
}
