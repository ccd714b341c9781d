package canvas

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/example/chaikin-canvas/internal/chaikin"
	"github.com/example/chaikin-canvas/internal/config"
	diag "github.com/example/chaikin-canvas/internal/diagnostics"
	"github.com/example/chaikin-canvas/internal/driver"
	"github.com/example/chaikin-canvas/internal/geom"
)

// State owns the editor, the animator and the connected preview clients.
// One State exists per server; all mutation goes through its lock.
type State struct {
	mu sync.RWMutex

	cfg        *config.Config
	ConfigPath string
	Driver     driver.Driver

	editor *Editor
	anim   *chaikin.Animator

	frameID     uint64
	startTime   time.Time
	clients     map[*websocket.Conn]bool
	diagClients map[*websocket.Conn]bool
}

func NewState(cfg *config.Config, clock chaikin.Clock) *State {
	anim := chaikin.NewWithClock(nil, clock)
	anim.SetSpeed(cfg.Anim.Speed)
	anim.SetEase(cfg.Anim.Ease)
	return &State{
		cfg:         cfg,
		editor:      NewEditor(),
		anim:        anim,
		startTime:   time.Now(),
		clients:     map[*websocket.Conn]bool{},
		diagClients: map[*websocket.Conn]bool{},
	}
}

// wirePoint is one frame point on the websocket.
type wirePoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	C [3]uint8 `json:"c"`
}

// RunRenderLoop steps the animation at the configured FPS and pushes each
// frame to the driver and the connected clients. Runs until the process
// exits.
func (s *State) RunRenderLoop() {
	fps := max(1, s.currentFPS())
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for range ticker.C {
		frame, drv := s.renderFrame()
		if drv != nil {
			if err := drv.Write(frame); err != nil {
				log.Debug().Err(err).Msg("driver write")
			}
		}
		s.broadcastFrame(frame)

		if cur := max(1, s.currentFPS()); cur != fps {
			fps = cur
			ticker.Reset(time.Second / time.Duration(fps))
		}
	}
}

// renderFrame builds the frame for this tick: the animated curve when
// running, otherwise the bare control polyline in its idle color.
func (s *State) renderFrame() ([]geom.Point, driver.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var frame []geom.Point
	if s.editor.Animating() && s.editor.Len() > 0 {
		s.anim.SetPoints(s.editor.Points())
		frame = s.anim.Step()
	} else {
		for _, p := range s.editor.Points() {
			frame = append(frame, p.Tagged(geom.Orange))
		}
	}
	s.frameID++
	return frame, s.Driver
}

func (s *State) currentFPS() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.FPS
}

func (s *State) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.sendTopology(conn)

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *State) HandleDiagWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.diagClients[conn] = true
	s.mu.Unlock()
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.diagClients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *State) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.applyControl(msg)
		s.sendTopology(conn)
	}
}

func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := map[string]any{
		"frame_id":  s.frameID,
		"uptime_s":  time.Since(s.startTime).Seconds(),
		"points":    s.editor.Len(),
		"fps":       s.cfg.FPS,
		"animating": s.editor.Animating(),
		"level":     s.anim.Level(),
		"phase":     s.anim.Phase(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *State) applyControl(msg map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := msg["addPoint"].(map[string]any); ok {
		x, okX := v["x"].(float64)
		y, okY := v["y"].(float64)
		if okX && okY {
			s.editor.AddPoint(x, y)
		}
	}
	if v, ok := msg["grab"].(map[string]any); ok {
		x, okX := v["x"].(float64)
		y, okY := v["y"].(float64)
		if okX && okY {
			s.editor.Grab(x, y, s.cfg.DragRadius)
		}
	}
	if v, ok := msg["drag"].(map[string]any); ok {
		x, okX := v["x"].(float64)
		y, okY := v["y"].(float64)
		if okX && okY {
			s.editor.Drag(x, y)
		}
	}
	if v, ok := msg["release"].(bool); ok && v {
		s.editor.Release()
	}
	if v, ok := msg["movePoint"].(map[string]any); ok {
		i, okI := v["index"].(float64)
		x, okX := v["x"].(float64)
		y, okY := v["y"].(float64)
		if okI && okX && okY {
			s.editor.MovePoint(int(i), x, y)
		}
	}
	if v, ok := msg["clear"].(bool); ok && v {
		s.editor.Clear()
	}
	if v, ok := msg["animate"].(bool); ok {
		if !s.editor.SetAnimating(v) {
			s.pushDiag(diag.Diagnostic{
				Severity: diag.Warn, Code: "ANIM.EMPTY",
				Summary: "Draw control points first",
				Detail:  "Click the canvas to place points, then start the animation",
			})
		}
	}
	if v, ok := msg["speed"].(float64); ok && v > 0 {
		s.cfg.Anim.Speed = v
		s.anim.SetSpeed(v)
	}
	if v, ok := msg["ease"].(string); ok {
		s.cfg.Anim.Ease = v
		s.anim.SetEase(v)
	}
	if v, ok := msg["fps"].(float64); ok && v > 0 {
		s.cfg.FPS = int(v)
	}
	if v, ok := msg["preset"].(string); ok {
		pts, found := Preset(v, float64(s.cfg.Canvas.Width), float64(s.cfg.Canvas.Height))
		if !found {
			s.pushDiag(diag.Diagnostic{
				Severity: diag.Warn, Code: "PRESET.UNKNOWN",
				Summary:  "Unknown preset",
				Evidence: map[string]any{"name": v, "available": Presets()},
			})
		} else {
			s.editor.SetPoints(pts)
		}
	}

	// Persist settings after any change
	s.saveConfig()
}

func (s *State) saveConfig() {
	if s.ConfigPath == "" {
		return
	}
	if err := config.Save(s.ConfigPath, s.cfg); err != nil {
		log.Warn().Err(err).Str("path", s.ConfigPath).Msg("config save failed")
	}
}

func (s *State) sendTopology(conn *websocket.Conn) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	top := map[string]any{
		"canvas":      map[string]int{"width": s.cfg.Canvas.Width, "height": s.cfg.Canvas.Height},
		"fps":         s.cfg.FPS,
		"speed":       s.cfg.Anim.Speed,
		"ease":        s.cfg.Anim.Ease,
		"drag_radius": s.cfg.DragRadius,
		"presets":     Presets(),
		"animating":   s.editor.Animating(),
		"points":      s.editor.Len(),
	}
	b, _ := json.Marshal(top)
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func (s *State) broadcastFrame(frame []geom.Point) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	type wireFrame struct {
		T       int64       `json:"t"`
		FrameID uint64      `json:"frame_id"`
		Points  []wirePoint `json:"points"`
	}
	wf := wireFrame{T: time.Now().UnixNano(), FrameID: s.frameID, Points: make([]wirePoint, len(frame))}
	for i, p := range frame {
		wf.Points[i] = wirePoint{X: p.X, Y: p.Y, C: [3]uint8{p.Color.R, p.Color.G, p.Color.B}}
	}
	b, _ := json.Marshal(wf)
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}

func (s *State) pushDiag(d diag.Diagnostic) {
	b, _ := json.Marshal(d)
	for c := range s.diagClients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		_ = c.WriteMessage(websocket.TextMessage, b)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
