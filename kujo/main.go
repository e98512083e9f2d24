// Package kujo serves lines over HTTP, with snapshots streamed as server-sent events.
package kujo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/r3labs/sse/v2"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"nyiyui.ca/hato/rosen/line"
	"nyiyui.ca/hato/rosen/registry"
	"nyiyui.ca/hato/rosen/render"
)

// SnapshotStream is the SSE stream ID carrying registry.Snapshot values as JSON.
const SnapshotStream = "snapshot"

type Server struct {
	r  *registry.Registry
	s  *sse.Server
	sm *http.ServeMux
	h  http.Handler
	// closed by Close to stop forward
	done      chan struct{}
	closeOnce sync.Once
}

type Conf struct {
	// AllowedOrigins is passed to cors. Empty means all origins.
	AllowedOrigins []string
}

func NewServer(r *registry.Registry, conf Conf) *Server {
	s := &Server{
		r:  r,
		s:  sse.New(),
		sm:   http.NewServeMux(),
		done: make(chan struct{}),
	}
	s.s.AutoReplay = false
	s.s.CreateStream(SnapshotStream)
	s.sm.HandleFunc("/lines", s.handleLines)
	s.sm.HandleFunc("/lines/", s.handleLine)
	s.sm.Handle("/events", s.s)
	c := cors.New(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	s.h = c.Handler(s.sm)
	go s.forward()
	return s
}

// Handle mounts h on the server's mux, e.g. for an index page.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.sm.Handle(pattern, h)
}

func (s *Server) forward() {
	ch := make(chan registry.Snapshot)
	s.r.SnapshotMux.Subscribe("kujo", ch)
	defer s.r.SnapshotMux.Unsubscribe(ch)
	for {
		select {
		case <-s.done:
			return
		case snap := <-ch:
			data, err := json.Marshal(snap)
			if err != nil {
				zap.S().Errorw("marshal snapshot", "id", snap.ID, "err", err)
				continue
			}
			s.s.TryPublish(SnapshotStream, &sse.Event{
				Data: data,
			})
		}
	}
}

// Close stops forwarding snapshots and disconnects SSE clients. It does not close listeners.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.s.Close()
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	zap.S().Debugw("request", "method", r.Method, "path", r.URL.Path)
	s.h.ServeHTTP(w, r)
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.r.List())
}

// handleLine serves /lines/{id}, /lines/{id}/render, and /lines/{id}/stations.
func (s *Server) handleLine(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/lines/"), "/")
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.Error(w, "invalid line id", http.StatusNotFound)
		return
	}
	sub := ""
	if len(parts) == 2 {
		sub = parts[1]
	} else if len(parts) > 2 {
		http.NotFound(w, r)
		return
	}
	switch {
	case sub == "" && r.Method == http.MethodGet:
		snap, err := s.r.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, snap)
	case sub == "render" && r.Method == http.MethodGet:
		s.handleRender(w, r, id)
	case sub == "stations" && r.Method == http.MethodPost:
		s.handleAppend(w, r, id)
	case sub == "" || sub == "render" || sub == "stations":
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	f := render.FormatDiagram
	if raw := r.URL.Query().Get("format"); raw != "" {
		var err error
		f, err = render.ParseFormat(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	var text string
	err := s.r.View(id, func(l *line.Line) error {
		text = render.String(l, f)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

type appendReq struct {
	Name string `json:"name"`
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req appendReq
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "decode: "+err.Error(), http.StatusBadRequest)
		return
	}
	snap, err := s.r.Append(id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	zap.S().Infow("appended station", "line", snap.Name, "station", req.Name, "count", snap.Count)
	writeJSON(w, snap)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, registry.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	zap.S().Errorw("request failed", "err", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		zap.S().Errorw("encode response", "err", err)
	}
}
