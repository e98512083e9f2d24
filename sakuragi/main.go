// Package sakuragi serves an HTML page listing every line with its diagram.
package sakuragi

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"
	"nyiyui.ca/hato/rosen/line"
	"nyiyui.ca/hato/rosen/registry"
	"nyiyui.ca/hato/rosen/render"
)

//go:embed index.html
var templates embed.FS

type Conf struct {
	Registry *registry.Registry
	// Format used for each line's text.
	Format render.Format
}

type Sakuragi struct {
	conf Conf
	t    *template.Template
}

type lineView struct {
	registry.Snapshot
	Text string
}

func New(conf Conf) *Sakuragi {
	return &Sakuragi{
		conf: conf,
		t:    template.Must(template.New("index").Funcs(sprig.FuncMap()).ParseFS(templates, "*.html")),
	}
}

func (s *Sakuragi) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	snaps := s.conf.Registry.List()
	views := make([]lineView, 0, len(snaps))
	for _, snap := range snaps {
		v := lineView{Snapshot: snap}
		err := s.conf.Registry.View(snap.ID, func(l *line.Line) error {
			v.Text = render.String(l, s.conf.Format)
			return nil
		})
		if err != nil {
			zap.S().Errorw("render line", "id", snap.ID, "err", err)
			continue
		}
		views = append(views, v)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.t.ExecuteTemplate(w, "index", map[string]interface{}{
		"lines": views,
		"now":   time.Now().Format("15:04:05"),
	})
	if err != nil {
		zap.S().Errorw("execute index", "err", err)
	}
}
