// Package ui shows lines in the terminal.
package ui

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"nyiyui.ca/hato/rosen/line"
	"nyiyui.ca/hato/rosen/registry"
	"nyiyui.ca/hato/rosen/render"
)

// view is the state of the UI apart from termui itself.
type view struct {
	r      *registry.Registry
	format render.Format
	// selected is an index into r.List().
	selected int
}

// handle updates the view for a key event ID. It returns false if the UI should exit.
func (v *view) handle(id string) bool {
	switch id {
	case "q", "<C-c>":
		return false
	case "<Right>", "l", "n":
		v.selected++
	case "<Left>", "h", "p":
		v.selected--
	case "f":
		v.format = (v.format + 1) % (render.FormatDiagram + 1)
	}
	return true
}

// text returns the title and body of the selected line.
func (v *view) text() (title, body string) {
	snaps := v.r.List()
	if len(snaps) == 0 {
		return "rosen", "no lines"
	}
	if v.selected < 0 {
		v.selected = len(snaps) - 1
	}
	v.selected %= len(snaps)
	snap := snaps[v.selected]
	err := v.r.View(snap.ID, func(l *line.Line) error {
		body = render.String(l, v.format)
		return nil
	})
	if err != nil {
		body = err.Error()
	}
	title = fmt.Sprintf("%s (%d/%d, %s)", snap.Name, v.selected+1, len(snaps), v.format)
	return
}

// Main runs the terminal UI until q or Ctrl-C is pressed.
func Main(r *registry.Registry, format render.Format) error {
	err := termui.Init()
	if err != nil {
		return fmt.Errorf("termui init: %w", err)
	}
	defer termui.Close()

	v := &view{r: r, format: format}
	p := widgets.NewParagraph()
	draw := func() {
		w, h := termui.TerminalDimensions()
		p.SetRect(0, 0, w, h)
		p.Title, p.Text = v.text()
		termui.Render(p)
	}
	draw()

	snaps := make(chan registry.Snapshot, 8)
	r.SnapshotMux.Subscribe("ui", snaps)
	defer r.SnapshotMux.Unsubscribe(snaps)
	events := termui.PollEvents()
	for {
		select {
		case e := <-events:
			if !v.handle(e.ID) {
				return nil
			}
			draw()
		case <-snaps:
			draw()
		}
	}
}
