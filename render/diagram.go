package render

import (
	"fmt"
	"io"
	"strings"

	"nyiyui.ca/hato/rosen/line"
)

// DiagramBreak is the station where the first row of the diagram turns south.
const DiagramBreak = "thorndale"

// diagramRows is everything after the first row. The Red Line snakes through the North Side and the
// Loop, which doesn't fit a single row, so these are drawn by hand.
var diagramRows = []string{
	"                                                                     |",
	"      +-- bryn mawr --> argyle --> wilson --> sheridan --> addison <-- bryn mawr <--",
	"      |",
	"      +--> belmont --> fullerton --> north/clybourn --> clark/division --+",
	"                                                                        |",
	"+-- roosevelt <-- harrison <-- jackson <-- monroe <-- clark <-- chicago +",
	"+--> cermak-chinatown --> sox-35th --> 47th --> garfield --> 63rd --> 69th --+",
	"                                                                             |",
	"                                 null <-- 95th/dan ryan <-- 87th <-- 79th <--+",
}

// Diagram writes the Red Line diagram. The first row follows l from its head up to DiagramBreak;
// the remaining rows are fixed.
func Diagram(w io.Writer, l *line.Line) error {
	if l.IsEmpty() {
		_, err := fmt.Fprintln(w, emptyLine)
		return err
	}
	b := new(strings.Builder)
	head, _ := l.Head()
	l.Walk(line.Forward, func(i line.StationI, s line.Station) bool {
		if i == head {
			// the head never ends the row, even if it is DiagramBreak
			b.WriteString(s.Name)
			return true
		}
		b.WriteString(" --> ")
		b.WriteString(s.Name)
		if s.Name == DiagramBreak {
			b.WriteString(" --+")
			return false
		}
		return true
	})
	_, err := fmt.Fprintln(w, b.String())
	if err != nil {
		return err
	}
	for _, row := range diagramRows {
		_, err = fmt.Fprintln(w, row)
		if err != nil {
			return err
		}
	}
	return nil
}
