// Package render draws Lines as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"nyiyui.ca/hato/rosen/line"
)

type Format int

const (
	// FormatList is a single row of station names from head to tail.
	FormatList Format = iota
	// FormatDump is a forward row and a backward row, both ending in null.
	FormatDump
	// FormatDiagram is the Red Line loop diagram.
	FormatDiagram
)

var formatNames = map[Format]string{
	FormatList:    "list",
	FormatDump:    "dump",
	FormatDiagram: "diagram",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

const emptyLine = "empty train line"

// Render writes l to w in format f.
func Render(w io.Writer, l *line.Line, f Format) error {
	switch f {
	case FormatList:
		return List(w, l)
	case FormatDump:
		return Dump(w, l)
	case FormatDiagram:
		return Diagram(w, l)
	default:
		return fmt.Errorf("unknown format %s", f)
	}
}

// String is Render into a string.
func String(l *line.Line, f Format) string {
	b := new(strings.Builder)
	err := Render(b, l, f)
	if err != nil {
		// strings.Builder never fails, so only an unknown format gets here
		return err.Error()
	}
	return b.String()
}

// List writes e.g. "howard --> jarvis --> morse".
func List(w io.Writer, l *line.Line) error {
	if l.IsEmpty() {
		_, err := fmt.Fprintln(w, emptyLine)
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(l.Names(), " --> "))
	return err
}

// Dump writes the line forwards then backwards, following Next and Previous links respectively.
func Dump(w io.Writer, l *line.Line) error {
	if l.IsEmpty() {
		_, err := fmt.Fprintln(w, emptyLine)
		return err
	}
	_, err := fmt.Fprintf(w, "%s (%d stations)\n", l.Name, l.Count())
	if err != nil {
		return err
	}
	for _, dir := range []line.Direction{line.Forward, line.Backward} {
		b := new(strings.Builder)
		fmt.Fprintf(b, "%-10s ", dir.String()+":")
		l.Walk(dir, func(_ line.StationI, s line.Station) bool {
			fmt.Fprintf(b, "%s --> ", s.Name)
			return true
		})
		b.WriteString("null")
		_, err = fmt.Fprintln(w, b.String())
		if err != nil {
			return err
		}
	}
	return nil
}
