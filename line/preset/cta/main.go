// Package cta contains station lists for Chicago Transit Authority rail lines.
package cta

import "nyiyui.ca/hato/rosen/line"

// RedLineSouthbound is the name of the southbound Red Line (Howard to 95th/Dan Ryan).
const RedLineSouthbound = "red line sb"

// RedLineSouthboundStations lists the southbound Red Line from Howard.
// Names are lowercase to match the diagram in package render.
var RedLineSouthboundStations = []string{
	"howard", "jarvis", "morse", "loyola", "granville", "thorndale",
	"bryn mawr", "argyle", "wilson", "sheridan", "addison",
	"belmont", "fullerton", "north/clybourn", "clark/division",
	"chicago", "grand", "lake", "monroe", "jackson", "harrison", "roosevelt",
	"cermak-chinatown", "sox-35th", "47th", "garfield", "63rd", "69th",
	"79th", "87th", "95th/dan ryan",
}

// Presets maps preset names (as used in config files) to their station lists.
var Presets = map[string]Preset{
	"cta-red-sb": {Name: RedLineSouthbound, Stations: RedLineSouthboundStations},
}

type Preset struct {
	Name     string
	Stations []string
}

// Build returns a new Line with the preset's stations appended in order.
func (p Preset) Build() *line.Line {
	l := line.New(p.Name)
	for _, s := range p.Stations {
		l.Append(s)
	}
	return l
}

// RedLine builds the southbound Red Line.
func RedLine() *line.Line {
	return Presets["cta-red-sb"].Build()
}
