// Package config reads the lines to load at startup from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"nyiyui.ca/hato/rosen/line"
	"nyiyui.ca/hato/rosen/line/preset/cta"
)

var ErrUnknownPreset = errors.New("unknown preset")

type Config struct {
	Lines []LineConfig `json:"lines"`
}

type LineConfig struct {
	// ID identifies the line to HTTP clients. A random one is assigned if omitted or "".
	ID uuid.UUID `json:"id"`
	// Name overrides the preset's name if set.
	Name string `json:"name"`
	// Preset is a key of cta.Presets. Mutually exclusive with Stations.
	Preset   string   `json:"preset"`
	Stations []string `json:"stations"`
}

func (lc *LineConfig) UnmarshalJSON(data []byte) error {
	type plain LineConfig
	var raw struct {
		plain
		ID string `json:"id"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	*lc = LineConfig(raw.plain)
	lc.ID = uuid.UUID{}
	if raw.ID != "" {
		lc.ID, err = uuid.Parse(raw.ID)
		if err != nil {
			return fmt.Errorf("id %q: %w", raw.ID, err)
		}
	}
	return nil
}

// Build returns a new Line with the configured stations.
func (lc LineConfig) Build() (*line.Line, error) {
	if lc.Preset != "" && len(lc.Stations) != 0 {
		return nil, errors.New("preset and stations both set")
	}
	if lc.Preset != "" {
		p, ok := cta.Presets[lc.Preset]
		if !ok {
			return nil, fmt.Errorf("%s: %w", lc.Preset, ErrUnknownPreset)
		}
		l := p.Build()
		if lc.Name != "" {
			l.Name = lc.Name
		}
		return l, nil
	}
	l := line.New(lc.Name)
	for _, s := range lc.Stations {
		l.Append(s)
	}
	return l, nil
}

func Parse(data []byte) (Config, error) {
	var c Config
	err := json.Unmarshal(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	seen := map[uuid.UUID]int{}
	for i := range c.Lines {
		lc := &c.Lines[i]
		if lc.ID == (uuid.UUID{}) {
			lc.ID = uuid.New()
			zap.S().Debugw("assigned line id", "index", i, "id", lc.ID)
		}
		if j, ok := seen[lc.ID]; ok {
			return Config{}, fmt.Errorf("line %d: id %s already used by line %d", i, lc.ID, j)
		}
		seen[lc.ID] = i
		if lc.Preset == "" && lc.Name == "" {
			return Config{}, fmt.Errorf("line %d: name or preset required", i)
		}
	}
	return c, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
