package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "lines.json"))
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if len(c.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(c.Lines))
	}
	if c.Lines[2].ID == (uuid.UUID{}) {
		t.Fatal("no id assigned")
	}
	red, err := c.Lines[0].Build()
	if err != nil {
		t.Fatal(err)
	}
	if red.Name != "red line sb" || red.Count() != 31 {
		t.Fatalf("red: %s", red)
	}
	purple, err := c.Lines[1].Build()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"linden", "central", "noyes"}, purple.Names()); diff != "" {
		t.Fatalf("purple (-want +got):\n%s", diff)
	}
	empty, err := c.Lines[2].Build()
	if err != nil {
		t.Fatal(err)
	}
	if !empty.IsEmpty() {
		t.Fatal("expected empty line")
	}
}

func TestEmptyID(t *testing.T) {
	c, err := Parse([]byte(`{"lines": [{"id": "", "name": "a"}, {"id": "2fe1cbb0-b584-45f5-96ec-a9bfd55b1e91", "name": "b"}]}`))
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if c.Lines[0].ID == (uuid.UUID{}) {
		t.Fatal("no id assigned for empty id")
	}
	if got := c.Lines[1].ID; got != uuid.MustParse("2fe1cbb0-b584-45f5-96ec-a9bfd55b1e91") {
		t.Fatalf("id: %s", got)
	}
	if c.Lines[1].Name != "b" {
		t.Fatalf("name: %q", c.Lines[1].Name)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		`{"lines": [{}]}`,
		`{"lines": [{"id": "nope", "name": "x"}]}`,
		`{"lines": [{"id": "a7453d82-d52f-43ec-84d2-54dcea72f8c1", "name": "x"}, {"id": "a7453d82-d52f-43ec-84d2-54dcea72f8c1", "name": "y"}]}`,
		`{"lines": `,
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			if _, err := Parse([]byte(tc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := LineConfig{Preset: "cta-blue"}.Build()
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	_, err = LineConfig{Preset: "cta-red-sb", Stations: []string{"a"}}.Build()
	if err == nil {
		t.Fatal("expected error")
	}
	l, err := LineConfig{Preset: "cta-red-sb", Name: "red"}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "red" {
		t.Fatalf("name not overridden: %s", l.Name)
	}
}
