package render

import (
	_ "embed"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"nyiyui.ca/hato/rosen/line"
	"nyiyui.ca/hato/rosen/line/preset/cta"
)

//go:embed testdata/redline.txt
var redLineDiagram string

func abc() *line.Line {
	l := line.New("abc")
	for _, name := range []string{"A", "B", "C"} {
		l.Append(name)
	}
	return l
}

func TestDiagramRedLine(t *testing.T) {
	got := String(cta.RedLine(), FormatDiagram)
	if diff := cmp.Diff(redLineDiagram, got); diff != "" {
		t.Fatalf("diagram (-want +got):\n%s", diff)
	}
}

func TestDiagramNoBreak(t *testing.T) {
	got := String(abc(), FormatDiagram)
	first := strings.SplitN(got, "\n", 2)[0]
	if first != "A --> B --> C" {
		t.Fatalf("first row: %q", first)
	}
}

func TestDiagramHeadIsBreak(t *testing.T) {
	l := line.New("t")
	for _, name := range []string{"thorndale", "x", "thorndale", "y"} {
		l.Append(name)
	}
	first := strings.SplitN(String(l, FormatDiagram), "\n", 2)[0]
	if first != "thorndale --> x --> thorndale --+" {
		t.Fatalf("first row: %q", first)
	}
}

func TestEmpty(t *testing.T) {
	for _, f := range []Format{FormatList, FormatDump, FormatDiagram} {
		t.Run(f.String(), func(t *testing.T) {
			if got := String(line.New("empty"), f); got != "empty train line\n" {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestList(t *testing.T) {
	if got := String(abc(), FormatList); got != "A --> B --> C\n" {
		t.Fatalf("got %q", got)
	}
}

func TestDump(t *testing.T) {
	expected := "abc (3 stations)\n" +
		"forward:   A --> B --> C --> null\n" +
		"backward:  C --> B --> A --> null\n"
	if diff := cmp.Diff(expected, String(abc(), FormatDump)); diff != "" {
		t.Fatalf("dump (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatList, FormatDump, FormatDiagram} {
		t.Run(fmt.Sprintf("%d", f), func(t *testing.T) {
			got, err := ParseFormat(f.String())
			if err != nil {
				t.Fatal(err)
			}
			if got != f {
				t.Fatalf("expected %s, got %s", f, got)
			}
		})
	}
	if _, err := ParseFormat("ascii"); err == nil {
		t.Fatal("expected error")
	}
}
