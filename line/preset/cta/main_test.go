package cta

import "testing"

func TestRedLine(t *testing.T) {
	l := RedLine()
	if err := l.Check(); err != nil {
		t.Fatalf("check: %s", err)
	}
	if got := l.Count(); got != 31 {
		t.Fatalf("expected 31 stations, got %d", got)
	}
	if got := l.IndexOf("thorndale"); got != 5 {
		t.Fatalf("thorndale: expected 5, got %d", got)
	}
	tail, _ := l.Tail()
	if got := l.Station(tail).Name; got != "95th/dan ryan" {
		t.Fatalf("tail: expected 95th/dan ryan, got %s", got)
	}
	if l.Name != RedLineSouthbound {
		t.Fatalf("name: %s", l.Name)
	}
}
