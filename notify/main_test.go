package notify

import (
	"testing"
	"time"
)

func TestMultiplexer(t *testing.T) {
	ms, m := NewMultiplexerSender[int]("test")
	a := make(chan int, 1)
	b := make(chan int, 1)
	m.Subscribe("a", a)
	m.Subscribe("b", b)
	ms.SendSync(1)
	if got := <-a; got != 1 {
		t.Fatalf("a: expected 1, got %d", got)
	}
	if got := <-b; got != 1 {
		t.Fatalf("b: expected 1, got %d", got)
	}
	m.Unsubscribe(a)
	if got := m.Len(); got != 1 {
		t.Fatalf("expected 1 subscriber, got %d", got)
	}
	ms.SendSync(2)
	select {
	case v := <-a:
		t.Fatalf("unsubscribed a received %d", v)
	default:
	}
	if got := <-b; got != 2 {
		t.Fatalf("b: expected 2, got %d", got)
	}
}

func TestMultiplexerTimeout(t *testing.T) {
	ms, m := NewMultiplexerSender[string]("test")
	m.Timeout = 10 * time.Millisecond
	stuck := make(chan string)
	ok := make(chan string, 1)
	m.Subscribe("stuck", stuck)
	m.Subscribe("ok", ok)
	ms.SendSync("x")
	if got := <-ok; got != "x" {
		t.Fatalf("expected x, got %s", got)
	}
}

func TestUnsubscribeTwice(t *testing.T) {
	_, m := NewMultiplexerSender[int]("test")
	c := make(chan int)
	m.Subscribe("c", c)
	m.Unsubscribe(c)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	m.Unsubscribe(c)
}
