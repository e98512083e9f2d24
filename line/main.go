// Package line models a transit line as an append-only chain of stations.
//
// Stations live in a slice owned by their Line and refer to their neighbours by index, so there are
// no pointer cycles between stations.
package line

import (
	"errors"
	"fmt"
)

// StationI is the index of a Station in its Line.
type StationI int

// None is the StationI used when there is no neighbour.
const None StationI = -1

// NotFound is returned by IndexOf when no station matches.
const NotFound = -1

var (
	ErrBrokenLink    = errors.New("asymmetric link")
	ErrCountMismatch = errors.New("count mismatch")
)

type Direction bool

const (
	Forward  Direction = false
	Backward Direction = true
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Station is a single named stop.
type Station struct {
	// Name of the station. Not necessarily unique within a Line.
	Name string
	// Next is the following station, or None if this is the last one.
	Next StationI
	// Previous is the preceding station, or None if this is the first one.
	Previous StationI
}

func (s Station) String() string {
	return fmt.Sprintf("%s (%d ← → %d)", s.Name, s.Previous, s.Next)
}

type Line struct {
	// Name is a human-readable label, e.g. "red line sb".
	Name     string
	stations []Station
	head     StationI
	tail     StationI
	count    int
}

// New returns a Line with no stations.
func New(name string) *Line {
	return &Line{
		Name: name,
		head: None,
		tail: None,
	}
}

// NewWithHead returns a Line whose only station is head.
func NewWithHead(name, head string) *Line {
	l := New(name)
	l.Append(head)
	return l
}

// checkStation panics if i doesn't exist in this Line.
func (l *Line) checkStation(i StationI) {
	if i < 0 || int(i) >= len(l.stations) {
		panic(fmt.Sprintf("invalid StationI %d (line %s has %d)", i, l.Name, len(l.stations)))
	}
}

// Append adds a station after the current tail.
func (l *Line) Append(name string) StationI {
	i := StationI(len(l.stations))
	l.stations = append(l.stations, Station{
		Name:     name,
		Next:     None,
		Previous: None,
	})
	if l.head == None {
		l.head = i
	} else {
		l.SetNext(l.tail, i)
		l.SetPrevious(i, l.tail)
	}
	l.tail = i
	l.count++
	return i
}

func (l *Line) Count() int { return l.count }

func (l *Line) IsEmpty() bool { return l.head == None }

func (l *Line) Head() (StationI, bool) { return l.head, l.head != None }

func (l *Line) Tail() (StationI, bool) { return l.tail, l.tail != None }

// Station returns a copy of the station at i.
func (l *Line) Station(i StationI) Station {
	l.checkStation(i)
	return l.stations[i]
}

func (l *Line) Next(i StationI) (next StationI, exists bool) {
	l.checkStation(i)
	next = l.stations[i].Next
	return next, next != None
}

func (l *Line) Previous(i StationI) (prev StationI, exists bool) {
	l.checkStation(i)
	prev = l.stations[i].Previous
	return prev, prev != None
}

// SetNext overwrites the forward link of i. The backward link of next is not touched.
func (l *Line) SetNext(i, next StationI) {
	l.checkStation(i)
	l.stations[i].Next = next
}

// SetPrevious overwrites the backward link of i. The forward link of prev is not touched.
func (l *Line) SetPrevious(i, prev StationI) {
	l.checkStation(i)
	l.stations[i].Previous = prev
}

// Walk calls fn for each station in order until fn returns false.
func (l *Line) Walk(dir Direction, fn func(i StationI, s Station) bool) {
	cur := l.head
	if dir == Backward {
		cur = l.tail
	}
	for cur != None {
		s := l.stations[cur]
		if !fn(cur, s) {
			return
		}
		if dir == Backward {
			cur = s.Previous
		} else {
			cur = s.Next
		}
	}
}

func (l *Line) Contains(name string) bool {
	return l.IndexOf(name) != NotFound
}

// IndexOf returns the zero-based position of the first station called name, or NotFound.
func (l *Line) IndexOf(name string) int {
	index := 0
	found := NotFound
	l.Walk(Forward, func(_ StationI, s Station) bool {
		if s.Name == name {
			found = index
			return false
		}
		index++
		return true
	})
	return found
}

// Names returns the station names from head to tail.
func (l *Line) Names() []string {
	return l.names(Forward)
}

// Reverse returns the station names from tail to head.
func (l *Line) Reverse() []string {
	return l.names(Backward)
}

func (l *Line) names(dir Direction) []string {
	names := make([]string, 0, l.count)
	l.Walk(dir, func(_ StationI, s Station) bool {
		names = append(names, s.Name)
		return true
	})
	return names
}

// Check returns an error if any link is asymmetric or count disagrees with the chain.
func (l *Line) Check() error {
	if (l.head == None) != (l.count == 0) || (l.tail == None) != (l.count == 0) {
		return fmt.Errorf("head %d, tail %d with %d stations: %w", l.head, l.tail, l.count, ErrCountMismatch)
	}
	if l.head == None {
		return nil
	}
	if p := l.stations[l.head].Previous; p != None {
		return fmt.Errorf("head %d has previous %d: %w", l.head, p, ErrBrokenLink)
	}
	if n := l.stations[l.tail].Next; n != None {
		return fmt.Errorf("tail %d has next %d: %w", l.tail, n, ErrBrokenLink)
	}
	cur := l.head
	for steps := 1; ; steps++ {
		s := l.stations[cur]
		if s.Next == None {
			if cur != l.tail {
				return fmt.Errorf("forward walk ended at %d, not tail %d: %w", cur, l.tail, ErrBrokenLink)
			}
			if steps != l.count {
				return fmt.Errorf("forward walk took %d stations, expected %d: %w", steps, l.count, ErrCountMismatch)
			}
			break
		}
		if steps > l.count {
			return fmt.Errorf("forward walk exceeded %d stations: %w", l.count, ErrCountMismatch)
		}
		if s.Next < 0 || int(s.Next) >= len(l.stations) {
			return fmt.Errorf("%d → %d out of range: %w", cur, s.Next, ErrBrokenLink)
		}
		if back := l.stations[s.Next].Previous; back != cur {
			return fmt.Errorf("%d → %d but %d ← %d: %w", cur, s.Next, back, s.Next, ErrBrokenLink)
		}
		cur = s.Next
	}
	cur = l.tail
	for steps := 1; cur != l.head; steps++ {
		if steps > l.count {
			return fmt.Errorf("backward walk exceeded %d stations: %w", l.count, ErrCountMismatch)
		}
		cur = l.stations[cur].Previous
		if cur == None {
			return fmt.Errorf("backward walk ended before head %d: %w", l.head, ErrBrokenLink)
		}
	}
	return nil
}

func (l *Line) String() string {
	return fmt.Sprintf("%s (%d stations)", l.Name, l.count)
}
