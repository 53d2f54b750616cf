// Package replay runs scripted pointer events through a scene without a
// window.
package replay

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/constellation/internal/config"
)

// Viewport size used for click events
const (
	ViewportWidth  = 800
	ViewportHeight = 600
)

// Kind is the type of a scripted event
type Kind string

const (
	KindPick  Kind = "pick"
	KindMiss  Kind = "miss"
	KindReset Kind = "reset"
	KindClick Kind = "click"
)

// Script is a replay file
type Script struct {
	Name     string      `yaml:"name" validate:"max=200"`
	Capacity int         `yaml:"capacity" validate:"min=0"`
	Points   [][]float64 `yaml:"points" validate:"dive,len=3"`
	Events   []string    `yaml:"events" validate:"required,min=1"`

	parsed []Event
}

// Event is one parsed script line
type Event struct {
	Kind  Kind
	Index int
	X, Y  float64
}

func (e Event) String() string {
	switch e.Kind {
	case KindPick:
		return fmt.Sprintf("pick %d", e.Index)
	case KindClick:
		return fmt.Sprintf("click %g %g", e.X, e.Y)
	default:
		return string(e.Kind)
	}
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := config.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	s.parsed = make([]Event, 0, len(s.Events))
	for i, line := range s.Events {
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		s.parsed = append(s.parsed, ev)
	}
	return &s, nil
}

// Parsed returns the decoded events
func (s *Script) Parsed() []Event {
	return s.parsed
}

// ParseEvent parses "pick <i>", "miss", "reset" or "click <x> <y>"
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("empty event")
	}

	kind := Kind(strings.ToLower(fields[0]))
	args := fields[1:]

	switch kind {
	case KindMiss, KindReset:
		if len(args) != 0 {
			return Event{}, fmt.Errorf("%s takes no arguments", kind)
		}
		return Event{Kind: kind}, nil

	case KindPick:
		if len(args) != 1 {
			return Event{}, fmt.Errorf("usage: pick <index>")
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return Event{}, fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		return Event{Kind: kind, Index: index}, nil

	case KindClick:
		if len(args) != 2 {
			return Event{}, fmt.Errorf("usage: click <x> <y>")
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Event{}, fmt.Errorf("invalid x %q: %w", args[0], err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Event{}, fmt.Errorf("invalid y %q: %w", args[1], err)
		}
		return Event{Kind: kind, X: x, Y: y}, nil
	}

	return Event{}, fmt.Errorf("unknown event %q", fields[0])
}
