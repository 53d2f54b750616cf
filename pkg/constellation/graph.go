// Package constellation turns star picks into a set of line segments.
//
// A Graph owns the selection state machine and the append-only edge list,
// and serializes the edges into a fixed-capacity LineBuffer whenever the list
// changes:
//
//	Empty      --pick(i)--> Pending(i)
//	Pending(i) --pick(i)--> Empty
//	Pending(i) --pick(j)--> Empty, Edge(i, j)
//	any        --miss-----> Empty
package constellation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/philipparndt/constellation/pkg/geometry"
)

const (
	DefaultCapacity = 2000
	DefaultName     = "My Constellation"
)

// PositionSource supplies the flat xyz positions of all stars. Positions
// returns nil while the backing storage is not available yet.
type PositionSource interface {
	Positions() []float32
}

// Observer receives graph events for metrics
type Observer interface {
	Picked(o Outcome)
	Rebuilt(liveEdges int)
	Deferred()
}

type nopObserver struct{}

func (nopObserver) Picked(Outcome) {}
func (nopObserver) Rebuilt(int)    {}
func (nopObserver) Deferred()      {}

// Options configures a Graph. Zero values select the defaults.
type Options struct {
	Name     string
	Capacity int
	Logger   *zap.Logger
	Observer Observer
}

// Graph is the constellation being built. It is not safe for concurrent use;
// all calls are expected from the render loop.
type Graph struct {
	name      string
	points    int
	source    PositionSource
	positions []float32 // Cached once the source is mounted

	edges     []Edge
	selection Selection
	buffer    *LineBuffer
	stale     bool // Buffer lags the edge list
	dropped   int

	log      *zap.Logger
	observer Observer
}

// New creates a graph over a cloud of points stars
func New(points int, source PositionSource, opts Options) *Graph {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	return &Graph{
		name:     opts.Name,
		points:   points,
		source:   source,
		buffer:   NewLineBuffer(opts.Capacity),
		log:      opts.Logger,
		observer: opts.Observer,
	}
}

// HandlePick advances the selection state machine with a picked star
func (g *Graph) HandlePick(index int) Outcome {
	if index < 0 || index >= g.points {
		g.log.Debug("pick outside cloud", zap.Int("index", index), zap.Int("points", g.points))
		g.selection = Empty()
		return g.report(OutcomeInvalid)
	}

	pending, ok := g.selection.Index()
	switch {
	case !ok:
		g.selection = Pending(index)
		return g.report(OutcomePending)
	case pending == index:
		g.selection = Empty()
		return g.report(OutcomeCleared)
	}

	g.selection = Empty()
	edge := Edge{A: pending, B: index}
	if len(g.edges) >= g.buffer.Capacity() {
		g.dropped++
		g.log.Warn("line buffer full, edge dropped",
			zap.Stringer("edge", edge),
			zap.Int("capacity", g.buffer.Capacity()),
			zap.Int("dropped", g.dropped))
		return g.report(OutcomeDropped)
	}

	g.edges = append(g.edges, edge)
	g.log.Debug("edge added", zap.Stringer("edge", edge), zap.Int("edges", len(g.edges)))
	g.Rebuild()
	return g.report(OutcomeEdge)
}

// HandleMiss clears the selection. It never adds an edge.
func (g *Graph) HandleMiss() {
	g.selection = Empty()
	g.report(OutcomeMiss)
}

func (g *Graph) report(o Outcome) Outcome {
	g.observer.Picked(o)
	return o
}

// Rebuild rewrites the line buffer from the edge list. While the position
// source is not mounted it does nothing and returns false; the next change
// to the edge list retries.
func (g *Graph) Rebuild() bool {
	positions := g.load()
	if positions == nil {
		g.stale = true
		g.log.Debug("positions not mounted, rebuild deferred", zap.Int("edges", len(g.edges)))
		g.observer.Deferred()
		return false
	}

	live := g.buffer.write(g.edges, positions)
	g.stale = false
	g.observer.Rebuilt(live)
	return true
}

// load returns the cached positions, fetching them from the source on first
// success
func (g *Graph) load() []float32 {
	if g.positions != nil {
		return g.positions
	}
	if g.source == nil {
		return nil
	}
	p := g.source.Positions()
	if p == nil || len(p) < g.points*3 {
		return nil
	}
	g.positions = p
	g.log.Debug("positions mounted", zap.Int("points", g.points))
	return g.positions
}

// Highlight returns the position of the pending star
func (g *Graph) Highlight() (geometry.Vector3, bool) {
	index, ok := g.selection.Index()
	if !ok {
		return geometry.Vector3{}, false
	}
	positions := g.load()
	if positions == nil {
		return geometry.Vector3{}, false
	}
	o := index * 3
	return geometry.NewVector3(float64(positions[o]), float64(positions[o+1]), float64(positions[o+2])), true
}

// Reset removes all edges and the selection
func (g *Graph) Reset() {
	g.edges = g.edges[:0]
	g.selection = Empty()
	g.log.Debug("constellation reset")
	g.Rebuild()
}

// Edges returns a copy of the edge list in insertion order
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Selection returns the current selection state
func (g *Graph) Selection() Selection {
	return g.selection
}

// Buffer returns the line buffer consumed by render surfaces
func (g *Graph) Buffer() *LineBuffer {
	return g.buffer
}

// Stale reports whether the buffer is waiting for the positions to mount
func (g *Graph) Stale() bool {
	return g.stale
}

// Dropped returns how many edges were discarded because the buffer was full
func (g *Graph) Dropped() int {
	return g.dropped
}

// Points returns the number of stars the graph accepts picks for
func (g *Graph) Points() int {
	return g.points
}

func (g *Graph) Name() string {
	return g.name
}

func (g *Graph) SetName(name string) {
	g.name = name
}

// Status returns the overlay text, e.g. "Selected: 12  Lines: 3"
func (g *Graph) Status() string {
	selected := "-"
	if index, ok := g.selection.Index(); ok {
		selected = fmt.Sprintf("%d", index)
	}
	return fmt.Sprintf("Selected: %s  Lines: %d", selected, len(g.edges))
}
