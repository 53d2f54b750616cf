package replay

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/philipparndt/constellation/internal/config"
	"github.com/philipparndt/constellation/pkg/constellation"
	"github.com/philipparndt/constellation/pkg/geometry"
	"github.com/philipparndt/constellation/pkg/pick"
	"github.com/philipparndt/constellation/pkg/scene"
	"github.com/philipparndt/constellation/pkg/starfield"
	"github.com/philipparndt/constellation/pkg/viewer"
)

// Step is the result of one event
type Step struct {
	Event   Event
	Outcome string
	Status  string
}

// Result is the state after running a script
type Result struct {
	Name      string
	Steps     []Step
	Edges     []constellation.Edge
	DrawRange int
	Vertices  []float32 // Live part of the line buffer
	Dropped   int
}

// NewScene builds the scene a script runs against. Fixed points replace the
// generated cloud; capacity and name fall back to the configuration.
func NewScene(s *Script, cfg config.Config, logger *zap.Logger, observer constellation.Observer) *scene.Scene {
	var cloud *starfield.Cloud
	if len(s.Points) > 0 {
		positions := make([]geometry.Vector3, len(s.Points))
		for i, p := range s.Points {
			positions[i] = geometry.NewVector3(p[0], p[1], p[2])
		}
		cloud = starfield.FromPositions(positions)
	} else {
		cloud = starfield.Generate(cfg.Stars.Count, cfg.Stars.Radius, cfg.Stars.Seed)
	}

	capacity := cfg.Constellation.MaxEdges
	if s.Capacity > 0 {
		capacity = s.Capacity
	}
	name := cfg.Constellation.Name
	if s.Name != "" {
		name = s.Name
	}

	sc := scene.New(cloud, scene.Options{
		Name:      name,
		Capacity:  capacity,
		Tolerance: cfg.Pick.Tolerance,
		FOV:       cfg.Camera.FOV,
		Distance:  cfg.Camera.Distance,
		Logger:    logger,
		Observer:  observer,
	})
	sc.Resize(viewer.NewViewport(ViewportWidth, ViewportHeight))
	return sc
}

// Run feeds every event of the script to the scene
func Run(s *Script, sc *scene.Scene) Result {
	res := Result{Name: sc.Graph.Name()}

	for _, ev := range s.Parsed() {
		var outcome string
		switch ev.Kind {
		case KindPick:
			outcome = sc.HandlePointer(pick.Hit(ev.Index, 0, 0)).String()
		case KindClick:
			outcome = sc.HandlePointer(pick.At(ev.X, ev.Y)).String()
		case KindMiss:
			outcome = sc.HandleMissEvent(0, 0).String()
		case KindReset:
			sc.Graph.Reset()
			outcome = "reset"
		}
		res.Steps = append(res.Steps, Step{Event: ev, Outcome: outcome, Status: sc.Graph.Status()})
	}

	buf := sc.Graph.Buffer()
	res.Edges = sc.Graph.Edges()
	res.DrawRange = buf.DrawRange()
	res.Vertices = buf.Vertices()[:buf.DrawRange()*3]
	res.Dropped = sc.Graph.Dropped()
	return res
}

// Print writes a human readable report of the result
func (r Result) Print(w io.Writer) {
	fmt.Fprintf(w, "Constellation: %s\n", r.Name)
	for i, step := range r.Steps {
		fmt.Fprintf(w, "  %3d  %-16s %-8s %s\n", i+1, step.Event, step.Outcome, step.Status)
	}

	fmt.Fprintf(w, "Edges: %d (dropped %d)\n", len(r.Edges), r.Dropped)
	for k, e := range r.Edges {
		if k*6+6 > len(r.Vertices) {
			fmt.Fprintf(w, "  %-9s (not written)\n", e)
			continue
		}
		v := r.Vertices[k*6 : k*6+6]
		fmt.Fprintf(w, "  %-9s (%.2f, %.2f, %.2f) -> (%.2f, %.2f, %.2f)\n",
			e, v[0], v[1], v[2], v[3], v[4], v[5])
	}
	fmt.Fprintf(w, "Draw range: %d\n", r.DrawRange)
}
