// Package scene ties the star cloud, the camera and the constellation graph
// into the context object handed to pointer handlers.
package scene

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/pkg/constellation"
	"github.com/philipparndt/constellation/pkg/geometry"
	"github.com/philipparndt/constellation/pkg/pick"
	"github.com/philipparndt/constellation/pkg/starfield"
	"github.com/philipparndt/constellation/pkg/viewer"
)

// Scene is one editing session over a star cloud. Render surfaces keep
// Camera and Viewport current and forward pointer events; everything else is
// owned here.
type Scene struct {
	Session  uuid.UUID
	Cloud    *starfield.Cloud
	Graph    *constellation.Graph
	Resolver *pick.Resolver
	Camera   *viewer.Camera
	Viewport viewer.Viewport

	log *zap.Logger
}

// Options configures a new scene
type Options struct {
	Name      string
	Capacity  int
	Tolerance float64 // Pixels
	FOV       float64 // Degrees
	Distance  float64 // Camera distance from the center
	Logger    *zap.Logger
	Observer  constellation.Observer

	// Source overrides where the graph reads positions from. Surfaces that
	// upload the cloud asynchronously pass a source that reports nil until
	// the upload is done. Defaults to the cloud itself.
	Source constellation.PositionSource
}

// New creates a scene over cloud
func New(cloud *starfield.Cloud, opts Options) *Scene {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FOV <= 0 {
		opts.FOV = 60
	}
	if opts.Distance <= 0 {
		opts.Distance = 0.1
	}

	var source constellation.PositionSource = cloud
	if opts.Source != nil {
		source = opts.Source
	}

	session := uuid.New()
	log := opts.Logger.With(zap.String("session", session.String()))

	s := &Scene{
		Session: session,
		Cloud:   cloud,
		Graph: constellation.New(cloud.Len(), source, constellation.Options{
			Name:     opts.Name,
			Capacity: opts.Capacity,
			Logger:   log.Named("graph"),
			Observer: opts.Observer,
		}),
		Resolver: pick.NewResolver(opts.Tolerance),
		Camera:   viewer.NewCamera(opts.FOV, opts.Distance, cloud.Radius()),
		log:      log,
	}

	log.Info("scene created",
		zap.Int("stars", cloud.Len()),
		zap.Float64("radius", cloud.Radius()),
		zap.Int("capacity", s.Graph.Buffer().Capacity()),
		zap.Float64("tolerance", s.Resolver.Tolerance))
	return s
}

// Resize updates the viewport after the render surface changed size
func (s *Scene) Resize(vp viewer.Viewport) {
	s.Viewport = vp
}

// HandlePointer resolves a pointer press and feeds the result to the graph
func (s *Scene) HandlePointer(ev pick.Event) constellation.Outcome {
	index, ok := s.Resolver.Resolve(ev, s.Camera, s.Viewport, s.Cloud)
	if !ok {
		x, y := ev.Client()
		return s.HandleMissEvent(x, y)
	}
	return s.Graph.HandlePick(index)
}

// HandleMissEvent handles a press that hit the background
func (s *Scene) HandleMissEvent(x, y float64) constellation.Outcome {
	s.log.Debug("pointer missed", zap.Float64("x", x), zap.Float64("y", y))
	s.Graph.HandleMiss()
	return constellation.OutcomeMiss
}

// Highlight returns the pending star position for the marker
func (s *Scene) Highlight() (geometry.Vector3, bool) {
	return s.Graph.Highlight()
}

// Logger returns the session logger
func (s *Scene) Logger() *zap.Logger {
	return s.log
}
