package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/philipparndt/constellation/internal/config"
	"github.com/philipparndt/constellation/pkg/constellation"
)

const threePoints = `
points:
  - [0, 0, 0]
  - [1, 0, 0]
  - [0, 1, 0]
`

func run(t *testing.T, script string) Result {
	t.Helper()
	s, err := Parse([]byte(script))
	require.NoError(t, err)
	sc := NewScene(s, config.Default(), zap.NewNop(), nil)
	return Run(s, sc)
}

func TestScenarioSingleEdge(t *testing.T) {
	res := run(t, threePoints+`
events: [pick 0, pick 1]
`)
	assert.Equal(t, []constellation.Edge{{A: 0, B: 1}}, res.Edges)
	assert.Equal(t, 2, res.DrawRange)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0}, res.Vertices)
	assert.Equal(t, "Selected: -  Lines: 1", res.Steps[1].Status)
}

func TestScenarioMissCancels(t *testing.T) {
	res := run(t, threePoints+`
events: [pick 0, miss, pick 1, pick 2]
`)
	assert.Equal(t, []constellation.Edge{{A: 1, B: 2}}, res.Edges)
	assert.Equal(t, "miss", res.Steps[1].Outcome)
}

func TestScenarioCapacity(t *testing.T) {
	res := run(t, threePoints+`
capacity: 1
events: [pick 0, pick 1, pick 0, pick 2]
`)
	assert.Equal(t, []constellation.Edge{{A: 0, B: 1}}, res.Edges)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, "dropped", res.Steps[3].Outcome)
}

func TestResetAndName(t *testing.T) {
	res := run(t, threePoints+`
name: Triangle
events: [pick 0, pick 1, reset, pick 1, pick 2]
`)
	assert.Equal(t, "Triangle", res.Name)
	assert.Equal(t, []constellation.Edge{{A: 1, B: 2}}, res.Edges)
	assert.Equal(t, "reset", res.Steps[2].Outcome)
}

func TestClickEvents(t *testing.T) {
	// Star 0 is dead ahead of the camera, star 1 well off to the right
	res := run(t, `
points:
  - [0, 0, -1000]
  - [300, 0, -1000]
events:
  - click 400 300
  - click 560 300
  - click 10 10
`)
	assert.Equal(t, "pending", res.Steps[0].Outcome)
	assert.Equal(t, "edge", res.Steps[1].Outcome)
	assert.Equal(t, "miss", res.Steps[2].Outcome)
	assert.Equal(t, []constellation.Edge{{A: 0, B: 1}}, res.Edges)
}

func TestGeneratedCloudFromConfig(t *testing.T) {
	s, err := Parse([]byte("events: [pick 3, pick 4]\n"))
	require.NoError(t, err)

	cfg := config.Default()
	seed := uint64(1)
	cfg.Stars.Count = 10
	cfg.Stars.Seed = &seed

	sc := NewScene(s, cfg, zap.NewNop(), nil)
	res := Run(s, sc)
	assert.Equal(t, 10, sc.Cloud.Len())
	assert.Equal(t, cfg.Constellation.Name, res.Name)
	assert.Len(t, res.Edges, 1)
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		line string
		want Event
	}{
		{"pick 7", Event{Kind: KindPick, Index: 7}},
		{"  PICK   -1 ", Event{Kind: KindPick, Index: -1}},
		{"miss", Event{Kind: KindMiss}},
		{"reset", Event{Kind: KindReset}},
		{"click 10.5 20", Event{Kind: KindClick, X: 10.5, Y: 20}},
	}
	for _, tt := range tests {
		got, err := ParseEvent(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}

	for _, bad := range []string{"", "pick", "pick x", "miss 1", "click 1", "click a 1", "zoom 2"} {
		_, err := ParseEvent(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("events: []\n"))
	assert.ErrorContains(t, err, "invalid script: events:")

	_, err = Parse([]byte("name: only\n"))
	assert.ErrorContains(t, err, "events: field is required")

	_, err = Parse([]byte("points: [[1, 2]]\nevents: [miss]\n"))
	assert.ErrorContains(t, err, "points[0]: must have length 3")

	_, err = Parse([]byte("events: [miss, jump]\n"))
	assert.ErrorContains(t, err, "event 2")

	_, err = Parse([]byte("events: {"))
	assert.ErrorContains(t, err, "failed to parse script")
}

func TestLoadAndPrint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(threePoints+"events: [pick 0, pick 2]\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	res := Run(s, NewScene(s, config.Default(), zap.NewNop(), nil))

	var buf bytes.Buffer
	res.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Constellation: My Constellation")
	assert.Contains(t, out, "0-2")
	assert.Contains(t, out, "(0.00, 0.00, 0.00) -> (0.00, 1.00, 0.00)")
	assert.Contains(t, out, "Draw range: 2")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read script")
}
