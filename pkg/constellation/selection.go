package constellation

import "fmt"

// Selection is the half-built edge: either empty or one pending star
type Selection struct {
	index   int
	pending bool
}

// Empty is the selection with nothing picked
func Empty() Selection {
	return Selection{}
}

// Pending is the selection waiting for a second star
func Pending(index int) Selection {
	return Selection{index: index, pending: true}
}

// Index returns the pending star, or false when the selection is empty
func (s Selection) Index() (int, bool) {
	return s.index, s.pending
}

// IsEmpty reports whether no star is pending
func (s Selection) IsEmpty() bool {
	return !s.pending
}

func (s Selection) String() string {
	if !s.pending {
		return "Empty"
	}
	return fmt.Sprintf("Pending(%d)", s.index)
}

// Edge connects two distinct stars in pick order
type Edge struct {
	A, B int
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// Outcome classifies what a pointer event did to the graph
type Outcome int

const (
	OutcomePending Outcome = iota // First star selected
	OutcomeCleared                // Same star picked again
	OutcomeEdge                   // Edge appended
	OutcomeDropped                // Edge discarded, buffer full
	OutcomeMiss                   // Pointer hit no star
	OutcomeInvalid                // Index outside the cloud
)

var outcomeNames = [...]string{
	OutcomePending: "pending",
	OutcomeCleared: "cleared",
	OutcomeEdge:    "edge",
	OutcomeDropped: "dropped",
	OutcomeMiss:    "miss",
	OutcomeInvalid: "invalid",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Outcomes lists every outcome in declaration order
func Outcomes() []Outcome {
	return []Outcome{OutcomePending, OutcomeCleared, OutcomeEdge, OutcomeDropped, OutcomeMiss, OutcomeInvalid}
}
