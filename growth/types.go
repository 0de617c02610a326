package growth

import (
	"errors"
	"time"

	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/bhr"
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/hampath"
)

// MaxIterations bounds the iteration budget a single Run accepts.
const MaxIterations = 50

var (
	// ErrUnknownMode is returned when the evolution mode is not one of
	// ModeIncrement / ModeAppend.
	ErrUnknownMode = errors.New("growth: unknown evolution mode")

	// ErrIterationBudget is returned when the iteration count lies outside
	// [1, MaxIterations].
	ErrIterationBudget = errors.New("growth: iteration count out of range")

	// ErrEdgeCountMismatch is returned when the initial frequency partition
	// does not account for exactly len(path)−1 edges.
	ErrEdgeCountMismatch = errors.New("growth: partition edge count does not match path")

	// ErrHopOutOfRange is returned when the initial partition requires a hop
	// length beyond ⌊p/2⌋ for the initial vertex count p.
	ErrHopOutOfRange = errors.New("growth: hop length out of range for initial path")
)

// Mode selects how the frequency partition evolves between iterations.
type Mode uint8

const (
	// ModeIncrement cyclically increments the count of an existing hop
	// length: iteration i (1-indexed) bumps part (i−1) mod |FP|.
	ModeIncrement Mode = iota

	// ModeAppend appends a brand-new hop length with count 1, unless doing
	// so would push the number of distinct hop lengths past ⌊p_new/2⌋
	// (the iteration is then skipped and the base left untouched).
	ModeAppend
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeIncrement:
		return "increment"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Outcome classifies one iteration's result. All four are ordinary values:
// only precondition violations abort a run.
type Outcome uint8

const (
	// OutcomeSuccess: a path realizing the evolved partition was found and
	// committed as the new base.
	OutcomeSuccess Outcome = iota

	// OutcomeSkipped: the evolved partition needs a hop length beyond
	// ⌊p/2⌋ for its target vertex count — append-mode hit the distinct-hop
	// bound, or an increment landed on an unavailable hop length. No
	// feasibility check or construction was attempted.
	OutcomeSkipped

	// OutcomeInfeasible: the evolved partition failed the divisor necessary
	// condition; construction was not attempted.
	OutcomeInfeasible

	// OutcomeExhausted: the partition passed the necessary condition but
	// all three construction stages failed (or the time budget ran out).
	OutcomeExhausted
)

// String returns the canonical outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeInfeasible:
		return "infeasible"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Record is one iteration's structured outcome, emitted to the sink and
// collected in the slice Run returns.
type Record struct {
	// Iteration is the 1-indexed iteration number.
	Iteration int

	// P is the target vertex count of this iteration (for a skipped
	// iteration, the count it would have targeted).
	P int

	// PrevFP is the base partition the iteration started from; FP is the
	// evolved target (for a skipped iteration, the append it attempted).
	PrevFP cyclic.Frequency
	FP     cyclic.Frequency

	// Outcome classifies the iteration; Feasible reports the necessary
	// condition (meaningful unless the iteration was skipped), and
	// Violation carries the failing divisor diagnostics when infeasible.
	Outcome   Outcome
	Feasible  bool
	Violation bhr.Result

	// Method is the construction strategy that succeeded (MethodNone when
	// none ran or none succeeded); Path is the resulting path, nil on a
	// negative outcome.
	Method hampath.Method
	Path   []int

	// Backtracks and Elapsed are the construction diagnostics, accumulated
	// across every attempted stage.
	Backtracks int
	Elapsed    time.Duration
}

// Sink consumes records as the run produces them. Implementations decide
// the persistence format; the loop never touches files or loggers itself.
type Sink interface {
	Record(Record)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Record)

// Record implements Sink.
func (f SinkFunc) Record(r Record) { f(r) }

// RunOptions holds configurable parameters for a growth run.
type RunOptions struct {
	// Sink receives every Record as it is produced; nil means records are
	// only collected and returned.
	Sink Sink

	// Search configures the construction stages (TopK, soft TimeLimit).
	Search hampath.Options
}

// Option configures optional behavior of Run.
type Option func(*RunOptions)

// DefaultRunOptions returns a RunOptions with no sink and the canonical
// search configuration (TopK = 3, unbounded search).
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Sink:   nil,
		Search: hampath.DefaultOptions(),
	}
}

// WithSink returns an Option that streams records to s. A nil s has no
// effect (records are still returned).
func WithSink(s Sink) Option {
	return func(o *RunOptions) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithTopK returns an Option that bounds how many best-scored candidates
// the greedy insertion inspects per iteration.
func WithTopK(k int) Option {
	return func(o *RunOptions) {
		o.Search.TopK = k
	}
}

// WithTimeLimit returns an Option installing a per-iteration soft time
// budget on the exhaustive search; an exceeded budget records the iteration
// as exhausted instead of aborting the run.
func WithTimeLimit(d time.Duration) Option {
	return func(o *RunOptions) {
		o.Search.TimeLimit = d
	}
}

// Stats aggregates a run's records; see Summary.
type Stats struct {
	Iterations int
	Successes  int
	Skipped    int
	Infeasible int
	Exhausted  int

	// TotalBacktracks and TotalElapsed sum the construction diagnostics
	// across all iterations.
	TotalBacktracks int
	TotalElapsed    time.Duration

	// FinalP is the vertex count of the last committed base path, or 0
	// when no iteration succeeded.
	FinalP int
}
