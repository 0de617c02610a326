package growth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/cyclic"
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/growth"
	"github.com/RHanehalli/HamiltonianPathGenerator-FP-Exploration-HP-FrequencyPartition-Study/hampath"
)

// identity returns the path [0,1,…,n−1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func TestRun_Preconditions(t *testing.T) {
	_, err := growth.Run([]int{0, 1}, []int{1}, growth.Mode(9), 1)
	assert.ErrorIs(t, err, growth.ErrUnknownMode)

	_, err = growth.Run([]int{0, 1}, []int{1}, growth.ModeIncrement, 0)
	assert.ErrorIs(t, err, growth.ErrIterationBudget)

	_, err = growth.Run([]int{0, 1}, []int{1}, growth.ModeIncrement, growth.MaxIterations+1)
	assert.ErrorIs(t, err, growth.ErrIterationBudget)

	// FP accounts for 2 edges, the path carries 1.
	_, err = growth.Run([]int{0, 1}, []int{2}, growth.ModeIncrement, 1)
	assert.ErrorIs(t, err, growth.ErrEdgeCountMismatch)

	// Not a permutation of [0, p).
	_, err = growth.Run([]int{0, 2}, []int{1}, growth.ModeIncrement, 1)
	assert.ErrorIs(t, err, cyclic.ErrVertexOutOfRange)
	_, err = growth.Run([]int{0, 1, 1}, []int{2}, growth.ModeIncrement, 1)
	assert.ErrorIs(t, err, cyclic.ErrNotPermutation)
	_, err = growth.Run([]int{0}, nil, growth.ModeIncrement, 1)
	assert.ErrorIs(t, err, cyclic.ErrPathTooShort)

	// Hop 2 cannot exist on a 2-cycle.
	_, err = growth.Run([]int{0, 1}, []int{0, 1}, growth.ModeIncrement, 1)
	assert.ErrorIs(t, err, growth.ErrHopOutOfRange)
}

func TestRun_IncrementMode_GrowsByOnePerSuccess(t *testing.T) {
	recs, err := growth.Run([]int{0, 1}, []int{1}, growth.ModeIncrement, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	for i, r := range recs {
		assert.Equal(t, i+1, r.Iteration)
		assert.Equal(t, growth.OutcomeSuccess, r.Outcome)
		assert.True(t, r.Feasible)
		// Each success targets exactly one more vertex than the last base.
		assert.Equal(t, i+3, r.P)
		require.Len(t, r.Path, r.P)

		obs, oerr := cyclic.Observed(r.Path, r.P)
		require.NoError(t, oerr)
		assert.True(t, obs.Equal(r.FP), "iteration %d path does not realize its FP", r.Iteration)
	}

	// The single part is incremented every iteration: (1)→(2)→(3)→(4).
	assert.True(t, recs[0].PrevFP.Equal(cyclic.Frequency{1: 1}))
	assert.True(t, recs[2].FP.Equal(cyclic.Frequency{1: 4}))
}

func TestRun_AppendMode_SkipsAtDistinctHopBound(t *testing.T) {
	// From p=2 a third vertex admits only ⌊3/2⌋ = 1 distinct hop length,
	// so appending a second one must skip the iteration and leave the base
	// untouched; no feasibility check or construction runs.
	recs, err := growth.Run([]int{0, 1}, []int{1}, growth.ModeAppend, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	for _, r := range recs {
		assert.Equal(t, growth.OutcomeSkipped, r.Outcome)
		assert.Equal(t, 3, r.P, "the vertex count the iteration would have targeted")
		assert.False(t, r.Feasible)
		assert.Nil(t, r.Path)
		assert.Equal(t, hampath.MethodNone, r.Method)
		// The base never moved, so every attempt starts from {1:1}.
		assert.True(t, r.PrevFP.Equal(cyclic.Frequency{1: 1}))
		assert.True(t, r.FP.Equal(cyclic.Frequency{1: 1, 2: 1}), "the attempted partition is still recorded")
	}
}

func TestRun_AppendMode_AddsNewHopLength(t *testing.T) {
	recs, err := growth.Run(identity(4), []int{3}, growth.ModeAppend, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, growth.OutcomeSuccess, recs[0].Outcome)
	assert.Equal(t, 5, recs[0].P)
	assert.Equal(t, hampath.MethodReuseInsert, recs[0].Method)
	assert.True(t, recs[0].FP.Equal(cyclic.Frequency{1: 3, 2: 1}))

	assert.Equal(t, growth.OutcomeSuccess, recs[1].Outcome)
	assert.Equal(t, 6, recs[1].P)
	assert.True(t, recs[1].FP.Equal(cyclic.Frequency{1: 3, 2: 1, 3: 1}))

	obs, oerr := cyclic.Observed(recs[1].Path, 6)
	require.NoError(t, oerr)
	assert.True(t, obs.Equal(recs[1].FP))
}

func TestRun_IncrementBeyondHopBound_SkipsAndContinues(t *testing.T) {
	// Seed tuple (1,0,0): iteration 3 increments the third position and
	// asks for hop 3 on a 5-cycle, where ⌊5/2⌋ = 2. That evolution must be
	// recorded as a skip and discarded — never abort the remaining
	// iterations — so iteration 4 evolves from the committed tuple again
	// and succeeds.
	recs, err := growth.Run([]int{0, 1}, []int{1, 0, 0}, growth.ModeIncrement, 4)
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, growth.OutcomeSuccess, recs[0].Outcome)
	assert.Equal(t, growth.OutcomeSuccess, recs[1].Outcome)

	skip := recs[2]
	assert.Equal(t, growth.OutcomeSkipped, skip.Outcome)
	assert.Equal(t, 5, skip.P)
	assert.True(t, skip.FP.Equal(cyclic.Frequency{1: 2, 2: 1, 3: 1}))
	assert.False(t, skip.Feasible)
	assert.Nil(t, skip.Path)

	last := recs[3]
	assert.Equal(t, growth.OutcomeSuccess, last.Outcome)
	assert.Equal(t, 5, last.P)
	assert.True(t, last.FP.Equal(cyclic.Frequency{1: 3, 2: 1}))
	require.Len(t, last.Path, 5)
}

func TestRun_InfeasibleEvolution_RecordedAndDiscarded(t *testing.T) {
	// Base FP {3:7} at p=8. Iteration 1 increments hop 1 → {1:1,3:7} at
	// p=9, where hops divisible by 3 total 7 > 9−3 = 6. Iterations 2 and 3
	// must evolve from the ORIGINAL tuple again (the failed evolution is
	// discarded), producing {2:1,3:7} and {3:8} — both infeasible at d=3.
	recs, err := growth.Run(identity(8), []int{0, 0, 7}, growth.ModeIncrement, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	wantFPs := []cyclic.Frequency{
		{1: 1, 3: 7},
		{2: 1, 3: 7},
		{3: 8},
	}
	for i, r := range recs {
		assert.Equal(t, growth.OutcomeInfeasible, r.Outcome, "iteration %d", i+1)
		assert.False(t, r.Feasible)
		assert.Nil(t, r.Path)
		assert.Equal(t, 9, r.P)
		assert.True(t, r.PrevFP.Equal(cyclic.Frequency{3: 7}), "base FP must never move")
		assert.True(t, r.FP.Equal(wantFPs[i]), "iteration %d evolved %v", i+1, r.FP)
		assert.Equal(t, 3, r.Violation.Divisor)
		assert.Greater(t, r.Violation.Count, r.Violation.Limit)
	}
}

func TestRun_TimeLimit_RecordsExhaustionNotError(t *testing.T) {
	// The evolved target {1:1,2:8,4:8} at p=18 passes the divisor check,
	// defeats both insertion heuristics, and carries a search tree far
	// larger than one deadline-check window; a nanosecond budget must
	// surface as an exhausted iteration, not a run-fatal error.
	recs, err := growth.Run(identity(17), []int{0, 8, 0, 8}, growth.ModeIncrement, 1,
		growth.WithTimeLimit(time.Nanosecond))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, growth.OutcomeExhausted, r.Outcome)
	assert.True(t, r.Feasible, "the target passed the necessary condition")
	assert.Nil(t, r.Path)
	assert.Equal(t, hampath.MethodNone, r.Method)
}

func TestRun_SinkReceivesEveryRecordInOrder(t *testing.T) {
	var streamed []growth.Record
	sink := growth.SinkFunc(func(r growth.Record) { streamed = append(streamed, r) })

	recs, err := growth.Run([]int{0, 1}, []int{1}, growth.ModeIncrement, 3, growth.WithSink(sink))
	require.NoError(t, err)
	assert.Equal(t, recs, streamed)
}

func TestRun_InputsNeverMutated(t *testing.T) {
	path := []int{0, 1, 2, 3}
	fp := []int{3}
	_, err := growth.Run(path, fp, growth.ModeIncrement, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	assert.Equal(t, []int{3}, fp)
}

func TestSummary_Aggregates(t *testing.T) {
	recs, err := growth.Run(identity(8), []int{0, 0, 7}, growth.ModeIncrement, 2)
	require.NoError(t, err)
	s := growth.Summary(recs)
	assert.Equal(t, 2, s.Iterations)
	assert.Equal(t, 2, s.Infeasible)
	assert.Zero(t, s.Successes)
	assert.Zero(t, s.FinalP)

	recs, err = growth.Run([]int{0, 1}, []int{1}, growth.ModeIncrement, 2)
	require.NoError(t, err)
	s = growth.Summary(recs)
	assert.Equal(t, 2, s.Successes)
	assert.Equal(t, 4, s.FinalP)
}

func TestModeAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "increment", growth.ModeIncrement.String())
	assert.Equal(t, "append", growth.ModeAppend.String())
	assert.Equal(t, "unknown", growth.Mode(7).String())

	assert.Equal(t, "success", growth.OutcomeSuccess.String())
	assert.Equal(t, "skipped", growth.OutcomeSkipped.String())
	assert.Equal(t, "infeasible", growth.OutcomeInfeasible.String())
	assert.Equal(t, "exhausted", growth.OutcomeExhausted.String())
}
