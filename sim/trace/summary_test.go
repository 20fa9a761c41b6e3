package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace(t *testing.T) {
	got := Summarize(nil)

	assert.Equal(t, &Summary{}, got)
}

func TestSummarize_EmptyTrace(t *testing.T) {
	got := Summarize(NewSimulationTrace())

	assert.Equal(t, &Summary{}, got)
}

func TestSummarize_UsesFinalRow(t *testing.T) {
	// GIVEN a trace whose accumulators grew over three rows
	st := NewSimulationTrace()
	st.Append(Row{Sequence: 0, Kind: KindSimulationStart})
	st.Append(Row{
		Sequence: 1, Kind: KindArrival,
		Accepted: 1, TotalRevenue: 0,
	})
	st.Append(Row{
		Sequence: 2, Kind: KindChargeComplete,
		Accepted: 1, Rejected: 2,
		TotalRevenue:         1234.5678,
		WeightedOccupancyAvg: 48.3333,
	})

	// WHEN the trace is summarized
	got := Summarize(st)

	// THEN the summary mirrors the final row, rounded to 2 decimals
	assert.Equal(t, 1, got.Accepted)
	assert.Equal(t, 2, got.Rejected)
	assert.Equal(t, 1234.57, got.TotalRevenue)
	assert.Equal(t, 48.33, got.WeightedOccupancyPct)
	assert.Equal(t, 2, got.Events)
}

func TestNewSimulationTrace_FreshRunIDs(t *testing.T) {
	a := NewSimulationTrace()
	b := NewSimulationTrace()

	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestLast_ReturnsMostRecentRow(t *testing.T) {
	st := NewSimulationTrace()
	assert.Nil(t, st.Last())

	st.Append(Row{Sequence: 0})
	st.Append(Row{Sequence: 1})

	assert.Equal(t, 1, st.Last().Sequence)
	assert.Equal(t, 2, st.Len())
}
