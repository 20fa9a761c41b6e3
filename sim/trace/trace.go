package trace

import "github.com/google/uuid"

// SimulationTrace collects the ordered snapshot rows of one run. Each
// trace is stamped with a run ID so logs and exports from concurrent runs
// stay distinguishable.
type SimulationTrace struct {
	RunID string `json:"run_id"`
	Rows  []Row  `json:"rows"`
}

// NewSimulationTrace creates an empty trace with a fresh run ID.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		RunID: uuid.NewString(),
		Rows:  make([]Row, 0),
	}
}

// Append adds a snapshot row. Rows arrive in processing order and are
// never mutated afterwards.
func (st *SimulationTrace) Append(r Row) {
	st.Rows = append(st.Rows, r)
}

// Len returns the number of recorded rows, including the seed row.
func (st *SimulationTrace) Len() int {
	return len(st.Rows)
}

// Last returns the most recent row, or nil if the trace is empty.
func (st *SimulationTrace) Last() *Row {
	if len(st.Rows) == 0 {
		return nil
	}
	return &st.Rows[len(st.Rows)-1]
}
