package trace

import "math"

// Summary holds the run-level results derived once at the end of a
// simulation. Monetary and percentage values are rounded to 2 decimals;
// everything else in the trace stays unrounded.
type Summary struct {
	Accepted             int     `json:"accepted"`
	Rejected             int     `json:"rejected"`
	TotalRevenue         float64 `json:"total_revenue"`
	WeightedOccupancyPct float64 `json:"weighted_occupancy_pct"`
	Events               int     `json:"events"` // processed events, excluding the seed row
}

// Summarize derives the run summary from the final snapshot row.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *Summary {
	summary := &Summary{}
	if st == nil || st.Len() == 0 {
		return summary
	}

	last := st.Last()
	summary.Accepted = last.Accepted
	summary.Rejected = last.Rejected
	summary.TotalRevenue = round2(last.TotalRevenue)
	summary.WeightedOccupancyPct = round2(last.WeightedOccupancyAvg)
	summary.Events = last.Sequence
	return summary
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
