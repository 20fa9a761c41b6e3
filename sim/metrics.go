package sim

import "fmt"

// Metrics aggregates running statistics over one simulation run:
// admission counts, per-type charge minutes and revenue, and the
// time-weighted occupancy integral used for utilization.
type Metrics struct {
	Accepted int // arrivals that claimed a station
	Rejected int // arrivals dropped for lack of a free station

	ChargeMinutes [NumDeviceTypes]int     // cumulative charging minutes per type
	Revenue       [NumDeviceTypes]float64 // cumulative revenue per type in $
	TotalRevenue  float64

	weightedPctSum float64 // integral of occupancy percentage over time
	weightedTime   float64 // total weighted time, equals the current clock
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordAccepted counts an arrival that claimed a station.
func (m *Metrics) RecordAccepted() { m.Accepted++ }

// RecordRejected counts an arrival that found no free station.
func (m *Metrics) RecordRejected() { m.Rejected++ }

// RecordCharge attributes a completed charge to its device type: the
// charged minutes accumulate per type and revenue accrues at the type's
// hourly tariff. Called once per charge completion, never at arrival.
func (m *Metrics) RecordCharge(d DeviceType, minutes int) {
	m.ChargeMinutes[d] += minutes
	earned := d.HourlyRate() * float64(minutes) / 60
	m.Revenue[d] += earned
	m.TotalRevenue += earned
}

// AccumulateOccupancy adds one interval to the time-weighted occupancy
// integral. pct must be the occupancy percentage that held during the
// interval, i.e. the state before the event at the interval's end.
func (m *Metrics) AccumulateOccupancy(pct, deltaT float64) {
	m.weightedPctSum += pct * deltaT
	m.weightedTime += deltaT
}

// WeightedOccupancySum returns the occupancy-percentage integral so far.
func (m *Metrics) WeightedOccupancySum() float64 {
	return m.weightedPctSum
}

// WeightedOccupancyPct returns the time-weighted average occupancy in
// [0,100], or 0 before any time has elapsed.
func (m *Metrics) WeightedOccupancyPct() float64 {
	if m.weightedTime <= 0 {
		return 0
	}
	return m.weightedPctSum / m.weightedTime
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Accepted devices     : %d\n", m.Accepted)
	fmt.Printf("Rejected devices     : %d\n", m.Rejected)
	for d := DeviceType(0); d < NumDeviceTypes; d++ {
		fmt.Printf("%-10s charge time : %d min, revenue $%.2f\n",
			d, m.ChargeMinutes[d], m.Revenue[d])
	}
	fmt.Printf("Total revenue        : $%.2f\n", m.TotalRevenue)
	fmt.Printf("Avg occupancy        : %.2f%%\n", m.WeightedOccupancyPct())
}
