// Package trace provides snapshot recording for simulation runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// EventKind labels the event that produced a snapshot row.
type EventKind string

const (
	// KindSimulationStart labels the sequence-0 seed row emitted before
	// the event loop begins.
	KindSimulationStart EventKind = "simulation_start"
	// KindArrival labels a device arrival.
	KindArrival EventKind = "arrival"
	// KindChargeComplete labels a charge completion.
	KindChargeComplete EventKind = "charge_complete"
	// KindValidationComplete labels a validation completion.
	KindValidationComplete EventKind = "validation_complete"
)

// StationState is a station's charge bookkeeping at snapshot time.
// ChargeEndsAt and ChargeMinutes are nil while the station is free.
type StationState struct {
	Occupied      bool     `json:"occupied"`
	Device        string   `json:"device,omitempty"`
	ChargeEndsAt  *float64 `json:"charge_ends_at,omitempty"`
	ChargeMinutes *int     `json:"charge_minutes,omitempty"`
}

// Row is the fixed-shape snapshot emitted once per processed event. Every
// row carries the same fields; pointer fields are nil where the value does
// not apply to the row's event kind.
type Row struct {
	Sequence int       `json:"sequence"`
	Clock    float64   `json:"clock"`
	Kind     EventKind `json:"kind"`

	// Random draws used by this event. DeviceRand/Device are set on
	// arrival rows; Device is also set on charge and validation rows to
	// identify the departing device.
	DeviceRand   *float64 `json:"device_rand,omitempty"`
	Device       string   `json:"device,omitempty"`
	ArrivalRand  *float64 `json:"arrival_rand,omitempty"`
	InterArrival *float64 `json:"inter_arrival,omitempty"`
	NextArrival  *float64 `json:"next_arrival,omitempty"`
	ChargeRand   *float64 `json:"charge_rand,omitempty"`
	// ChargeMinutes is the duration assigned to the arrival accepted by
	// this row, nil on rejections and non-arrival rows.
	ChargeMinutes *int `json:"charge_minutes,omitempty"`
	// Station is the slot the event's device charged at; nil for arrival
	// rejections and the seed row.
	Station *int `json:"station,omitempty"`

	Stations []StationState `json:"stations"`

	StandBusy          bool     `json:"stand_busy"`
	QueueLen           int      `json:"queue_len"`
	ValidationDuration *float64 `json:"validation_duration,omitempty"`
	ValidationEndsAt   *float64 `json:"validation_ends_at,omitempty"`

	OccupiedCount        int     `json:"occupied_count"`
	OccupancyPct         float64 `json:"occupancy_pct"`
	WeightedOccupancySum float64 `json:"weighted_occupancy_sum"`
	WeightedOccupancyAvg float64 `json:"weighted_occupancy_avg"`

	ChargeMinutesByType [3]int     `json:"charge_minutes_by_type"`
	RevenueByType       [3]float64 `json:"revenue_by_type"`
	TotalRevenue        float64    `json:"total_revenue"`
	Accepted            int        `json:"accepted"`
	Rejected            int        `json:"rejected"`
}
