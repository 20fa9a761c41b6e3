package sim

// DeviceType identifies the connector a device charges with.
// The set is closed: arrival draws partition [0,1) into cumulative
// probability bands in this declaration order.
type DeviceType int

const (
	DeviceUSBC DeviceType = iota
	DeviceLightning
	DeviceMicroUSB

	// NumDeviceTypes sizes per-type accumulator arrays.
	NumDeviceTypes = 3
)

// hourlyRates holds the fixed tariff per device type in $/hour.
var hourlyRates = [NumDeviceTypes]float64{
	DeviceUSBC:      300,
	DeviceLightning: 500,
	DeviceMicroUSB:  1000,
}

var deviceTypeNames = [NumDeviceTypes]string{
	DeviceUSBC:      "USB-C",
	DeviceLightning: "Lightning",
	DeviceMicroUSB:  "MicroUSB",
}

// HourlyRate returns the charging tariff for the device type in $/hour.
func (d DeviceType) HourlyRate() float64 {
	return hourlyRates[d]
}

func (d DeviceType) String() string {
	if d < 0 || d >= NumDeviceTypes {
		return "unknown"
	}
	return deviceTypeNames[d]
}

// TypeProbabilities holds the arrival probability of each device type.
// The three values must be non-negative and sum to 1 (validated by Config).
type TypeProbabilities struct {
	USBC      float64
	Lightning float64
	MicroUSB  float64
}

// Sum returns the total probability mass.
func (p TypeProbabilities) Sum() float64 {
	return p.USBC + p.Lightning + p.MicroUSB
}
