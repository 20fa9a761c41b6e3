package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteJSON writes the whole trace (run ID plus rows) as indented JSON.
func WriteJSON(w io.Writer, st *SimulationTrace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// WriteCSV writes the snapshot table with one record per row. Per-station
// columns are generated from the run's station count; optional values
// render as empty cells. Times and percentages keep 4 decimals, money 2.
func WriteCSV(w io.Writer, st *SimulationTrace) error {
	cw := csv.NewWriter(w)

	stations := 0
	if st.Len() > 0 {
		stations = len(st.Rows[0].Stations)
	}

	header := []string{
		"sequence", "clock", "event",
		"device_rand", "device",
		"arrival_rand", "inter_arrival", "next_arrival",
		"charge_rand", "charge_minutes", "station",
		"occupied_count", "occupancy_pct",
		"weighted_occupancy_sum", "weighted_occupancy_avg",
	}
	for i := 0; i < stations; i++ {
		header = append(header,
			fmt.Sprintf("station_%d_charge_end", i+1),
			fmt.Sprintf("station_%d_charge_minutes", i+1))
	}
	header = append(header,
		"stand_busy", "queue_len", "validation_duration", "validation_ends_at",
		"charge_minutes_usb_c", "charge_minutes_lightning", "charge_minutes_micro_usb",
		"revenue_usb_c", "revenue_lightning", "revenue_micro_usb",
		"total_revenue", "accepted", "rejected",
	)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range st.Rows {
		r := &st.Rows[i]
		record := []string{
			strconv.Itoa(r.Sequence),
			ftoa(r.Clock),
			string(r.Kind),
			optF(r.DeviceRand),
			r.Device,
			optF(r.ArrivalRand),
			optF(r.InterArrival),
			optF(r.NextArrival),
			optF(r.ChargeRand),
			optI(r.ChargeMinutes),
			optI(r.Station),
			strconv.Itoa(r.OccupiedCount),
			ftoa(r.OccupancyPct),
			ftoa(r.WeightedOccupancySum),
			ftoa(r.WeightedOccupancyAvg),
		}
		for s := 0; s < stations; s++ {
			cell := r.Stations[s]
			record = append(record, optF(cell.ChargeEndsAt), optI(cell.ChargeMinutes))
		}
		record = append(record,
			strconv.FormatBool(r.StandBusy),
			strconv.Itoa(r.QueueLen),
			optF(r.ValidationDuration),
			optF(r.ValidationEndsAt),
			strconv.Itoa(r.ChargeMinutesByType[0]),
			strconv.Itoa(r.ChargeMinutesByType[1]),
			strconv.Itoa(r.ChargeMinutesByType[2]),
			mtoa(r.RevenueByType[0]),
			mtoa(r.RevenueByType[1]),
			mtoa(r.RevenueByType[2]),
			mtoa(r.TotalRevenue),
			strconv.Itoa(r.Accepted),
			strconv.Itoa(r.Rejected),
		)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// mtoa formats a monetary amount with cent precision.
func mtoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func optF(f *float64) string {
	if f == nil {
		return ""
	}
	return ftoa(*f)
}

func optI(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
