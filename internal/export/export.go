// Package export streams a finished result set to CSV or JSON for
// downstream rendering. Nothing is persisted: export recomputes nothing
// and stores nothing, it only formats the run it is handed.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kmoray/brewsim/internal/scenario"
	"github.com/kmoray/brewsim/internal/units"
)

// Data is the JSON shape of one run: per-scenario samples in the
// display scale plus nullable crossing times in minutes.
type Data struct {
	DisplayScale string         `json:"display_scale"`
	TimesMin     []float64      `json:"times_min"`
	Scenarios    []ScenarioData `json:"scenarios"`
}

type ScenarioData struct {
	Name             string    `json:"name"`
	Temps            []float64 `json:"temps"`
	CrossingMin      *float64  `json:"crossing_min,omitempty"`
	ExactCrossingMin *float64  `json:"exact_crossing_min,omitempty"`
}

func build(rs *scenario.ResultSet, scale units.TempScale) (*Data, error) {
	data := &Data{
		DisplayScale: string(scale),
		TimesMin:     rs.Times,
	}
	for _, sc := range rs.Scenarios {
		sd := ScenarioData{
			Name:             sc.Name,
			Temps:            make([]float64, sc.Trajectory.Len()),
			CrossingMin:      sc.Crossing,
			ExactCrossingMin: sc.ExactCrossing,
		}
		for i, temp := range sc.Trajectory.Temps {
			v, err := units.FromCelsius(temp, scale)
			if err != nil {
				return nil, err
			}
			sd.Temps[i] = v
		}
		data.Scenarios = append(data.Scenarios, sd)
	}
	return data, nil
}

// JSON writes the run as indented JSON.
func JSON(w io.Writer, rs *scenario.ResultSet, scale units.TempScale) error {
	data, err := build(rs, scale)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// CSV writes one row per time sample with a temperature column per
// scenario, all scenarios sharing the run's time grid.
func CSV(w io.Writer, rs *scenario.ResultSet, scale units.TempScale) error {
	data, err := build(rs, scale)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time_min"}
	for _, sc := range data.Scenarios {
		header = append(header, sc.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, tm := range data.TimesMin {
		row := []string{strconv.FormatFloat(tm, 'f', 6, 64)}
		for _, sc := range data.Scenarios {
			if i >= len(sc.Temps) {
				return fmt.Errorf("scenario %q has %d samples, grid has %d", sc.Name, len(sc.Temps), len(data.TimesMin))
			}
			row = append(row, strconv.FormatFloat(sc.Temps[i], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}
