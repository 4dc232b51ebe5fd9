// Package scenario orchestrates the full comparison run: cold cup,
// preheated cup, and preheated cup with creamer, over one shared time
// grid. Everything arrives in core units; the configuration boundary
// has already converted display units.
package scenario

import (
	"fmt"

	"github.com/kmoray/brewsim/internal/sim"
	"github.com/kmoray/brewsim/internal/thermo"
)

// Scenario names, in run order.
const (
	NameColdCup    = "cold cup"
	NameHotCup     = "preheated cup"
	NameHotCreamer = "preheated cup + creamer"
)

// Inputs is the full core-unit parameter set for one run.
type Inputs struct {
	AmbientTemp        float64 // °C
	CoffeeTemp         float64 // °C, in the pot
	PreheatedCupTemp   float64 // °C
	TargetTemp         float64 // °C
	DecayConst         float64 // 1/min
	AdditiveTemp       float64 // °C
	AdditiveVolume     float64 // L
	MixTime            float64 // min
	Cup                thermo.Cup
	CoffeeDensity      float64 // kg/m³
	CoffeeSpecificHeat float64 // J/(kg·°C)
	WindowMin          float64
	Samples            int
}

// Scenario binds one named configuration to its computed trajectory.
// Crossing is the sampled query result; ExactCrossing the analytic
// inverse. Either is nil when the target is not reached.
type Scenario struct {
	Name          string
	Params        sim.Params
	Event         *sim.MixEvent
	Trajectory    sim.Trajectory
	Crossing      *float64
	ExactCrossing *float64
}

// ResultSet holds the three scenarios of one run, all sampled on the
// same grid.
type ResultSet struct {
	Times     []float64
	Scenarios []Scenario
}

// Run computes the three scenarios. Parameter errors that invalidate
// the whole batch (bad window, bad decay constant, bad geometry) are
// returned; an unreachable target on a single scenario only degrades
// that scenario's crossing times to nil.
func Run(in Inputs) (*ResultSet, error) {
	if in.WindowMin <= 0 || in.Samples < 2 {
		return nil, fmt.Errorf("window %g min with %d samples: %w", in.WindowMin, in.Samples, thermo.ErrInvalidConfiguration)
	}

	coffee := in.Cup.LiquidBody(in.CoffeeTemp, in.CoffeeDensity, in.CoffeeSpecificHeat)

	t0Cold, err := thermo.Equilibrium(coffee, in.Cup.Body(in.AmbientTemp))
	if err != nil {
		return nil, fmt.Errorf("cold cup equilibrium: %w", err)
	}
	t0Hot, err := thermo.Equilibrium(coffee, in.Cup.Body(in.PreheatedCupTemp))
	if err != nil {
		return nil, fmt.Errorf("preheated cup equilibrium: %w", err)
	}

	grid := sim.TimeGrid(in.WindowMin, in.Samples)

	event := &sim.MixEvent{
		AdditiveTemp:   in.AdditiveTemp,
		AdditiveVolume: in.AdditiveVolume,
		HostVolume:     in.Cup.CavityLiters(),
		Time:           in.MixTime,
	}

	rs := &ResultSet{Times: grid}
	specs := []struct {
		name string
		t0   float64
		ev   *sim.MixEvent
	}{
		{NameColdCup, t0Cold, nil},
		{NameHotCup, t0Hot, nil},
		{NameHotCreamer, t0Hot, event},
	}

	for _, spec := range specs {
		p := sim.Params{
			InitialTemp: spec.t0,
			AmbientTemp: in.AmbientTemp,
			DecayConst:  in.DecayConst,
			TargetTemp:  in.TargetTemp,
		}
		tr, err := sim.Simulate(p, spec.ev, grid)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", spec.name, err)
		}

		sc := Scenario{Name: spec.name, Params: p, Event: spec.ev, Trajectory: tr}
		if t, ok := sim.FirstCrossing(tr, p.TargetTemp); ok {
			sc.Crossing = &t
		}
		// Unreachable targets degrade to a nil exact time; the
		// trajectory and sampled crossing above still stand.
		if t, err := exactCrossing(p, spec.ev); err == nil {
			sc.ExactCrossing = &t
		}
		rs.Scenarios = append(rs.Scenarios, sc)
	}

	return rs, nil
}

// exactCrossing inverts the cooling curve analytically, respecting the
// mixing discontinuity: if the unmixed curve reaches the target at or
// before the event, that time stands; otherwise the curve is mixed at
// the event time and the post-mix phase is inverted.
func exactCrossing(p sim.Params, ev *sim.MixEvent) (float64, error) {
	if ev == nil {
		return thermo.TimeToReach(p.InitialTemp, p.AmbientTemp, p.DecayConst, p.TargetTemp)
	}

	if t, err := thermo.TimeToReach(p.InitialTemp, p.AmbientTemp, p.DecayConst, p.TargetTemp); err == nil && t <= ev.Time {
		return t, nil
	}

	preMix := thermo.TemperatureAt(p.InitialTemp, p.AmbientTemp, p.DecayConst, ev.Time)
	mixed, err := thermo.MixUniform(preMix, ev.HostVolume, ev.AdditiveTemp, ev.AdditiveVolume)
	if err != nil {
		return 0, err
	}

	// A cold (or hot) additive can land the mix on the far side of the
	// target: the crossing is the event instant itself.
	if crossedAt(p.InitialTemp, mixed, p.TargetTemp) {
		return ev.Time, nil
	}

	t, err := thermo.TimeToReach(mixed, p.AmbientTemp, p.DecayConst, p.TargetTemp)
	if err != nil {
		return 0, err
	}
	return ev.Time + t, nil
}

func crossedAt(start, now, target float64) bool {
	if start >= target {
		return now <= target
	}
	return now >= target
}
