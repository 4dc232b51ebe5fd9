package scenario

import (
	"errors"
	"math"
	"testing"

	"github.com/kmoray/brewsim/internal/thermo"
)

// testInputs reproduces the reference analysis: 74°C coffee in a 4×3 in
// ceramic cup at 21°C ambient, 55°C preheated cup, 45°C target,
// k=0.02/min, 50 mL creamer at 10/3 °C added at 0.5 min.
func testInputs() Inputs {
	return Inputs{
		AmbientTemp:      21,
		CoffeeTemp:       74,
		PreheatedCupTemp: 55,
		TargetTemp:       45,
		DecayConst:       0.02,
		AdditiveTemp:     10.0 / 3.0,
		AdditiveVolume:   0.05,
		MixTime:          0.5,
		Cup: thermo.Cup{
			Height:        0.1016,
			Diameter:      0.0762,
			WallThickness: 0.0046355,
			Density:       3000,
			SpecificHeat:  900,
		},
		CoffeeDensity:      1000,
		CoffeeSpecificHeat: 4186,
		WindowMin:          60,
		Samples:            1000,
	}
}

func TestRun_ProducesThreeScenarios(t *testing.T) {
	rs, err := Run(testInputs())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(rs.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(rs.Scenarios))
	}
	names := []string{NameColdCup, NameHotCup, NameHotCreamer}
	for i, sc := range rs.Scenarios {
		if sc.Name != names[i] {
			t.Errorf("scenario %d: name %q, want %q", i, sc.Name, names[i])
		}
		if sc.Trajectory.Len() != 1000 {
			t.Errorf("scenario %q: %d samples, want 1000", sc.Name, sc.Trajectory.Len())
		}
	}

	if rs.Scenarios[2].Event == nil {
		t.Error("creamer scenario should carry a mix event")
	}
	if rs.Scenarios[0].Event != nil || rs.Scenarios[1].Event != nil {
		t.Error("plain scenarios should carry no mix event")
	}
}

func TestRun_EquilibriumStartingTemperatures(t *testing.T) {
	in := testInputs()
	rs, err := Run(in)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	coffee := in.Cup.LiquidBody(in.CoffeeTemp, in.CoffeeDensity, in.CoffeeSpecificHeat)
	wantCold, err := thermo.Equilibrium(coffee, in.Cup.Body(in.AmbientTemp))
	if err != nil {
		t.Fatal(err)
	}

	cold := rs.Scenarios[0]
	if math.Abs(cold.Trajectory.Temps[0]-wantCold) > 1e-9 {
		t.Errorf("cold cup start %f, want %f", cold.Trajectory.Temps[0], wantCold)
	}
	// The cup drags the coffee below the pot temperature but keeps it
	// well above ambient.
	if wantCold >= in.CoffeeTemp || wantCold <= in.AmbientTemp {
		t.Errorf("cold cup equilibrium %f outside (ambient, pot)", wantCold)
	}

	hot := rs.Scenarios[1]
	if hot.Trajectory.Temps[0] <= cold.Trajectory.Temps[0] {
		t.Errorf("preheated start %f should exceed cold start %f",
			hot.Trajectory.Temps[0], cold.Trajectory.Temps[0])
	}
}

func TestRun_PreheatedCupStaysDrinkableLonger(t *testing.T) {
	rs, err := Run(testInputs())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	cold, hot := rs.Scenarios[0], rs.Scenarios[1]
	if cold.Crossing == nil || hot.Crossing == nil {
		t.Fatal("expected both plain scenarios to reach the target within the window")
	}
	if *cold.Crossing >= *hot.Crossing {
		t.Errorf("cold cup crossing %f should precede preheated crossing %f",
			*cold.Crossing, *hot.Crossing)
	}

	if cold.ExactCrossing == nil || hot.ExactCrossing == nil {
		t.Fatal("expected analytic crossings for both plain scenarios")
	}
	spacing := 60.0 / 999.0
	if d := *cold.Crossing - *cold.ExactCrossing; d < 0 || d > spacing {
		t.Errorf("cold cup sampled crossing off by %f, more than one spacing", d)
	}
}

func TestRun_CreamerCoolsFaster(t *testing.T) {
	rs, err := Run(testInputs())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	hot, creamer := rs.Scenarios[1], rs.Scenarios[2]
	if creamer.Crossing == nil {
		t.Fatal("creamer scenario should reach the target")
	}
	if *creamer.Crossing >= *hot.Crossing {
		t.Errorf("creamer crossing %f should precede plain preheated crossing %f",
			*creamer.Crossing, *hot.Crossing)
	}

	// After the event the creamer trajectory sits strictly below the
	// plain preheated one.
	for i, tm := range rs.Times {
		if tm <= 0.5 {
			continue
		}
		if creamer.Trajectory.Temps[i] >= hot.Trajectory.Temps[i] {
			t.Fatalf("t=%f: creamer %f not below plain %f",
				tm, creamer.Trajectory.Temps[i], hot.Trajectory.Temps[i])
		}
	}
}

func TestRun_ExactCreamerCrossingIsPiecewise(t *testing.T) {
	in := testInputs()
	rs, err := Run(in)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	creamer := rs.Scenarios[2]
	if creamer.ExactCrossing == nil {
		t.Fatal("expected analytic crossing for creamer scenario")
	}

	// Reconstruct: pre-mix value at the event, volume-weighted mix,
	// then invert the post-mix curve.
	preMix := thermo.TemperatureAt(creamer.Params.InitialTemp, 21, 0.02, 0.5)
	mixed, err := thermo.MixUniform(preMix, in.Cup.CavityLiters(), in.AdditiveTemp, in.AdditiveVolume)
	if err != nil {
		t.Fatal(err)
	}
	tail, err := thermo.TimeToReach(mixed, 21, 0.02, 45)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.5 + tail
	if math.Abs(*creamer.ExactCrossing-want) > 1e-9 {
		t.Errorf("exact crossing %f, want %f", *creamer.ExactCrossing, want)
	}
}

func TestRun_UnreachableTargetDegradesGracefully(t *testing.T) {
	in := testInputs()
	in.TargetTemp = 80 // hotter than the pot: cooling can never reach it

	rs, err := Run(in)
	if err != nil {
		t.Fatalf("run should not abort on unreachable targets: %v", err)
	}

	for _, sc := range rs.Scenarios {
		if sc.Crossing != nil {
			t.Errorf("scenario %q: unexpected sampled crossing %f", sc.Name, *sc.Crossing)
		}
		if sc.ExactCrossing != nil {
			t.Errorf("scenario %q: unexpected exact crossing %f", sc.Name, *sc.ExactCrossing)
		}
		if sc.Trajectory.Len() != in.Samples {
			t.Errorf("scenario %q: trajectory truncated to %d samples", sc.Name, sc.Trajectory.Len())
		}
	}
}

func TestRun_InvalidBatchParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"zero window", func(in *Inputs) { in.WindowMin = 0 }},
		{"one sample", func(in *Inputs) { in.Samples = 1 }},
		{"zero decay constant", func(in *Inputs) { in.DecayConst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInputs()
			tt.mutate(&in)
			if _, err := Run(in); !errors.Is(err, thermo.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestRun_MixAtWindowStart(t *testing.T) {
	in := testInputs()
	in.MixTime = 0

	rs, err := Run(in)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	creamer := rs.Scenarios[2]
	mixed, err := thermo.MixUniform(creamer.Params.InitialTemp, in.Cup.CavityLiters(), in.AdditiveTemp, in.AdditiveVolume)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(creamer.Trajectory.Temps[0]-mixed) > 1e-12 {
		t.Errorf("t=0 sample %f, want mixed start %f", creamer.Trajectory.Temps[0], mixed)
	}
}
