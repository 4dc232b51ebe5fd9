package thermo_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kmoray/brewsim/internal/thermo"
)

var _ = Describe("TemperatureAt", func() {
	It("returns exactly T0 at t=0", func() {
		Expect(thermo.TemperatureAt(74, 21, 0.02, 0)).To(Equal(74.0))
		Expect(thermo.TemperatureAt(3, 21, 0.02, 0)).To(Equal(3.0))
	})

	It("decreases monotonically toward ambient when starting hot", func() {
		prev := thermo.TemperatureAt(74, 21, 0.02, 0)
		for t := 1.0; t <= 120; t += 1.0 {
			cur := thermo.TemperatureAt(74, 21, 0.02, t)
			Expect(cur).To(BeNumerically("<", prev))
			Expect(cur).To(BeNumerically(">", 21))
			prev = cur
		}
	})

	It("increases monotonically toward ambient when starting cold", func() {
		prev := thermo.TemperatureAt(3, 21, 0.05, 0)
		for t := 1.0; t <= 120; t += 1.0 {
			cur := thermo.TemperatureAt(3, 21, 0.05, t)
			Expect(cur).To(BeNumerically(">", prev))
			Expect(cur).To(BeNumerically("<", 21))
			prev = cur
		}
	})

	It("stays constant when already at ambient", func() {
		for t := 0.0; t <= 60; t += 7.5 {
			Expect(thermo.TemperatureAt(21, 21, 0.02, t)).To(Equal(21.0))
		}
	})
})

var _ = Describe("TimeToReach", func() {
	It("inverts the cooling curve", func() {
		for _, t := range []float64{0.5, 5, 34.3, 59} {
			temp := thermo.TemperatureAt(74, 21, 0.02, t)
			back, err := thermo.TimeToReach(74, 21, 0.02, temp)
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(BeNumerically("~", t, 1e-9))
		}
	})

	It("solves the drinkable-coffee time in closed form", func() {
		// -ln((45-21)/(74-21)) / 0.02
		got, err := thermo.TimeToReach(74, 21, 0.02, 45)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNumerically("~", math.Log(53.0/24.0)/0.02, 1e-9))
	})

	It("returns zero when the target equals the start", func() {
		got, err := thermo.TimeToReach(74, 21, 0.02, 74)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNumerically("~", 0, 1e-12))
	})

	It("rejects a target on the wrong side of ambient", func() {
		_, err := thermo.TimeToReach(74, 21, 0.02, 15)
		Expect(err).To(MatchError(thermo.ErrUnreachableTarget))
	})

	It("rejects a target when start and ambient coincide", func() {
		_, err := thermo.TimeToReach(21, 21, 0.02, 45)
		Expect(err).To(MatchError(thermo.ErrUnreachableTarget))

		_, err = thermo.TimeToReach(21, 21, 0.02, 21)
		Expect(err).To(MatchError(thermo.ErrUnreachableTarget))
	})

	It("rejects a target hotter than the start while cooling", func() {
		_, err := thermo.TimeToReach(74, 21, 0.02, 80)
		Expect(err).To(MatchError(thermo.ErrUnreachableTarget))
	})

	It("rejects the ambient asymptote itself", func() {
		_, err := thermo.TimeToReach(74, 21, 0.02, 21)
		Expect(err).To(MatchError(thermo.ErrUnreachableTarget))
	})

	It("rejects a non-positive decay constant", func() {
		_, err := thermo.TimeToReach(74, 21, 0, 45)
		Expect(err).To(MatchError(thermo.ErrInvalidConfiguration))
	})
})

var _ = Describe("Equilibrium", func() {
	coffee := thermo.Body{Temp: 74, Mass: 0.463, SpecificHeat: 4186}
	cup := thermo.Body{Temp: 21, Mass: 0.318, SpecificHeat: 900}

	It("is symmetric", func() {
		ab, err := thermo.Equilibrium(coffee, cup)
		Expect(err).NotTo(HaveOccurred())
		ba, err := thermo.Equilibrium(cup, coffee)
		Expect(err).NotTo(HaveOccurred())
		Expect(ab).To(BeNumerically("~", ba, 1e-12))
	})

	It("lies between the two body temperatures", func() {
		eq, err := thermo.Equilibrium(coffee, cup)
		Expect(err).NotTo(HaveOccurred())
		Expect(eq).To(BeNumerically(">=", 21))
		Expect(eq).To(BeNumerically("<=", 74))
	})

	It("reduces to the hotter body when the other has no mass", func() {
		eq, err := thermo.Equilibrium(coffee, thermo.Body{Temp: 21, Mass: 0, SpecificHeat: 900})
		Expect(err).NotTo(HaveOccurred())
		Expect(eq).To(Equal(74.0))
	})

	It("fails when both bodies are massless", func() {
		_, err := thermo.Equilibrium(
			thermo.Body{Temp: 74, Mass: 0, SpecificHeat: 4186},
			thermo.Body{Temp: 21, Mass: 0, SpecificHeat: 900},
		)
		Expect(err).To(MatchError(thermo.ErrInvalidConfiguration))
	})
})

var _ = Describe("MixUniform", func() {
	It("volume-weights two parcels of the same fluid", func() {
		// (0.3·60 + 0.05·3) / 0.35
		got, err := thermo.MixUniform(60, 0.3, 3, 0.05)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNumerically("~", 51.857142857, 1e-6))
	})

	It("fails on zero total volume", func() {
		_, err := thermo.MixUniform(60, 0, 3, 0)
		Expect(err).To(MatchError(thermo.ErrInvalidConfiguration))
	})
})

var _ = Describe("Cup", func() {
	// 4 in tall, 3 in across, 0.1825 in wall, in meters.
	cup := thermo.Cup{
		Height:        0.1016,
		Diameter:      0.0762,
		WallThickness: 0.0046355,
		Density:       3000,
		SpecificHeat:  900,
	}

	It("computes the cavity volume of a cylinder", func() {
		want := math.Pi * 0.0381 * 0.0381 * 0.1016
		Expect(cup.CavityVolume()).To(BeNumerically("~", want, 1e-12))
		Expect(cup.CavityLiters()).To(BeNumerically("~", want*1000, 1e-9))
	})

	It("computes the wall mass from the annulus volume", func() {
		ri := 0.0381 - 0.0046355
		want := 3000 * math.Pi * (0.0381*0.0381 - ri*ri) * 0.1016
		Expect(cup.Mass()).To(BeNumerically("~", want, 1e-9))
	})

	It("builds thermal bodies for wall and cavity liquid", func() {
		wall := cup.Body(55)
		Expect(wall.Temp).To(Equal(55.0))
		Expect(wall.SpecificHeat).To(Equal(900.0))
		Expect(wall.HeatCapacity()).To(BeNumerically(">", 0))

		liquid := cup.LiquidBody(74, 1000, 4186)
		Expect(liquid.Mass).To(BeNumerically("~", cup.CavityVolume()*1000, 1e-9))
		Expect(liquid.HeatCapacity()).To(BeNumerically(">", liquid.Mass))
	})
})
