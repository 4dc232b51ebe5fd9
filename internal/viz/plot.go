// Package viz renders scenario trajectories in the terminal: static
// asciigraph plots and an interactive live view that recomputes the
// whole scenario set on every parameter edit.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kmoray/brewsim/internal/scenario"
	"github.com/kmoray/brewsim/internal/units"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	captionStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// RenderScenario plots one trajectory with its crossing summary.
func RenderScenario(sc scenario.Scenario, scale units.TempScale) (string, error) {
	data := make([]float64, sc.Trajectory.Len())
	for i, temp := range sc.Trajectory.Temps {
		v, err := units.FromCelsius(temp, scale)
		if err != nil {
			return "", err
		}
		data[i] = v
	}

	target, err := units.FromCelsius(sc.Params.TargetTemp, scale)
	if err != nil {
		return "", err
	}

	caption := fmt.Sprintf("%s — target %.1f%s, %s", sc.Name, target, units.Symbol(scale), crossingLabel(sc))
	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph), nil
}

// RenderAll plots every scenario of a run, one graph per scenario.
func RenderAll(rs *scenario.ResultSet, scale units.TempScale) (string, error) {
	var b strings.Builder
	b.WriteString(headerStyle.Render("brewsim — cooling trajectories"))
	b.WriteString("\n")
	window := 0.0
	if len(rs.Times) > 0 {
		window = rs.Times[len(rs.Times)-1]
	}
	b.WriteString(captionStyle.Render(fmt.Sprintf("window [0, %.0f] min, %d samples", window, len(rs.Times))))
	b.WriteString("\n")

	for _, sc := range rs.Scenarios {
		graph, err := RenderScenario(sc, scale)
		if err != nil {
			return "", err
		}
		b.WriteString(graph)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func crossingLabel(sc scenario.Scenario) string {
	if sc.Crossing == nil {
		return "not reached within window"
	}
	if sc.ExactCrossing != nil {
		return fmt.Sprintf("reached at %.2f min (exact %.2f)", *sc.Crossing, *sc.ExactCrossing)
	}
	return fmt.Sprintf("reached at %.2f min", *sc.Crossing)
}
