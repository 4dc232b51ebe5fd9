package viz

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/kmoray/brewsim/internal/scenario"
	"github.com/kmoray/brewsim/internal/units"
)

// Adjustable parameter keys, displayed in sorted order.
const (
	paramAmbient   = "ambient °C"
	paramCoffee    = "coffee °C"
	paramPreheat   = "preheat °C"
	paramTarget    = "target °C"
	paramDecay     = "k 1/min"
	paramMixTime   = "mix time min"
	paramAdditiveT = "additive °C"
	paramAdditiveV = "additive L"
)

// Model is the interactive view: a parameter panel and one scenario
// graph. Every edit rebuilds the inputs and recomputes the entire
// scenario set from scratch; nothing is cached between edits.
type Model struct {
	base      scenario.Inputs
	params    map[string]float64
	paramKeys []string
	selected  int
	shown     int
	results   *scenario.ResultSet
	runErr    error
	scale     units.TempScale
}

// NewModel builds the live view around a starting parameter set.
func NewModel(in scenario.Inputs, scale units.TempScale) (Model, error) {
	params := map[string]float64{
		paramAmbient:   in.AmbientTemp,
		paramCoffee:    in.CoffeeTemp,
		paramPreheat:   in.PreheatedCupTemp,
		paramTarget:    in.TargetTemp,
		paramDecay:     in.DecayConst,
		paramMixTime:   in.MixTime,
		paramAdditiveT: in.AdditiveTemp,
		paramAdditiveV: in.AdditiveVolume,
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := Model{
		base:      in,
		params:    params,
		paramKeys: keys,
		scale:     scale,
	}
	m.recompute()
	if m.runErr != nil {
		return Model{}, m.runErr
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key events; the simulation only advances when a
// parameter changes, there is no clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.selected = (m.selected + 1) % len(m.paramKeys)
	case "left", "h":
		m.shown = (m.shown + len(m.results.Scenarios) - 1) % len(m.results.Scenarios)
	case "right", "l":
		m.shown = (m.shown + 1) % len(m.results.Scenarios)
	case "up", "k":
		m.adjustParam(1.05)
	case "down", "j":
		m.adjustParam(0.95)
	case "r":
		m.resetParams()
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	key := m.paramKeys[m.selected]
	val := m.params[key]
	if val == 0 {
		val = 1e-6
	}
	m.params[key] = val * factor
	m.recompute()
}

func (m *Model) resetParams() {
	m.params[paramAmbient] = m.base.AmbientTemp
	m.params[paramCoffee] = m.base.CoffeeTemp
	m.params[paramPreheat] = m.base.PreheatedCupTemp
	m.params[paramTarget] = m.base.TargetTemp
	m.params[paramDecay] = m.base.DecayConst
	m.params[paramMixTime] = m.base.MixTime
	m.params[paramAdditiveT] = m.base.AdditiveTemp
	m.params[paramAdditiveV] = m.base.AdditiveVolume
	m.recompute()
}

func (m *Model) recompute() {
	in := m.base
	in.AmbientTemp = m.params[paramAmbient]
	in.CoffeeTemp = m.params[paramCoffee]
	in.PreheatedCupTemp = m.params[paramPreheat]
	in.TargetTemp = m.params[paramTarget]
	in.DecayConst = m.params[paramDecay]
	in.MixTime = m.params[paramMixTime]
	in.AdditiveTemp = m.params[paramAdditiveT]
	in.AdditiveVolume = m.params[paramAdditiveV]

	rs, err := scenario.Run(in)
	if err != nil {
		m.runErr = err
		return
	}
	m.runErr = nil
	m.results = rs
	if m.shown >= len(rs.Scenarios) {
		m.shown = 0
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("brewsim live"))
	b.WriteString("\n")

	for i, key := range m.paramKeys {
		line := labelStyle.Render(key) + valueStyle.Render(fmt.Sprintf("%.4g", m.params[key]))
		if i == m.selected {
			line = activeParamStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.runErr != nil {
		b.WriteString("\n")
		b.WriteString(activeParamStyle.Render(fmt.Sprintf("error: %v", m.runErr)))
		b.WriteString("\n")
	} else {
		sc := m.results.Scenarios[m.shown]
		graph, err := RenderScenario(sc, m.scale)
		if err != nil {
			graph = graphStyle.Render(asciigraph.Plot(sc.Trajectory.Temps,
				asciigraph.Height(plotHeight), asciigraph.Width(plotWidth)))
		}
		b.WriteString(graph)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab param · ↑/↓ adjust · ←/→ scenario · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunLive starts the interactive program.
func RunLive(in scenario.Inputs, scale units.TempScale) error {
	m, err := NewModel(in, scale)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
