package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl32"

	rotvis "github.com/Flafla2/Rotation-Vis"
)

const alphaStep = 0.05

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	focusStyle  = lipgloss.NewStyle().Reverse(true)
	editStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	axisStyles  = [3]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
)

// frameMsg drives one host frame.
type frameMsg time.Time

type fieldRef struct {
	target rotvis.Target
	field  rotvis.RotationComponent
}

// fieldOrder is the tab order: the seven start fields, then the seven end
// fields.
var fieldOrder = func() []fieldRef {
	var refs []fieldRef
	for _, target := range []rotvis.Target{rotvis.Start, rotvis.End} {
		for _, field := range rotvis.RotationComponents {
			refs = append(refs, fieldRef{target, field})
		}
	}
	return refs
}()

type model struct {
	app      *rotvis.App
	interp   *rotvis.Interpolator
	preview  *rotvis.Preview
	controls *rotvis.Input
	catalog  *rotvis.ModelCatalog
	sweep    *rotvis.Sweep
	interval time.Duration
	last     time.Time
	presets  string

	focus  int
	input  string
	mode   string
	status string
	failed bool
}

// newModel binds the TUI to app. OrientationModule, PreviewModule and
// InputModule must be installed; the model catalog and sweep are optional.
// presetFile is where p saves and o loads.
func newModel(app *rotvis.App, interval time.Duration, presetFile string) model {
	m := model{
		app:      app,
		interp:   rotvis.MustResource[rotvis.Interpolator](app, "tui"),
		preview:  rotvis.MustResource[rotvis.Preview](app, "tui"),
		controls: rotvis.MustResource[rotvis.Input](app, "tui"),
		interval: interval,
		presets:  presetFile,
		mode:     "view",
	}
	m.catalog, _ = rotvis.Resource[rotvis.ModelCatalog](app)
	m.sweep, _ = rotvis.Resource[rotvis.Sweep](app)
	return m
}

func (m model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		dt := m.interval
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.app.Tick(dt)
		return m, m.nextFrame()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == "edit" {
			return m.updateEdit(msg), nil
		}
		return m.updateView(msg)
	}
	return m, nil
}

func (m model) updateEdit(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEnter:
		ref := fieldOrder[m.focus]
		if m.interp.EditField(ref.target, ref.field, m.input) {
			m.setStatus(false, "%s %s = %s", ref.target, ref.field, m.input)
		} else {
			m.setStatus(true, "rejected %q for %s %s", m.input, ref.target, ref.field)
		}
		m.input = ""
		m.mode = "view"
	case tea.KeyEsc:
		m.input = ""
		m.mode = "view"
		m.setStatus(false, "edit cancelled")
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m
}

func (m model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.interp.Selection()

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % len(fieldOrder)
	case "shift+tab", "up":
		m.focus = (m.focus + len(fieldOrder) - 1) % len(fieldOrder)
	case "enter":
		ref := fieldOrder[m.focus]
		m.mode = "edit"
		m.input = rotvis.FormatField(m.interp.FieldValue(ref.target, ref.field))
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "-", ".":
		m.mode = "edit"
		m.input = key
	case "m":
		if m.interp.Mode() == rotvis.EulerLerp {
			m.interp.SetMode(rotvis.QuaternionSlerp)
		} else {
			m.interp.SetMode(rotvis.EulerLerp)
		}
		m.setStatus(false, "mode %s", m.interp.Mode())
	case "[":
		m.interp.SetParameter(m.interp.Parameter() - alphaStep)
	case "]":
		m.interp.SetParameter(m.interp.Parameter() + alphaStep)
	case "t":
		if sel.Target == rotvis.Start {
			sel.Target = rotvis.End
		} else {
			sel.Target = rotvis.Start
		}
		m.interp.SelectRotation(sel)
	case "x", "y", "z":
		sel.Axis = rotvis.Axis(key[0] - 'x')
		m.interp.SelectRotation(sel)
	case "w":
		if sel.Space == rotvis.World {
			sel.Space = rotvis.Local
		} else {
			sel.Space = rotvis.World
		}
		m.interp.SelectRotation(sel)
	case "a":
		// Terminals do not report key release, so a second press releases.
		m.controls.Toggle(rotvis.ActionRotateCCW)
	case "d":
		m.controls.Toggle(rotvis.ActionRotateCW)
	case "p":
		if err := rotvis.SavePreset(m.interp, m.presets); err != nil {
			m.setStatus(true, "save preset: %v", err)
		} else {
			m.setStatus(false, "saved preset to %s", m.presets)
		}
	case "o":
		if err := rotvis.LoadPreset(m.interp, m.presets); err != nil {
			m.setStatus(true, "load preset: %v", err)
		} else {
			m.setStatus(false, "loaded preset from %s", m.presets)
		}
	case "n":
		if m.catalog != nil && m.catalog.Next() {
			active, _ := m.catalog.Active()
			m.setStatus(false, "model %s", active.Model.Name)
		}
	case "s":
		if m.sweep == nil {
			break
		}
		if m.sweep.Active() {
			m.sweep.Stop()
			m.setStatus(false, "sweep stopped")
		} else {
			m.sweep.Start()
			m.setStatus(false, "sweep started")
		}
	}
	return m, nil
}

func (m *model) setStatus(failed bool, format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.failed = failed
}

// CurrentInput returns the text being typed into the focused field.
func (m model) CurrentInput() string {
	return m.input
}

// CurrentMode is "view" or "edit".
func (m model) CurrentMode() string {
	return m.mode
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Rotation Visualizer"))
	b.WriteString("\n\n")

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.targetView(rotvis.Start)),
		panelStyle.Render(m.outputView()),
		panelStyle.Render(m.targetView(rotvis.End)),
	)
	b.WriteString(panels)
	b.WriteString("\n")

	sel := m.interp.Selection()
	rotating, dir := m.interp.Rotating()
	spin := "idle"
	if rotating {
		spin = dir.String()
	}
	b.WriteString(fmt.Sprintf("Mode: %s  Alpha: %.2f  Rotate: %s %s %s (%s)\n",
		m.interp.Mode(), m.interp.Parameter(), sel.Target, sel.Axis, sel.Space, spin))

	if m.catalog != nil {
		if active, ok := m.catalog.Active(); ok {
			b.WriteString(fmt.Sprintf("Model: %s [%s]\n", active.Model.Name, active.Id))
		}
	}
	if m.sweep != nil && m.sweep.Active() {
		b.WriteString("Sweep: running\n")
	}

	if m.mode == "edit" {
		ref := fieldOrder[m.focus]
		b.WriteString(editStyle.Render(fmt.Sprintf("%s %s> %s", ref.target, ref.field, m.input)))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"tab fields  0-9 edit  m mode  [ ] alpha  t/x/y/z/w select  a/d rotate  n model  s sweep  p/o preset  q quit"))

	return b.String()
}

func (m model) targetView(target rotvis.Target) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(target.String()[:1]) + target.String()[1:]))
	b.WriteString("\n")

	for i, ref := range fieldOrder {
		if ref.target != target {
			continue
		}
		line := fmt.Sprintf("%-8s %10s", ref.field, rotvis.FormatField(m.interp.FieldValue(target, ref.field)))
		if i == m.focus {
			line = focusStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	gizmo := m.preview.Start
	if target == rotvis.End {
		gizmo = m.preview.End
	}
	b.WriteString(axesView(gizmo))
	return b.String()
}

func (m model) outputView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Interpolated"))
	b.WriteString("\n")

	q := m.interp.Interpolated()
	b.WriteString(fmt.Sprintf("quat  %s\n", formatQuat(q)))
	b.WriteString(fmt.Sprintf("model %s\n", formatQuat(m.preview.Model.Rotation)))
	b.WriteString(axesView(m.preview.Interpolated))
	return b.String()
}

func axesView(g rotvis.AxesGizmo) string {
	var b strings.Builder
	for _, axis := range []rotvis.Axis{rotvis.AxisX, rotvis.AxisY, rotvis.AxisZ} {
		d := g.Direction(axis)
		b.WriteString(axisStyles[axis].Render(fmt.Sprintf("%s -> (%5.2f %5.2f %5.2f)", axis, d[0], d[1], d[2])))
		b.WriteString("\n")
	}
	return b.String()
}

func formatQuat(q mgl32.Quat) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", q.V[0], q.V[1], q.V[2], q.W)
}
