package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/kepler"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for the orrery view"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()
	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

// buildCanvas renders the solar system to a character grid.
func (m Model) buildCanvas() string {
	canvasH := m.height - 5
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	screenCenterX := canvasW / 2
	screenCenterY := canvasH / 2

	// Zoom is applied through displayScale only, so the projection itself
	// stays zoom-independent.
	cfg := astro.ProjectionConfig{Scale: 1.0, Mode: m.scaleMode}

	// Map ~1.5 display units (log scale at Pluto's distance) to most of
	// the smaller canvas half-extent.
	maxDisplayR := float64(min(screenCenterX, screenCenterY*2)) * 0.9
	displayScale := maxDisplayR / 1.5 * m.scale()

	originX := screenCenterX + int(m.panX*displayScale)
	originY := screenCenterY - int(m.panY*displayScale)

	m.drawOrbitRings(grid, originX, originY, displayScale, cfg)

	var positions []bodyPos

	for i, st := range m.snapshot.Bodies {
		proj := astro.ProjectEclipticTopDown(st.Ecliptic, cfg)

		sx := originX + int(proj.X*displayScale)
		sy := originY - int(proj.Y*displayScale*0.5) // terminal cell aspect ratio

		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		grid[sy][sx] = bodyGlyph(st.Body, i == m.focusIdx)
		positions = append(positions, bodyPos{
			x:         sx,
			y:         sy,
			name:      st.Body.String(),
			isFocused: i == m.focusIdx,
		})
	}

	// Sun last so it is always visible at the origin.
	if originX >= 0 && originX < canvasW && originY >= 0 && originY < canvasH {
		grid[originY][originX] = '☉'
		positions = append(positions, bodyPos{
			x:         originX,
			y:         originY,
			name:      "Sun",
			isFocused: m.focusIdx == -1,
		})
	}

	if m.showLabels {
		m.renderLabels(grid, canvasW, canvasH, positions)
	}

	return renderGrid(grid)
}

func (m Model) drawOrbitRings(grid [][]rune, cx, cy int, scale float64, cfg astro.ProjectionConfig) {
	// Reference circles near each planet's semi-major axis.
	orbitAUs := []float64{0.39, 1, 1.52, 5.2, 9.5, 19.2, 30.1, 39.5}

	for _, au := range orbitAUs {
		proj := astro.ProjectEclipticTopDown(astro.Vec3{X: au}, cfg)
		drawCircle(grid, cx, cy, proj.X*scale)
	}
}

func drawCircle(grid [][]rune, cx, cy int, r float64) {
	if r < 1 {
		return
	}

	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 360 {
		steps = 360
	}

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5) // aspect ratio correction

		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

// renderLabels draws body names next to their glyphs.
func (m Model) renderLabels(grid [][]rune, width, height int, positions []bodyPos) {
	for _, pos := range positions {
		labelX := pos.x + 2
		labelY := pos.y
		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		label := pos.name
		if pos.isFocused {
			label = "◄ " + pos.name
		}

		for i, r := range label {
			x := labelX + i
			if x >= width {
				break
			}
			if grid[labelY][x] == ' ' || grid[labelY][x] == '·' {
				grid[labelY][x] = r
			}
		}
	}
}

func bodyGlyph(body kepler.Body, focused bool) rune {
	switch {
	case body >= kepler.Jupiter && body <= kepler.Neptune:
		if focused {
			return '◉'
		}
		return '○'
	case body == kepler.Pluto:
		if focused {
			return '◆'
		}
		return '◇'
	default: // inner bodies
		if focused {
			return '●'
		}
		return '•'
	}
}

func renderGrid(grid [][]rune) string {
	var b strings.Builder

	ringStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	innerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	giantStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dwarfStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("146"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			switch ch {
			case ' ':
				b.WriteRune(ch)
				continue
			case '·':
				b.WriteString(ringStyle.Render(string(ch)))
			case '☉':
				b.WriteString(sunStyle.Render(string(ch)))
			case '•':
				b.WriteString(innerStyle.Render(string(ch)))
			case '○':
				b.WriteString(giantStyle.Render(string(ch)))
			case '◇':
				b.WriteString(dwarfStyle.Render(string(ch)))
			case '●', '◉', '◆', '◄':
				b.WriteString(focusStyle.Render(string(ch)))
			default:
				b.WriteString(labelStyle.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (m Model) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	focused := m.FocusedBody()

	// Line 1: epoch and focus
	epochLabel := "Epoch: "
	if m.realtime {
		epochLabel = "Epoch (live): "
	}
	b.WriteString(labelStyle.Render(epochLabel))
	b.WriteString(valueStyle.Render(m.epoch.UTC().Format("2006-01-02 15:04:05 UTC")))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("JED %.4f", astro.JulianEphemerisDateTime(m.epoch))))
	b.WriteString("\n")

	// Line 2: focused body
	if focused != nil {
		b.WriteString(headerStyle.Render("◆ " + focused.Body.String()))
		b.WriteString("  ")
		if m.showICRF {
			b.WriteString(labelStyle.Render("ICRF: "))
			b.WriteString(valueStyle.Render(fmt.Sprintf("(%.4f, %.4f, %.4f) AU",
				focused.ICRF.X, focused.ICRF.Y, focused.ICRF.Z)))
		} else {
			b.WriteString(labelStyle.Render("Ecl: "))
			b.WriteString(valueStyle.Render(fmt.Sprintf("(%.4f, %.4f, %.4f) AU",
				focused.Ecliptic.X, focused.Ecliptic.Y, focused.Ecliptic.Z)))
		}
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("r: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f AU", focused.DistanceAU())))
		b.WriteString("\n")

		el := focused.Elements
		b.WriteString(labelStyle.Render("a="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.5f", el.SemiMajorAU)))
		b.WriteString(labelStyle.Render("  e="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.5f", el.Ecc)))
		b.WriteString(labelStyle.Render("  I="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f°", el.InclDeg)))
		b.WriteString(labelStyle.Render("  Ω="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f°", el.NodeDeg)))
		b.WriteString(labelStyle.Render("  M="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f°", el.MeanAnomDeg)))
		b.WriteString(labelStyle.Render("  E="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f°", focused.EccAnomDeg)))
	} else {
		b.WriteString(headerStyle.Render("☉ Sun"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(origin of the heliocentric frame)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Line 3: mode indicators and key hints
	modeName := "Log"
	switch m.scaleMode {
	case astro.ScaleInner:
		modeName = "Inner"
	case astro.ScaleOuter:
		modeName = "Outer"
	}
	frameName := "ecliptic"
	if m.showICRF {
		frameName = "ICRF"
	}

	b.WriteString(dimStyle.Render("Scale:"))
	b.WriteString(valueStyle.Render(modeName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Frame:"))
	b.WriteString(valueStyle.Render(frameName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("[j/k]focus [,/.]±day [m/M]±month [</>]±year [n]now [q]uit"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
