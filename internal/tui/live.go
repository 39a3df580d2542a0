// Package tui renders the point cloud and its contour envelope as
// braille art inside a bubbletea program, with the same timeline and
// controls as the raylib frontend.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/radviz/internal/anim"
	"github.com/san-kum/radviz/internal/cloud"
	"github.com/san-kum/radviz/internal/config"
	"github.com/san-kum/radviz/internal/dataset"
	"github.com/san-kum/radviz/internal/envelope"
	"github.com/san-kum/radviz/internal/scene"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// tickClock advances a fixed step per tick so the animation timeline is
// deterministic regardless of terminal frame jitter.
type tickClock struct {
	t    float64
	step float64
}

func (c *tickClock) Now() float64 { return c.t }

// Model carries the animation driver, the braille canvas, and UI state.
type Model struct {
	cfg      config.Config
	series   dataset.Series
	clock    *tickClock
	driver   *anim.Driver
	computer *envelope.Computer
	rings    *scene.RingRenderer
	points   *scene.PointRenderer
	canvas   *Canvas
	surface  *canvasSurface
	theme    Theme
	interval time.Duration

	frame     anim.Frame
	running   bool
	recording bool
	frames    []*image.Paletted
	showHelp  bool
}

// New builds a Model from the config and series. The same formulas drive
// both frontends; only the surface differs.
func New(cfg config.Config, series dataset.Series) Model {
	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height)/2 + cfg.CenterYOffset

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := cloud.NewGenerator(cx, cy, cfg.StdX, cfg.StdY, cfg.Points, rand.New(rand.NewSource(seed)))

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	clock := &tickClock{step: 1.0 / float64(fps)}
	driver := anim.NewDriver(series, gen, clock, anim.Config{
		SwitchInterval:     cfg.SwitchInterval,
		TransitionDuration: cfg.TransitionDuration,
	})

	canvas := NewCanvas(canvasWidth, canvasHeight)
	pal := scene.PaletteByName(cfg.Theme)

	return Model{
		cfg:      cfg,
		series:   series,
		clock:    clock,
		driver:   driver,
		computer: envelope.NewComputer(cx, cy, cfg.Bins),
		rings:    scene.NewRingRenderer(cx, cy, cfg.Layers, pal),
		points:   scene.NewPointRenderer(pal),
		canvas:   canvas,
		surface:  newCanvasSurface(canvas, float64(cfg.Width), float64(cfg.Height)),
		theme:    GetTheme(cfg.Theme),
		interval: time.Second / time.Duration(fps),
		frame:    driver.Advance(),
		running:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and steps the timeline on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.clock.t = 0
			m.driver.Reset()
			m.frame = m.driver.Advance()
		case "t":
			m.cycleTheme()
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.clock.t += m.clock.step
			m.frame = m.driver.Advance()
		}
		if m.recording {
			m.draw()
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == m.theme.Name {
			next := names[(i+1)%len(names)]
			m.theme = GetTheme(next)
			m.rings.SetPalette(scene.PaletteByName(next))
			m.points.SetPalette(scene.PaletteByName(next))
			return
		}
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	envA := m.computer.Compute(m.frame.Prev)
	envB := m.computer.Compute(m.frame.Target)
	m.rings.Render(m.surface, envA, envB, m.frame.Ratio, m.frame.Time)
	m.points.Render(m.surface, m.frame.Prev, m.frame.Target, m.frame.Time, m.frame.Ratio)
}

// View renders the canvas beside the stats column.
func (m Model) View() string {
	m.draw()

	title := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true)
	accent := lipgloss.NewStyle().Foreground(m.theme.Accent)
	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(10)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	graph := lipgloss.NewStyle().Foreground(m.theme.Graph).Padding(1, 0)

	var s strings.Builder
	s.WriteString(title.Render(strings.ToUpper(m.cfg.Title)) + "\n")
	s.WriteString(accent.Render(m.cfg.Subtitle) + "\n\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += "  * REC"
	}
	s.WriteString(value.Render(status) + "\n\n")

	s.WriteString(label.Render("Year") + value.Render(yearString(m.frame)) + "\n")
	s.WriteString(label.Render("Total") + value.Render(totalString(m.frame)) + "\n")
	s.WriteString(label.Render("Blend") + value.Render(fmt.Sprintf("%.2f", m.frame.Ratio)) + "\n")
	s.WriteString(label.Render("Theme") + value.Render(m.theme.Name) + "\n")

	if vals := m.series.Values(); len(vals) > 1 {
		chart := asciigraph.Plot(vals, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Yearly totals"))
		s.WriteString(graph.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset T:Theme\nG:Record Q:Quit ?:Help"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n" + mainView
	}
	return mainView
}

func yearString(f anim.Frame) string {
	if !f.HasData {
		return "#"
	}
	return fmt.Sprintf("%d", f.Year)
}

func totalString(f anim.Frame) string {
	if !f.HasData {
		return "-"
	}
	return fmt.Sprintf("%.1f", f.Total)
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart the timeline     ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
`

// captureFrame rasterizes the braille grid into a paletted image, one
// filled block per lit subpixel.
func (m *Model) captureFrame() {
	const charW, charH = 8, 16
	imgW, imgH := m.canvas.Width*charW, m.canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	dotW, dotH := charW/2, charH/4
	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			pattern := m.canvas.Cell(col, row) - 0x2800
			if pattern == 0 {
				continue
			}
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	out := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, 2)
	}
	f, err := os.Create("visualization.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &out)
}

// Run starts the terminal frontend and blocks until the user quits.
func Run(cfg config.Config, series dataset.Series) error {
	p := tea.NewProgram(New(cfg, series), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
