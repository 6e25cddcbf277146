package term

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/phanxgames/mosaic"
)

// Terminal size assumed until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the terminal viewer.
type Options struct {
	// FPS is the frame rate; each frame calls Tick once.
	FPS int
	// Parallax is how many pixel columns an element shifts per unit of
	// depth.
	Parallax float64
	// DepthFade is how far toward the background an element at the edge of
	// the depth range is blended, in [0, 1].
	DepthFade float64
	// Background fills empty cells.
	Background mosaic.RGB
	// Profile selects the color escape sequences. termenv.Ascii draws a
	// brightness ramp instead of colored blocks.
	Profile termenv.Profile
	// ShowStatus draws the status and help line.
	ShowStatus bool
}

// DefaultOptions returns 30 FPS, a two-column parallax per depth unit, a 60%
// depth fade on black and the color profile detected from the environment.
func DefaultOptions() Options {
	return Options{
		FPS:        30,
		Parallax:   2,
		DepthFade:  0.6,
		Background: mosaic.RGB{},
		Profile:    termenv.EnvColorProfile(),
		ShowStatus: true,
	}
}

type tickMsg time.Time

func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubbletea model for the terminal viewer.
type Model struct {
	ctrl *mosaic.ScatterController
	opts Options

	gridW, gridH int
	splats       []splat

	width, height int
	frames        uint64
	quitting      bool

	raster *raster
}

// New creates a Model animating ctrl.
func New(ctrl *mosaic.ScatterController, opts Options) Model {
	if ctrl == nil {
		panic("mosaic: term.New called with a nil controller")
	}
	m := Model{
		ctrl:   ctrl,
		opts:   opts,
		gridW:  ctrl.Config().GridWidth,
		width:  defaultWidth,
		height: defaultHeight,
		raster: &raster{
			profile:  opts.Profile,
			bg:       colorful.Color{R: float64(opts.Background.R) / 255, G: float64(opts.Background.G) / 255, B: float64(opts.Background.B) / 255},
			parallax: opts.Parallax,
			fade:     opts.DepthFade,
		},
	}
	for _, e := range ctrl.Elements() {
		m.gridH = max(m.gridH, e.GridY()+1)
	}
	m.splats = make([]splat, ctrl.Len())
	m.resize(m.width, m.height)
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}
		if isToggle(msg) {
			m.ctrl.Toggle()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.ctrl.Toggle()
		}
		return m, nil

	case tickMsg:
		m.ctrl.Tick()
		m.frames++
		return m, tickCmd(m.opts.FPS)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := height
	if m.opts.ShowStatus {
		rows--
	}
	m.raster.resize(width, max(rows, 0)*2)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	elems := m.ctrl.Elements()
	for i := range elems {
		e := &elems[i]
		m.splats[i] = splat{gx: e.GridX(), gy: e.GridY(), color: e.Color(), depth: e.Depth()}
	}
	m.raster.draw(m.splats, m.gridW, m.gridH, m.ctrl.Config().DepthRange/2)

	out := m.raster.String()
	if !m.opts.ShowStatus {
		return out
	}
	if out != "" {
		out += "\n"
	}
	return out + m.statusLine()
}

func (m Model) statusLine() string {
	mode := "flat"
	if m.ctrl.IsScattered() {
		mode = "scattered"
	}
	status := statusStyle.Render(fmt.Sprintf("%d cubes  %s", m.ctrl.Len(), mode))
	return status + "  " + helpStyle.Render(helpText)
}

// Frames returns the number of frame ticks handled.
func (m Model) Frames() uint64 {
	return m.frames
}
