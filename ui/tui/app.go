package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"barlens/internal/config"
	"barlens/internal/datasource"
	"barlens/internal/host"
	"barlens/internal/scene"
	"barlens/internal/visual"
	"barlens/ui/tui/state"
	"barlens/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// The scene works in pixels; the rasterizer maps them onto cells using a
// nominal terminal font metric.
const (
	cellPixelW = 8.0
	cellPixelH = 16.0
)

// sourceOrder fixes the menu order of data sources.
var sourceOrder = []config.SourceType{
	config.SourceInline,
	config.SourceSystem,
	config.SourceDuckDB,
	config.SourceNeo4j,
}

var sourceLabels = map[config.SourceType]string{
	config.SourceInline: "Inline sample data",
	config.SourceSystem: "System disk usage",
	config.SourceDuckDB: "DuckDB query",
	config.SourceNeo4j:  "Neo4j query",
}

// MainModel is the Bubble Tea Model acting as the host application: it
// owns the data providers, the visual instance, and the host services the
// visual calls back into.
type MainModel struct {
	cfg      *config.Config
	provider datasource.Provider

	visual     *visual.BarVisual
	selections *SelectionStore
	tooltips   *TooltipPanel
	raster     *scene.Rasterizer

	spinner    spinner.Model
	state      state.AppState
	menuCursor int
	animCursor float64
	velocity   float64 // Physics velocity
	spring     harmonica.Spring

	xAxisShow   bool
	highlightOn bool
	hovered     *scene.Node

	loading  bool
	quitting bool
	width    int
	height   int
	mouseX   int
	mouseY   int
}

// Messages
type TickMsg time.Time
type AnimateMsg time.Time
type DataLoadedMsg struct {
	DataView *host.DataView
	Err      error
}

func InitialModel(cfg *config.Config) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	selections := NewSelectionStore()
	tooltips := NewTooltipPanel()

	return MainModel{
		cfg:        cfg,
		spinner:    s,
		spring:     spring,
		selections: selections,
		tooltips:   tooltips,
		visual: visual.New(visual.Services{
			Selections: selections,
			Tooltips:   tooltips,
		}),
		raster:    scene.NewRasterizer(60, 20),
		xAxisShow: cfg.XAxis.Show,
		state: state.AppState{
			CurrentPage: state.PageMenu,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(m.cfg.Refresh),
		animateCmd(),
	)
}

// Commands
func tickCmd(seconds int) tea.Cmd {
	if seconds < 1 {
		seconds = 1
	}
	return tea.Tick(time.Duration(seconds)*time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func fetchDataCmd(p datasource.Provider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dv, err := p.Fetch(ctx)
		return DataLoadedMsg{DataView: dv, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case TickMsg:
		return m.handleTickMsg(msg)

	case DataLoadedMsg:
		return m.handleDataLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.CurrentPage == state.PageMenu {
		switch msg.String() {
		case "up", "k":
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case "down", "j":
			if m.menuCursor < len(sourceOrder)-1 {
				m.menuCursor++
			}
		case "enter":
			return m, m.navigateTo(m.menuCursor)
		}
		return m, nil
	}

	switch msg.String() {
	case "b", "esc", "backspace":
		m.state.CurrentPage = state.PageMenu
		m.tooltips.Hide(host.TooltipHideArgs{Immediately: true})
		m.hovered = nil
		return m, nil
	case "x":
		m.xAxisShow = !m.xAxisShow
		m.cfg.XAxis.Show = m.xAxisShow
		m.applyUpdate()
		m.persistSettings()
	case "h":
		m.highlightOn = !m.highlightOn
		m.applyUpdate()
	case "c":
		m.selections.Clear()
		m.applyUpdate()
	case "r":
		if m.provider != nil {
			m.loading = true
			return m, fetchDataCmd(m.provider)
		}
	}

	return m, nil
}

// navigateTo builds the provider for the chosen source and switches to the
// chart page. Connection failures stay on the menu with the error shown.
func (m *MainModel) navigateTo(cursor int) tea.Cmd {
	if cursor < 0 || cursor >= len(sourceOrder) {
		return nil
	}
	cfg := *m.cfg
	cfg.Source = sourceOrder[cursor]

	provider, err := datasource.ForConfig(&cfg)
	if err != nil {
		m.state.Err = fmt.Errorf("opening %s source: %w", cfg.Source, err)
		return nil
	}

	m.provider = provider
	m.state.Err = nil
	m.state.SourceName = provider.Name()
	m.state.CurrentPage = state.PageChart
	m.loading = true
	return fetchDataCmd(provider)
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.menuCursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Leave room for the tooltip card on the right and the header, status
	// and footer rows around the chart.
	cols := msg.Width - 30
	if cols < 20 {
		cols = 20
	}
	rows := msg.Height - 4
	if rows < 10 {
		rows = 10
	}
	m.raster.Resize(cols, rows)
	m.applyUpdate()
	return m, nil
}

func (m *MainModel) handleTickMsg(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.state.CurrentPage == state.PageChart && m.provider != nil {
		return m, tea.Batch(
			fetchDataCmd(m.provider),
			tickCmd(m.cfg.Refresh),
		)
	}
	return m, tickCmd(m.cfg.Refresh)
}

func (m *MainModel) handleDataLoadedMsg(msg DataLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.state.Err = msg.Err
		return m, nil
	}
	m.state.Err = nil
	m.state.DataView = msg.DataView
	m.state.LastUpdate = time.Now()
	m.applyUpdate()
	return m, nil
}

// viewportPixels is the scene viewport implied by the current cell grid.
func (m *MainModel) viewportPixels() (float64, float64) {
	cols, rows := m.raster.Size()
	return float64(cols) * cellPixelW, float64(rows) * cellPixelH
}

// applyUpdate pushes the current data view, persisted objects and viewport
// into the visual. Every call is a full recompute on the visual's side.
func (m *MainModel) applyUpdate() {
	dv := m.state.DataView
	if dv == nil {
		return
	}
	dv.Objects = host.ObjectMap{"xAxis": {"show": m.xAxisShow}}
	m.applyHighlights(dv)

	vw, vh := m.viewportPixels()
	m.visual.Update(host.UpdateOptions{
		DataView: dv,
		Viewport: host.Viewport{Width: vw, Height: vh},
	})
}

// persistSettings writes runtime setting changes back to the config file,
// when one was loaded.
func (m *MainModel) persistSettings() {
	if m.cfg.Path == "" {
		return
	}
	if err := m.cfg.Save(m.cfg.Path); err != nil {
		m.state.Err = fmt.Errorf("saving settings: %w", err)
	}
}

// applyHighlights implements the host side of cross-highlighting: when the
// demo highlight is on, rows at or above the mean value are marked.
func (m *MainModel) applyHighlights(dv *host.DataView) {
	if dv.Categorical == nil || len(dv.Categorical.Values) == 0 || dv.Categorical.Values[0] == nil {
		return
	}
	value := dv.Categorical.Values[0]
	if !m.highlightOn {
		value.Highlights = nil
		return
	}

	sum, count := 0.0, 0
	for _, raw := range value.Values {
		if v := host.ToNumber(raw); !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	mean := 0.0
	if count > 0 {
		mean = sum / float64(count)
	}

	highlights := make([]any, len(value.Values))
	for i, raw := range value.Values {
		v := host.ToNumber(raw)
		highlights[i] = !math.IsNaN(v) && v >= mean
	}
	value.Highlights = highlights
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if m.state.CurrentPage == state.PageMenu {
		if msg.Action == tea.MouseActionRelease {
			for i := range sourceOrder {
				if zone.Get(fmt.Sprintf("source_%d", i)).InBounds(msg) {
					m.menuCursor = i
					return m, m.navigateTo(i)
				}
			}
		}
		return m, nil
	}

	m.routeChartMouse(msg)
	return m, nil
}

// routeChartMouse translates terminal cells into scene pixels and drives
// the bar handlers: over/move/out from motion, click from release. A
// hovered node swept away by a newer render simply fires its stale
// mouse-out; that race is accepted.
func (m *MainModel) routeChartMouse(msg tea.MouseMsg) {
	cols, rows := m.raster.Size()
	cx := msg.X - views.ChartOriginX
	cy := msg.Y - views.ChartOriginY

	var node *scene.Node
	var px, py float64
	if cx >= 0 && cy >= 0 && cx < cols && cy < rows {
		vw, vh := m.viewportPixels()
		px, py = m.raster.CellToPixel(cx, cy, vw, vh)
		node = m.visual.Scene().HitTest(px, py)
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if node != m.hovered {
			if m.hovered != nil && m.hovered.Handlers.OnMouseOut != nil {
				m.hovered.Handlers.OnMouseOut()
			}
			if node != nil && node.Handlers.OnMouseOver != nil {
				node.Handlers.OnMouseOver(px, py)
			}
			m.hovered = node
		} else if node != nil && node.Handlers.OnMouseMove != nil {
			node.Handlers.OnMouseMove(px, py)
		}
	case tea.MouseActionRelease:
		if node != nil && node.Handlers.OnClick != nil {
			node.Handlers.OnClick()
		}
	}
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	props := views.ViewProps{
		Width:          m.width,
		Height:         m.height,
		MouseX:         m.mouseX,
		MouseY:         m.mouseY,
		MenuCursor:     m.menuCursor,
		AnimCursor:     m.animCursor,
		SourceNames:    sourceNames(),
		XAxisShow:      m.xAxisShow,
		HighlightOn:    m.highlightOn,
		SelectionCount: m.selections.Count(),
		Loading:        m.loading,
	}

	switch m.state.CurrentPage {
	case state.PageChart:
		vw, vh := m.viewportPixels()
		props.SpinnerView = m.spinner.View()
		props.ChartView = m.raster.Render(m.visual.Scene(), vw, vh)
		props.TooltipView = m.tooltips.View()
		return views.RenderChart(m.state, props)
	default:
		return views.RenderMenu(m.state, props)
	}
}

func sourceNames() []string {
	names := make([]string, len(sourceOrder))
	for i, src := range sourceOrder {
		names[i] = sourceLabels[src]
	}
	return names
}

func Start(cfg *config.Config) error {
	m := InitialModel(cfg)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
