package visual

import (
	"barlens/internal/host"
	"barlens/internal/scale"
	"barlens/internal/scene"
)

// Margin is the fixed chart padding, in pixels.
type Margin struct {
	Left, Right, Top, Bottom float64
}

var chartMargin = Margin{Left: 30, Right: 20, Top: 40, Bottom: 30}

const (
	// Room kept under the chart when axis labels are hidden, so the axis
	// line still has somewhere to live.
	hiddenAxisReserve = 10

	bandPadding    = 0.5
	dimOpacity     = 0.5
	valueTickCount = 5
	tickMarkLen    = 4
	labelOffset    = 8

	axisColor  = "#6b6b6b"
	labelColor = "#a8a8a8"
)

// Layer names, in paint order.
const (
	layerAxes   = "axes"
	layerLabels = "labels"
	layerBars   = "bars"
)

// Renderer keeps a scene graph synchronized with the current view model.
// Every Render is a full recompute; the only state between passes lives in
// the scene's retained nodes.
type Renderer struct {
	scene      *scene.Scene
	selections host.SelectionManager
	tooltips   host.TooltipService
}

// NewRenderer binds a renderer to its scene and host services.
func NewRenderer(s *scene.Scene, selections host.SelectionManager, tooltips host.TooltipService) *Renderer {
	return &Renderer{scene: s, selections: selections, tooltips: tooltips}
}

// Render updates axes, bars and interaction handlers for the view model.
// Handlers are rebound on every pass so their closures always see the data
// they were rendered from.
func (r *Renderer) Render(vm ViewModel, settings Settings, vp host.Viewport) {
	xPad := chartMargin.Bottom
	if !settings.XAxis.Show {
		xPad = hiddenAxisReserve
	}
	baseline := vp.Height - xPad

	y := scale.NewLinear(0, vm.MaxValue, baseline, chartMargin.Top)
	domain := make([]string, len(vm.DataPoints))
	for i, dp := range vm.DataPoints {
		domain[i] = dp.Category
	}
	x := scale.NewBand(domain, chartMargin.Left, vp.Width, bandPadding)

	axes := r.scene.Layer(layerAxes)
	labels := r.scene.Layer(layerLabels)
	bars := r.scene.Layer(layerBars)

	r.renderAxes(axes, labels, vm, settings, x, y, baseline, vp)
	r.renderBars(bars, vm, x, y, xPad, vp)

	axes.Sweep()
	labels.Sweep()
	bars.Sweep()
}

func (r *Renderer) renderAxes(axes, labels *scene.Layer, vm ViewModel, settings Settings, x scale.Band, y scale.Linear, baseline float64, vp host.Viewport) {
	valueAxis := axes.Line("y-axis")
	valueAxis.X, valueAxis.Y = chartMargin.Left, chartMargin.Top
	valueAxis.X2, valueAxis.Y2 = chartMargin.Left, baseline
	valueAxis.Fill = axisColor

	// The category axis line and tick marks are always drawn; xAxis.show
	// only toggles the label text.
	categoryAxis := axes.Line("x-axis")
	categoryAxis.X, categoryAxis.Y = chartMargin.Left, baseline
	categoryAxis.X2, categoryAxis.Y2 = vp.Width, baseline
	categoryAxis.Fill = axisColor

	for _, tick := range y.Ticks(valueTickCount) {
		text := host.FormatNumber(tick)
		label := labels.Text("ytick-" + text)
		label.X = chartMargin.Left - 2
		label.Y = y.Scale(tick)
		label.Text = text
		label.AlignRight = true
		label.Fill = labelColor
	}

	for _, dp := range vm.DataPoints {
		pos, ok := x.Scale(dp.Category)
		if !ok {
			continue
		}
		center := pos + x.Bandwidth()/2

		mark := axes.Line("xtick-" + dp.Category)
		mark.X, mark.Y = center, baseline
		mark.X2, mark.Y2 = center, baseline+tickMarkLen
		mark.Fill = axisColor

		label := labels.Text("xlabel-" + dp.Category)
		label.X = center
		label.Y = baseline + labelOffset
		label.Text = dp.Category
		label.Fill = labelColor
		label.Hidden = !settings.XAxis.Show
	}
}

func (r *Renderer) renderBars(bars *scene.Layer, vm ViewModel, x scale.Band, y scale.Linear, xPad float64, vp host.Viewport) {
	for _, dp := range vm.DataPoints {
		dp := dp
		pos, ok := x.Scale(dp.Category)
		if !ok {
			continue
		}
		top := y.Scale(dp.Value)

		bar := bars.Rect(dp.Category)
		bar.X = pos
		bar.Y = top
		bar.W = x.Bandwidth()
		bar.H = vp.Height - top - xPad
		bar.Fill = dp.Color
		bar.Opacity = barOpacity(vm.Highlights, dp.Highlighted)
		bar.Handlers = scene.Handlers{
			OnClick: func() { r.onBarClick(dp, vm) },
			OnMouseOver: func(px, py float64) {
				r.tooltipCall(r.showTooltip, dp, px, py)
			},
			OnMouseMove: func(px, py float64) {
				r.tooltipCall(r.moveTooltip, dp, px, py)
			},
			OnMouseOut: func() {
				if r.tooltips != nil {
					r.tooltips.Hide(host.TooltipHideArgs{Immediately: true})
				}
			},
		}
	}
}

func barOpacity(anyHighlight, highlighted bool) float64 {
	if anyHighlight && !highlighted {
		return dimOpacity
	}
	return 1
}

// onBarClick toggles the bar's identity in the host selection and, once the
// host reports the updated selection, recomputes bar opacities locally.
func (r *Renderer) onBarClick(dp DataPoint, vm ViewModel) {
	if r.selections == nil {
		return
	}
	bars := r.scene.Layer(layerBars)
	r.selections.Select(dp.SelectionID, true, func(selected []host.SelectionID) {
		for _, point := range vm.DataPoints {
			node, ok := bars.Get(point.Category)
			if !ok {
				continue
			}
			if len(selected) == 0 || host.ContainsID(selected, point.SelectionID) {
				node.Opacity = 1
			} else {
				node.Opacity = dimOpacity
			}
		}
	})
}

func (r *Renderer) showTooltip(args host.TooltipShowArgs) { r.tooltips.Show(args) }
func (r *Renderer) moveTooltip(args host.TooltipShowArgs) { r.tooltips.Move(args) }

func (r *Renderer) tooltipCall(fn func(host.TooltipShowArgs), dp DataPoint, x, y float64) {
	if r.tooltips == nil {
		return
	}
	fn(host.TooltipShowArgs{
		DataItems:   dp.Tooltips,
		Identities:  []string{dp.Category},
		Coordinates: [2]float64{x, y},
	})
}
