// Package visual implements the bar-chart visual: the view-model builder
// that turns a host data view into renderable points, and the render
// controller that keeps the scene graph in sync with it.
package visual

import (
	"math"

	"barlens/internal/host"
)

// Object and property keys recognized in persisted formatting objects.
const (
	objectXAxis     = "xAxis"
	objectDataColor = "dataColor"
	propShow        = "show"
	propFill        = "fill"
)

// DataPoint is one renderable bar.
type DataPoint struct {
	Category    string
	Value       float64
	Color       string
	SelectionID host.SelectionID
	Highlighted bool
	Tooltips    []host.TooltipItem
}

// ViewModel is the full renderable snapshot, rebuilt on every update.
type ViewModel struct {
	DataPoints []DataPoint
	MaxValue   float64
	Highlights bool
}

// BuildViewModel derives the view model from a host data view. Absent or
// unusable data is normal and yields an empty view model, never an error.
// Values are trusted as-is: a non-numeric value becomes NaN and flows
// through to the geometry unchanged.
func BuildViewModel(dv *host.DataView, palette host.Palette, ids host.SelectionIDFactory) ViewModel {
	empty := ViewModel{DataPoints: []DataPoint{}}
	if dv == nil || dv.Categorical == nil {
		return empty
	}
	cat := dv.Categorical
	if len(cat.Categories) == 0 || cat.Categories[0] == nil || len(cat.Values) == 0 || cat.Values[0] == nil {
		return empty
	}
	category := cat.Categories[0]
	value := cat.Values[0]

	// Upstream can hand us mismatched column lengths; iterate the longer.
	n := len(category.Values)
	if len(value.Values) > n {
		n = len(value.Values)
	}

	vm := ViewModel{DataPoints: make([]DataPoint, 0, n)}
	for i := 0; i < n; i++ {
		label := ""
		if i < len(category.Values) {
			label = host.Stringify(category.Values[i])
		}
		v := math.NaN()
		if i < len(value.Values) {
			v = host.ToNumber(value.Values[i])
		}

		color := rowFillOverride(category, i)
		if color == "" {
			color = palette.Color(label)
		}

		highlighted := value.Highlights != nil &&
			i < len(value.Highlights) && host.Truthy(value.Highlights[i])

		dp := DataPoint{
			Category:    label,
			Value:       v,
			Color:       color,
			SelectionID: ids.Builder().WithCategory(category, i).Create(),
			Highlighted: highlighted,
			Tooltips: []host.TooltipItem{
				{DisplayName: category.Source.DisplayName + ":", Value: label},
				{DisplayName: value.Source.DisplayName + ":", Value: host.FormatNumber(v)},
			},
		}
		vm.DataPoints = append(vm.DataPoints, dp)

		if dp.Value > vm.MaxValue {
			vm.MaxValue = dp.Value
		}
		if dp.Highlighted {
			vm.Highlights = true
		}
	}
	return vm
}

// rowFillOverride returns the per-row color the host's property pane
// persisted for this category, or "".
func rowFillOverride(category *host.CategoryColumn, i int) string {
	if i >= len(category.Objects) || category.Objects[i] == nil {
		return ""
	}
	fill, _ := category.Objects[i][objectDataColor][propFill].(string)
	return fill
}
