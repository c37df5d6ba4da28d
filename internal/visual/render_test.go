package visual

import (
	"math"
	"testing"

	"barlens/internal/host"
)

// toggleSelectionManager mimics the host: Select toggles the id and
// resolves done with the updated list.
type toggleSelectionManager struct {
	selected []host.SelectionID
	holdDone bool
	pending  func()
}

func (f *toggleSelectionManager) Select(id host.SelectionID, multiSelect bool, done func(selected []host.SelectionID)) {
	if host.ContainsID(f.selected, id) {
		kept := f.selected[:0]
		for _, existing := range f.selected {
			if !existing.Equal(id) {
				kept = append(kept, existing)
			}
		}
		f.selected = kept
	} else {
		f.selected = append(f.selected, id)
	}
	resolve := func() {
		out := make([]host.SelectionID, len(f.selected))
		copy(out, f.selected)
		done(out)
	}
	if f.holdDone {
		f.pending = resolve
		return
	}
	resolve()
}

type recordingTooltips struct {
	shows []host.TooltipShowArgs
	moves []host.TooltipShowArgs
	hides []host.TooltipHideArgs
}

func (r *recordingTooltips) Show(args host.TooltipShowArgs) { r.shows = append(r.shows, args) }
func (r *recordingTooltips) Move(args host.TooltipShowArgs) { r.moves = append(r.moves, args) }
func (r *recordingTooltips) Hide(args host.TooltipHideArgs) { r.hides = append(r.hides, args) }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func updateOptions(categories, values, highlights []any, xAxisShow bool) host.UpdateOptions {
	dv := testDataView(categories, values, highlights)
	dv.Objects = host.ObjectMap{"xAxis": {"show": xAxisShow}}
	return host.UpdateOptions{
		DataView: dv,
		Viewport: host.Viewport{Width: 400, Height: 300},
	}
}

func TestRenderBarGeometry(t *testing.T) {
	v := New(Services{})
	v.Update(updateOptions([]any{"A", "B", "C"}, []any{3.0, 1.0, 2.0}, nil, true))

	bars := v.Scene().Layer(layerBars)
	if bars.Len() != 3 {
		t.Fatalf("expected 3 bars, got %d", bars.Len())
	}

	// With labels shown: xAxisPadding = 30, value range [270, 40],
	// band range [30, 400] with padding 0.5 -> step 148, bandwidth 74.
	barA, _ := bars.Get("A")
	if !almostEqual(barA.X, 30) || !almostEqual(barA.W, 74) {
		t.Errorf("bar A: expected x=30 w=74, got x=%v w=%v", barA.X, barA.W)
	}
	if !almostEqual(barA.Y, 40) || !almostEqual(barA.H, 230) {
		t.Errorf("bar A: expected y=40 h=230, got y=%v h=%v", barA.Y, barA.H)
	}

	barB, _ := bars.Get("B")
	if !almostEqual(barB.X, 178) {
		t.Errorf("bar B: expected x=178, got %v", barB.X)
	}
	if barB.Y <= barA.Y {
		t.Errorf("bar B (smaller value) should sit lower than bar A: %v vs %v", barB.Y, barA.Y)
	}
	if !almostEqual(barB.Y+barB.H, 270) {
		t.Errorf("bar B should end at the baseline 270, got %v", barB.Y+barB.H)
	}

	for _, key := range []string{"A", "B", "C"} {
		bar, _ := bars.Get(key)
		if bar.Opacity != 1 {
			t.Errorf("bar %s: expected opacity 1 with no highlights, got %v", key, bar.Opacity)
		}
	}
}

func TestRenderHighlightOpacity(t *testing.T) {
	v := New(Services{})
	v.Update(updateOptions([]any{"A", "B", "C"}, []any{3.0, 1.0, 2.0}, []any{1.0, 0.0, 0.0}, true))

	bars := v.Scene().Layer(layerBars)
	want := map[string]float64{"A": 1, "B": 0.5, "C": 0.5}
	for key, opacity := range want {
		bar, ok := bars.Get(key)
		if !ok {
			t.Fatalf("missing bar %s", key)
		}
		if bar.Opacity != opacity {
			t.Errorf("bar %s: expected opacity %v, got %v", key, opacity, bar.Opacity)
		}
	}
}

func TestRenderXAxisToggle(t *testing.T) {
	v := New(Services{})

	v.Update(updateOptions([]any{"A"}, []any{3.0}, nil, false))
	bars := v.Scene().Layer(layerBars)
	labels := v.Scene().Layer(layerLabels)
	axes := v.Scene().Layer(layerAxes)

	// Hidden labels reclaim the bottom margin down to the small reserve.
	barA, _ := bars.Get("A")
	if !almostEqual(barA.H, 250) {
		t.Errorf("expected bar height 250 with reserve padding 10, got %v", barA.H)
	}
	label, ok := labels.Get("xlabel-A")
	if !ok {
		t.Fatal("expected category label node to exist even when hidden")
	}
	if !label.Hidden {
		t.Error("expected category label to be hidden")
	}
	axis, ok := axes.Get("x-axis")
	if !ok {
		t.Fatal("expected category axis line to remain drawn")
	}
	if !almostEqual(axis.Y, 290) {
		t.Errorf("expected axis baseline at 290, got %v", axis.Y)
	}

	v.Update(updateOptions([]any{"A"}, []any{3.0}, nil, true))
	label, _ = labels.Get("xlabel-A")
	if label.Hidden {
		t.Error("expected category label to be visible")
	}
	barA, _ = bars.Get("A")
	if !almostEqual(barA.H, 230) {
		t.Errorf("expected bar height 230 with labels shown, got %v", barA.H)
	}
}

func TestRenderEnterUpdateExit(t *testing.T) {
	v := New(Services{})
	v.Update(updateOptions([]any{"A", "B", "C"}, []any{3.0, 1.0, 2.0}, nil, true))

	bars := v.Scene().Layer(layerBars)
	before, _ := bars.Get("A")

	v.Update(updateOptions([]any{"A", "C"}, []any{5.0, 2.0}, nil, true))
	if bars.Len() != 2 {
		t.Fatalf("expected 2 bars after exit, got %d", bars.Len())
	}
	if _, ok := bars.Get("B"); ok {
		t.Error("expected bar B to be removed")
	}
	after, _ := bars.Get("A")
	if before != after {
		t.Error("expected bar A to be updated in place, not recreated")
	}
}

func TestRenderClickSelection(t *testing.T) {
	sm := &toggleSelectionManager{}
	v := New(Services{Selections: sm})
	v.Update(updateOptions([]any{"A", "B", "C"}, []any{3.0, 1.0, 2.0}, nil, true))

	bars := v.Scene().Layer(layerBars)
	barB, _ := bars.Get("B")

	barB.Handlers.OnClick()
	wantFirst := map[string]float64{"A": 0.5, "B": 1, "C": 0.5}
	for key, opacity := range wantFirst {
		bar, _ := bars.Get(key)
		if bar.Opacity != opacity {
			t.Errorf("after selecting B, bar %s: expected opacity %v, got %v", key, opacity, bar.Opacity)
		}
	}

	// Clicking B again deselects; the empty selection resets everything.
	barB.Handlers.OnClick()
	for _, key := range []string{"A", "B", "C"} {
		bar, _ := bars.Get(key)
		if bar.Opacity != 1 {
			t.Errorf("after deselect, bar %s: expected opacity 1, got %v", key, bar.Opacity)
		}
	}
}

func TestRenderHoverTooltips(t *testing.T) {
	ts := &recordingTooltips{}
	v := New(Services{Tooltips: ts})
	v.Update(updateOptions([]any{"A", "B"}, []any{3.0, 1.0}, nil, true))

	bars := v.Scene().Layer(layerBars)
	barA, _ := bars.Get("A")

	barA.Handlers.OnMouseOver(12, 34)
	if len(ts.shows) != 1 {
		t.Fatalf("expected 1 show call, got %d", len(ts.shows))
	}
	show := ts.shows[0]
	if len(show.DataItems) != 2 {
		t.Errorf("expected 2 tooltip items, got %d", len(show.DataItems))
	}
	if len(show.Identities) != 1 || show.Identities[0] != "A" {
		t.Errorf("expected identity [A], got %v", show.Identities)
	}
	if show.Coordinates != [2]float64{12, 34} {
		t.Errorf("expected coordinates (12, 34), got %v", show.Coordinates)
	}

	barA.Handlers.OnMouseMove(13, 35)
	if len(ts.moves) != 1 || ts.moves[0].Coordinates != [2]float64{13, 35} {
		t.Errorf("expected move to (13, 35), got %v", ts.moves)
	}

	barA.Handlers.OnMouseOut()
	if len(ts.hides) != 1 || !ts.hides[0].Immediately {
		t.Errorf("expected an immediate hide, got %v", ts.hides)
	}
}

func TestRenderIdempotent(t *testing.T) {
	v := New(Services{})
	opts := updateOptions([]any{"A", "B"}, []any{3.0, 1.0}, nil, true)

	v.Update(opts)
	bars := v.Scene().Layer(layerBars)
	first, _ := bars.Get("A")
	x, y, w, h := first.X, first.Y, first.W, first.H

	v.Update(opts)
	second, _ := bars.Get("A")
	if first != second {
		t.Error("expected stable node identity across identical updates")
	}
	if second.X != x || second.Y != y || second.W != w || second.H != h {
		t.Error("expected identical geometry across identical updates")
	}
	if bars.Len() != 2 {
		t.Errorf("expected 2 bars, got %d", bars.Len())
	}
}

func TestRenderLateSelectionCallback(t *testing.T) {
	sm := &toggleSelectionManager{holdDone: true}
	v := New(Services{Selections: sm})
	v.Update(updateOptions([]any{"A", "B"}, []any{3.0, 1.0}, nil, true))

	bars := v.Scene().Layer(layerBars)
	barA, _ := bars.Get("A")
	barA.Handlers.OnClick()

	// A newer render lands before the selection resolves.
	v.Update(updateOptions([]any{"A", "B"}, []any{4.0, 1.0}, nil, true))

	// The stale callback still applies against the live scene nodes.
	sm.pending()
	barA, _ = bars.Get("A")
	barB, _ := bars.Get("B")
	if barA.Opacity != 1 || barB.Opacity != 0.5 {
		t.Errorf("expected A=1 B=0.5 after late resolve, got A=%v B=%v", barA.Opacity, barB.Opacity)
	}
}

func TestEnumerateObjectInstances(t *testing.T) {
	v := New(Services{})
	v.Update(updateOptions([]any{"A", "B"}, []any{3.0, 1.0}, nil, false))

	xaxis := v.EnumerateObjectInstances(host.EnumerateOptions{ObjectName: "xAxis"})
	if len(xaxis) != 1 {
		t.Fatalf("expected 1 xAxis instance, got %d", len(xaxis))
	}
	if show, ok := xaxis[0].Properties["show"].(bool); !ok || show {
		t.Errorf("expected show=false, got %v", xaxis[0].Properties["show"])
	}

	colors := v.EnumerateObjectInstances(host.EnumerateOptions{ObjectName: "dataColor"})
	if len(colors) != 2 {
		t.Fatalf("expected one dataColor instance per category, got %d", len(colors))
	}
	for i, inst := range colors {
		if inst.DisplayName != v.ViewModel().DataPoints[i].Category {
			t.Errorf("instance %d: expected display name %s, got %s", i, v.ViewModel().DataPoints[i].Category, inst.DisplayName)
		}
		if inst.Selector == nil {
			t.Errorf("instance %d: expected a selector", i)
		}
		if _, ok := inst.Properties["fill"].(string); !ok {
			t.Errorf("instance %d: expected a fill color", i)
		}
	}

	if got := v.EnumerateObjectInstances(host.EnumerateOptions{ObjectName: "unknown"}); got != nil {
		t.Errorf("expected nil for unknown object, got %v", got)
	}
}
