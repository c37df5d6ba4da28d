package scene

import "testing"

func TestLayerEnterUpdateExit(t *testing.T) {
	s := New()
	l := s.Layer("bars")

	a := l.Rect("A")
	b := l.Rect("B")
	if l.Len() != 2 {
		t.Fatalf("expected 2 nodes after enter, got %d", l.Len())
	}
	if a.Opacity != 1 {
		t.Errorf("expected default opacity 1, got %v", a.Opacity)
	}
	l.Sweep()

	// Second pass touches only A; B must exit.
	again := l.Rect("A")
	if again != a {
		t.Error("expected the same node instance on update")
	}
	removed := l.Sweep()
	if removed != 1 {
		t.Errorf("expected 1 removed node, got %d", removed)
	}
	if _, ok := l.Get("B"); ok {
		t.Error("expected B to be gone after sweep")
	}
	_ = b
}

func TestLayerPaintOrder(t *testing.T) {
	s := New()
	l := s.Layer("bars")
	l.Rect("first")
	l.Rect("second")
	l.Rect("third")

	var keys []string
	l.Each(func(n *Node) { keys = append(keys, n.Key) })
	want := []string{"first", "second", "third"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("paint order %v, want %v", keys, want)
		}
	}
}

func TestHitTest(t *testing.T) {
	s := New()
	back := s.Layer("back")
	front := s.Layer("front")

	plain := back.Rect("plain")
	plain.X, plain.Y, plain.W, plain.H = 0, 0, 100, 100

	interactive := back.Rect("interactive")
	interactive.X, interactive.Y, interactive.W, interactive.H = 0, 0, 100, 100
	interactive.Handlers = Handlers{OnClick: func() {}}

	top := front.Rect("top")
	top.X, top.Y, top.W, top.H = 10, 10, 20, 20
	top.Handlers = Handlers{OnClick: func() {}}

	if got := s.HitTest(15, 15); got != top {
		t.Errorf("expected topmost layer to win, got %v", got)
	}
	if got := s.HitTest(50, 50); got != interactive {
		t.Errorf("expected interactive rect, got %v", got)
	}
	if got := s.HitTest(200, 200); got != nil {
		t.Errorf("expected no hit outside all rects, got %v", got)
	}
}

func TestHitTestIgnoresNonRects(t *testing.T) {
	s := New()
	l := s.Layer("axes")
	line := l.Line("axis")
	line.X, line.Y, line.X2, line.Y2 = 0, 0, 100, 0
	line.Handlers = Handlers{OnClick: func() {}}

	if got := s.HitTest(50, 0); got != nil {
		t.Errorf("expected lines to be transparent to hit testing, got %v", got)
	}
}

func TestRasterizerDimensions(t *testing.T) {
	s := New()
	l := s.Layer("bars")
	bar := l.Rect("A")
	bar.X, bar.Y, bar.W, bar.H = 0, 0, 80, 160
	bar.Fill = "#01B8AA"

	r := NewRasterizer(40, 10)
	out := r.Render(s, 320, 160)
	lines := splitLines(out)
	if len(lines) != 10 {
		t.Fatalf("expected 10 output rows, got %d", len(lines))
	}
}

func TestCellToPixelRoundTrip(t *testing.T) {
	r := NewRasterizer(40, 10)
	px, py := r.CellToPixel(0, 0, 320, 160)
	if px != 4 || py != 8 {
		t.Errorf("expected cell center (4, 8), got (%v, %v)", px, py)
	}
	px, py = r.CellToPixel(39, 9, 320, 160)
	if px != 316 || py != 152 {
		t.Errorf("expected cell center (316, 152), got (%v, %v)", px, py)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
