// Package scene is a small retained scene graph with keyed reconciliation.
// A render pass upserts nodes by key into named layers, then calls Sweep to
// drop the nodes it did not touch. That gives the enter/update/exit
// semantics of a declarative data bind: new keys append nodes, existing
// keys refresh the same node instance in place, and vanished keys are
// removed.
package scene

// Kind discriminates the node types a layer can hold.
type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindText
)

// Handlers are the interaction callbacks attached to a node. Coordinates
// are scene pixels.
type Handlers struct {
	OnClick     func()
	OnMouseOver func(x, y float64)
	OnMouseMove func(x, y float64)
	OnMouseOut  func()
}

// Interactive reports whether any handler is attached.
func (h Handlers) Interactive() bool {
	return h.OnClick != nil || h.OnMouseOver != nil || h.OnMouseMove != nil || h.OnMouseOut != nil
}

// Node is one drawable element. Rects use X/Y/W/H, lines run from X/Y to
// X2/Y2, text draws at X/Y (right-aligned when AlignRight is set).
type Node struct {
	Key  string
	Kind Kind

	X, Y, W, H float64
	X2, Y2     float64

	Text       string
	Fill       string
	Opacity    float64
	Hidden     bool
	AlignRight bool

	Handlers Handlers
}

// Contains reports whether the scene point lies inside a rect node.
func (n *Node) Contains(x, y float64) bool {
	if n.Kind != KindRect {
		return false
	}
	return x >= n.X && x < n.X+n.W && y >= n.Y && y < n.Y+n.H
}

// Layer is one keyed collection of nodes, painted in insertion order.
type Layer struct {
	name  string
	nodes map[string]*Node
	order []string
	seen  map[string]bool
}

func newLayer(name string) *Layer {
	return &Layer{
		name:  name,
		nodes: make(map[string]*Node),
		seen:  make(map[string]bool),
	}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

func (l *Layer) upsert(key string, kind Kind) *Node {
	l.seen[key] = true
	if n, ok := l.nodes[key]; ok {
		n.Kind = kind
		return n
	}
	n := &Node{Key: key, Kind: kind, Opacity: 1}
	l.nodes[key] = n
	l.order = append(l.order, key)
	return n
}

// Rect upserts a rectangle node.
func (l *Layer) Rect(key string) *Node { return l.upsert(key, KindRect) }

// Line upserts a line node.
func (l *Layer) Line(key string) *Node { return l.upsert(key, KindLine) }

// Text upserts a text node.
func (l *Layer) Text(key string) *Node { return l.upsert(key, KindText) }

// Sweep removes every node not upserted since the previous Sweep and
// returns how many were dropped.
func (l *Layer) Sweep() int {
	removed := 0
	kept := l.order[:0]
	for _, key := range l.order {
		if l.seen[key] {
			kept = append(kept, key)
			continue
		}
		delete(l.nodes, key)
		removed++
	}
	l.order = kept
	l.seen = make(map[string]bool)
	return removed
}

// Get returns the node for key, if present.
func (l *Layer) Get(key string) (*Node, bool) {
	n, ok := l.nodes[key]
	return n, ok
}

// Len returns the number of live nodes.
func (l *Layer) Len() int { return len(l.order) }

// Each visits live nodes in paint order.
func (l *Layer) Each(fn func(*Node)) {
	for _, key := range l.order {
		fn(l.nodes[key])
	}
}

// Scene is an ordered set of layers. Layers paint in creation order, so
// later layers draw over earlier ones.
type Scene struct {
	order  []string
	layers map[string]*Layer
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{layers: make(map[string]*Layer)}
}

// Layer returns the named layer, creating it on first use.
func (s *Scene) Layer(name string) *Layer {
	if l, ok := s.layers[name]; ok {
		return l
	}
	l := newLayer(name)
	s.layers[name] = l
	s.order = append(s.order, name)
	return l
}

// Layers returns the layers in paint order.
func (s *Scene) Layers() []*Layer {
	out := make([]*Layer, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.layers[name])
	}
	return out
}

// HitTest returns the topmost interactive rect containing the scene point,
// or nil. Topmost means last in paint order.
func (s *Scene) HitTest(x, y float64) *Node {
	for i := len(s.order) - 1; i >= 0; i-- {
		l := s.layers[s.order[i]]
		for j := len(l.order) - 1; j >= 0; j-- {
			n := l.nodes[l.order[j]]
			if n.Handlers.Interactive() && n.Contains(x, y) {
				return n
			}
		}
	}
	return nil
}
