package host

import "hash/fnv"

// Palette resolves a stable color for a seed string. The same seed must map
// to the same color across updates.
type Palette interface {
	Color(seed string) string
}

// defaultColors matches the host theme's categorical color cycle.
var defaultColors = []string{
	"#01B8AA", "#374649", "#FD625E", "#F2C80F",
	"#5F6B6D", "#8AD4EB", "#FE9666", "#A66999",
	"#3599B8", "#DFBFBF", "#4AC5BB", "#5F6B6D",
}

// HashPalette deterministically assigns colors from a fixed cycle by
// hashing the seed.
type HashPalette struct {
	colors []string
}

// NewHashPalette returns a palette over the default color cycle.
func NewHashPalette() *HashPalette {
	return &HashPalette{colors: defaultColors}
}

func (p *HashPalette) Color(seed string) string {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return p.colors[h.Sum32()%uint32(len(p.colors))]
}
