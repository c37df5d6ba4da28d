// Package scale provides the two mappings the bar chart needs: a linear
// scale for the value axis and a band scale for the category axis.
package scale

import "math"

// Linear maps the domain [D0, D1] onto the range [R0, R1]. An inverted
// range (R0 > R1) is valid and is how the value axis maps larger values to
// smaller y coordinates.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear builds a linear scale.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Scale maps v into the range. A degenerate domain maps everything to R0.
func (s Linear) Scale(v float64) float64 {
	span := s.D1 - s.D0
	if span == 0 {
		return s.R0
	}
	return s.R0 + (v-s.D0)/span*(s.R1-s.R0)
}

// Ticks returns roughly count tick values inside the domain, stepped on a
// 1/2/5 grid. A degenerate or non-finite domain yields just D0.
func (s Linear) Ticks(count int) []float64 {
	if count < 1 {
		count = 1
	}
	span := s.D1 - s.D0
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return []float64{s.D0}
	}
	step := niceStep(span / float64(count))
	var ticks []float64
	for v := math.Ceil(s.D0/step) * step; v <= s.D1+step/1e6; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// niceStep rounds raw up to the nearest 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	frac := raw / power
	switch {
	case frac <= 1:
		return power
	case frac <= 2:
		return 2 * power
	case frac <= 5:
		return 5 * power
	default:
		return 10 * power
	}
}

// Band allocates an equal-width slot per category across [r0, r1], with an
// inner padding factor expressed as a fraction of the step. padding 0.5
// leaves half a band width between neighboring bands.
type Band struct {
	domain  []string
	index   map[string]int
	r0, r1  float64
	padding float64
}

// NewBand builds a band scale over the ordered category list.
func NewBand(domain []string, r0, r1, padding float64) Band {
	index := make(map[string]int, len(domain))
	for i, d := range domain {
		if _, seen := index[d]; !seen {
			index[d] = i
		}
	}
	return Band{domain: domain, index: index, r0: r0, r1: r1, padding: padding}
}

// step is the distance between the starts of adjacent bands.
func (b Band) step() float64 {
	n := float64(len(b.domain))
	denom := math.Max(1, n-b.padding)
	return (b.r1 - b.r0) / denom
}

// Scale returns the start coordinate of the category's band. The second
// return is false for categories outside the domain.
func (b Band) Scale(category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	return b.r0 + b.step()*float64(i), true
}

// Bandwidth is the width of each band after padding.
func (b Band) Bandwidth() float64 {
	if len(b.domain) == 0 {
		return 0
	}
	return b.step() * (1 - b.padding)
}

// Domain returns the ordered category list.
func (b Band) Domain() []string {
	return b.domain
}
