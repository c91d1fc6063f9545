package solver

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Algorithm selects the 2D weighting scheme.
type Algorithm int

const (
	// GradientBand is angular gradient-band blending: the two clips
	// angularly bracketing the parameter
	// direction share the weight, with the radial remainder going to
	// clips at the origin.
	GradientBand Algorithm = iota

	// InverseDistance weights every clip by the inverse of its
	// distance to the parameter raised to a configurable power.
	InverseDistance
)

// Directional holds the precomputed geometry for a 2D blend space.
// Construction partitions clips into center (at the origin) and
// directional sets and sorts the directional clips by polar angle, so
// per-frame weight evaluation does no trigonometric setup.
type Directional struct {
	positions []vec2
	algorithm Algorithm
	power     float64

	coincident bool  // all clips share one position
	center     []int // clip indices with |position| < posEpsilon
	dir        []int // remaining clip indices, sorted by angle
	angles     []float64
	mags       []float64
}

// NewDirectional precomputes solver state for the given clip positions.
// power applies to InverseDistance only; values <= 0 fall back to
// DefaultIDWPower.
func NewDirectional(positions [][2]float64, algorithm Algorithm, power float64) *Directional {
	if power <= 0 {
		power = DefaultIDWPower
	}
	d := &Directional{
		positions: make([]vec2, len(positions)),
		algorithm: algorithm,
		power:     power,
	}
	for i, p := range positions {
		d.positions[i] = vec2{p[0], p[1]}
	}

	d.coincident = true
	for _, p := range d.positions {
		if p.sub(d.positions[0]).len() >= posEpsilon {
			d.coincident = false
			break
		}
	}

	for i, p := range d.positions {
		if p.len() < posEpsilon {
			d.center = append(d.center, i)
		} else {
			d.dir = append(d.dir, i)
		}
	}
	sort.Slice(d.dir, func(a, b int) bool {
		return d.positions[d.dir[a]].angle() < d.positions[d.dir[b]].angle()
	})
	d.angles = make([]float64, len(d.dir))
	d.mags = make([]float64, len(d.dir))
	for i, idx := range d.dir {
		d.angles[i] = d.positions[idx].angle()
		d.mags[i] = d.positions[idx].len()
	}
	return d
}

// Len returns the clip count.
func (d *Directional) Len() int {
	return len(d.positions)
}

// Weights computes the per-clip weights for the given parameter point,
// writing into dst (len(dst) must equal Len()). Output is non-negative
// and sums to 1 whenever at least one clip exists, NaN and infinite
// parameters included.
func (d *Directional) Weights(dst []float64, px, py float64) {
	n := len(d.positions)
	for i := range dst {
		dst[i] = 0
	}

	switch n {
	case 0:
		return
	case 1:
		dst[0] = 1
		return
	}

	if d.coincident {
		equalWeights(dst)
		return
	}

	// A NaN parameter has no direction or distance to weight by; degrade
	// to an even split rather than letting NaN reach the output.
	if math.IsNaN(px) || math.IsNaN(py) {
		equalWeights(dst)
		return
	}

	p := vec2{px, py}
	if d.algorithm == InverseDistance {
		d.inverseDistance(dst, p)
	} else {
		d.gradientBand(dst, p)
	}
}

// inverseDistance implements 1/d^power weighting with a coincidence
// short-circuit: a parameter sitting on a clip position gives that clip
// (the first such clip, in input order) the full weight.
func (d *Directional) inverseDistance(dst []float64, p vec2) {
	for i, pos := range d.positions {
		if p.sub(pos).len() < posEpsilon {
			dst[i] = 1
			return
		}
	}

	for i, pos := range d.positions {
		dist := math.Max(p.sub(pos).len(), posEpsilon)
		dst[i] = 1 / math.Pow(dist, d.power)
	}

	total := floats.Sum(dst)
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		equalWeights(dst)
		return
	}
	floats.Scale(1/total, dst)
}

// gradientBand distributes the weight between the two directional clips
// whose angles bracket the parameter direction, blended by angular
// fraction. When center clips exist, the radial fraction
// |p| / lerp(|a|, |b|) scales the pair and the remainder goes to the
// center clips. Clips outside the bracketing wedge contribute nothing.
func (d *Directional) gradientBand(dst []float64, p vec2) {
	nd := len(d.dir)

	// Everything at the origin (coincident case is handled earlier, so
	// this only triggers when center clips outnumber zero directional).
	if nd == 0 {
		shareAmong(dst, d.center)
		return
	}

	pm := p.len()
	if pm < posEpsilon {
		if len(d.center) > 0 {
			shareAmong(dst, d.center)
		} else {
			shareAmong(dst, d.dir)
		}
		return
	}

	if nd == 1 {
		d.singleDirectional(dst, pm)
		return
	}

	pa := p.angle()

	// Bracket [lo, hi] spans the wedge containing pa, wrapping around
	// the -pi/pi seam.
	hi := sort.SearchFloat64s(d.angles, pa) % nd
	lo := (hi - 1 + nd) % nd

	span := d.angles[hi] - d.angles[lo]
	if hi <= lo {
		span += 2 * math.Pi
	}
	frac := pa - d.angles[lo]
	if frac < 0 {
		frac += 2 * math.Pi
	}

	var t float64
	if span < angleEpsilon {
		t = 0.5
	} else {
		t = clamp01(frac / span)
	}

	wLo, wHi := 1-t, t
	if len(d.center) > 0 {
		magRef := d.mags[lo] + t*(d.mags[hi]-d.mags[lo])
		radial := clamp01(pm / math.Max(magRef, posEpsilon))
		wLo *= radial
		wHi *= radial
		remainder := 1 - radial
		for _, idx := range d.center {
			dst[idx] = remainder / float64(len(d.center))
		}
	}

	// += rather than =: lo and hi collapse to the same clip when only
	// degenerate wedges remain.
	dst[d.dir[lo]] += wLo
	dst[d.dir[hi]] += wHi
}

// singleDirectional blends one directional clip against the center set.
func (d *Directional) singleDirectional(dst []float64, pm float64) {
	idx := d.dir[0]
	if len(d.center) == 0 {
		dst[idx] = 1
		return
	}
	radial := clamp01(pm / math.Max(d.mags[0], posEpsilon))
	dst[idx] = radial
	for _, c := range d.center {
		dst[c] = (1 - radial) / float64(len(d.center))
	}
}

func equalWeights(dst []float64) {
	w := 1 / float64(len(dst))
	for i := range dst {
		dst[i] = w
	}
}

func shareAmong(dst []float64, indices []int) {
	w := 1 / float64(len(indices))
	for _, i := range indices {
		dst[i] = w
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
