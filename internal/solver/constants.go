package solver

// Geometric epsilon values shared by the weight solvers.
const (
	// spanEpsilon is the minimum 1D bracket width considered blendable.
	// Narrower brackets snap to a single clip to avoid division by ~0.
	spanEpsilon = 1e-4

	// posEpsilon is the distance below which a 2D parameter is treated
	// as coincident with a clip position (or with the origin).
	posEpsilon = 1e-4

	// angleEpsilon is the minimum angular wedge width in radians.
	// Narrower wedges split evenly between the two bracket clips.
	angleEpsilon = 1e-6

	// DefaultIDWPower is the distance exponent for inverse distance
	// weighting. 2 gives the classic 1/d^2 falloff.
	DefaultIDWPower = 2.0
)
