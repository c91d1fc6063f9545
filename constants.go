package blend

// Clip and space limits.
const (
	// maxCurveKeyframes is the largest keyframe count a transition
	// curve is expected to carry. The evaluator works for longer
	// curves, but Validate rejects them to catch authoring mistakes.
	maxCurveKeyframes = 8
)

// Curve evaluation constants.
const (
	// segmentEpsilon is the minimum keyframe time span considered a
	// real segment; narrower segments return the left key's value.
	segmentEpsilon = 1e-4
)

// Spring defaults (see SpringConfig).
const (
	// DefaultSmoothTime is the spring smooth time used when
	// SpringConfig.SmoothTime is zero.
	DefaultSmoothTime = 0.15

	// DefaultSnapThreshold is the settle distance used when
	// SpringConfig.SnapThreshold is zero.
	DefaultSnapThreshold = 5e-4

	// MaxStableDeltaTime is the largest timestep the spring integrator
	// stays well-behaved under. Callers clamp dt on frame hitches;
	// this constant documents the contract.
	MaxStableDeltaTime = 0.1
)

// Quantized keyframe wire format.
const (
	// KeyframeEncodedSize is the encoded size of one keyframe in
	// bytes: four little-endian uint16 fields.
	KeyframeEncodedSize = 8

	// tangentLimit bounds tangent values in the quantized encoding.
	// Tangents are slopes over a unit square; +/-8 covers anything an
	// authoring tool produces for a transition curve.
	tangentLimit = 8.0

	// quantScale maps a unit-range field onto the uint16 domain.
	quantScale = 65535.0
)
