package blend

import (
	"errors"
	"fmt"
	"math"

	"github.com/tkarvinen/go-anim-blend/internal/solver"
)

// Vec2 is a 2D blend-space position or parameter value. 1D spaces use
// only X.
type Vec2 struct {
	X, Y float64
}

// Clip describes one animation clip inside a blend space: where it
// sits in parameter space and how it plays back. Clips are input-only;
// solvers never mutate them.
type Clip struct {
	// Duration is the clip length in seconds.
	Duration float64

	// Speed is the playback rate multiplier. Zero means 1.
	Speed float64

	// Position locates the clip in parameter space. 1D spaces read
	// Position.X as the threshold at which this clip has weight 1.
	Position Vec2
}

// Kind selects the blend space dimensionality.
type Kind int

const (
	// KindLinear is a 1D blend space: clips ordered along one axis.
	KindLinear Kind = iota

	// KindDirectional is a 2D blend space: clips placed in a plane.
	KindDirectional
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindDirectional:
		return "directional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Algorithm selects the 2D weighting scheme. It has no effect on
// KindLinear spaces.
type Algorithm int

const (
	// SimpleDirectional uses gradient-band angular interpolation: the
	// two clips bracketing the parameter direction share the weight
	// and clips on the opposite side of the space contribute nothing.
	SimpleDirectional Algorithm = iota

	// InverseDistance weights every clip by 1/distance^power. Smooth
	// and always defined, requiring no triangulation.
	InverseDistance
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case SimpleDirectional:
		return "simple-directional"
	case InverseDistance:
		return "inverse-distance"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Config describes a blend space to construct.
type Config struct {
	// Kind selects 1D or 2D weighting.
	Kind Kind

	// Algorithm selects the 2D scheme (KindDirectional only).
	Algorithm Algorithm

	// Clips are the blend targets. KindLinear requires them sorted
	// ascending by Position.X. Empty is valid and yields a space that
	// always reports zero weights.
	Clips []Clip

	// IDWPower is the distance exponent for InverseDistance. Zero
	// means the default of 2.
	IDWPower float64
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid blend space configuration.
	ErrInvalidConfig = errors.New("invalid blend space configuration")

	// ErrTruncatedCurve indicates encoded curve data whose length is
	// not a whole number of keyframe records.
	ErrTruncatedCurve = errors.New("truncated curve data")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Kind {
	case KindLinear, KindDirectional:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, c.Kind)
	}

	if c.Kind == KindDirectional {
		switch c.Algorithm {
		case SimpleDirectional, InverseDistance:
		default:
			return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidConfig, c.Algorithm)
		}
	}

	if c.IDWPower < 0 {
		return fmt.Errorf("%w: IDW power must be non-negative", ErrInvalidConfig)
	}

	for i, clip := range c.Clips {
		if clip.Duration < 0 {
			return fmt.Errorf("%w: clip %d has negative duration", ErrInvalidConfig, i)
		}
		if clip.Speed < 0 {
			return fmt.Errorf("%w: clip %d has negative speed", ErrInvalidConfig, i)
		}
		if math.IsNaN(clip.Position.X) || math.IsNaN(clip.Position.Y) ||
			math.IsInf(clip.Position.X, 0) || math.IsInf(clip.Position.Y, 0) {
			return fmt.Errorf("%w: clip %d has non-finite position", ErrInvalidConfig, i)
		}
	}

	if c.Kind == KindLinear {
		for i := 1; i < len(c.Clips); i++ {
			if c.Clips[i].Position.X < c.Clips[i-1].Position.X {
				return fmt.Errorf("%w: clips not sorted by threshold (clip %d)", ErrInvalidConfig, i)
			}
		}
	}

	return nil
}

// New constructs a Space from the configuration. The space copies the
// clips and precomputes all solver geometry, so subsequent Weights
// calls are allocation-free and the config may be reused or discarded.
func New(config *Config) (*Space, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Space{
		kind:      config.Kind,
		algorithm: config.Algorithm,
		clips:     make([]Clip, len(config.Clips)),
	}
	copy(s.clips, config.Clips)
	for i := range s.clips {
		if s.clips[i].Speed == 0 {
			s.clips[i].Speed = 1
		}
	}

	switch config.Kind {
	case KindLinear:
		s.thresholds = make([]float64, len(s.clips))
		for i, clip := range s.clips {
			s.thresholds[i] = clip.Position.X
		}
	case KindDirectional:
		positions := make([][2]float64, len(s.clips))
		for i, clip := range s.clips {
			positions[i] = [2]float64{clip.Position.X, clip.Position.Y}
		}
		s.directional = solver.NewDirectional(positions, toSolverAlgorithm(config.Algorithm), config.IDWPower)
	}

	return s, nil
}

// toSolverAlgorithm converts the public Algorithm to the solver's.
func toSolverAlgorithm(a Algorithm) solver.Algorithm {
	if a == InverseDistance {
		return solver.InverseDistance
	}
	return solver.GradientBand
}
