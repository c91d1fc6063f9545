// Command blend-probe sweeps a parameter across a blend space and
// prints the resulting weight table, for eyeballing solver behavior
// while tuning clip layouts.
//
// The space is described in a YAML file:
//
//	kind: directional        # linear | directional
//	algorithm: simple        # simple | idw (directional only)
//	power: 2                 # idw distance exponent, optional
//	clips:
//	  - name: idle
//	    duration: 1.0
//	    position: [0, 0]
//	  - name: walk
//	    duration: 0.9
//	    position: [1, 0]
//
// Without -space, -demo prints a built-in locomotion example.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	blend "github.com/tkarvinen/go-anim-blend"
)

const (
	defaultSteps = 20
	demoSweepMax = 6.0
)

// spaceFile is the YAML description of a blend space.
type spaceFile struct {
	Kind      string     `yaml:"kind"`
	Algorithm string     `yaml:"algorithm"`
	Power     float64    `yaml:"power"`
	Clips     []clipFile `yaml:"clips"`
}

type clipFile struct {
	Name     string    `yaml:"name"`
	Duration float64   `yaml:"duration"`
	Speed    float64   `yaml:"speed"`
	Position []float64 `yaml:"position"`
}

func main() {
	var (
		spacePath = flag.String("space", "", "Path to a YAML blend space description")
		steps     = flag.Int("steps", defaultSteps, "Number of sweep samples")
		demo      = flag.Bool("demo", false, "Probe a built-in 1D locomotion space")
	)
	flag.Parse()

	var (
		space *blend.Space
		names []string
		err   error
	)
	switch {
	case *demo:
		space, names, err = demoSpace()
	case *spacePath != "":
		space, names, err = loadSpace(*spacePath)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Failed to build blend space: %v", err)
	}

	fmt.Printf("Blend space: %d clips, kind=%v\n\n", space.NumClips(), space.Kind())
	printHeader(names)

	weights := make([]float64, space.NumClips())
	for i := 0; i <= *steps; i++ {
		param := sweepParam(space, i, *steps)
		weights = space.Weights(weights, param)
		printRow(param, weights, space)
	}
}

// demoSpace is a walk/jog/run line, the classic 1D locomotion layout.
func demoSpace() (*blend.Space, []string, error) {
	space, err := blend.New(&blend.Config{
		Kind: blend.KindLinear,
		Clips: []blend.Clip{
			{Duration: 1.4, Position: blend.Vec2{X: 0}},
			{Duration: 1.0, Position: blend.Vec2{X: 2}},
			{Duration: 0.7, Position: blend.Vec2{X: 4}},
		},
	})
	return space, []string{"idle", "walk", "run"}, err
}

func loadSpace(path string) (*blend.Space, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var sf spaceFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := blend.Config{IDWPower: sf.Power}
	switch strings.ToLower(sf.Kind) {
	case "linear", "1d", "":
		cfg.Kind = blend.KindLinear
	case "directional", "2d":
		cfg.Kind = blend.KindDirectional
	default:
		return nil, nil, fmt.Errorf("unknown kind %q", sf.Kind)
	}
	switch strings.ToLower(sf.Algorithm) {
	case "simple", "":
		cfg.Algorithm = blend.SimpleDirectional
	case "idw", "inverse-distance":
		cfg.Algorithm = blend.InverseDistance
	default:
		return nil, nil, fmt.Errorf("unknown algorithm %q", sf.Algorithm)
	}

	names := make([]string, len(sf.Clips))
	for i, c := range sf.Clips {
		clip := blend.Clip{Duration: c.Duration, Speed: c.Speed}
		if len(c.Position) > 0 {
			clip.Position.X = c.Position[0]
		}
		if len(c.Position) > 1 {
			clip.Position.Y = c.Position[1]
		}
		cfg.Clips = append(cfg.Clips, clip)

		names[i] = c.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("clip%d", i)
		}
	}

	space, err := blend.New(&cfg)
	return space, names, err
}

// sweepParam spreads samples across the space: along the threshold axis
// for 1D (with margin past both ends), around a unit-ish circle plus a
// radial run for 2D.
func sweepParam(space *blend.Space, i, steps int) blend.Vec2 {
	frac := float64(i) / float64(steps)
	if space.Kind() == blend.KindLinear {
		lo, hi := -1.0, demoSweepMax
		if n := space.NumClips(); n > 0 {
			lo = space.Clip(0).Position.X - 1
			hi = space.Clip(n-1).Position.X + 1
		}
		return blend.Vec2{X: lo + frac*(hi-lo)}
	}
	// Spiral: angle sweeps a full turn while radius grows.
	angle := frac * 2 * math.Pi
	radius := frac * 2
	return blend.Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

func printHeader(names []string) {
	fmt.Printf("%-18s", "parameter")
	for _, n := range names {
		fmt.Printf("%10s", n)
	}
	fmt.Printf("%10s\n", "duration")
}

func printRow(param blend.Vec2, weights []float64, space *blend.Space) {
	if space.Kind() == blend.KindLinear {
		fmt.Printf("%-18.3f", param.X)
	} else {
		fmt.Printf("(%7.3f,%7.3f) ", param.X, param.Y)
	}
	for _, w := range weights {
		fmt.Printf("%10.4f", w)
	}
	fmt.Printf("%10.3f\n", space.BlendedDuration(weights))
}
