// Command curve-trace samples a transition curve and prints t,value
// pairs, suitable for piping into gnuplot or a spreadsheet when shaping
// a blend.
//
// A curve is either a named preset (-preset smoothstep) or a YAML
// keyframe list:
//
//	keyframes:
//	  - time: 0
//	    value: 0
//	    out_tangent: 0
//	  - time: 1
//	    value: 1
//	    in_tangent: 0
//
// With -encode the quantized wire bytes are printed as hex instead of
// samples, which is handy for sizing asset payloads.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	blend "github.com/tkarvinen/go-anim-blend"
)

const defaultSamples = 32

type curveFile struct {
	Keyframes []keyframeFile `yaml:"keyframes"`
}

type keyframeFile struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in_tangent"`
	OutTangent float64 `yaml:"out_tangent"`
}

func main() {
	var (
		preset    = flag.String("preset", "", "Preset name: linear, smoothstep, ease-in, ease-out")
		curvePath = flag.String("curve", "", "Path to a YAML keyframe list")
		samples   = flag.Int("samples", defaultSamples, "Number of samples across [0, 1]")
		encode    = flag.Bool("encode", false, "Print the quantized wire bytes instead of samples")
	)
	flag.Parse()

	var (
		curve blend.Curve
		err   error
	)
	switch {
	case *curvePath != "":
		curve, err = loadCurve(*curvePath)
	case *preset != "":
		curve, err = presetCurve(*preset)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Failed to load curve: %v", err)
	}
	if err := curve.Validate(); err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}

	if *encode {
		data := blend.EncodeCurve(nil, curve)
		fmt.Printf("%d keyframes, %d bytes\n%s\n", len(curve), len(data), hex.EncodeToString(data))
		return
	}

	for i := 0; i <= *samples; i++ {
		t := float64(i) / float64(*samples)
		fmt.Printf("%.5f,%.5f\n", t, curve.Evaluate(t))
	}
}

func presetCurve(name string) (blend.Curve, error) {
	switch name {
	case "linear":
		return blend.PresetCurve(blend.CurveLinear), nil
	case "smoothstep":
		return blend.PresetCurve(blend.CurveSmoothStep), nil
	case "ease-in", "easein":
		return blend.PresetCurve(blend.CurveEaseIn), nil
	case "ease-out", "easeout":
		return blend.PresetCurve(blend.CurveEaseOut), nil
	default:
		return nil, fmt.Errorf("unknown preset %q", name)
	}
}

func loadCurve(path string) (blend.Curve, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf curveFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	curve := make(blend.Curve, len(cf.Keyframes))
	for i, k := range cf.Keyframes {
		curve[i] = blend.Keyframe{
			Time:       k.Time,
			Value:      k.Value,
			InTangent:  k.InTangent,
			OutTangent: k.OutTangent,
		}
	}
	return curve, nil
}
