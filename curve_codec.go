package blend

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Compact curve serialization: 8 bytes per keyframe, four little-endian
// uint16 fields (time, value, in-tangent, out-tangent). Time and value
// quantize over [0, 1]; tangents over [-tangentLimit, tangentLimit].
// The empty (linear) curve encodes to zero bytes, so the default case
// costs no storage at all.

// EncodeCurve appends the quantized encoding of c to dst and returns
// the extended slice.
func EncodeCurve(dst []byte, c Curve) []byte {
	for _, k := range c {
		dst = binary.LittleEndian.AppendUint16(dst, quantizeUnit(k.Time))
		dst = binary.LittleEndian.AppendUint16(dst, quantizeUnit(k.Value))
		dst = binary.LittleEndian.AppendUint16(dst, quantizeTangent(k.InTangent))
		dst = binary.LittleEndian.AppendUint16(dst, quantizeTangent(k.OutTangent))
	}
	return dst
}

// DecodeCurve parses a quantized curve. Empty input yields the nil
// (linear) curve. Input whose length is not a multiple of the record
// size fails with ErrTruncatedCurve.
func DecodeCurve(data []byte) (Curve, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%KeyframeEncodedSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte records",
			ErrTruncatedCurve, len(data), KeyframeEncodedSize)
	}

	c := make(Curve, 0, len(data)/KeyframeEncodedSize)
	for i := 0; i < len(data); i += KeyframeEncodedSize {
		c = append(c, Keyframe{
			Time:       dequantizeUnit(binary.LittleEndian.Uint16(data[i:])),
			Value:      dequantizeUnit(binary.LittleEndian.Uint16(data[i+2:])),
			InTangent:  dequantizeTangent(binary.LittleEndian.Uint16(data[i+4:])),
			OutTangent: dequantizeTangent(binary.LittleEndian.Uint16(data[i+6:])),
		})
	}
	return c, nil
}

// quantizeUnit maps [0, 1] onto the full uint16 range, rounding to the
// nearest step. Out-of-range input clamps.
func quantizeUnit(v float64) uint16 {
	return uint16(math.Round(clamp01(v) * quantScale))
}

func dequantizeUnit(q uint16) float64 {
	return float64(q) / quantScale
}

// quantizeTangent maps [-tangentLimit, tangentLimit] onto the full
// uint16 range. Out-of-range slopes clamp to the limit.
func quantizeTangent(v float64) uint16 {
	if v < -tangentLimit {
		v = -tangentLimit
	} else if v > tangentLimit {
		v = tangentLimit
	}
	return uint16(math.Round((v + tangentLimit) / (2 * tangentLimit) * quantScale))
}

func dequantizeTangent(q uint16) float64 {
	return float64(q)/quantScale*(2*tangentLimit) - tangentLimit
}
