// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 scales a sample in [-1,1] to int16, truncating toward zero.
// Values outside the range are clamped and NaN maps to silence.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// symmetric scale, -1 maps to -32767
	return int16(x * 32767.0)
}

// AppendInt16LE appends v to dst as two little-endian bytes.
func AppendInt16LE(dst []byte, v int16) []byte {
	return append(dst, byte(v), byte(uint16(v)>>8))
}
