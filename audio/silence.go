// SPDX-License-Identifier: EPL-2.0

package audio

// trimSilentBytes returns n reduced by every trailing frame of frameSize
// zero bytes in data[:n]. At least one frame is always kept.
func trimSilentBytes(data []byte, n, frameSize int) int {
	for n > frameSize {
		for _, v := range data[n-frameSize : n] {
			if v != 0 {
				return n
			}
		}
		n -= frameSize
	}

	return n
}

// trimSilentFrames is trimSilentBytes for the window samples[start:start+length],
// stepping by channels.
func trimSilentFrames(samples []int16, start, length, channels int) int {
	for length > channels {
		end := start + length
		for _, v := range samples[end-channels : end] {
			if v != 0 {
				return length
			}
		}
		length -= channels
	}

	return length
}
