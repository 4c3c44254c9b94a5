package transfer

// Elements are rasterized with a flat identifier colour so readback can
// tell which element is visible at each pixel. Each 8-bit channel
// carries 6 significant bits in its upper positions; the low 2 bits are
// discarded on decode, which is plenty of identifier space for scenes
// this size. Black is reserved for "no element visible", so the encoded
// value is the element index plus one.

// MaxElements is the largest element count the identifier colours can
// distinguish: 18 usable bits, less the reserved zero.
const MaxElements = 1<<18 - 1

// IndexColour encodes element index i as an RGB identifier colour.
func IndexColour(i int) (r, g, b uint8) {
	v := i + 1
	r = uint8((v & 0x3f) << 2)
	g = uint8(((v >> 6) & 0x3f) << 2)
	b = uint8(((v >> 12) & 0x3f) << 2)
	return r, g, b
}

// DecodeIndex recovers the element index from a rendered pixel, or -1
// for the background.
func DecodeIndex(r, g, b uint8) int {
	v := (int(r) + int(g)<<6 + int(b)<<12) >> 2
	if v == 0 {
		return -1
	}
	return v - 1
}

// accumulate sums weights into per-element totals: pixel k showing
// element j adds weights[k] to sums[j]. pixels is tightly packed RGBA;
// only the first len(weights) pixels are consulted, which is how the
// half-face side tables skip the unrendered region.
func accumulate(pixels []byte, weights, sums []float64) {
	n := len(weights)
	if max := len(pixels) / 4; n > max {
		n = max
	}
	for k := 0; k < n; k++ {
		idx := DecodeIndex(pixels[k*4], pixels[k*4+1], pixels[k*4+2])
		if idx >= 0 && idx < len(sums) {
			sums[idx] += weights[k]
		}
	}
}
