package transfer

import "testing"

func TestIndexColourRoundTrip(t *testing.T) {
	for _, i := range []int{0, 1, 62, 63, 64, 1000, 4095, 4096, 100000, MaxElements - 1} {
		r, g, b := IndexColour(i)
		got := DecodeIndex(r, g, b)
		if got != i {
			t.Errorf("round trip of %d: got %d (rgb %d %d %d)", i, got, r, g, b)
		}
	}
}

func TestDecodeBackground(t *testing.T) {
	if got := DecodeIndex(0, 0, 0); got != -1 {
		t.Errorf("DecodeIndex(0,0,0) = %d, want -1", got)
	}
}

func TestDecodeIgnoresLowRedBits(t *testing.T) {
	// The low two bits of the red channel are discarded, so rasterizer
	// rounding there cannot corrupt the index.
	r, g, b := IndexColour(1234)
	for noise := uint8(0); noise < 4; noise++ {
		if got := DecodeIndex(r|noise, g, b); got != 1234 {
			t.Errorf("decode with red noise %d = %d, want 1234", noise, got)
		}
	}
}

func TestAccumulate(t *testing.T) {
	// Three pixels: element 0, background, element 2.
	var pixels []byte
	r, g, b := IndexColour(0)
	pixels = append(pixels, r, g, b, 255)
	pixels = append(pixels, 0, 0, 0, 255)
	r, g, b = IndexColour(2)
	pixels = append(pixels, r, g, b, 255)

	weights := []float64{0.5, 0.25, 0.125}
	sums := make([]float64, 3)
	accumulate(pixels, weights, sums)

	want := []float64{0.5, 0, 0.125}
	for i := range want {
		if sums[i] != want[i] {
			t.Errorf("sums[%d] = %v, want %v", i, sums[i], want[i])
		}
	}
}

func TestAccumulateHalfFace(t *testing.T) {
	// A half-face weight table consults only the first half of the
	// pixel data, the way the scissored side faces are summed.
	var pixels []byte
	r, g, b := IndexColour(5)
	for k := 0; k < 4; k++ {
		pixels = append(pixels, r, g, b, 255)
	}

	weights := []float64{1, 1} // half the pixels
	sums := make([]float64, 6)
	accumulate(pixels, weights, sums)

	if sums[5] != 2 {
		t.Errorf("sums[5] = %v, want 2 (only the weighted half counts)", sums[5])
	}
}

func TestAccumulateIgnoresOutOfRangeIndices(t *testing.T) {
	// A stray pixel decoding beyond the element count is dropped.
	r, g, b := IndexColour(50)
	pixels := []byte{r, g, b, 255}
	sums := make([]float64, 3)
	accumulate(pixels, []float64{1}, sums)
	for i, v := range sums {
		if v != 0 {
			t.Errorf("sums[%d] = %v, want 0", i, v)
		}
	}
}
