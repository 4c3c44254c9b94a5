// Package scene holds the surface element model: vertices, quads and the
// demo geometry the solver runs on.
package scene

// Colour is an RGB radiance or reflectance triple. Values are linear and
// unbounded above; clamping to displayable range happens at render time.
type Colour struct {
	R, G, B float64
}

// White is full-intensity white light.
var White = Colour{1, 1, 1}

// Add returns c + other, channel-wise.
func (c Colour) Add(other Colour) Colour {
	return Colour{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns c * other, channel-wise. Used for spectral reflectance.
func (c Colour) Mul(other Colour) Colour {
	return Colour{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns c * s.
func (c Colour) Scale(s float64) Colour {
	return Colour{c.R * s, c.G * s, c.B * s}
}

// Grey reduces the colour to a single brightness value.
func (c Colour) Grey() float64 {
	return (c.R + c.G + c.B) / 3
}

// MaxChannel returns the largest of the three channels.
func (c Colour) MaxChannel() float64 {
	max := c.R
	if c.G > max {
		max = c.G
	}
	if c.B > max {
		max = c.B
	}
	return max
}
