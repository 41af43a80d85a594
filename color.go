package urplit

// Color represents RGBA color.
type Color struct {
	R float64 `json:"r,omitempty" yaml:"r,omitempty"` // Red channel component
	G float64 `json:"g,omitempty" yaml:"g,omitempty"` // Green channel component
	B float64 `json:"b,omitempty" yaml:"b,omitempty"` // Blue channel component
	A float64 `json:"a,omitempty" yaml:"a,omitempty"` // Alpha channel component
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamped returns the color with every component clamped to [0,1].
func (c Color) Clamped() Color {
	return Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B), A: Clamp01(c.A)}
}

// ToArray converts color to float array.
func (c Color) ToArray() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// ColorFromArray builds a Color from a 4-component float array.
// Shorter arrays fill missing trailing components with zero alpha.
func ColorFromArray(vals []float64) Color {
	var c Color
	if len(vals) > 0 {
		c.R = vals[0]
	}
	if len(vals) > 1 {
		c.G = vals[1]
	}
	if len(vals) > 2 {
		c.B = vals[2]
	}
	if len(vals) > 3 {
		c.A = vals[3]
	}
	return c
}
