package storeshots

import "math/rand"

// StarCount is the number of stars on the night-sky backdrop.
const StarCount = 180

// Star is one point of the night-sky backdrop.
type Star struct {
	X, Y  int
	R     float64
	Color RGB
}

// Stars returns n star placements for a w x h canvas. Positions cover the
// closed range [0, w] x [0, h]; radii are drawn from [1, 3) and multiplied
// by scale. Each star consumes six PRNG draws (x, y, radius, brightness,
// red, green), including a brightness value that is not used for drawing,
// so layouts stay stable for a given size.
func Stars(w, h, n int, scale float64) []Star {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(DefaultSeed))
	out := make([]Star, n)
	for i := range out {
		x := randInt(rng, 0, w)
		y := randInt(rng, 0, h)
		r := randFloat(rng, 1, 3) * scale
		_ = randInt(rng, 80, 255)
		red := 200 + randInt(rng, 0, 55)
		green := 200 + randInt(rng, 0, 55)
		out[i] = Star{X: x, Y: y, R: r, Color: RGB{R: uint8(red), G: uint8(green), B: 255}}
	}
	return out
}
