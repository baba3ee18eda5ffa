package edgeart

import (
	"image"
	"image/color"
	"math"
)

// PRNG is a Park-Miller minimal standard generator.
// The same seed always yields the same sequence.
type PRNG struct {
	a         int
	m         int
	randomNum int
	div       float64
}

// NewPRNG returns a generator seeded with seed. Seeds are reduced into
// [1, 2^31-2]; the generator never leaves that range.
func NewPRNG(seed int64) *PRNG {
	prng := &PRNG{
		a:   16807,
		m:   0x7fffffff,
		div: 1.0 / 0x7fffffff,
	}
	prng.Seed(seed)
	return prng
}

// Seed resets the generator state.
func (prng *PRNG) Seed(seed int64) {
	s := int(seed % int64(prng.m))
	if s < 0 {
		s += prng.m
	}
	if s == 0 {
		s = 1
	}
	prng.randomNum = s
}

func (prng *PRNG) nextLongRand(seed int) int {
	lo := prng.a * (seed & 0xffff)
	hi := prng.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	lo += hi >> 15
	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	return lo
}

// Float64 returns the next number in [0, 1).
func (prng *PRNG) Float64() float64 {
	prng.randomNum = prng.nextLongRand(prng.randomNum)
	f := float64(prng.randomNum) * prng.div
	if f >= 1 {
		return 0
	}
	return f
}

// Noise applies a film grain over the image, similar to adobe's grain filter.
func Noise(amount int, pxl image.Image, rnd Rand) *image.NRGBA {
	b := pxl.Bounds()
	noiseImg := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			noise := (rnd.Float64() - 0.1) * float64(amount)
			c := color.NRGBAModel.Convert(pxl.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			rf, gf, bf := float64(c.R), float64(c.G), float64(c.B)
			// Skip the pixel if any channel would overflow.
			if math.Abs(rf+noise) < 255 && math.Abs(gf+noise) < 255 && math.Abs(bf+noise) < 255 {
				rf += noise
				gf += noise
				bf += noise
			}
			noiseImg.SetNRGBA(x, y, color.NRGBA{
				R: uint8(Clamp(rf, 0, 255)),
				G: uint8(Clamp(gf, 0, 255)),
				B: uint8(Clamp(bf, 0, 255)),
				A: c.A,
			})
		}
	}
	return noiseImg
}
