package texture

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

const (
	perlinPointCount = 256
	turbulenceDepth  = 7
)

// Gradient noise over a lattice of random unit vectors.
type Perlin struct {
	gradients [perlinPointCount]types.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// Create a noise generator. The same seed always yields the same noise field.
func NewPerlin(seed int64) *Perlin {
	rng := rand.New(rand.NewSource(seed))
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = types.RandomVec3(rng, -1, 1).Normalize()
	}
	generatePerm(rng, &p.permX)
	generatePerm(rng, &p.permY)
	generatePerm(rng, &p.permZ)
	return p
}

func generatePerm(rng *rand.Rand, perm *[perlinPointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
}

// Evaluate noise at p. The result lies roughly in [-1, 1].
func (pn *Perlin) Noise(p types.Vec3) float64 {
	fx, fy, fz := math.Floor(p[0]), math.Floor(p[1]), math.Floor(p[2])
	u, v, w := p[0]-fx, p[1]-fy, p[2]-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]types.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.gradients[idx]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// Sum depth octaves of noise with halving weights.
func (pn *Perlin) Turb(p types.Vec3, depth int) float64 {
	var accum float64
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(p)
		weight *= 0.5
		p = p.Mul(2)
	}
	return math.Abs(accum)
}

// Trilinear interpolation of gradient contributions with Hermite smoothing.
func perlinInterp(c *[2][2][2]types.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := types.XYZ(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Smooth gray noise.
type Noise struct {
	Perlin *Perlin
	Scale  float64
}

func NewNoise(seed int64, scale float64) *Noise {
	return &Noise{Perlin: NewPerlin(seed), Scale: scale}
}

func (t *Noise) Value(_, _ float64, p types.Vec3) types.Color {
	return types.White.Mul(0.5 * (1 + t.Perlin.Noise(p.Mul(t.Scale))))
}

// Multi-octave turbulence.
type Turbulence struct {
	Perlin *Perlin
	Scale  float64
}

func NewTurbulence(seed int64, scale float64) *Turbulence {
	return &Turbulence{Perlin: NewPerlin(seed), Scale: scale}
}

func (t *Turbulence) Value(_, _ float64, p types.Vec3) types.Color {
	return types.White.Mul(t.Perlin.Turb(p.Mul(t.Scale), turbulenceDepth))
}

// Turbulence-phased sine bands along z.
type Marble struct {
	Perlin *Perlin
	Scale  float64
}

func NewMarble(seed int64, scale float64) *Marble {
	return &Marble{Perlin: NewPerlin(seed), Scale: scale}
}

func (t *Marble) Value(_, _ float64, p types.Vec3) types.Color {
	phase := t.Scale*p[2] + 10*t.Perlin.Turb(p.Mul(t.Scale), turbulenceDepth)
	return types.White.Mul(0.5 * (1 + math.Sin(phase)))
}
