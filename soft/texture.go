package soft

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Filter selects the texel filtering mode.
type Filter int

// Known filter modes.
const (
	Nearest Filter = iota
	Linear
)

// Wrap selects how texture coordinates outside [0,1] are addressed.
type Wrap int

// Known addressing modes.
const (
	ClampToEdge Wrap = iota
	Repeat
	MirrorRepeat
)

// Sampler holds the sampling state a fragment invocation reads a texture
// through. The zero value is nearest filtering with clamp-to-edge
// addressing on both axes.
type Sampler struct {
	Filter Filter
	WrapU  Wrap
	WrapV  Wrap
}

// Texture is a 2D grid of RGBA float texels.
type Texture struct {
	width  int
	height int
	texels []mgl32.Vec4
}

// NewTexture creates a texture of the given dimensions with all texels zero.
func NewTexture(width, height int) *Texture {
	return &Texture{
		width:  width,
		height: height,
		texels: make([]mgl32.Vec4, width*height),
	}
}

// FromImage converts img to a float texture. Row 0 of the image becomes
// row 0 of the texture.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := NewTexture(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bb, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.SetTexel(x, y, mgl32.Vec4{
				float32(r) / 0xffff,
				float32(g) / 0xffff,
				float32(bb) / 0xffff,
				float32(a) / 0xffff,
			})
		}
	}
	return t
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// SetTexel stores c at texel (x, y). Out-of-range coordinates are ignored.
func (t *Texture) SetTexel(x, y int, c mgl32.Vec4) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.texels[y*t.width+x] = c
}

// Texel returns the texel at (x, y) with clamp-to-edge bounds handling.
func (t *Texture) Texel(x, y int) mgl32.Vec4 {
	x = clampi(x, 0, t.width-1)
	y = clampi(y, 0, t.height-1)
	return t.texels[y*t.width+x]
}

// Sample reads t at the normalized coordinates uv under the sampler's
// filter and addressing configuration. A texture with no texels samples
// as transparent black.
func (s Sampler) Sample(t *Texture, uv mgl32.Vec2) mgl32.Vec4 {
	if t.width < 1 || t.height < 1 {
		return mgl32.Vec4{}
	}
	if s.Filter == Linear {
		return s.sampleLinear(t, uv)
	}
	return s.sampleNearest(t, uv)
}

func (s Sampler) sampleNearest(t *Texture, uv mgl32.Vec2) mgl32.Vec4 {
	x := wrapTexel(int(math.Floor(float64(uv.X())*float64(t.width))), t.width, s.WrapU)
	y := wrapTexel(int(math.Floor(float64(uv.Y())*float64(t.height))), t.height, s.WrapV)
	return t.texels[y*t.width+x]
}

func (s Sampler) sampleLinear(t *Texture, uv mgl32.Vec2) mgl32.Vec4 {
	cx := float64(uv.X())*float64(t.width) - 0.5
	cy := float64(uv.Y())*float64(t.height) - 0.5

	x0 := int(math.Floor(cx))
	y0 := int(math.Floor(cy))
	fx := float32(cx - math.Floor(cx))
	fy := float32(cy - math.Floor(cy))

	x1 := wrapTexel(x0+1, t.width, s.WrapU)
	y1 := wrapTexel(y0+1, t.height, s.WrapV)
	x0 = wrapTexel(x0, t.width, s.WrapU)
	y0 = wrapTexel(y0, t.height, s.WrapV)

	top := lerp(t.texels[y0*t.width+x0], t.texels[y0*t.width+x1], fx)
	bottom := lerp(t.texels[y1*t.width+x0], t.texels[y1*t.width+x1], fx)
	return lerp(top, bottom, fy)
}

// wrapTexel maps a possibly out-of-range texel index into [0, size).
func wrapTexel(i, size int, w Wrap) int {
	switch w {
	case Repeat:
		i %= size
		if i < 0 {
			i += size
		}
		return i
	case MirrorRepeat:
		period := 2 * size
		i %= period
		if i < 0 {
			i += period
		}
		if i >= size {
			i = period - 1 - i
		}
		return i
	default:
		return clampi(i, 0, size-1)
	}
}

func lerp(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
