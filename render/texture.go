package render

import (
	"image"
	_ "image/jpeg" // Supported texture file formats.
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// Texture is a 2D texture with a full mipmap chain. The chain is computed
// on the CPU at creation so Alloc only has to upload.
type Texture struct {
	id        uint32
	levels    []*image.NRGBA
	label     string
	allocated bool
}

// LoadTexture reads and decodes the given image file into a texture.
func LoadTexture(path string) (*Texture, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open texture %q", path)
	}

	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode texture %q", path)
	}

	return NewTexture(img, path), nil
}

// NewTexture converts img to RGBA and derives its mipmap chain.
func NewTexture(img image.Image, label string) *Texture {
	base := toNRGBA(img)
	return &Texture{
		levels: mipChain(base),
		label:  label,
	}
}

// Width returns the width of the base level in pixels.
func (t *Texture) Width() int { return t.levels[0].Rect.Dx() }

// Height returns the height of the base level in pixels.
func (t *Texture) Height() int { return t.levels[0].Rect.Dy() }

// LevelCount returns the number of mipmap levels, including the base.
func (t *Texture) LevelCount() int { return len(t.levels) }

// Level returns mipmap level n.
func (t *Texture) Level(n int) *image.NRGBA { return t.levels[n] }

// Alloc uploads all mipmap levels to a GL texture object.
func (t *Texture) Alloc() {
	if t.allocated {
		return
	}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	for i, lvl := range t.levels {
		gl.TexImage2D(gl.TEXTURE_2D, int32(i), gl.RGBA8,
			int32(lvl.Rect.Dx()), int32(lvl.Rect.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(lvl.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, int32(len(t.levels)-1))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	t.allocated = true
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Release frees the GL texture object.
func (t *Texture) Release() {
	if !t.allocated {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.allocated = false
}

// toNRGBA returns img as a tightly packed NRGBA image.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
	return dst
}

// mipChain returns base followed by successively halved copies down to 1x1.
// Each level is scaled from the base with a bilinear kernel.
func mipChain(base *image.NRGBA) []*image.NRGBA {
	levels := []*image.NRGBA{base}

	w, h := base.Rect.Dx(), base.Rect.Dy()
	for w > 1 || h > 1 {
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}

		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(dst, dst.Rect, base, base.Rect, xdraw.Src, nil)
		levels = append(levels, dst)
	}

	return levels
}

// CheckerImage returns a checkerboard test image with the given cell size
// in pixels. It serves as the fallback texture when no image file is given.
func CheckerImage(width, height, cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			if (x/cell+y/cell)%2 == 0 {
				img.Pix[i+0] = 0xff
				img.Pix[i+1] = 0xff
				img.Pix[i+2] = 0xff
			} else {
				img.Pix[i+0] = 0x30
				img.Pix[i+1] = 0x30
				img.Pix[i+2] = 0x30
			}
			img.Pix[i+3] = 0xff
		}
	}
	return img
}
