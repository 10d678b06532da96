package render

import (
	"github.com/go-gl/gl/v4.2-core/gl"
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

// Sampler is a GL sampler object. Keeping the sampling state separate from
// the texture lets one texture be read under different configurations.
type Sampler struct {
	id        uint32
	filter    Filter
	wrapU     Wrap
	wrapV     Wrap
	allocated bool
}

// NewSampler creates a sampler with the given configuration. Alloc must be
// called with a current GL context before the sampler can be bound.
func NewSampler(f Filter, wrapU, wrapV Wrap) *Sampler {
	return &Sampler{filter: f, wrapU: wrapU, wrapV: wrapV}
}

// Alloc creates the GL sampler object.
func (s *Sampler) Alloc() {
	if s.allocated {
		return
	}

	gl.GenSamplers(1, &s.id)
	gl.SamplerParameteri(s.id, gl.TEXTURE_MIN_FILTER, minFilter(s.filter))
	gl.SamplerParameteri(s.id, gl.TEXTURE_MAG_FILTER, magFilter(s.filter))
	gl.SamplerParameteri(s.id, gl.TEXTURE_WRAP_S, wrapMode(s.wrapU))
	gl.SamplerParameteri(s.id, gl.TEXTURE_WRAP_T, wrapMode(s.wrapV))
	s.allocated = true
}

// Bind binds the sampler to the given texture unit.
func (s *Sampler) Bind(unit uint32) {
	gl.BindSampler(unit, s.id)
}

// Release frees the GL sampler object.
func (s *Sampler) Release() {
	if !s.allocated {
		return
	}
	gl.DeleteSamplers(1, &s.id)
	s.allocated = false
}

func minFilter(f Filter) int32 {
	if f == Linear {
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.NEAREST
}

func magFilter(f Filter) int32 {
	if f == Linear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrapMode(w Wrap) int32 {
	switch w {
	case Repeat:
		return gl.REPEAT
	case MirrorRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}
