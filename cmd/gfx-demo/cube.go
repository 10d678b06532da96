package main

import (
	"github.com/hexaflex/gfx/render"
)

// cubeMesh returns a unit cube centered on the origin with each face
// mapped to the full texture. Faces wind counter-clockwise seen from the
// outside.
func cubeMesh() *render.Mesh {
	vertices := []render.Vertex{
		// Front.
		{Position: [3]float32{-0.5, -0.5, 0.5}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, 0.5}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, 0.5}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, 0.5}, TexCoords: [2]float32{0, 1}},
		// Back.
		{Position: [3]float32{0.5, -0.5, -0.5}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{-0.5, -0.5, -0.5}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0.5, -0.5}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0.5, -0.5}, TexCoords: [2]float32{0, 1}},
		// Right.
		{Position: [3]float32{0.5, -0.5, 0.5}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, -0.5}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, -0.5}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0.5, 0.5}, TexCoords: [2]float32{0, 1}},
		// Left.
		{Position: [3]float32{-0.5, -0.5, -0.5}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{-0.5, -0.5, 0.5}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0.5, 0.5}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, -0.5}, TexCoords: [2]float32{0, 1}},
		// Top.
		{Position: [3]float32{-0.5, 0.5, 0.5}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{0.5, 0.5, 0.5}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, -0.5}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, -0.5}, TexCoords: [2]float32{0, 1}},
		// Bottom.
		{Position: [3]float32{-0.5, -0.5, -0.5}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, -0.5}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{0.5, -0.5, 0.5}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, -0.5, 0.5}, TexCoords: [2]float32{0, 1}},
	}

	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return render.NewMesh(vertices, indices, "cube")
}
