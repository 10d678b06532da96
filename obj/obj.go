// Package obj implements a Wavefront OBJ reader covering the subset
// needed for textured meshes: positions, texture coordinates and faces.
// Faces with more than three corners are triangulated as a fan.
package obj

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Vertex defines one deduplicated position/texcoord pair.
type Vertex struct {
	Position  [3]float32
	TexCoords [2]float32
}

// Model holds the indexed geometry of a decoded OBJ file.
type Model struct {
	Vertices []Vertex
	Indices  []uint32
}

// Load reads and decodes the given OBJ file.
func Load(path string) (*Model, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open model %q", path)
	}

	defer fd.Close()
	return Decode(fd, path)
}

// Decode reads OBJ data from r. The name is used in error messages only.
func Decode(r io.Reader, name string) (*Model, error) {
	d := decoder{
		name:  name,
		index: make(map[[2]int]uint32),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.line++
		if err := d.decodeLine(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read model %q", name)
	}

	if len(d.model.Indices) == 0 {
		return nil, NewError(name, d.line, "model defines no faces")
	}

	return &d.model, nil
}

type decoder struct {
	name      string
	line      int
	positions [][3]float32
	texcoords [][2]float32
	index     map[[2]int]uint32 // position/texcoord pair -> output vertex
	model     Model
}

func (d *decoder) decodeLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return d.decodePosition(fields[1:])
	case "vt":
		return d.decodeTexCoord(fields[1:])
	case "f":
		return d.decodeFace(fields[1:])
	}

	// Normals, materials, groups and the rest are not needed here.
	return nil
}

func (d *decoder) decodePosition(fields []string) error {
	if len(fields) < 3 {
		return NewError(d.name, d.line, "vertex needs 3 components, have %d", len(fields))
	}

	var p [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return NewError(d.name, d.line, "malformed vertex component %q", fields[i])
		}
		p[i] = float32(v)
	}

	d.positions = append(d.positions, p)
	return nil
}

func (d *decoder) decodeTexCoord(fields []string) error {
	if len(fields) < 2 {
		return NewError(d.name, d.line, "texcoord needs 2 components, have %d", len(fields))
	}

	var t [2]float32
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return NewError(d.name, d.line, "malformed texcoord component %q", fields[i])
		}
		t[i] = float32(v)
	}

	d.texcoords = append(d.texcoords, t)
	return nil
}

func (d *decoder) decodeFace(fields []string) error {
	if len(fields) < 3 {
		return NewError(d.name, d.line, "face needs at least 3 corners, have %d", len(fields))
	}

	corners := make([]uint32, len(fields))
	for i, f := range fields {
		n, err := d.decodeCorner(f)
		if err != nil {
			return err
		}
		corners[i] = n
	}

	// Fan triangulation around the first corner.
	for i := 2; i < len(corners); i++ {
		d.model.Indices = append(d.model.Indices, corners[0], corners[i-1], corners[i])
	}

	return nil
}

// decodeCorner resolves one face corner of the form "p", "p/t", "p/t/n"
// or "p//n" to an output vertex index, deduplicating repeated pairs.
func (d *decoder) decodeCorner(field string) (uint32, error) {
	parts := strings.Split(field, "/")

	pi, err := d.resolveIndex(parts[0], len(d.positions))
	if err != nil {
		return 0, err
	}

	ti := -1
	if len(parts) > 1 && parts[1] != "" {
		ti, err = d.resolveIndex(parts[1], len(d.texcoords))
		if err != nil {
			return 0, err
		}
	}

	key := [2]int{pi, ti}
	if n, ok := d.index[key]; ok {
		return n, nil
	}

	v := Vertex{Position: d.positions[pi]}
	if ti >= 0 {
		v.TexCoords = d.texcoords[ti]
	}

	n := uint32(len(d.model.Vertices))
	d.model.Vertices = append(d.model.Vertices, v)
	d.index[key] = n
	return n, nil
}

// resolveIndex converts a 1-based OBJ index to a 0-based slice index.
// Negative values count back from the end of the current list.
func (d *decoder) resolveIndex(field string, count int) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, NewError(d.name, d.line, "malformed index %q", field)
	}

	switch {
	case n > 0 && n <= count:
		return n - 1, nil
	case n < 0 && -n <= count:
		return count + n, nil
	}

	return 0, NewError(d.name, d.line, "index %d out of range [1,%d]", n, count)
}
