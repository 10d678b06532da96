package render

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexLayoutMatchesStruct(t *testing.T) {
	var v Vertex

	if want := int32(unsafe.Sizeof(v)); VertexLayout.Stride != want {
		t.Fatalf("stride:\nwant: %d\nhave: %d", want, VertexLayout.Stride)
	}
	if VertexLayout.Divisor != 0 {
		t.Fatalf("divisor:\nwant: 0\nhave: %d", VertexLayout.Divisor)
	}

	for i, tt := range []struct {
		slot   uint32
		size   int32
		offset int
	}{
		{SlotPosition, 3, int(unsafe.Offsetof(v.Position))},
		{SlotTexCoord, 2, int(unsafe.Offsetof(v.TexCoords))},
	} {
		a := VertexLayout.Attributes[i]
		if a.Slot != tt.slot || a.Size != tt.size || a.Offset != tt.offset {
			t.Fatalf("attribute %d:\nwant: %+v\nhave: %+v", i, tt, a)
		}
	}
}

func TestInstanceLayoutMatchesMat4(t *testing.T) {
	if want := int32(unsafe.Sizeof(mgl32.Mat4{})); InstanceLayout.Stride != want {
		t.Fatalf("stride:\nwant: %d\nhave: %d", want, InstanceLayout.Stride)
	}
	if InstanceLayout.Divisor != 1 {
		t.Fatalf("divisor:\nwant: 1\nhave: %d", InstanceLayout.Divisor)
	}

	// One vec4 column per slot, slots 0 through 3, packed back to back.
	for i, a := range InstanceLayout.Attributes {
		if a.Slot != uint32(i) || a.Size != 4 || a.Offset != i*16 {
			t.Fatalf("attribute %d:\nwant: slot %d size 4 offset %d\nhave: %+v", i, i, i*16, a)
		}
	}
}

func TestSlotsAreContiguous(t *testing.T) {
	seen := map[uint32]bool{}
	for _, l := range []BufferLayout{InstanceLayout, VertexLayout} {
		for _, a := range l.Attributes {
			if seen[a.Slot] {
				t.Fatalf("slot %d claimed twice", a.Slot)
			}
			seen[a.Slot] = true
		}
	}

	for slot := uint32(0); slot <= SlotTexCoord; slot++ {
		if !seen[slot] {
			t.Fatalf("slot %d unclaimed", slot)
		}
	}
}
