package path

import (
	"fmt"
	"image/color"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/pathview/pathview/pkg/math3d"
)

// LoadGLTF reads a glTF or GLB document and flattens the POSITION accessors
// of its mesh primitives, in document order, into one point path. Vertex
// order is taken as path order; indices, normals and materials are ignored.
// Points are colored start→end along the whole path.
func LoadGLTF(name string, start, end color.RGBA) ([]Point, error) {
	doc, err := gltf.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var positions []math3d.Vec3
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			prims, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}
			positions = append(positions, prims...)
		}
	}

	if len(positions) == 0 {
		return nil, fmt.Errorf("%s: no POSITION data", name)
	}

	grad := NewGradient(start, end, len(positions))
	points := make([]Point, len(positions))
	for i, pos := range positions {
		points[i] = Point{Position: pos, Color: grad.At(i)}
	}

	return points, nil
}

// readVec3Accessor reads float32 VEC3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, fmt.Errorf("external buffers not supported")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}

	if need := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && need > len(buffer.Data) {
		return nil, fmt.Errorf("accessor overruns buffer (%d > %d)", need, len(buffer.Data))
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		result[i] = math3d.V3(
			float64(readFloat32(buffer.Data[offset:])),
			float64(readFloat32(buffer.Data[offset+4:])),
			float64(readFloat32(buffer.Data[offset+8:])),
		)
	}

	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
