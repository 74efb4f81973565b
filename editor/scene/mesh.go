package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SphereMesh builds an interleaved position+normal triangle list for a unit
// sphere with the given subdivision counts. Positions equal normals on a unit
// sphere, so vertices are 6 floats: x y z nx ny nz.
func SphereMesh(stacks, slices int) []float32 {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	point := func(stack, slice int) mgl32.Vec3 {
		phi := math.Pi * float64(stack) / float64(stacks)
		theta := 2 * math.Pi * float64(slice) / float64(slices)
		return mgl32.Vec3{
			float32(math.Sin(phi) * math.Cos(theta)),
			float32(math.Cos(phi)),
			float32(math.Sin(phi) * math.Sin(theta)),
		}
	}

	var verts []float32
	emit := func(v mgl32.Vec3) {
		verts = append(verts, v.X(), v.Y(), v.Z(), v.X(), v.Y(), v.Z())
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := point(i, j)
			b := point(i+1, j)
			c := point(i+1, j+1)
			d := point(i, j+1)
			if i > 0 {
				emit(a)
				emit(b)
				emit(d)
			}
			if i < stacks-1 {
				emit(b)
				emit(c)
				emit(d)
			}
		}
	}
	return verts
}

// GridMesh builds a line list on the ground plane, centered at the origin:
// (2n+1) lines in each direction with the given spacing. Vertices are
// position+normal like the sphere so both share one shader.
func GridMesh(n int, spacing float32) []float32 {
	var verts []float32
	emit := func(x, z float32) {
		verts = append(verts, x, 0, z, 0, 1, 0)
	}
	extent := float32(n) * spacing
	for i := -n; i <= n; i++ {
		p := float32(i) * spacing
		emit(p, -extent)
		emit(p, extent)
		emit(-extent, p)
		emit(extent, p)
	}
	return verts
}
