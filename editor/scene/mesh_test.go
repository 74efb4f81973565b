package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereMeshVertices(t *testing.T) {
	verts := SphereMesh(8, 12)
	require.NotEmpty(t, verts)
	require.Zero(t, len(verts)%18, "must be whole triangles of 6-float vertices")

	// Unit sphere: every position is unit length and equals its normal.
	for i := 0; i < len(verts); i += 6 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		assert.InDelta(t, 1.0, float64(x*x+y*y+z*z), 1e-5)
		assert.Equal(t, x, verts[i+3])
		assert.Equal(t, y, verts[i+4])
		assert.Equal(t, z, verts[i+5])
	}
}

func TestSphereMeshClampsDegenerateArgs(t *testing.T) {
	assert.NotEmpty(t, SphereMesh(0, 0))
}

func TestGridMeshLiesOnGround(t *testing.T) {
	verts := GridMesh(5, 1)
	require.Zero(t, len(verts)%12, "must be whole 6-float line segments")

	lines := len(verts) / 12
	assert.Equal(t, 2*(2*5+1), lines)

	for i := 0; i < len(verts); i += 6 {
		assert.Zero(t, verts[i+1])
		assert.Equal(t, float32(1), verts[i+4])
	}
}
