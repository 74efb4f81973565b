package scene

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragBeginMiss(t *testing.T) {
	var d DragState
	origin := mgl32.Vec3{0, 1, 5}
	dir := mgl32.Vec3{1, 0, 0}

	assert.False(t, d.Begin(origin, dir, mgl32.Vec3{0, 1, 0}, 0.5))
	assert.False(t, d.Active())

	_, ok := d.Update(origin, dir)
	assert.False(t, ok)
}

func TestDragMovesWithPointer(t *testing.T) {
	var d DragState
	origin := mgl32.Vec3{0, 1, 5}
	dir := mgl32.Vec3{0, 0, -1}
	center := mgl32.Vec3{0, 1, 0}

	require.True(t, d.Begin(origin, dir, center, 0.5))
	require.True(t, d.Active())

	// Same ray: the cell stays put.
	pos, ok := d.Update(origin, dir)
	require.True(t, ok)
	assert.InDelta(t, center.X(), pos.X(), 1e-5)
	assert.InDelta(t, center.Y(), pos.Y(), 1e-5)
	assert.InDelta(t, center.Z(), pos.Z(), 1e-5)

	// A ray tilted sideways carries the cell with it.
	tilted := mgl32.Vec3{0.2, 0, -1}.Normalize()
	pos, ok = d.Update(origin, tilted)
	require.True(t, ok)
	assert.Greater(t, pos.X(), center.X())

	d.End()
	assert.False(t, d.Active())
}

func TestDragClampsToFloor(t *testing.T) {
	var d DragState
	origin := mgl32.Vec3{0, 1, 5}
	center := mgl32.Vec3{0, 1, 0}

	require.True(t, d.Begin(origin, mgl32.Vec3{0, 0, -1}, center, 0.5))

	down := mgl32.Vec3{0, -0.8, -1}.Normalize()
	pos, ok := d.Update(origin, down)
	require.True(t, ok)
	assert.Equal(t, float32(floorClearance), pos.Y())
}

func TestScreenRayCenterHitsTarget(t *testing.T) {
	c := NewCamera()
	vp := image.Rect(0, 0, 800, 600)

	origin, dir := c.ScreenRay(400, 300, vp)
	assert.Equal(t, c.Position, origin)
	assert.InDelta(t, 1.0, dir.Len(), 1e-5)

	// The center ray points from the camera toward the target.
	want := c.Target.Sub(c.Position).Normalize()
	assert.InDelta(t, float64(want.X()), float64(dir.X()), 1e-3)
	assert.InDelta(t, float64(want.Y()), float64(dir.Y()), 1e-3)
	assert.InDelta(t, float64(want.Z()), float64(dir.Z()), 1e-3)
}

func TestScreenRayRespectsViewportOffset(t *testing.T) {
	c := NewCamera()

	_, centered := c.ScreenRay(400, 300, image.Rect(0, 0, 800, 600))
	_, offset := c.ScreenRay(650, 340, image.Rect(250, 40, 1050, 640))

	assert.InDelta(t, float64(centered.X()), float64(offset.X()), 1e-5)
	assert.InDelta(t, float64(centered.Y()), float64(offset.Y()), 1e-5)
	assert.InDelta(t, float64(centered.Z()), float64(offset.Z()), 1e-5)
}

func TestScreenRayDegenerateViewport(t *testing.T) {
	c := NewCamera()
	_, dir := c.ScreenRay(0, 0, image.Rect(0, 0, 0, 0))
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, dir)
}
