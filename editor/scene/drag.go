package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"genomestudio/common"
)

// floorClearance keeps a dragged cell from being pushed through the ground.
const floorClearance = 0.5

// DragState moves the demo cell with the pointer. On grab it remembers the
// distance of the hit point along the ray and the offset from the hit point
// to the cell center; updates keep the cell on a camera-facing plane at that
// distance, so it tracks the pointer without jumping.
type DragState struct {
	active    bool
	offset    mgl32.Vec3
	planeDist float32
}

// Begin casts the ray against the cell sphere. Returns whether a drag
// started.
func (d *DragState) Begin(origin, dir, center mgl32.Vec3, radius float32) bool {
	t, ok := common.RaySphereIntersection(origin, dir, center, radius)
	if !ok {
		return false
	}
	hit := origin.Add(dir.Mul(t))
	d.offset = center.Sub(hit)
	d.planeDist = t
	d.active = true
	return true
}

// Update returns the new cell center for the current pointer ray.
func (d *DragState) Update(origin, dir mgl32.Vec3) (mgl32.Vec3, bool) {
	if !d.active {
		return mgl32.Vec3{}, false
	}
	pos := origin.Add(dir.Mul(d.planeDist)).Add(d.offset)
	if pos.Y() < floorClearance {
		pos[1] = floorClearance
	}
	return pos, true
}

func (d *DragState) End() {
	d.active = false
}

func (d *DragState) Active() bool {
	return d.active
}
