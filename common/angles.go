package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SnapIncrement is the angle quantization step in degrees (360/32).
const SnapIncrement = 11.25

// SnapToIncrement rounds a value to the nearest multiple of inc.
func SnapToIncrement(v, inc float32) float32 {
	if inc <= 0 {
		return v
	}
	return float32(math.Floor(float64(v)/float64(inc)+0.5) * float64(inc))
}

// SnapAngle rounds an angle to the nearest multiple of SnapIncrement.
func SnapAngle(deg float32) float32 {
	return SnapToIncrement(deg, SnapIncrement)
}

// WrapDegrees folds angles above 180 down by a full turn. Values at or below
// -180 are deliberately left alone; callers clamp afterwards.
func WrapDegrees(deg float32) float32 {
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// PointerAngle converts a pointer position relative to a widget center into a
// signed angle in degrees, with 0 at the top of the circle and positive angles
// running clockwise.
func PointerAngle(px, py, cx, cy float32) float32 {
	mouseAngle := math.Atan2(float64(py-cy), float64(px-cx)) + math.Pi/2
	return WrapDegrees(float32(mouseAngle * 180 / math.Pi))
}

// LatLon converts a unit direction into latitude/longitude in degrees.
// Latitude is the elevation above the XZ plane, longitude the heading about
// the Y axis.
func LatLon(v Vec3) (lat, lon float32) {
	y := Clamp(v.Y(), -1, 1)
	lat = float32(math.Asin(float64(y)) * 180 / math.Pi)
	lon = float32(math.Atan2(float64(v.X()), float64(v.Z())) * 180 / math.Pi)
	return lat, lon
}

// DirectionFromLatLon is the inverse of LatLon.
func DirectionFromLatLon(lat, lon float32) Vec3 {
	latr := float64(lat) * math.Pi / 180
	lonr := float64(lon) * math.Pi / 180
	cl := math.Cos(latr)
	return Vec3{
		float32(cl * math.Sin(lonr)),
		float32(math.Sin(latr)),
		float32(cl * math.Cos(lonr)),
	}
}

// ProjectOnDisk projects a unit direction orthographically onto a screen-space
// disk of the given radius. Screen Y runs downward, hence the flip.
func ProjectOnDisk(v Vec3, cx, cy, radius float32) (x, y float32) {
	return cx + v.X()*radius, cy - v.Y()*radius
}

// UnprojectDisk lifts a screen-space point back onto the unit sphere. Points
// outside the disk are pulled to its boundary first so the depth solve never
// goes negative. zSign selects the hemisphere; zero means the near one.
func UnprojectDisk(px, py, cx, cy, radius, zSign float32) Vec3 {
	nx := (px - cx) / radius
	ny := -(py - cy) / radius
	d2 := nx*nx + ny*ny
	if d2 > 1 {
		inv := 1 / Sqrt32(d2)
		nx *= inv
		ny *= inv
		d2 = 1
	}
	z := Sqrt32(1 - d2)
	if zSign < 0 {
		z = -z
	}
	return Vec3{nx, ny, z}
}

// RotateBasis returns the three axes of the rotated canonical frame.
func RotateBasis(q mgl32.Quat) [3]Vec3 {
	return [3]Vec3{
		q.Rotate(Vec3{1, 0, 0}),
		q.Rotate(Vec3{0, 1, 0}),
		q.Rotate(Vec3{0, 0, 1}),
	}
}

// QuatAngle returns the rotation angle of a unit quaternion in radians.
func QuatAngle(q mgl32.Quat) float32 {
	w := Clamp(Abs(q.W), 0, 1)
	return float32(2 * math.Acos(float64(w)))
}
