package common

import (
	"cmp"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Vec2 = mgl32.Vec2
type Vec3 = mgl32.Vec3

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// / Returns the square of the value.
// / @param[in]		a	The value.
// / @return The square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

// / Returns the absolute value.
// / @param[in]		a	The value.
// / @return The absolute value of the specified value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// / Clamps the value to the specified range.
// / @param[in]		value			The value to clamp.
// / @param[in]		minInclusive	The minimum permitted return value.
// / @param[in]		maxInclusive	The maximum permitted return value.
// / @return The value, clamped to the specified range.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

func Sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// / Distance between two 2D points.
func Dist2D(x0, y0, x1, y1 float32) float32 {
	return Sqrt32(Sqr(x1-x0) + Sqr(y1-y0))
}

// / Intersects a ray with a sphere and returns the distance along the ray to
// / the nearest hit. Returns false when the ray misses or the near root lies
// / behind the origin.
func RaySphereIntersection(origin, dir, center Vec3, radius float32) (float32, bool) {
	oc := origin.Sub(center)
	a := dir.Dot(dir)
	b := 2.0 * oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}
	t := (-b - Sqrt32(discriminant)) / (2 * a)
	if t <= 0 {
		return 0, false
	}
	return t, true
}
