package scene

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed-target perspective camera looking at the demo cell.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Fovy     float32
	Near     float32
	Far      float32
}

func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{4, 3, 8},
		Target:   mgl32.Vec3{0, 1, 0},
		Fovy:     45,
		Near:     0.1,
		Far:      100,
	}
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// ScreenRay converts a pointer position (window coordinates, y down) inside
// the viewport into a world-space ray from the camera.
func (c *Camera) ScreenRay(px, py float32, viewport image.Rectangle) (origin, dir mgl32.Vec3) {
	w := float32(viewport.Dx())
	h := float32(viewport.Dy())
	if w <= 0 || h <= 0 {
		return c.Position, mgl32.Vec3{0, 0, -1}
	}

	ndcX := (px-float32(viewport.Min.X))/w*2 - 1
	ndcY := 1 - (py-float32(viewport.Min.Y))/h*2

	inv := c.Projection(w / h).Mul4(c.View()).Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	nearP := near.Vec3().Mul(1 / near.W())
	farP := far.Vec3().Mul(1 / far.W())

	return c.Position, farP.Sub(nearP).Normalize()
}
