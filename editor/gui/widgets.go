package gui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"genomestudio/common"
)

const (
	// Grab zone of the circular slider: an annulus widened well past the
	// painted ring so small sliders stay usable.
	sliderGrabInner = 15.0
	sliderGrabOuter = 25.0

	// Commit threshold for slider values, in degrees.
	sliderEpsilon = 0.001

	// Pick radius around a projected axis endpoint of the orientation ball.
	ballPickRadius = 10.0

	// Minimum delta rotation (radians) worth committing.
	ballRotEpsilon = 1e-4

	ballHandleRadius   = 5.0
	sliderHandleRadius = 6.0

	textFieldW = 45.0
	textFieldH = 20.0
)

// Axis ids for the orientation ball's locked_axis state. AxisNone means idle.
const (
	AxisNone int32 = -1
	AxisX    int32 = 0
	AxisY    int32 = 1
	AxisZ    int32 = 2
)

var axisColors = [3]color.RGBA{
	imguiRGBA(230, 70, 70, 255),
	imguiRGBA(90, 210, 90, 255),
	imguiRGBA(80, 130, 250, 255),
}

var axisLabels = [3]string{"X", "Y", "Z"}

// imguiTextField is a minimal single-line field. It shows display while
// unfocused; a click focuses it and seeds the edit buffer. The edited text is
// returned exactly once, when focus is lost (click elsewhere or enter).
func (gs *guiState) imguiTextField(x, y, w, h float32, display string) (string, bool) {
	gs.widgetID++
	id := (gs.areaID << 16) | gs.widgetID

	over := gs.inRect(x, y, w, h)
	committed := false
	var out string

	if gs.leftPressed {
		if over {
			if gs.focus != id {
				gs.focus = id
				gs.editBuf = []rune(display)
			}
		} else if gs.focus == id {
			out = string(gs.editBuf)
			committed = true
			gs.focus = 0
		}
	}

	if gs.focus == id {
		for _, r := range gs.chars {
			if r >= 32 && r < 127 {
				gs.editBuf = append(gs.editBuf, r)
			}
		}
		if gs.backspace && len(gs.editBuf) > 0 {
			gs.editBuf = gs.editBuf[:len(gs.editBuf)-1]
		}
		if gs.enter {
			out = string(gs.editBuf)
			committed = true
			gs.focus = 0
		}
	}

	shown := display
	border := imguiRGBA(128, 128, 128, 96)
	if gs.focus == id {
		shown = string(gs.editBuf) + "_"
		border = imguiRGBA(255, 196, 0, 196)
	}
	gs.addGfxCmdRoundedRect(x, y, w, h, 3, imguiRGBA(0, 0, 0, 160))
	gs.addGfxCmdRoundedRect(x, y, w, 1, 0, border)
	gs.addGfxCmdText(x+w/2, y+h/2-textHeight/2, alignCenter, shown, imguiRGBA(255, 255, 255, 220))

	return out, committed
}

// imguiCircularSlider edits a bounded angle in degrees by dragging a handle
// around a ring, or by typing into the field at its center. Zero is at the
// top of the circle; the value is proportional to angular displacement, so
// +-180 both land at the bottom. Returns whether the value changed.
func (gs *guiState) imguiCircularSlider(value *float32, vmin, vmax, radius float32, enableSnapping bool) bool {
	gs.widgetID++
	id := (gs.areaID << 16) | gs.widgetID

	side := radius*2 + 20
	x := float32(gs.widgetX)
	y := float32(gs.widgetY)
	gs.widgetY += int(side) + defaultSpacing

	cx := x + side/2
	cy := y + side/2

	distFromCenter := common.Dist2D(gs.mx, gs.my, cx, cy)

	overText := gs.inRect(cx-textFieldW/2, cy-textFieldH/2, textFieldW, textFieldH)
	inGrabZone := distFromCenter >= sliderGrabInner &&
		distFromCenter <= radius+sliderGrabOuter &&
		gs.inRect(x, y, side, side) && !overText

	gs.buttonLogic(id, inGrabZone)

	ringCol := imguiRGBA(128, 128, 128, 96)
	arcCol := imguiRGBA(0, 160, 230, 255)
	if inGrabZone || gs.IsActive(id) {
		ringCol = imguiRGBA(255, 196, 0, 128)
		arcCol = imguiRGBA(255, 196, 0, 255)
	}

	gs.addGfxCmdCircle(cx, cy, radius, 3, ringCol)

	// Directional arc from the top to the handle.
	if common.Abs(*value) > sliderEpsilon {
		segments := int(radius * 0.5)
		if segments < 32 {
			segments = 32
		}
		start := -math.Pi / 2
		end := start + float64(*value)/180.0*math.Pi
		for i := 0; i < segments; i++ {
			a1 := start + (end-start)*float64(i)/float64(segments)
			a2 := start + (end-start)*float64(i+1)/float64(segments)
			gs.addGfxCmdLine(
				cx+float32(math.Cos(a1))*radius, cy+float32(math.Sin(a1))*radius,
				cx+float32(math.Cos(a2))*radius, cy+float32(math.Sin(a2))*radius,
				8, arcCol)
		}
	}

	handleAngle := -math.Pi/2 + float64(*value)/180.0*math.Pi
	gs.addGfxCmdCircleFilled(
		cx+float32(math.Cos(handleAngle))*radius,
		cy+float32(math.Sin(handleAngle))*radius,
		sliderHandleRadius, arcCol)

	changed := false

	if gs.IsActive(id) && gs.left {
		degrees := common.PointerAngle(gs.mx, gs.my, cx, cy)
		if enableSnapping {
			degrees = common.SnapAngle(degrees)
		}
		newValue := common.Clamp(degrees, vmin, vmax)
		if common.Abs(newValue-*value) > sliderEpsilon {
			*value = newValue
			changed = true
		}
	}

	// Direct numeric entry in the middle of the ring. An unparseable commit
	// is discarded without touching the value.
	text, committed := gs.imguiTextField(cx-textFieldW/2, cy-textFieldH/2, textFieldW, textFieldH,
		fmt.Sprintf("%.2f", *value))
	if committed {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 32); err == nil {
			*value = common.Clamp(float32(parsed), vmin, vmax)
			changed = true
		}
	}

	return changed
}

// imguiOrientationBall edits a unit quaternion by dragging one of the three
// axis endpoints of its rotated frame, projected onto a disk. Only the
// grabbed axis follows the pointer; the frame is re-derived by rotating the
// whole quaternion with the minimal rotation from the axis's old direction to
// the new one, which keeps the triple orthonormal by construction.
//
// lockedAxis and initialDistance are owned by the caller so that multiple
// ball instances stay independent. The six lat/lon outputs are display
// feedback, recomputed from the orientation every call.
func (gs *guiState) imguiOrientationBall(orientation *mgl32.Quat,
	xLat, xLon, yLat, yLon, zLat, zLon *float32,
	radius float32, enableSnapping bool,
	lockedAxis *int32, initialDistance *float32) bool {

	gs.widgetID++
	id := (gs.areaID << 16) | gs.widgetID

	side := radius*2 + 20
	x := float32(gs.widgetX)
	y := float32(gs.widgetY)
	gs.widgetY += int(side) + defaultSpacing

	cx := x + side/2
	cy := y + side/2

	axes := common.RotateBasis(*orientation)

	gs.addGfxCmdCircle(cx, cy, radius, 2, imguiRGBA(128, 128, 128, 96))

	for i, v := range axes {
		px, py := common.ProjectOnDisk(v, cx, cy, radius)
		col := axisColors[i]
		if v.Z() < 0 {
			// Back hemisphere: dimmed, still interactive.
			col.A = 110
		}
		if *lockedAxis == int32(i) {
			col = imguiRGBA(255, 196, 0, 255)
		}
		gs.addGfxCmdLine(cx, cy, px, py, 2, col)
		gs.addGfxCmdCircleFilled(px, py, ballHandleRadius, col)
		gs.addGfxCmdText(px+ballHandleRadius+2, py-textHeight/2, alignLeft, axisLabels[i], col)
	}

	over := gs.inRect(x, y, side, side)
	changed := false

	if *lockedAxis < 0 {
		if gs.leftPressed && over && !gs.anyActive() {
			best := AxisNone
			bestDist := float32(ballPickRadius)
			for i, v := range axes {
				px, py := common.ProjectOnDisk(v, cx, cy, radius)
				if d := common.Dist2D(gs.mx, gs.my, px, py); d <= bestDist {
					bestDist = d
					best = int32(i)
				}
			}
			if best >= 0 {
				*lockedAxis = best
				*initialDistance = common.Dist2D(gs.mx, gs.my, cx, cy)
				gs.setActive(id)
			}
		}
	} else if gs.left {
		i := int(*lockedAxis)
		old := axes[i]

		// Stay on the hemisphere the axis is currently on; the near one
		// when ambiguous.
		zSign := float32(1)
		if old.Z() < -1e-6 {
			zSign = -1
		}
		candidate := common.UnprojectDisk(gs.mx, gs.my, cx, cy, radius, zSign)

		if enableSnapping {
			lat, lon := common.LatLon(candidate)
			candidate = common.DirectionFromLatLon(common.SnapAngle(lat), common.SnapAngle(lon))
		}

		delta := mgl32.QuatBetweenVectors(old, candidate)
		if common.QuatAngle(delta) > ballRotEpsilon {
			*orientation = delta.Mul(*orientation).Normalize()
			axes = common.RotateBasis(*orientation)
			changed = true
		}
	}

	if *lockedAxis >= 0 && (gs.leftReleased || !gs.left) {
		*lockedAxis = AxisNone
		if gs.IsActive(id) {
			gs.clearActive()
		}
	}

	// Feedback always reflects the true current frame.
	*xLat, *xLon = common.LatLon(axes[0])
	*yLat, *yLon = common.LatLon(axes[1])
	*zLat, *zLon = common.LatLon(axes[2])

	return changed
}
