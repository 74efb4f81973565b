package gui

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genomestudio/common"
)

// frame runs one widget frame: input, widget calls, end. Widgets are driven
// bare, without a surrounding scroll area, so the area containment flag is
// forced on.
func frame(gs *guiState, in frameInput, body func()) {
	gs.beginFrame(in)
	gs.insideCurrentArea = true
	body()
	gs.endFrame()
}

// ringPoint returns the pointer position on a slider ring (center 110,110 for
// a radius-100 widget at the origin) for a given slider value in degrees.
func ringPoint(valueDeg float64) (float32, float32) {
	a := -math.Pi/2 + valueDeg/180.0*math.Pi
	return 110 + float32(math.Cos(a))*100, 110 + float32(math.Sin(a))*100
}

func TestCircularSliderDrag(t *testing.T) {
	gs := newGuiState()
	value := float32(0)
	slider := func(snap bool) bool {
		return gs.imguiCircularSlider(&value, -180, 180, 100, snap)
	}

	px, py := ringPoint(45)

	// Hover arms the hot widget, the press activates it.
	frame(gs, frameInput{mx: px, my: py}, func() { slider(false) })
	var changed bool
	frame(gs, frameInput{mx: px, my: py, left: true}, func() { changed = slider(false) })
	assert.True(t, changed)
	assert.InDelta(t, 45.0, value, 0.01)

	frame(gs, frameInput{mx: px, my: py}, func() { slider(false) })
	assert.False(t, gs.anyActive())
}

func TestCircularSliderSnapping(t *testing.T) {
	gs := newGuiState()
	value := float32(0)
	slider := func() { gs.imguiCircularSlider(&value, -180, 180, 100, true) }

	px, py := ringPoint(50)
	frame(gs, frameInput{mx: px, my: py}, slider)
	frame(gs, frameInput{mx: px, my: py, left: true}, slider)

	assert.Equal(t, float32(45), value)
}

func TestCircularSliderClampsToBounds(t *testing.T) {
	gs := newGuiState()
	value := float32(0)
	slider := func() { gs.imguiCircularSlider(&value, -90, 90, 100, false) }

	px, py := ringPoint(135)
	frame(gs, frameInput{mx: px, my: py}, slider)
	frame(gs, frameInput{mx: px, my: py, left: true}, slider)

	assert.Equal(t, float32(90), value)
}

func typeInto(gs *guiState, slider func(), text string, clear int) {
	// Focus the center text field.
	frame(gs, frameInput{mx: 110, my: 110, left: true}, slider)
	frame(gs, frameInput{mx: 110, my: 110}, slider)
	for i := 0; i < clear; i++ {
		frame(gs, frameInput{mx: 110, my: 110, backspace: true}, slider)
	}
	for _, r := range text {
		frame(gs, frameInput{mx: 110, my: 110, chars: []rune{r}}, slider)
	}
	frame(gs, frameInput{mx: 110, my: 110, enter: true}, slider)
}

func TestCircularSliderTextEntry(t *testing.T) {
	gs := newGuiState()
	value := float32(45)
	var changed bool
	slider := func() {
		if gs.imguiCircularSlider(&value, -180, 180, 100, false) {
			changed = true
		}
	}

	// The field seeds with the formatted value, "45.00": clear 5 runes.
	typeInto(gs, slider, "-90", 5)
	assert.True(t, changed)
	assert.Equal(t, float32(-90), value)

	// Out-of-range entry clamps.
	changed = false
	typeInto(gs, slider, "500", 6)
	assert.True(t, changed)
	assert.Equal(t, float32(180), value)
}

func TestCircularSliderRejectsGarbageText(t *testing.T) {
	gs := newGuiState()
	value := float32(45)
	var changed bool
	slider := func() {
		if gs.imguiCircularSlider(&value, -180, 180, 100, false) {
			changed = true
		}
	}

	typeInto(gs, slider, "abc", 5)
	assert.False(t, changed)
	assert.Equal(t, float32(45), value)
}

type ballFixture struct {
	orientation mgl32.Quat
	xLat, xLon  float32
	yLat, yLon  float32
	zLat, zLon  float32
	lockedAxis  int32
	initialDist float32
	snap        bool
	changed     bool
}

func newBallFixture() *ballFixture {
	return &ballFixture{orientation: mgl32.QuatIdent(), lockedAxis: AxisNone}
}

func (b *ballFixture) run(gs *guiState) {
	if gs.imguiOrientationBall(&b.orientation,
		&b.xLat, &b.xLon, &b.yLat, &b.yLon, &b.zLat, &b.zLon,
		100, b.snap, &b.lockedAxis, &b.initialDist) {
		b.changed = true
	}
}

func assertOrthonormal(t *testing.T, q mgl32.Quat) {
	t.Helper()
	assert.InDelta(t, 1.0, q.Len(), 1e-4)
	axes := common.RotateBasis(q)
	assert.InDelta(t, 0.0, axes[0].Dot(axes[1]), 1e-4)
	assert.InDelta(t, 0.0, axes[1].Dot(axes[2]), 1e-4)
	assert.InDelta(t, 0.0, axes[0].Dot(axes[2]), 1e-4)
}

func TestOrientationBallDragXToY(t *testing.T) {
	gs := newGuiState()
	b := newBallFixture()

	// Identity frame, radius 100 at the origin: X projects to (210,110),
	// Y to (110,10). Grab X and drag it onto Y's endpoint.
	frame(gs, frameInput{mx: 210, my: 110, left: true}, func() { b.run(gs) })
	require.Equal(t, AxisX, b.lockedAxis)
	assert.InDelta(t, 100.0, b.initialDist, 0.01)

	frame(gs, frameInput{mx: 110, my: 10, left: true}, func() { b.run(gs) })
	assert.True(t, b.changed)

	frame(gs, frameInput{mx: 110, my: 10}, func() { b.run(gs) })
	assert.Equal(t, AxisNone, b.lockedAxis)
	assert.False(t, gs.anyActive())

	axes := common.RotateBasis(b.orientation)
	assert.InDelta(t, 0.0, axes[0].X(), 1e-4)
	assert.InDelta(t, 1.0, axes[0].Y(), 1e-4)
	assert.InDelta(t, -1.0, axes[1].X(), 1e-4)
	assert.InDelta(t, 1.0, axes[2].Z(), 1e-4)
	assertOrthonormal(t, b.orientation)

	assert.InDelta(t, 90.0, b.xLat, 0.01)
}

func TestOrientationBallPickRadius(t *testing.T) {
	gs := newGuiState()
	b := newBallFixture()

	// 15px away from every endpoint: nothing locks.
	frame(gs, frameInput{mx: 210, my: 125, left: true}, func() { b.run(gs) })
	assert.Equal(t, AxisNone, b.lockedAxis)
	assert.False(t, b.changed)
}

func TestOrientationBallSnapping(t *testing.T) {
	gs := newGuiState()
	b := newBallFixture()
	b.snap = true

	frame(gs, frameInput{mx: 210, my: 110, left: true}, func() { b.run(gs) })
	require.Equal(t, AxisX, b.lockedAxis)

	// Drag to an arbitrary point; the locked axis must land on the snap grid.
	frame(gs, frameInput{mx: 180, my: 50, left: true}, func() { b.run(gs) })
	frame(gs, frameInput{mx: 180, my: 50}, func() { b.run(gs) })

	require.True(t, b.changed)
	assert.InDelta(t, common.SnapAngle(b.xLat), b.xLat, 1e-3)
	assert.InDelta(t, common.SnapAngle(b.xLon), b.xLon, 1e-3)
	assertOrthonormal(t, b.orientation)
}

func TestOrientationBallFeedbackWithoutDrag(t *testing.T) {
	gs := newGuiState()
	b := newBallFixture()

	frame(gs, frameInput{}, func() { b.run(gs) })

	assert.False(t, b.changed)
	assert.InDelta(t, 0.0, b.xLat, 1e-4)
	assert.InDelta(t, 90.0, b.xLon, 1e-4)
	assert.InDelta(t, 90.0, b.yLat, 1e-4)
	assert.InDelta(t, 0.0, b.zLat, 1e-4)
	assert.InDelta(t, 0.0, b.zLon, 1e-4)
}

func TestOrientationBallInstancesIndependent(t *testing.T) {
	gs := newGuiState()
	b1 := newBallFixture()
	b2 := newBallFixture()

	both := func() {
		b1.run(gs)
		b2.run(gs)
	}

	// The second ball flows below the first: its X endpoint is (210,334).
	// Grab the first ball's X axis and drag; the second must not move.
	frame(gs, frameInput{mx: 210, my: 110, left: true}, both)
	require.Equal(t, AxisX, b1.lockedAxis)
	require.Equal(t, AxisNone, b2.lockedAxis)

	frame(gs, frameInput{mx: 150, my: 40, left: true}, both)
	frame(gs, frameInput{mx: 150, my: 40}, both)

	assert.True(t, b1.changed)
	assert.False(t, b2.changed)
	assert.Equal(t, mgl32.QuatIdent(), b2.orientation)
	assertOrthonormal(t, b1.orientation)
}

func TestOrientationBallRepeatedDragsStayNormalized(t *testing.T) {
	gs := newGuiState()
	b := newBallFixture()

	points := [][2]float32{
		{210, 110}, {180, 60}, {140, 40}, {110, 12}, {80, 60}, {40, 110},
	}
	frame(gs, frameInput{mx: points[0][0], my: points[0][1], left: true}, func() { b.run(gs) })
	require.Equal(t, AxisX, b.lockedAxis)
	for _, p := range points[1:] {
		frame(gs, frameInput{mx: p[0], my: p[1], left: true}, func() { b.run(gs) })
	}
	frame(gs, frameInput{}, func() { b.run(gs) })

	assert.True(t, b.changed)
	assertOrthonormal(t, b.orientation)
}

func TestTextFieldCommitOnClickAway(t *testing.T) {
	gs := newGuiState()
	field := func() (string, bool) {
		return gs.imguiTextField(0, 0, 100, 20, "seed")
	}

	var out string
	var ok bool
	run := func(in frameInput) {
		frame(gs, in, func() { out, ok = field() })
	}

	run(frameInput{mx: 50, my: 10, left: true})
	run(frameInput{mx: 50, my: 10})
	run(frameInput{mx: 50, my: 10, chars: []rune{'x'}})
	assert.False(t, ok)

	// Clicking outside commits once.
	run(frameInput{mx: 300, my: 300, left: true})
	assert.True(t, ok)
	assert.Equal(t, "seedx", out)

	run(frameInput{mx: 300, my: 300})
	assert.False(t, ok)
}
