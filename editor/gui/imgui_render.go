package gui

import (
	"image"

	"github.com/AllenDang/giu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// imguiRender drains the gui state's gfx command queue onto the giu canvas.
// Keeping drawing out of guiState leaves the widget logic runnable headless.
type imguiRender struct {
	pen *giu.Canvas
	ui  *Gui
}

func newImguiRender(ui *Gui) *imguiRender {
	return &imguiRender{ui: ui}
}

func gfxPoint(x, y float32) image.Point {
	return image.Point{X: int(x + 0.5), Y: int(y + 0.5)}
}

func (render *imguiRender) Build() {
	render.pen = giu.GetCanvas()
	for _, cmd := range render.ui.gs.getRenderCmds() {
		render.doRender(cmd)
	}
	render.pen = nil
}

func (render *imguiRender) doRender(cmd *gfxCmd) {
	switch cmd.kind {
	case gfxCmdRect:
		min := gfxPoint(cmd.rect.x, cmd.rect.y)
		max := gfxPoint(cmd.rect.x+cmd.rect.w, cmd.rect.y+cmd.rect.h)
		render.pen.AddRectFilled(min, max, cmd.col, cmd.rect.r, giu.DrawFlagsRoundCornersAll)
	case gfxCmdLine:
		render.pen.AddLine(
			gfxPoint(cmd.line.x0, cmd.line.y0),
			gfxPoint(cmd.line.x1, cmd.line.y1),
			cmd.col, cmd.line.width)
	case gfxCmdCircle:
		segments := circleSegments(cmd.circle.radius)
		render.pen.AddCircle(gfxPoint(cmd.circle.x, cmd.circle.y), cmd.circle.radius, cmd.col, segments, cmd.circle.width)
	case gfxCmdCircleFilled:
		render.pen.AddCircleFilled(gfxPoint(cmd.circle.x, cmd.circle.y), cmd.circle.radius, cmd.col)
	case gfxCmdText:
		render.drawText(cmd)
	case gfxCmdScissor:
		if cmd.flags > 0 {
			gl.Enable(gl.SCISSOR_TEST)
			// GL scissor is bottom-left origin.
			gl.Scissor(int32(cmd.rect.x), int32(float32(render.ui.height)-cmd.rect.y-cmd.rect.h),
				int32(cmd.rect.w), int32(cmd.rect.h))
		} else {
			gl.Disable(gl.SCISSOR_TEST)
		}
	}
}

func (render *imguiRender) drawText(cmd *gfxCmd) {
	if cmd.text.text == "" {
		return
	}
	x := cmd.text.x
	w := giu.CalcTextSize(cmd.text.text)
	switch cmd.text.align {
	case alignCenter:
		x -= w.X / 2
	case alignRight:
		x -= w.X
	}
	render.pen.AddText(gfxPoint(x, cmd.text.y), cmd.col, cmd.text.text)
}

func circleSegments(radius float32) int {
	segments := int(radius)
	if segments < 12 {
		segments = 12
	}
	if segments > 64 {
		segments = 64
	}
	return segments
}
