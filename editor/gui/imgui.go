package gui

import (
	"fmt"
	"image/color"

	"genomestudio/common"
)

// Gfx command queue consumed by the render layer.
type gfxCmdType int

const (
	gfxCmdRect gfxCmdType = iota
	gfxCmdLine
	gfxCmdCircle
	gfxCmdCircleFilled
	gfxCmdText
	gfxCmdScissor
)

type gfxRect struct {
	x, y, w, h, r float32
}

type gfxLine struct {
	x0, y0, x1, y1, width float32
}

type gfxCircle struct {
	x, y, radius, width float32
}

type gfxText struct {
	x, y  float32
	align alignType
	text  string
}

type alignType int

const (
	alignLeft alignType = iota
	alignCenter
	alignRight
)

type gfxCmd struct {
	kind   gfxCmdType
	flags  int
	col    color.RGBA
	rect   gfxRect
	line   gfxLine
	circle gfxCircle
	text   gfxText
}

const gfxCmdQueueSize = 5000

func imguiRGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// guiState holds per-frame input plus the hot/active widget bookkeeping of an
// immediate-mode UI. All widgets are methods on it; a frame is
// beginFrame -> widget calls -> endFrame, then the render layer drains the
// queue.
type guiState struct {
	left                      bool
	leftPressed, leftReleased bool
	mx, my                    float32
	scroll                    int
	chars                     []rune
	backspace, enter          bool

	active     int
	hot        int
	hotToBe    int
	wentActive bool

	dragX, dragY float32
	dragOrig     float32

	// Text-field focus. editBuf is owned by whichever field holds focus.
	focus   int
	editBuf []rune

	widgetX, widgetY, widgetW int
	insideCurrentArea         bool
	areaID                    int
	widgetID                  int
	isHot, isActive           bool

	// Scroll-area bookkeeping for the area currently being built.
	areaX, areaY, areaW, areaH int
	areaScroll                 *int
	areaContentTop             int

	queue []*gfxCmd
}

func newGuiState() *guiState {
	return &guiState{
		widgetW: 100,
		mx:      -1,
		my:      -1,
	}
}

func (gs *guiState) anyActive() bool {
	return gs.active != 0
}

func (gs *guiState) IsActive(id int) bool {
	return gs.active == id
}

func (gs *guiState) IsHot(id int) bool {
	return gs.hot == id
}

func (gs *guiState) inRect(x, y, w, h float32, checkArea ...bool) bool {
	check := true
	if len(checkArea) > 0 {
		check = checkArea[0]
	}
	return (!check || gs.insideCurrentArea) &&
		gs.mx >= x && gs.mx <= x+w && gs.my >= y && gs.my <= y+h
}

func (gs *guiState) clearInput() {
	gs.leftPressed = false
	gs.leftReleased = false
	gs.scroll = 0
	gs.chars = nil
	gs.backspace = false
	gs.enter = false
}

func (gs *guiState) clearActive() {
	gs.active = 0
	// mark all UI for this frame as processed
	gs.clearInput()
}

func (gs *guiState) setActive(id int) {
	gs.active = id
	gs.wentActive = true
}

func (gs *guiState) setHot(id int) {
	gs.hotToBe = id
}

func (gs *guiState) buttonLogic(id int, over bool) bool {
	res := false
	// process down
	if !gs.anyActive() {
		if over {
			gs.setHot(id)
		}
		if gs.IsHot(id) && gs.leftPressed {
			gs.setActive(id)
		}
	}

	// if button is active, then react on left up
	if gs.IsActive(id) {
		gs.isActive = true
		if over {
			gs.setHot(id)
		}
		if gs.leftReleased {
			if gs.IsHot(id) {
				res = true
			}
			gs.clearActive()
		}
	}

	if gs.IsHot(id) {
		gs.isHot = true
	}

	return res
}

// frameInput is the per-frame snapshot of the pointer and keyboard state the
// platform layer feeds into beginFrame.
type frameInput struct {
	mx, my    float32
	left      bool
	scroll    int
	chars     []rune
	backspace bool
	enter     bool
}

func (gs *guiState) updateInput(in frameInput) {
	gs.mx = in.mx
	gs.my = in.my
	gs.leftPressed = !gs.left && in.left
	gs.leftReleased = gs.left && !in.left
	gs.left = in.left
	gs.scroll = in.scroll
	gs.chars = in.chars
	gs.backspace = in.backspace
	gs.enter = in.enter
}

func (gs *guiState) beginFrame(in frameInput) {
	gs.updateInput(in)

	gs.hot = gs.hotToBe
	gs.hotToBe = 0

	gs.wentActive = false
	gs.isActive = false
	gs.isHot = false

	gs.widgetX = 0
	gs.widgetY = 0
	gs.widgetW = 0

	gs.areaID = 1
	gs.widgetID = 1
	gs.queue = gs.queue[:0]
}

func (gs *guiState) endFrame() {
	gs.clearInput()
}

func (gs *guiState) getRenderCmds() []*gfxCmd {
	return gs.queue
}

func (gs *guiState) push(cmd *gfxCmd) {
	if len(gs.queue) >= gfxCmdQueueSize {
		return
	}
	gs.queue = append(gs.queue, cmd)
}

func (gs *guiState) addGfxCmdScissor(x, y, w, h int) {
	cmd := &gfxCmd{kind: gfxCmdScissor, flags: 1}
	if x < 0 {
		cmd.flags = 0
	}
	cmd.rect = gfxRect{x: float32(x), y: float32(y), w: float32(w), h: float32(h)}
	gs.push(cmd)
}

func (gs *guiState) addGfxCmdRect(x, y, w, h float32, col color.RGBA) {
	gs.push(&gfxCmd{kind: gfxCmdRect, col: col, rect: gfxRect{x: x, y: y, w: w, h: h}})
}

func (gs *guiState) addGfxCmdRoundedRect(x, y, w, h, r float32, col color.RGBA) {
	gs.push(&gfxCmd{kind: gfxCmdRect, col: col, rect: gfxRect{x: x, y: y, w: w, h: h, r: r}})
}

func (gs *guiState) addGfxCmdLine(x0, y0, x1, y1, width float32, col color.RGBA) {
	gs.push(&gfxCmd{kind: gfxCmdLine, col: col, line: gfxLine{x0: x0, y0: y0, x1: x1, y1: y1, width: width}})
}

func (gs *guiState) addGfxCmdCircle(x, y, radius, width float32, col color.RGBA) {
	gs.push(&gfxCmd{kind: gfxCmdCircle, col: col, circle: gfxCircle{x: x, y: y, radius: radius, width: width}})
}

func (gs *guiState) addGfxCmdCircleFilled(x, y, radius float32, col color.RGBA) {
	gs.push(&gfxCmd{kind: gfxCmdCircleFilled, col: col, circle: gfxCircle{x: x, y: y, radius: radius}})
}

func (gs *guiState) addGfxCmdText(x, y float32, align alignType, text string, col color.RGBA) {
	gs.push(&gfxCmd{kind: gfxCmdText, col: col, text: gfxText{x: x, y: y, align: align, text: text}})
}

// ////////////////////////////////////////////////////////////////////////////

const (
	buttonHeight   = 20
	sliderHeight   = 20
	sliderMarkerW  = 10
	checkSize      = 8
	defaultSpacing = 4
	textHeight     = 8
	areaPadding    = 6
	areaHeader     = 28
	indentSize     = 16
)

func (gs *guiState) imguiIndent() {
	gs.widgetX += indentSize
	gs.widgetW -= indentSize
}

func (gs *guiState) imguiUnindent() {
	gs.widgetX -= indentSize
	gs.widgetW += indentSize
}

func (gs *guiState) imguiSeparator() {
	gs.widgetY += defaultSpacing * 3
}

func (gs *guiState) imguiSeparatorLine() {
	x := gs.widgetX
	y := gs.widgetY + defaultSpacing*2
	w := gs.widgetW
	gs.widgetY += defaultSpacing * 4
	gs.addGfxCmdRect(float32(x), float32(y), float32(w), 1, imguiRGBA(255, 255, 255, 32))
}

func (gs *guiState) imguiLabel(text string) {
	x := gs.widgetX
	y := gs.widgetY
	gs.widgetY += buttonHeight
	gs.addGfxCmdText(float32(x), float32(y+buttonHeight/2-textHeight/2), alignLeft, text, imguiRGBA(255, 255, 255, 255))
}

func (gs *guiState) imguiValue(text string) {
	x := gs.widgetX
	y := gs.widgetY
	w := gs.widgetW
	gs.widgetY += buttonHeight
	gs.addGfxCmdText(float32(x+w-buttonHeight/2), float32(y+buttonHeight/2-textHeight/2), alignRight, text, imguiRGBA(255, 255, 255, 200))
}

func (gs *guiState) imguiButton(text string, enabled bool) bool {
	gs.widgetID++
	id := (gs.areaID << 16) | gs.widgetID

	x := gs.widgetX
	y := gs.widgetY
	w := gs.widgetW
	h := buttonHeight
	gs.widgetY += buttonHeight + defaultSpacing

	over := enabled && gs.inRect(float32(x), float32(y), float32(w), float32(h))
	res := gs.buttonLogic(id, over)

	a := uint8(96)
	if gs.IsActive(id) {
		a = 196
	}
	gs.addGfxCmdRoundedRect(float32(x), float32(y), float32(w), float32(h), float32(h)/2-1, imguiRGBA(128, 128, 128, a))
	c := imguiRGBA(255, 255, 255, 200)
	if !enabled {
		c = imguiRGBA(128, 128, 128, 200)
	} else if gs.IsHot(id) {
		c = imguiRGBA(255, 196, 0, 255)
	}
	gs.addGfxCmdText(float32(x+buttonHeight/2), float32(y+buttonHeight/2-textHeight/2), alignLeft, text, c)

	return res
}

func (gs *guiState) imguiItem(text string, checked, enabled bool) bool {
	gs.widgetID++
	id := (gs.areaID << 16) | gs.widgetID

	x := gs.widgetX
	y := gs.widgetY
	w := gs.widgetW
	h := buttonHeight
	gs.widgetY += buttonHeight + defaultSpacing

	over := enabled && gs.inRect(float32(x), float32(y), float32(w), float32(h))
	res := gs.buttonLogic(id, over)

	if gs.IsHot(id) {
		a := uint8(98)
		if gs.IsActive(id) {
			a = 196
		}
		gs.addGfxCmdRoundedRect(float32(x), float32(y), float32(w), float32(h), 2, imguiRGBA(255, 196, 0, a))
	} else if checked {
		gs.addGfxCmdRoundedRect(float32(x), float32(y), float32(w), float32(h), 2, imguiRGBA(255, 255, 255, 32))
	}

	c := imguiRGBA(255, 255, 255, 200)
	if !enabled {
		c = imguiRGBA(128, 128, 128, 200)
	}
	gs.addGfxCmdText(float32(x+buttonHeight/2), float32(y+buttonHeight/2-textHeight/2), alignLeft, text, c)

	return res
}

func (gs *guiState) imguiCheck(text string, checked, enabled bool) bool {
	gs.widgetID++
	id := (gs.areaID << 16) | gs.widgetID

	x := gs.widgetX
	y := gs.widgetY
	w := gs.widgetW
	h := buttonHeight
	gs.widgetY += buttonHeight + defaultSpacing

	over := enabled && gs.inRect(float32(x), float32(y), float32(w), float32(h))
	res := gs.buttonLogic(id, over)

	cx := x + buttonHeight/2 - checkSize/2
	cy := y + buttonHeight/2 - checkSize/2
	a := uint8(96)
	if gs.IsActive(id) {
		a = 196
	}
	gs.addGfxCmdRoundedRect(float32(cx-3), float32(cy-3), checkSize+6, checkSize+6, 4, imguiRGBA(128, 128, 128, a))
	if checked {
		c := imguiRGBA(255, 255, 255, 200)
		if !enabled {
			c = imguiRGBA(128, 128, 128, 200)
		}
		gs.addGfxCmdRoundedRect(float32(cx), float32(cy), checkSize, checkSize, checkSize/2-1, c)
	}

	c := imguiRGBA(255, 255, 255, 200)
	if !enabled {
		c = imguiRGBA(128, 128, 128, 200)
	} else if gs.IsHot(id) {
		c = imguiRGBA(255, 196, 0, 255)
	}
	gs.addGfxCmdText(float32(x+buttonHeight), float32(y+buttonHeight/2-textHeight/2), alignLeft, text, c)

	return res
}

func (gs *guiState) imguiSlider(text string, val *float32, vmin, vmax, vinc float32, enabled bool) bool {
	gs.widgetID++
	id := (gs.areaID << 16) | gs.widgetID

	x := gs.widgetX
	y := gs.widgetY
	w := gs.widgetW
	h := sliderHeight
	gs.widgetY += sliderHeight + defaultSpacing

	gs.addGfxCmdRoundedRect(float32(x), float32(y), float32(w), float32(h), 4, imguiRGBA(0, 0, 0, 128))

	rangef := float32(w - sliderMarkerW)

	u := common.Clamp((*val-vmin)/(vmax-vmin), 0, 1)
	m := u * rangef

	over := enabled && gs.inRect(float32(x)+m, float32(y), sliderMarkerW, sliderHeight)
	res := gs.buttonLogic(id, over)
	valChanged := false

	if gs.IsActive(id) {
		if gs.wentActive {
			gs.dragX = gs.mx
			gs.dragOrig = u
		}
		if gs.dragX != gs.mx {
			u = common.Clamp(gs.dragOrig+(gs.mx-gs.dragX)/rangef, 0, 1)
			*val = vmin + u*(vmax-vmin)
			*val = common.SnapToIncrement(*val, vinc)
			m = u * rangef
			valChanged = true
		}
	}

	if gs.IsActive(id) {
		gs.addGfxCmdRoundedRect(float32(x)+m, float32(y), sliderMarkerW, sliderHeight, 4, imguiRGBA(255, 255, 255, 255))
	} else {
		c := imguiRGBA(255, 255, 255, 64)
		if gs.IsHot(id) {
			c = imguiRGBA(255, 196, 0, 128)
		}
		gs.addGfxCmdRoundedRect(float32(x)+m, float32(y), sliderMarkerW, sliderHeight, 4, c)
	}

	msg := formatSliderValue(*val, vinc)
	if enabled {
		c := imguiRGBA(255, 255, 255, 200)
		if gs.IsHot(id) {
			c = imguiRGBA(255, 196, 0, 255)
		}
		gs.addGfxCmdText(float32(x+sliderHeight/2), float32(y+sliderHeight/2-textHeight/2), alignLeft, text, c)
		gs.addGfxCmdText(float32(x+w-sliderHeight/2), float32(y+sliderHeight/2-textHeight/2), alignRight, msg, c)
	} else {
		gs.addGfxCmdText(float32(x+sliderHeight/2), float32(y+sliderHeight/2-textHeight/2), alignLeft, text, imguiRGBA(128, 128, 128, 200))
		gs.addGfxCmdText(float32(x+w-sliderHeight/2), float32(y+sliderHeight/2-textHeight/2), alignRight, msg, imguiRGBA(128, 128, 128, 200))
	}

	return res || valChanged
}

func (gs *guiState) imguiBeginScrollArea(name string, x, y, w, h int, scroll *int) bool {
	gs.areaID++
	gs.widgetID = 0

	gs.widgetX = x + areaPadding
	gs.widgetY = y + areaHeader - *scroll
	gs.widgetW = w - areaPadding*4

	gs.areaX = x
	gs.areaY = y
	gs.areaW = w
	gs.areaH = h
	gs.areaScroll = scroll
	gs.areaContentTop = gs.widgetY

	gs.insideCurrentArea = gs.inRect(float32(x), float32(y), float32(w), float32(h), false)

	gs.addGfxCmdRoundedRect(float32(x), float32(y), float32(w), float32(h), 6, imguiRGBA(0, 0, 0, 192))
	if name != "" {
		gs.addGfxCmdText(float32(x+areaHeader/2), float32(y+areaHeader/2-textHeight/2), alignLeft, name, imguiRGBA(255, 255, 255, 128))
	}
	gs.addGfxCmdScissor(x+areaPadding, y+areaHeader, w-areaPadding*2, h-areaHeader-areaPadding)

	return gs.insideCurrentArea
}

func (gs *guiState) imguiEndScrollArea() {
	// Disable scissoring.
	gs.addGfxCmdScissor(-1, -1, -1, -1)

	contentH := gs.widgetY - gs.areaContentTop
	viewH := gs.areaH - areaHeader - areaPadding

	if gs.areaScroll != nil && contentH > viewH {
		maxScroll := contentH - viewH
		if gs.insideCurrentArea && gs.scroll != 0 {
			*gs.areaScroll -= gs.scroll * 20
		}
		*gs.areaScroll = common.Clamp(*gs.areaScroll, 0, maxScroll)

		// Scroll bar.
		barX := gs.areaX + gs.areaW - areaPadding*2
		barY := gs.areaY + areaHeader
		barH := float32(viewH) * float32(viewH) / float32(contentH)
		barOff := float32(viewH-int(barH)) * float32(*gs.areaScroll) / float32(maxScroll)
		gs.addGfxCmdRoundedRect(float32(barX), float32(barY), areaPadding, float32(viewH), areaPadding/2-1, imguiRGBA(0, 0, 0, 196))
		gs.addGfxCmdRoundedRect(float32(barX), float32(barY)+barOff, areaPadding, barH, areaPadding/2-1, imguiRGBA(255, 255, 255, 64))
	} else if gs.areaScroll != nil {
		*gs.areaScroll = 0
	}

	gs.insideCurrentArea = false
	gs.areaScroll = nil
}

func formatSliderValue(val, vinc float32) string {
	digits := 0
	for inc := vinc; inc < 1 && digits < 6; inc *= 10 {
		digits++
	}
	return fmt.Sprintf("%.*f", digits, val)
}
