package gui

import (
	"image"

	"github.com/AllenDang/giu"
	"go.uber.org/zap"

	"genomestudio/editor/genome"
)

// Gui ties the immediate-mode widget state, the panel layout and the giu
// render backend together. Update is meant to run once per frame inside a
// giu.Custom widget.
type Gui struct {
	gs     *guiState
	render *imguiRender
	layout *layout

	state       *EditorState
	layoutState *LayoutState
	genome      *genome.Genome
	logger      *zap.Logger

	width, height int
}

func NewGui(g *genome.Genome, ls *LayoutState, logger *zap.Logger) *Gui {
	ui := &Gui{
		gs:          newGuiState(),
		state:       NewEditorState(),
		layoutState: ls,
		genome:      g,
		logger:      logger,
	}
	ui.layout = newLayout(ui)
	ui.render = newImguiRender(ui)
	return ui
}

func (ui *Gui) State() *EditorState { return ui.state }

// Viewport reports the region left to the 3D scene this frame.
func (ui *Gui) Viewport() image.Rectangle { return ui.layout.Viewport() }

// PointerOverUI reports whether the pointer was captured by a panel this
// frame, so the scene can ignore the click.
func (ui *Gui) PointerOverUI() bool {
	return ui.layout.mouseOverMenu || ui.gs.anyActive()
}

func (ui *Gui) Update() {
	w, h := giu.GetAvailableRegion()
	ui.width = int(w)
	ui.height = int(h)

	if giu.IsKeyPressed(giu.KeyTab) {
		ui.layoutState.AllHidden = !ui.layoutState.AllHidden
	}

	ui.layout.Build(ui.readInput())
	ui.render.Build()
}

// Printable input is polled key by key, in fixed order so simultaneous
// presses append deterministically. Unshifted ASCII only, which covers
// numeric entry and mode names.
var charKeys = []struct {
	key giu.Key
	r   rune
}{
	{giu.Key0, '0'}, {giu.Key1, '1'}, {giu.Key2, '2'}, {giu.Key3, '3'},
	{giu.Key4, '4'}, {giu.Key5, '5'}, {giu.Key6, '6'}, {giu.Key7, '7'},
	{giu.Key8, '8'}, {giu.Key9, '9'},
	{giu.KeyA, 'a'}, {giu.KeyB, 'b'}, {giu.KeyC, 'c'}, {giu.KeyD, 'd'},
	{giu.KeyE, 'e'}, {giu.KeyF, 'f'}, {giu.KeyG, 'g'}, {giu.KeyH, 'h'},
	{giu.KeyI, 'i'}, {giu.KeyJ, 'j'}, {giu.KeyK, 'k'}, {giu.KeyL, 'l'},
	{giu.KeyM, 'm'}, {giu.KeyN, 'n'}, {giu.KeyO, 'o'}, {giu.KeyP, 'p'},
	{giu.KeyQ, 'q'}, {giu.KeyR, 'r'}, {giu.KeyS, 's'}, {giu.KeyT, 't'},
	{giu.KeyU, 'u'}, {giu.KeyV, 'v'}, {giu.KeyW, 'w'}, {giu.KeyX, 'x'},
	{giu.KeyY, 'y'}, {giu.KeyZ, 'z'},
	{giu.KeySpace, ' '}, {giu.KeyMinus, '-'}, {giu.KeyPeriod, '.'},
}

func (ui *Gui) readInput() frameInput {
	pos := giu.GetMousePos()
	in := frameInput{
		mx:        float32(pos.X),
		my:        float32(pos.Y),
		left:      giu.IsMouseDown(giu.MouseButtonLeft),
		backspace: giu.IsKeyPressed(giu.KeyBackspace),
		enter:     giu.IsKeyPressed(giu.KeyEnter),
	}
	for _, ck := range charKeys {
		if giu.IsKeyPressed(ck.key) {
			in.chars = append(in.chars, ck.r)
		}
	}
	if giu.IsKeyPressed(giu.KeyPageUp) {
		in.scroll = 1
	}
	if giu.IsKeyPressed(giu.KeyPageDown) {
		in.scroll = -1
	}
	return in
}
