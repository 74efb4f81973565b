package gui

import (
	"image"
)

// layout owns panel placement and per-panel scroll state.
type layout struct {
	ui *Gui

	viewScroll     int
	modeScroll     int
	cellScroll     int
	parentScroll   int
	adhesionScroll int
	splitScroll    int
	childAScroll   int
	childBScroll   int
	timeScroll     int

	mouseOverMenu bool
}

func newLayout(ui *Gui) *layout {
	return &layout{ui: ui}
}

func (l *layout) Build(in frameInput) {
	l.mouseOverMenu = false
	l.ui.gs.beginFrame(in)

	ls := l.ui.layoutState
	if !ls.AllHidden {
		if ls.ShowModes {
			l.ShowModes()
		}
		if ls.ShowNameType {
			l.ShowCell()
		}
		if ls.ShowParent {
			l.ShowParentSettings()
		}
		if ls.ShowAdhesion {
			l.ShowAdhesion()
		}
		if ls.ShowSplitAngle {
			l.ShowSplitAngle()
		}
		if ls.ShowOrientation {
			l.ShowOrientation()
		}
		if ls.ShowTimeSlider {
			l.ShowTimeSlider()
		}
		l.ShowView()
	}

	l.ui.gs.endFrame()
}

// Viewport is the screen region left free for the 3D scene. With every panel
// hidden the whole window belongs to the scene.
func (l *layout) Viewport() image.Rectangle {
	ls := l.ui.layoutState
	if ls.AllHidden {
		return image.Rect(0, 0, l.ui.width, l.ui.height)
	}
	x0, y0 := 0, 0
	if ls.ShowModes {
		x0 = 250
	}
	if ls.ShowAdhesion {
		x0 = 520
	}
	if ls.ShowTimeSlider {
		y0 = 80
	}
	// The right column is always occupied by the View panel.
	x1 := l.ui.width - 250
	y1 := l.ui.height
	if ls.ShowSplitAngle || ls.ShowOrientation {
		y1 = l.ui.height - 410
	}
	return image.Rect(x0, y0, x1, y1)
}
