package gui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"genomestudio/editor/genome"
)

func newTestGui() *Gui {
	ui := NewGui(genome.NewGenome(), DefaultLayoutState(), zap.NewNop())
	ui.width = 1440
	ui.height = 900
	return ui
}

// click drives the three-frame hover/press/release sequence a button needs.
func click(ui *Gui, x, y float32) {
	ui.layout.Build(frameInput{mx: x, my: y})
	ui.layout.Build(frameInput{mx: x, my: y, left: true})
	ui.layout.Build(frameInput{mx: x, my: y})
}

func TestViewPanelTogglesModes(t *testing.T) {
	ui := newTestGui()
	require.True(t, ui.layoutState.ShowModes)

	// First check in the View panel, top right.
	click(ui, 1220, 48)

	assert.False(t, ui.layoutState.ShowModes)
	assert.Zero(t, ui.Viewport().Min.X)
}

func TestModesListSelection(t *testing.T) {
	ui := newTestGui()

	// Items follow the four action buttons and a separator; each row is
	// 24px starting at y=150.
	click(ui, 30, 150+2*24+10)

	assert.Equal(t, 2, ui.state.SelectedMode)
}

func TestSetInitialMode(t *testing.T) {
	ui := newTestGui()
	ui.state.SelectedMode = 5
	require.Zero(t, ui.genome.InitialMode)

	// Fourth action button in the modes panel.
	click(ui, 30, 110+10)

	assert.Equal(t, 5, ui.genome.InitialMode)

	// Selecting another mode leaves the initial mode alone.
	click(ui, 30, 150+10)
	assert.Equal(t, 0, ui.state.SelectedMode)
	assert.Equal(t, 5, ui.genome.InitialMode)
}

func TestParentSliderClampsToRange(t *testing.T) {
	ui := newTestGui()
	m := &ui.genome.Modes[0]
	require.Equal(t, float32(1.5), m.SplitMass)

	// Split Mass marker in the Parent Settings panel: value 1.5 in 1..3
	// puts it a quarter of the way along the 196px track.
	mx, my := float32(1260), float32(648)
	ui.layout.Build(frameInput{mx: mx, my: my})
	ui.layout.Build(frameInput{mx: mx, my: my, left: true})
	ui.layout.Build(frameInput{mx: 1500, my: my, left: true})
	ui.layout.Build(frameInput{mx: 1500, my: my})

	assert.InDelta(t, 3.0, m.SplitMass, 1e-3)
}

func TestViewportRegions(t *testing.T) {
	ui := newTestGui()

	vp := ui.Viewport()
	assert.Equal(t, image.Rect(250, 80, 1190, 490), vp)

	ui.layoutState.AllHidden = true
	assert.Equal(t, image.Rect(0, 0, 1440, 900), ui.Viewport())
}

func TestCopyIntoFlow(t *testing.T) {
	ui := newTestGui()
	ui.state.SelectedMode = 1
	ui.genome.Modes[1].SplitMass = 7

	// Arm copy from mode 1, then pick mode 3 as the target.
	click(ui, 30, 86+10)
	require.True(t, ui.state.CopyArmed)
	click(ui, 30, 150+3*24+10)

	assert.False(t, ui.state.CopyArmed)
	assert.Equal(t, 3, ui.state.SelectedMode)
	assert.Equal(t, float32(7), ui.genome.Modes[3].SplitMass)
	assert.Equal(t, "M 3", ui.genome.Modes[3].Name)
}
