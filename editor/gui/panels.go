package gui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"genomestudio/editor/genome"
)

// EditorState is the per-session editing state that is not part of the genome
// itself: selection, tool modes and the drag state of both orientation balls.
// Each ball gets its own locked axis and grab distance so dragging one never
// disturbs the other.
type EditorState struct {
	SelectedMode int

	CopyArmed  bool
	CopySource int
	Renaming   bool

	TimeValue float32

	Ball1LockedAxis   int32
	Ball1InitialDist  float32
	Ball2LockedAxis   int32
	Ball2InitialDist  float32

	StatusText string
}

func NewEditorState() *EditorState {
	return &EditorState{
		Ball1LockedAxis: AxisNone,
		Ball2LockedAxis: AxisNone,
	}
}

func (l *layout) selectedMode() *genome.ModeSettings {
	return &l.ui.genome.Modes[l.ui.state.SelectedMode]
}

// sliderInt adapts the float slider to integer-valued settings.
func (l *layout) sliderInt(text string, val *int, vmin, vmax int) bool {
	f := float32(*val)
	if l.ui.gs.imguiSlider(text, &f, float32(vmin), float32(vmax), 1, true) {
		*val = int(f)
		return true
	}
	return false
}

func (l *layout) ShowView() {
	st := l.ui.state
	ls := l.ui.layoutState
	if l.ui.gs.imguiBeginScrollArea("View", l.ui.width-240, 10, 230, 280, &l.viewScroll) {
		l.mouseOverMenu = true
	}

	if l.ui.gs.imguiCheck("Modes", ls.ShowModes, true) {
		ls.ShowModes = !ls.ShowModes
	}
	if l.ui.gs.imguiCheck("Cell", ls.ShowNameType, true) {
		ls.ShowNameType = !ls.ShowNameType
	}
	if l.ui.gs.imguiCheck("Parent Settings", ls.ShowParent, true) {
		ls.ShowParent = !ls.ShowParent
	}
	if l.ui.gs.imguiCheck("Adhesion", ls.ShowAdhesion, true) {
		ls.ShowAdhesion = !ls.ShowAdhesion
	}
	if l.ui.gs.imguiCheck("Split Angle", ls.ShowSplitAngle, true) {
		ls.ShowSplitAngle = !ls.ShowSplitAngle
	}
	if l.ui.gs.imguiCheck("Orientation", ls.ShowOrientation, true) {
		ls.ShowOrientation = !ls.ShowOrientation
	}
	if l.ui.gs.imguiCheck("Time Slider", ls.ShowTimeSlider, true) {
		ls.ShowTimeSlider = !ls.ShowTimeSlider
	}

	// Tab brings the panels back.
	if l.ui.gs.imguiButton("Hide All", true) {
		ls.AllHidden = true
	}

	l.ui.gs.imguiSeparatorLine()

	if l.ui.gs.imguiButton("Save Genome", true) {
		path, err := l.ui.genome.SaveDialog()
		switch {
		case errors.Is(err, genome.ErrDialogCanceled):
		case err != nil:
			st.StatusText = "save failed"
			l.ui.logger.Error("save genome", zap.Error(err))
		default:
			st.StatusText = "saved " + path
			l.ui.logger.Info("saved genome", zap.String("path", path))
		}
	}
	if l.ui.gs.imguiButton("Load Genome", true) {
		g, path, err := genome.LoadDialog()
		switch {
		case errors.Is(err, genome.ErrDialogCanceled):
		case err != nil:
			st.StatusText = "load failed"
			l.ui.logger.Error("load genome", zap.Error(err))
		default:
			*l.ui.genome = *g
			if st.SelectedMode >= len(l.ui.genome.Modes) {
				st.SelectedMode = 0
			}
			st.StatusText = "loaded " + path
			l.ui.logger.Info("loaded genome", zap.String("path", path))
		}
	}
	if st.StatusText != "" {
		l.ui.gs.imguiLabel(st.StatusText)
	}

	l.ui.gs.imguiEndScrollArea()
}

func (l *layout) ShowModes() {
	st := l.ui.state
	g := l.ui.genome
	if l.ui.gs.imguiBeginScrollArea("Modes", 10, 10, 230, l.ui.height-20, &l.modeScroll) {
		l.mouseOverMenu = true
	}

	if l.ui.gs.imguiButton("Rename", !st.Renaming) {
		st.Renaming = true
	}
	if st.Renaming {
		gs := l.ui.gs
		text, committed := gs.imguiTextField(float32(gs.widgetX), float32(gs.widgetY),
			float32(gs.widgetW), textFieldH, g.Modes[st.SelectedMode].Name)
		gs.widgetY += int(textFieldH) + defaultSpacing
		if committed {
			if g.RenameMode(st.SelectedMode, text) {
				l.ui.logger.Info("renamed mode",
					zap.Int("mode", st.SelectedMode), zap.String("name", text))
			}
			st.Renaming = false
		}
	}
	if l.ui.gs.imguiButton("Reset Mode", true) {
		g.ResetMode(st.SelectedMode)
		l.ui.logger.Info("reset mode", zap.Int("mode", st.SelectedMode))
	}
	copyLabel := "Copy Into..."
	if st.CopyArmed {
		copyLabel = "Pick Target..."
	}
	if l.ui.gs.imguiButton(copyLabel, !st.CopyArmed) {
		st.CopyArmed = true
		st.CopySource = st.SelectedMode
	}
	if l.ui.gs.imguiButton("Set Initial", g.InitialMode != st.SelectedMode) {
		g.InitialMode = st.SelectedMode
		l.ui.logger.Info("initial mode changed", zap.Int("mode", g.InitialMode))
	}

	l.ui.gs.imguiSeparatorLine()

	for i := range g.Modes {
		name := g.Modes[i].Name
		if i == g.InitialMode {
			name += " (initial)"
		}
		if l.ui.gs.imguiItem(name, i == st.SelectedMode, true) {
			if st.CopyArmed {
				if g.CopyInto(st.CopySource, i) {
					l.ui.logger.Info("copied mode",
						zap.Int("source", st.CopySource), zap.Int("target", i))
				}
				st.CopyArmed = false
			}
			st.SelectedMode = i
			st.Renaming = false
		}
	}

	l.ui.gs.imguiEndScrollArea()
}

func (l *layout) ShowCell() {
	g := l.ui.genome
	m := l.selectedMode()
	if l.ui.gs.imguiBeginScrollArea("Cell", l.ui.width-240, 300, 230, 300, &l.cellScroll) {
		l.mouseOverMenu = true
	}

	gs := l.ui.gs
	gs.imguiLabel("Genome Name")
	text, committed := gs.imguiTextField(float32(gs.widgetX), float32(gs.widgetY),
		float32(gs.widgetW), textFieldH, g.Name)
	gs.widgetY += int(textFieldH) + defaultSpacing
	if committed && text != "" {
		g.Name = text
	}

	l.ui.gs.imguiSeparatorLine()
	l.ui.gs.imguiLabel("Cell Type")
	for i, name := range genome.CellTypeNames() {
		if l.ui.gs.imguiItem(name, m.CellType == genome.CellType(i), true) {
			m.CellType = genome.CellType(i)
		}
	}

	l.ui.gs.imguiSeparator()
	l.ui.gs.imguiSlider("Opacity", &m.Opacity, 0, 1, 0.05, true)
	if m.CellType == genome.CellFlagellocyte {
		l.ui.gs.imguiSlider("Swim Force", &m.SwimForce, 0, 2, 0.05, true)
	}

	l.ui.gs.imguiSeparatorLine()
	l.ui.gs.imguiLabel("Color")
	l.ui.gs.imguiSlider("R", &m.Color[0], 0, 1, 0.01, true)
	l.ui.gs.imguiSlider("G", &m.Color[1], 0, 1, 0.01, true)
	l.ui.gs.imguiSlider("B", &m.Color[2], 0, 1, 0.01, true)

	l.ui.gs.imguiEndScrollArea()
}

func (l *layout) ShowParentSettings() {
	m := l.selectedMode()
	if l.ui.gs.imguiBeginScrollArea("Parent Settings", l.ui.width-240, 610, 230, l.ui.height-620, &l.parentScroll) {
		l.mouseOverMenu = true
	}

	l.ui.gs.imguiSlider("Split Mass", &m.SplitMass, 1, 3, 0.1, true)
	l.ui.gs.imguiSlider("Split Interval", &m.SplitInterval, 1, 60, 0.5, true)
	l.ui.gs.imguiSlider("Nutrient Gain", &m.NutrientGainRate, 0, 2, 0.05, true)
	l.ui.gs.imguiSlider("Max Cell Size", &m.MaxCellSize, 0.5, 5, 0.1, true)
	l.ui.gs.imguiSlider("Split Ratio", &m.SplitRatio, 0, 1, 0.05, true)
	l.ui.gs.imguiSlider("Nutrient Priority", &m.NutrientPriority, 0.1, 10, 0.1, true)
	if l.ui.gs.imguiCheck("Prioritize When Low", m.PrioritizeWhenLow, true) {
		m.PrioritizeWhenLow = !m.PrioritizeWhenLow
	}

	l.ui.gs.imguiSeparatorLine()
	if l.ui.gs.imguiCheck("Make Adhesion", m.ParentMakeAdhesion, true) {
		m.ParentMakeAdhesion = !m.ParentMakeAdhesion
	}
	l.sliderInt("Max Adhesions", &m.MaxAdhesions, 0, 20)
	l.sliderInt("Min Adhesions", &m.MinAdhesions, 0, 20)

	l.ui.gs.imguiSeparatorLine()
	l.sliderInt("Max Splits", &m.MaxSplits, -1, 20)
	if m.MaxSplits >= 0 {
		l.sliderInt("Mode A After", &m.ModeAAfterSplits, -1, genome.ModeCount-1)
		l.sliderInt("Mode B After", &m.ModeBAfterSplits, -1, genome.ModeCount-1)
	}

	l.ui.gs.imguiEndScrollArea()
}

func (l *layout) ShowAdhesion() {
	a := &l.selectedMode().AdhesionSettings
	if l.ui.gs.imguiBeginScrollArea("Adhesion", 250, 10, 260, l.ui.height-20, &l.adhesionScroll) {
		l.mouseOverMenu = true
	}

	if l.ui.gs.imguiCheck("Can Break", a.CanBreak, true) {
		a.CanBreak = !a.CanBreak
	}
	l.ui.gs.imguiSlider("Break Force", &a.BreakForce, 0.1, 100, 0.1, a.CanBreak)
	l.ui.gs.imguiSlider("Rest Length", &a.RestLength, 0.5, 5, 0.05, true)

	l.ui.gs.imguiSeparatorLine()
	l.ui.gs.imguiSlider("Linear Stiffness", &a.LinearSpringStiffness, 0.1, 500, 1, true)
	l.ui.gs.imguiSlider("Linear Damping", &a.LinearSpringDamping, 0, 10, 0.1, true)
	l.ui.gs.imguiSlider("Orient Stiffness", &a.OrientationSpringStiffness, 0.1, 100, 0.1, true)
	l.ui.gs.imguiSlider("Orient Damping", &a.OrientationSpringDamping, 0, 10, 0.1, true)
	l.ui.gs.imguiSlider("Max Deviation", &a.MaxAngularDeviation, 0, 180, 1, true)

	l.ui.gs.imguiSeparatorLine()
	if l.ui.gs.imguiCheck("Twist Constraint", a.EnableTwistConstraint, true) {
		a.EnableTwistConstraint = !a.EnableTwistConstraint
	}
	l.ui.gs.imguiSlider("Twist Stiffness", &a.TwistConstraintStiffness, 0, 2, 0.05, a.EnableTwistConstraint)
	l.ui.gs.imguiSlider("Twist Damping", &a.TwistConstraintDamping, 0, 10, 0.1, a.EnableTwistConstraint)

	l.ui.gs.imguiEndScrollArea()
}

func (l *layout) ShowSplitAngle() {
	m := l.selectedMode()
	if l.ui.gs.imguiBeginScrollArea("Split Angle", 520, l.ui.height-400, 180, 390, &l.splitScroll) {
		l.mouseOverMenu = true
	}

	if l.ui.gs.imguiCheck("Snap", m.EnableParentAngleSnapping, true) {
		m.EnableParentAngleSnapping = !m.EnableParentAngleSnapping
	}
	l.ui.gs.imguiLabel("Pitch")
	l.ui.gs.imguiCircularSlider(&m.ParentSplitDirection[0], -180, 180, 55, m.EnableParentAngleSnapping)
	l.ui.gs.imguiLabel("Yaw")
	l.ui.gs.imguiCircularSlider(&m.ParentSplitDirection[1], -180, 180, 55, m.EnableParentAngleSnapping)

	l.ui.gs.imguiEndScrollArea()
}

func (l *layout) showChild(title string, x int, child *genome.ChildSettings,
	lockedAxis *int32, initialDist *float32, scroll *int) {

	if l.ui.gs.imguiBeginScrollArea(title, x, l.ui.height-400, 250, 390, scroll) {
		l.mouseOverMenu = true
	}

	l.ui.gs.imguiOrientationBall(&child.Orientation,
		&child.XAxisLat, &child.XAxisLon,
		&child.YAxisLat, &child.YAxisLon,
		&child.ZAxisLat, &child.ZAxisLon,
		70, child.EnableAngleSnapping, lockedAxis, initialDist)

	l.ui.gs.imguiLabel(fmt.Sprintf("X % 6.1f / % 6.1f", child.XAxisLat, child.XAxisLon))
	l.ui.gs.imguiLabel(fmt.Sprintf("Y % 6.1f / % 6.1f", child.YAxisLat, child.YAxisLon))
	l.ui.gs.imguiLabel(fmt.Sprintf("Z % 6.1f / % 6.1f", child.ZAxisLat, child.ZAxisLon))

	if l.ui.gs.imguiCheck("Snap", child.EnableAngleSnapping, true) {
		child.EnableAngleSnapping = !child.EnableAngleSnapping
	}
	if l.ui.gs.imguiCheck("Keep Adhesion", child.KeepAdhesion, true) {
		child.KeepAdhesion = !child.KeepAdhesion
	}
	l.sliderInt("Child Mode", &child.ModeNumber, 0, genome.ModeCount-1)

	l.ui.gs.imguiEndScrollArea()
}

func (l *layout) ShowOrientation() {
	st := l.ui.state
	m := l.selectedMode()
	l.showChild("Child A", 710, &m.ChildA, &st.Ball1LockedAxis, &st.Ball1InitialDist, &l.childAScroll)
	l.showChild("Child B", 970, &m.ChildB, &st.Ball2LockedAxis, &st.Ball2InitialDist, &l.childBScroll)
}

func (l *layout) ShowTimeSlider() {
	if l.ui.gs.imguiBeginScrollArea("", 520, 10, l.ui.width-780, 60, &l.timeScroll) {
		l.mouseOverMenu = true
	}
	l.ui.gs.imguiSlider("Time", &l.ui.state.TimeValue, 0, 100, 0.5, true)
	l.ui.gs.imguiEndScrollArea()
}
