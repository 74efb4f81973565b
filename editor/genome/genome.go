package genome

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

const ModeCount = 120

// AdhesionSettings configures the spring joint created between a parent cell
// and its children when adhesion is enabled.
type AdhesionSettings struct {
	CanBreak                   bool    `json:"can_break"`
	BreakForce                 float32 `json:"break_force"`
	RestLength                 float32 `json:"rest_length"`
	LinearSpringStiffness      float32 `json:"linear_spring_stiffness"`
	LinearSpringDamping        float32 `json:"linear_spring_damping"`
	OrientationSpringStiffness float32 `json:"orientation_spring_stiffness"`
	OrientationSpringDamping   float32 `json:"orientation_spring_damping"`
	MaxAngularDeviation        float32 `json:"max_angular_deviation"`
	TwistConstraintStiffness   float32 `json:"twist_constraint_stiffness"`
	TwistConstraintDamping     float32 `json:"twist_constraint_damping"`
	EnableTwistConstraint      bool    `json:"enable_twist_constraint"`
}

func DefaultAdhesionSettings() AdhesionSettings {
	return AdhesionSettings{
		CanBreak:                   true,
		BreakForce:                 10.0,
		RestLength:                 1.0,
		LinearSpringStiffness:      150.0,
		LinearSpringDamping:        5.0,
		OrientationSpringStiffness: 50.0,
		OrientationSpringDamping:   5.0,
		MaxAngularDeviation:        0.0,
		TwistConstraintStiffness:   2.0,
		TwistConstraintDamping:     0.5,
		EnableTwistConstraint:      false,
	}
}

// ChildSettings describes one of the two children produced by a split: which
// mode it lands in and how it is oriented relative to the parent. The lat/lon
// fields are display-only feedback kept for the orientation ball widget.
type ChildSettings struct {
	ModeNumber          int        `json:"mode_number"`
	Orientation         mgl32.Quat `json:"orientation"`
	KeepAdhesion        bool       `json:"keep_adhesion"`
	EnableAngleSnapping bool       `json:"enable_angle_snapping"`

	XAxisLat float32 `json:"x_axis_lat,omitempty"`
	XAxisLon float32 `json:"x_axis_lon,omitempty"`
	YAxisLat float32 `json:"y_axis_lat,omitempty"`
	YAxisLon float32 `json:"y_axis_lon,omitempty"`
	ZAxisLat float32 `json:"z_axis_lat,omitempty"`
	ZAxisLon float32 `json:"z_axis_lon,omitempty"`
}

func DefaultChildSettings() ChildSettings {
	return ChildSettings{
		ModeNumber:          0,
		Orientation:         mgl32.QuatIdent(),
		KeepAdhesion:        true,
		EnableAngleSnapping: true,
	}
}

// CellType enumerates the specialisations a mode can assign to a cell.
type CellType int

const (
	CellPhotocyte CellType = iota
	CellPhagocyte
	CellFlagellocyte
	CellDevorocyte
	CellLipocyte
)

var cellTypeNames = [...]string{"Photocyte", "Phagocyte", "Flagellocyte", "Devorocyte", "Lipocyte"}

func (c CellType) String() string {
	if c < 0 || int(c) >= len(cellTypeNames) {
		return fmt.Sprintf("CellType(%d)", int(c))
	}
	return cellTypeNames[c]
}

func CellTypeNames() []string {
	return cellTypeNames[:]
}

// ModeSettings is a single mode within a genome: every parameter that governs
// a cell while it is in this mode, plus the child settings applied on split.
type ModeSettings struct {
	Name        string     `json:"name"`
	DefaultName string     `json:"default_name"`
	Color       mgl32.Vec3 `json:"color"`
	Opacity     float32    `json:"opacity"`
	Emissive    float32    `json:"emissive,omitempty"`

	CellType CellType `json:"cell_type"`

	ParentMakeAdhesion        bool       `json:"parent_make_adhesion"`
	SplitMass                 float32    `json:"split_mass"`
	SplitInterval             float32    `json:"split_interval"`
	NutrientGainRate          float32    `json:"nutrient_gain_rate"`
	MaxCellSize               float32    `json:"max_cell_size"`
	SplitRatio                float32    `json:"split_ratio"`
	NutrientPriority          float32    `json:"nutrient_priority"`
	PrioritizeWhenLow         bool       `json:"prioritize_when_low"`
	ParentSplitDirection      mgl32.Vec2 `json:"parent_split_direction"`
	MaxAdhesions              int        `json:"max_adhesions"`
	MinAdhesions              int        `json:"min_adhesions"`
	EnableParentAngleSnapping bool       `json:"enable_parent_angle_snapping"`
	MaxSplits                 int        `json:"max_splits"`
	ModeAAfterSplits          int        `json:"mode_a_after_splits"`
	ModeBAfterSplits          int        `json:"mode_b_after_splits"`

	SwimForce float32 `json:"swim_force"`

	ChildA ChildSettings `json:"child_a"`
	ChildB ChildSettings `json:"child_b"`

	AdhesionSettings AdhesionSettings `json:"adhesion_settings"`
}

func DefaultModeSettings() ModeSettings {
	return ModeSettings{
		Name:                      "Untitled Mode",
		DefaultName:               "Untitled Mode",
		Color:                     mgl32.Vec3{1, 1, 1},
		Opacity:                   1.0,
		CellType:                  CellPhotocyte,
		SplitMass:                 1.5,
		SplitInterval:             5.0,
		NutrientGainRate:          0.2,
		MaxCellSize:               2.0,
		SplitRatio:                0.5,
		NutrientPriority:          1.0,
		PrioritizeWhenLow:         true,
		MaxAdhesions:              20,
		MinAdhesions:              0,
		EnableParentAngleSnapping: true,
		MaxSplits:                 -1,
		ModeAAfterSplits:          -1,
		ModeBAfterSplits:          -1,
		SwimForce:                 0.5,
		ChildA:                    DefaultChildSettings(),
		ChildB:                    DefaultChildSettings(),
		AdhesionSettings:          DefaultAdhesionSettings(),
	}
}

// NewSelfSplittingMode creates a mode whose children both stay in the mode
// itself.
func NewSelfSplittingMode(modeIndex int, name string) ModeSettings {
	m := DefaultModeSettings()
	m.Name = name
	m.DefaultName = name
	m.ChildA.ModeNumber = modeIndex
	m.ChildB.ModeNumber = modeIndex
	return m
}

// Genome is a complete genome definition.
type Genome struct {
	Name               string         `json:"name"`
	InitialMode        int            `json:"initial_mode"`
	InitialOrientation mgl32.Quat     `json:"initial_orientation"`
	Modes              []ModeSettings `json:"modes"`
}

// NewGenome builds the default genome: ModeCount self-splitting modes with
// colors spread around the hue wheel.
func NewGenome() *Genome {
	g := &Genome{
		Name:               "Untitled Genome",
		InitialMode:        0,
		InitialOrientation: mgl32.QuatIdent(),
	}
	for i := 0; i < ModeCount; i++ {
		m := NewSelfSplittingMode(i, fmt.Sprintf("M %d", i))
		hue := float64(i) / ModeCount * 360.0
		r, g8, b := hueToRGB(hue)
		m.Color = mgl32.Vec3{float32(r) / 255.0, float32(g8) / 255.0, float32(b) / 255.0}
		g.Modes = append(g.Modes, m)
	}
	return g
}

// hueToRGB maps an HSV hue to RGB, rescaled into 100-255 so every mode color
// stays visible against the dark theme.
func hueToRGB(hue float64) (uint8, uint8, uint8) {
	h := hue / 60.0
	c := 1.0
	x := 1.0 - math.Abs(math.Mod(h, 2)-1)

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	scale := func(v float64) uint8 { return uint8(v*155.0 + 100.0) }
	return scale(r), scale(g), scale(b)
}

// CopyInto copies every setting of the source mode into the target, keeping
// the target's name. Out-of-range indices are ignored.
func (g *Genome) CopyInto(source, target int) bool {
	if source == target || source < 0 || target < 0 ||
		source >= len(g.Modes) || target >= len(g.Modes) {
		return false
	}
	name := g.Modes[target].Name
	g.Modes[target] = g.Modes[source]
	g.Modes[target].Name = name
	return true
}

// ResetMode restores a mode to its defaults, keeping its name and color and
// re-targeting both children at the mode itself.
func (g *Genome) ResetMode(idx int) bool {
	if idx < 0 || idx >= len(g.Modes) {
		return false
	}
	name, color := g.Modes[idx].Name, g.Modes[idx].Color
	g.Modes[idx] = DefaultModeSettings()
	g.Modes[idx].Name = name
	g.Modes[idx].Color = color
	g.Modes[idx].ChildA.ModeNumber = idx
	g.Modes[idx].ChildB.ModeNumber = idx
	return true
}

// RenameMode sets a mode's name after trimming; empty names are rejected.
func (g *Genome) RenameMode(idx int, name string) bool {
	if idx < 0 || idx >= len(g.Modes) {
		return false
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	g.Modes[idx].Name = trimmed
	return true
}

// SaveToFile writes the genome as indented JSON.
func (g *Genome) SaveToFile(path string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal genome: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write genome %q: %w", path, err)
	}
	return nil
}

// LoadFromFile reads a genome saved by SaveToFile.
func LoadFromFile(path string) (*Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read genome %q: %w", path, err)
	}
	var g Genome
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse genome %q: %w", path, err)
	}
	return &g, nil
}
