package gui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LayoutState records which panels are open. It is loaded at startup and
// auto-saved on a timer so the layout survives restarts.
type LayoutState struct {
	ShowModes       bool `yaml:"show_modes"`
	ShowNameType    bool `yaml:"show_name_type"`
	ShowParent      bool `yaml:"show_parent"`
	ShowAdhesion    bool `yaml:"show_adhesion"`
	ShowSplitAngle  bool `yaml:"show_split_angle"`
	ShowOrientation bool `yaml:"show_orientation"`
	ShowTimeSlider  bool `yaml:"show_time_slider"`
	AllHidden       bool `yaml:"all_hidden"`
}

func DefaultLayoutState() *LayoutState {
	return &LayoutState{
		ShowModes:       true,
		ShowNameType:    true,
		ShowParent:      true,
		ShowAdhesion:    false,
		ShowSplitAngle:  true,
		ShowOrientation: true,
		ShowTimeSlider:  true,
	}
}

// LoadLayoutState reads a saved layout, falling back to the default one when
// the file does not exist yet.
func LoadLayoutState(path string) (*LayoutState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultLayoutState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read layout %q: %w", path, err)
	}
	s := DefaultLayoutState()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse layout %q: %w", path, err)
	}
	return s, nil
}

func (s *LayoutState) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write layout %q: %w", path, err)
	}
	return nil
}

// LayoutSaver persists the layout state at a fixed interval.
type LayoutSaver struct {
	Path     string
	Interval time.Duration
	last     time.Time
}

func NewLayoutSaver(path string) *LayoutSaver {
	return &LayoutSaver{Path: path, Interval: 2 * time.Second, last: time.Now()}
}

// Tick saves the state when the interval has elapsed. Called once per frame.
func (ls *LayoutSaver) Tick(s *LayoutState) error {
	if time.Since(ls.last) < ls.Interval {
		return nil
	}
	ls.last = time.Now()
	return s.Save(ls.Path)
}
