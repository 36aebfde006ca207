// Package layout loads the control layout document.
package layout

import (
	"errors"
	"fmt"
	"os"

	"github.com/frudas24/screenpad/internal/geom"
	"gopkg.in/yaml.v3"
)

// Kind identifies a control type in the layout document.
type Kind string

const (
	// KindButton declares a push button.
	KindButton Kind = "button"
	// KindDpad declares an 8-direction d-pad.
	KindDpad Kind = "dpad"
	// KindJoystick declares an analog joystick.
	KindJoystick Kind = "joystick"
	// KindSlider declares a retractable slider.
	KindSlider Kind = "slider"
)

// Control declares a single control instance. Visual fields (color, label)
// are passed through to the client untouched.
type Control struct {
	ID              string    `yaml:"id" json:"id"`
	Kind            Kind      `yaml:"type" json:"type"`
	Region          geom.Rect `yaml:"rect" json:"rect"`
	Radius          float64   `yaml:"radius,omitempty" json:"radius,omitempty"`
	ThumbSize       float64   `yaml:"thumbSize,omitempty" json:"thumbSize,omitempty"`
	RotateDeg       float64   `yaml:"rotate,omitempty" json:"rotate,omitempty"`
	CenterThreshold float64   `yaml:"centerThreshold,omitempty" json:"centerThreshold,omitempty"`
	Repeat          bool      `yaml:"repeat,omitempty" json:"repeat,omitempty"`
	Axis            string    `yaml:"axis,omitempty" json:"axis,omitempty"`
	Color           string    `yaml:"color,omitempty" json:"color,omitempty"`
	Label           string    `yaml:"label,omitempty" json:"label,omitempty"`
}

// Layout is the full control layout document.
type Layout struct {
	Controls []Control `yaml:"controls" json:"controls"`
}

// Load reads a layout from disk. A missing file returns the default layout.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Layout{}, err
	}
	return Parse(data)
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Save writes a layout document to disk.
func Save(path string, l Layout) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// validate checks kinds, axes, and id uniqueness. Region geometry is
// validated later by control construction.
func (l Layout) validate() error {
	seen := make(map[string]struct{}, len(l.Controls))
	for i, c := range l.Controls {
		switch c.Kind {
		case KindButton, KindDpad, KindJoystick, KindSlider:
		default:
			return fmt.Errorf("layout: control %d: unknown type %q", i, c.Kind)
		}
		switch c.Axis {
		case "", "vertical", "horizontal":
		default:
			return fmt.Errorf("layout: control %d: unknown axis %q", i, c.Axis)
		}
		if c.ID == "" {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("layout: duplicate control id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// Default returns the built-in demo layout: joystick and slider on the left,
// d-pad and button on the right.
func Default() Layout {
	return Layout{Controls: []Control{
		{
			ID:     "left-stick",
			Kind:   KindJoystick,
			Region: geom.Rect{X: 40, Y: 260, W: 200, H: 200},
			Radius: 100,
			Color:  "#4a90d9",
		},
		{
			ID:     "throttle",
			Kind:   KindSlider,
			Region: geom.Rect{X: 280, Y: 260, W: 48, H: 200},
			Axis:   "vertical",
			Color:  "#6dbf59",
		},
		{
			ID:              "pad",
			Kind:            KindDpad,
			Region:          geom.Rect{X: 420, Y: 260, W: 180, H: 180},
			CenterThreshold: 0.4,
			Color:           "#d9804a",
		},
		{
			ID:     "fire",
			Kind:   KindButton,
			Region: geom.Rect{X: 640, Y: 320, W: 90, H: 90},
			Color:  "#d94a5a",
			Label:  "A",
		},
	}}
}
