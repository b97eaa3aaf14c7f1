package config

import (
	"fmt"
	"strings"

	"github.com/muurk/huewire/internal/protocol"
)

// Registry represents the entire user configuration file.
// This stores named scene presets and application preferences.
type Registry struct {
	Version     int               `yaml:"version"`
	Scenes      map[string]*Scene `yaml:"scenes,omitempty"` // Keyed by scene name
	Preferences *Preferences      `yaml:"preferences,omitempty"`
}

// Scene is a human-editable description of a single light update. Every
// field is optional; only set fields end up in the encoded message.
type Scene struct {
	Description    string        `yaml:"description,omitempty"`
	On             *bool         `yaml:"on,omitempty"`
	Brightness     *uint8        `yaml:"brightness,omitempty"`      // 1-254
	Mired          *uint16       `yaml:"mired,omitempty"`           // color temperature in mired
	Kelvin         *uint32       `yaml:"kelvin,omitempty"`          // alternative to mired
	XY             *XYPoint      `yaml:"xy,omitempty"`              // CIE XY, 0-1
	TransitionTime *uint16       `yaml:"transition_time,omitempty"` // tenths of a second
	Effect         string        `yaml:"effect,omitempty"`          // effect name, e.g. "candle"
	EffectSpeed    *uint8        `yaml:"effect_speed,omitempty"`
	Gradient       *GradientSpec `yaml:"gradient,omitempty"`
}

// XYPoint is a CIE XY coordinate pair in the range 0-1.
type XYPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GradientSpec describes a gradient: a style name, up to 15 colors, and
// optional scale/offset mapping parameters.
type GradientSpec struct {
	Style  string    `yaml:"style"` // "linear", "scattered" or "mirrored"
	Colors []XYPoint `yaml:"colors"`
	Scale  float64   `yaml:"scale,omitempty"`  // 0-31.875 on 0.125 steps
	Offset float64   `yaml:"offset,omitempty"` // 0-31.875 on 0.125 steps
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	// DefaultTransitionTime is applied by the CLI when a scene sets no
	// transition of its own. Tenths of a second.
	DefaultTransitionTime *uint16 `yaml:"default_transition_time,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Scenes:      make(map[string]*Scene),
		Preferences: &Preferences{},
	}
}

// Message converts the scene to a protocol message. It validates names and
// unit choices but leaves wire-range validation (brightness, gradient
// params) to protocol.Encode.
func (s *Scene) Message() (*protocol.Message, error) {
	msg := &protocol.Message{
		On:             s.On,
		Brightness:     s.Brightness,
		TransitionTime: s.TransitionTime,
		EffectSpeed:    s.EffectSpeed,
	}

	if s.Mired != nil && s.Kelvin != nil {
		return nil, fmt.Errorf("scene sets both mired and kelvin; use one")
	}
	if s.Mired != nil {
		mired := *s.Mired
		msg.ColorTemperature = &mired
	}
	if s.Kelvin != nil {
		if *s.Kelvin == 0 {
			return nil, fmt.Errorf("kelvin must be positive")
		}
		mired := protocol.MiredFromKelvin(*s.Kelvin)
		msg.ColorTemperature = &mired
	}

	if s.XY != nil {
		msg.Color = &protocol.ColorXY{X: s.XY.X, Y: s.XY.Y}
	}

	if s.Effect != "" {
		effect, ok := protocol.EffectByName(s.Effect)
		if !ok {
			return nil, fmt.Errorf("unknown effect %q (known: %s)",
				s.Effect, strings.Join(protocol.EffectNames(), ", "))
		}
		msg.Effect = &effect
	}

	if s.Gradient != nil {
		style, ok := protocol.GradientStyleByName(s.Gradient.Style)
		if !ok {
			return nil, fmt.Errorf("unknown gradient style %q (known: linear, scattered, mirrored)", s.Gradient.Style)
		}
		colors := make([]protocol.ColorXY, len(s.Gradient.Colors))
		for i, p := range s.Gradient.Colors {
			colors[i] = protocol.ColorXY{X: p.X, Y: p.Y}
		}
		msg.Gradient = &protocol.Gradient{Style: style, Colors: colors}
		msg.GradientParams = &protocol.GradientParams{
			Scale:  s.Gradient.Scale,
			Offset: s.Gradient.Offset,
		}
	}

	return msg, nil
}

// GetScene retrieves a scene by name. Returns nil if it doesn't exist.
func (r *Registry) GetScene(name string) *Scene {
	return r.Scenes[name]
}

// SetScene adds or replaces a scene.
func (r *Registry) SetScene(name string, scene *Scene) {
	if r.Scenes == nil {
		r.Scenes = make(map[string]*Scene)
	}
	r.Scenes[name] = scene
}

// DeleteScene removes a scene. Returns true if it existed.
func (r *Registry) DeleteScene(name string) bool {
	if _, ok := r.Scenes[name]; !ok {
		return false
	}
	delete(r.Scenes, name)
	return true
}
