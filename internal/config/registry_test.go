package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/muurk/huewire/internal/protocol"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "huewire") {
		t.Errorf("GetConfigDir() = %v, should contain 'huewire'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "scenes.yaml" {
		t.Errorf("GetConfigPath() should end with 'scenes.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Scenes == nil {
		t.Error("NewRegistry().Scenes should not be nil")
	}
	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}
}

func TestRegistrySceneAccess(t *testing.T) {
	reg := NewRegistry()

	if got := reg.GetScene("missing"); got != nil {
		t.Errorf("GetScene on empty registry = %v, want nil", got)
	}

	on := true
	reg.SetScene("night", &Scene{On: &on})
	reg.SetScene("day", &Scene{})

	if reg.GetScene("night") == nil {
		t.Error("GetScene should find a stored scene")
	}

	names := reg.SceneNames()
	if len(names) != 2 || names[0] != "day" || names[1] != "night" {
		t.Errorf("SceneNames() = %v, want [day night]", names)
	}

	if !reg.DeleteScene("day") {
		t.Error("DeleteScene should report true for an existing scene")
	}
	if reg.DeleteScene("day") {
		t.Error("DeleteScene should report false for a missing scene")
	}
}

func TestSceneMessage(t *testing.T) {
	bri := uint8(120)
	tt10 := uint16(10)
	kelvin := uint32(2700)

	tests := []struct {
		name    string
		scene   Scene
		wantErr string
		verify  func(t *testing.T, msg *protocol.Message)
	}{
		{
			name:  "empty scene",
			scene: Scene{},
			verify: func(t *testing.T, msg *protocol.Message) {
				if msg.Flags() != 0 {
					t.Errorf("empty scene flags = %04x, want 0", msg.Flags())
				}
			},
		},
		{
			name:  "kelvin converts to mired",
			scene: Scene{Brightness: &bri, Kelvin: &kelvin, TransitionTime: &tt10},
			verify: func(t *testing.T, msg *protocol.Message) {
				if msg.ColorTemperature == nil || *msg.ColorTemperature != 370 {
					t.Errorf("ColorTemperature = %v, want 370", msg.ColorTemperature)
				}
				if msg.Brightness == nil || *msg.Brightness != 120 {
					t.Errorf("Brightness = %v, want 120", msg.Brightness)
				}
			},
		},
		{
			name: "effect by name",
			scene: Scene{
				Effect: "candle",
			},
			verify: func(t *testing.T, msg *protocol.Message) {
				if msg.Effect == nil || *msg.Effect != protocol.EffectCandle {
					t.Errorf("Effect = %v, want candle", msg.Effect)
				}
			},
		},
		{
			name: "gradient with params",
			scene: Scene{
				Gradient: &GradientSpec{
					Style:  "mirrored",
					Colors: []XYPoint{{X: 0.2, Y: 0.3}, {X: 0.4, Y: 0.5}},
					Scale:  12.5,
					Offset: 0.25,
				},
			},
			verify: func(t *testing.T, msg *protocol.Message) {
				if msg.Gradient == nil || msg.Gradient.Style != protocol.GradientMirrored {
					t.Fatalf("Gradient = %+v, want mirrored", msg.Gradient)
				}
				if len(msg.Gradient.Colors) != 2 {
					t.Errorf("gradient colors = %d, want 2", len(msg.Gradient.Colors))
				}
				if msg.GradientParams == nil || msg.GradientParams.Scale != 12.5 {
					t.Errorf("GradientParams = %+v, want scale 12.5", msg.GradientParams)
				}
			},
		},
		{
			name:    "mired and kelvin together",
			scene:   Scene{Mired: &tt10, Kelvin: &kelvin},
			wantErr: "both mired and kelvin",
		},
		{
			name:    "zero kelvin",
			scene:   Scene{Kelvin: new(uint32)},
			wantErr: "kelvin must be positive",
		},
		{
			name:    "unknown effect",
			scene:   Scene{Effect: "disco"},
			wantErr: "unknown effect",
		},
		{
			name:    "unknown gradient style",
			scene:   Scene{Gradient: &GradientSpec{Style: "diagonal"}},
			wantErr: "unknown gradient style",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := tc.scene.Message()
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("Message() error = %v, want containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Message() error = %v", err)
			}
			tc.verify(t, msg)
		})
	}
}

func TestRegistryYAMLRoundTrip(t *testing.T) {
	on := true
	bri := uint8(200)
	reg := NewRegistry()
	reg.SetScene("relax", &Scene{
		Description: "warm evening light",
		On:          &on,
		Brightness:  &bri,
		Gradient: &GradientSpec{
			Style:  "linear",
			Colors: []XYPoint{{X: 0.64, Y: 0.33}},
			Scale:  3.5,
		},
	})

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var got Registry
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	scene := got.GetScene("relax")
	if scene == nil {
		t.Fatal("scene missing after round trip")
	}
	if scene.Description != "warm evening light" {
		t.Errorf("Description = %q", scene.Description)
	}
	if scene.On == nil || !*scene.On {
		t.Error("On should survive round trip")
	}
	if scene.Gradient == nil || scene.Gradient.Scale != 3.5 {
		t.Errorf("Gradient = %+v", scene.Gradient)
	}
}
