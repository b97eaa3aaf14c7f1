package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/huewire/internal/config"
	"github.com/muurk/huewire/internal/protocol"
)

var sceneDescription string

func init() {
	rootCmd.AddCommand(sceneCmd)
	sceneCmd.AddCommand(sceneListCmd)
	sceneCmd.AddCommand(sceneShowCmd)
	sceneCmd.AddCommand(sceneSetCmd)
	sceneCmd.AddCommand(sceneDeleteCmd)

	sceneSetCmd.Flags().StringVar(&sceneDescription, "description", "", "Scene description")
}

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "Manage stored scene presets",
	Long: `Manage the scene preset registry.

Scenes are named light updates stored in a YAML file in the user config
directory. Encode one with 'huewire encode --scene NAME'.`,
}

var sceneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load scenes: %w", err)
		}

		names := registry.SceneNames()
		if len(names) == 0 {
			fmt.Println("No scenes stored.")
			fmt.Println("\nAdd one with 'huewire scene set NAME --from-hex PAYLOAD'")
			return nil
		}

		for _, name := range names {
			scene := registry.GetScene(name)
			if scene.Description != "" {
				fmt.Printf("%-20s %s\n", name, scene.Description)
			} else {
				fmt.Println(name)
			}
		}
		return nil
	},
}

var sceneShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a scene and its encoded payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load scenes: %w", err)
		}
		scene := registry.GetScene(args[0])
		if scene == nil {
			return fmt.Errorf("unknown scene %q", args[0])
		}

		data, err := yaml.Marshal(scene)
		if err != nil {
			return fmt.Errorf("failed to render scene: %w", err)
		}
		fmt.Print(string(data))

		msg, err := scene.Message()
		if err != nil {
			return fmt.Errorf("scene does not encode: %w", err)
		}
		payload, err := protocol.Encode(msg)
		if err != nil {
			return fmt.Errorf("scene does not encode: %w", err)
		}
		fmt.Printf("payload: %s\n", protocol.EncodeHex(payload))
		return nil
	},
}

var sceneSetCmd = &cobra.Command{
	Use:   "set NAME HEX",
	Short: "Store a scene from an encoded payload",
	Long: `Store (or replace) a scene preset from an encoded hex payload.

The payload is decoded and saved in readable YAML form, so stored scenes
can be reviewed and edited by hand afterwards.`,
	Example: `  # Store a captured payload as a scene
  huewire scene set relax 070001788001 --description "warm evening"

  # Typical flow: encode first, then store the result
  huewire scene set night $(huewire encode --on --brightness 1)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		payload, err := protocol.DecodeHex(args[1])
		if err != nil {
			return fmt.Errorf("invalid hex payload: %w", err)
		}
		msg, err := protocol.Decode(payload)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}

		scene, err := sceneFromMessage(msg)
		if err != nil {
			return err
		}
		scene.Description = sceneDescription

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load scenes: %w", err)
		}
		registry.SetScene(name, scene)
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save scenes: %w", err)
		}

		fmt.Printf("Stored scene %q (%s)\n", name, msg)
		return nil
	},
}

var sceneDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load scenes: %w", err)
		}
		if !registry.DeleteScene(args[0]) {
			return fmt.Errorf("unknown scene %q", args[0])
		}
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save scenes: %w", err)
		}
		fmt.Printf("Deleted scene %q\n", args[0])
		return nil
	},
}

// sceneFromMessage converts a decoded message back to its editable scene
// form. Effects outside the known set have no name to store, so they are
// rejected rather than silently dropped.
func sceneFromMessage(msg *protocol.Message) (*config.Scene, error) {
	scene := &config.Scene{
		On:             msg.On,
		Brightness:     msg.Brightness,
		Mired:          msg.ColorTemperature,
		TransitionTime: msg.TransitionTime,
		EffectSpeed:    msg.EffectSpeed,
	}

	if msg.Color != nil {
		scene.XY = &config.XYPoint{X: msg.Color.X, Y: msg.Color.Y}
	}
	if msg.Effect != nil {
		name := msg.Effect.String()
		if _, ok := protocol.EffectByName(name); !ok {
			return nil, fmt.Errorf("payload uses unknown effect code %s; cannot store as a scene", name)
		}
		scene.Effect = name
	}
	if msg.Gradient == nil && msg.GradientParams != nil {
		return nil, fmt.Errorf("payload carries gradient params without gradient colors; cannot store as a scene")
	}
	if msg.Gradient != nil {
		spec := &config.GradientSpec{Style: msg.Gradient.Style.String()}
		if _, ok := protocol.GradientStyleByName(spec.Style); !ok {
			return nil, fmt.Errorf("payload uses unknown gradient style %s; cannot store as a scene", spec.Style)
		}
		for _, c := range msg.Gradient.Colors {
			spec.Colors = append(spec.Colors, config.XYPoint{X: c.X, Y: c.Y})
		}
		if msg.GradientParams != nil {
			spec.Scale = msg.GradientParams.Scale
			spec.Offset = msg.GradientParams.Offset
		}
		scene.Gradient = spec
	}
	return scene, nil
}
