package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/huewire/internal/config"
	"github.com/muurk/huewire/internal/inspect"
	"github.com/muurk/huewire/internal/logging"
	"github.com/muurk/huewire/internal/protocol"
)

// Encode command flags
var (
	flagOn          bool
	flagOff         bool
	flagBrightness  uint8
	flagMired       uint16
	flagKelvin      uint32
	flagXY          string
	flagTransition  uint16
	flagEffect      string
	flagEffectSpeed uint8
	flagGradient    string
	flagScale       float64
	flagOffset      float64
	flagScene       string
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)

	f := encodeCmd.Flags()
	f.BoolVar(&flagOn, "on", false, "Turn the light on")
	f.BoolVar(&flagOff, "off", false, "Turn the light off")
	f.Uint8Var(&flagBrightness, "brightness", 0, "Brightness (1-254)")
	f.Uint16Var(&flagMired, "mired", 0, "Color temperature in mired")
	f.Uint32Var(&flagKelvin, "kelvin", 0, "Color temperature in Kelvin (converted to mired)")
	f.StringVar(&flagXY, "xy", "", "CIE XY color as \"x,y\" (each 0-1)")
	f.Uint16Var(&flagTransition, "transition", 0, "Transition time in tenths of a second")
	f.StringVar(&flagEffect, "effect", "", "Effect name ("+strings.Join(protocol.EffectNames(), ", ")+")")
	f.Uint8Var(&flagEffectSpeed, "effect-speed", 0, "Effect speed (0-255)")
	f.StringVar(&flagGradient, "gradient", "", "Gradient as \"style:x,y;x,y;...\" (style: linear, scattered, mirrored)")
	f.Float64Var(&flagScale, "scale", 0, "Gradient scale (0-31.875 on 0.125 steps)")
	f.Float64Var(&flagOffset, "offset", 0, "Gradient offset (0-31.875 on 0.125 steps)")
	f.StringVar(&flagScene, "scene", "", "Start from a stored scene preset")
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a light update to its hex payload",
	Long: `Encode a light-update command into the binary payload format.

Each flag sets one optional attribute; unset attributes are omitted from
the payload entirely. With --scene the stored preset provides the base
attributes and any other flags override it.`,
	Example: `  # Turn on at half brightness over one second
  huewire encode --on --brightness 127 --transition 10

  # Warm white by color temperature
  huewire encode --on --kelvin 2700

  # A two-color scattered gradient
  huewire encode --gradient "scattered:0.2,0.3;0.4,0.5" --scale 25.5 --offset 27.625

  # Encode a stored scene, overriding its brightness
  huewire encode --scene relax --brightness 200`,
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	msg := &protocol.Message{}

	if flagScene != "" {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load scenes: %w", err)
		}
		scene := registry.GetScene(flagScene)
		if scene == nil {
			return fmt.Errorf("unknown scene %q (try 'huewire scene list')", flagScene)
		}
		msg, err = scene.Message()
		if err != nil {
			return fmt.Errorf("scene %q: %w", flagScene, err)
		}
		applyDefaultTransition(msg, registry)
	}

	if err := applyEncodeFlags(cmd, msg); err != nil {
		return err
	}

	payload, err := protocol.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}

	logging.Debug("encoded message",
		zap.String("message", msg.String()),
		zap.Int("length", len(payload)),
	)
	fmt.Println(protocol.EncodeHex(payload))
	return nil
}

// applyEncodeFlags overlays explicitly-set flags onto msg.
func applyEncodeFlags(cmd *cobra.Command, msg *protocol.Message) error {
	changed := cmd.Flags().Changed

	if flagOn && flagOff {
		return fmt.Errorf("--on and --off are mutually exclusive")
	}
	if flagOn || flagOff {
		on := flagOn
		msg.On = &on
	}
	if changed("brightness") {
		bri := flagBrightness
		msg.Brightness = &bri
	}
	if changed("mired") && changed("kelvin") {
		return fmt.Errorf("--mired and --kelvin are mutually exclusive")
	}
	if changed("mired") {
		mired := flagMired
		msg.ColorTemperature = &mired
	}
	if changed("kelvin") {
		if flagKelvin == 0 {
			return fmt.Errorf("--kelvin must be positive")
		}
		mired := protocol.MiredFromKelvin(flagKelvin)
		msg.ColorTemperature = &mired
	}
	if changed("xy") {
		xy, err := parseXY(flagXY)
		if err != nil {
			return fmt.Errorf("invalid --xy: %w", err)
		}
		msg.Color = xy
	}
	if changed("transition") {
		tt := flagTransition
		msg.TransitionTime = &tt
	}
	if changed("effect") {
		effect, ok := protocol.EffectByName(flagEffect)
		if !ok {
			return fmt.Errorf("unknown effect %q (known: %s)",
				flagEffect, strings.Join(protocol.EffectNames(), ", "))
		}
		msg.Effect = &effect
	}
	if changed("effect-speed") {
		speed := flagEffectSpeed
		msg.EffectSpeed = &speed
	}
	if changed("gradient") {
		gradient, err := parseGradient(flagGradient)
		if err != nil {
			return fmt.Errorf("invalid --gradient: %w", err)
		}
		msg.Gradient = gradient
		if msg.GradientParams == nil {
			msg.GradientParams = &protocol.GradientParams{}
		}
	}
	if changed("scale") || changed("offset") {
		if msg.Gradient == nil {
			return fmt.Errorf("--scale and --offset require --gradient (or a scene with one)")
		}
		if msg.GradientParams == nil {
			msg.GradientParams = &protocol.GradientParams{}
		}
		if changed("scale") {
			msg.GradientParams.Scale = flagScale
		}
		if changed("offset") {
			msg.GradientParams.Offset = flagOffset
		}
	}
	return nil
}

func applyDefaultTransition(msg *protocol.Message, registry *config.Registry) {
	if msg.TransitionTime != nil || registry.Preferences == nil {
		return
	}
	if def := registry.Preferences.DefaultTransitionTime; def != nil {
		tt := *def
		msg.TransitionTime = &tt
	}
}

// parseXY parses "x,y" with both coordinates in 0-1.
func parseXY(s string) (*protocol.ColorXY, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad x coordinate %q", parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad y coordinate %q", parts[1])
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return nil, fmt.Errorf("coordinates must be in 0-1, got (%g, %g)", x, y)
	}
	return &protocol.ColorXY{X: x, Y: y}, nil
}

// parseGradient parses "style:x,y;x,y;...".
func parseGradient(s string) (*protocol.Gradient, error) {
	styleName, colorList, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("expected \"style:x,y;...\", got %q", s)
	}
	style, found := protocol.GradientStyleByName(strings.TrimSpace(styleName))
	if !found {
		return nil, fmt.Errorf("unknown style %q (known: linear, scattered, mirrored)", styleName)
	}

	gradient := &protocol.Gradient{Style: style}
	if colorList != "" {
		for _, pair := range strings.Split(colorList, ";") {
			xy, err := parseXY(pair)
			if err != nil {
				return nil, err
			}
			gradient.Colors = append(gradient.Colors, *xy)
		}
	}
	if len(gradient.Colors) > protocol.MaxGradientColors {
		return nil, fmt.Errorf("at most %d colors, got %d", protocol.MaxGradientColors, len(gradient.Colors))
	}
	return gradient, nil
}

var decodeCmd = &cobra.Command{
	Use:   "decode HEX",
	Short: "Decode a hex payload into a readable message",
	Example: `  # Decode a captured payload
  huewire decode 40010400020000ccdd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := protocol.DecodeHex(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex payload: %w", err)
		}
		logging.LogPayload("decoding payload", payload)

		msg, err := protocol.Decode(payload)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		fmt.Println(msg)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect HEX",
	Short: "Show an annotated byte-level breakdown of a payload",
	Example: `  # Inspect a gradient payload
  huewire inspect 40010a2002000023c1ab89f7deccdd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := protocol.DecodeHex(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex payload: %w", err)
		}
		rows, err := inspect.Analyze(payload)
		if err != nil {
			return fmt.Errorf("inspect failed: %w", err)
		}
		fmt.Print(inspect.Render(payload, rows))
		return nil
	},
}
