// Package config manages the user's scene preset registry.
//
// Scenes are named, human-editable descriptions of a light update stored in
// a YAML file in the OS-appropriate configuration directory. The CLI encodes
// them into wire payloads via Scene.Message.
//
// Example scenes.yaml:
//
//	version: 1
//	scenes:
//	  relax:
//	    on: true
//	    brightness: 120
//	    kelvin: 2700
//	    transition_time: 10
//	  lava:
//	    gradient:
//	      style: linear
//	      colors:
//	        - {x: 0.64, y: 0.33}
//	        - {x: 0.55, y: 0.40}
//	      scale: 12.5
//	    effect_speed: 128
//
// The file is written atomically (temp file plus rename) and loaded lazily
// through a process-wide singleton.
package config
