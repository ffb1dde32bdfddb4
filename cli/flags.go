package cli

import "github.com/mobile-next/gestured/gestures"

var (
	verbose bool

	// for the daemon (root command)
	gestureSpecs []string
	threshold    float64 = gestures.DefaultThreshold
	seat         string
	devicePaths  []string

	// for devices command
	showAllDevices bool

	// for classify command
	classifyFingers int
)
