package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/mobile-next/gestured/devices"
	"github.com/mobile-next/gestured/gestures"
	"github.com/mobile-next/gestured/launcher"
	"github.com/mobile-next/gestured/utils"
	"github.com/spf13/cobra"
)

const version = "dev"

// shutdownHook is set once at startup by main so the daemon can register
// resources that must be released on SIGINT/SIGTERM.
var shutdownHook *devices.ShutdownHook

// SetShutdownHook sets the registry used for graceful shutdown cleanup.
func SetShutdownHook(hook *devices.ShutdownHook) {
	shutdownHook = hook
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gestured",
	Short: "Launch commands from touchpad swipe gestures",
	Long: `Listens for multi-finger swipe gestures reported by libinput and runs the
commands bound to them.

Each --gesture binds a finger count and a swipe direction to a command:

  <fingers>,<from>,<to>,<command>

where <from>,<to> is D,U (swipe up), U,D (down), L,R (right) or R,L (left).
Everything after the third comma is the command, split with shell quoting rules.`,
	Example: `  gestured -g '3,L,R,xdotool key super+Right' -g '4,D,U,notify-send "four fingers up"'
  gestured --threshold 200 --device /dev/input/event9 -g '3,R,L,xdotool key alt+Left'`,
	Args: cobra.NoArgs,
	RunE: runDaemon,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// StringArray rather than StringSlice: commands may contain commas
	rootCmd.Flags().StringArrayVarP(&gestureSpecs, "gesture", "g", nil, "bind a gesture as <fingers>,<from>,<to>,<command> (repeatable)")
	rootCmd.Flags().Float64VarP(&threshold, "threshold", "t", gestures.DefaultThreshold, "minimum swipe length that triggers a gesture")
	rootCmd.Flags().StringVar(&seat, "seat", devices.DefaultSeat, "udev seat to listen on")
	rootCmd.Flags().StringArrayVar(&devicePaths, "device", nil, "listen on this device node instead of the whole seat (repeatable)")
	_ = rootCmd.MarkFlagRequired("gesture")
}

func validateThreshold(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("threshold must be a non-negative number, got %v", t)
	}
	return nil
}

func runDaemon(cmd *cobra.Command, args []string) error {
	bindings, err := gestures.ParseBindings(gestureSpecs)
	if err != nil {
		return err
	}

	if err := validateThreshold(threshold); err != nil {
		return err
	}

	processLauncher, err := launcher.NewProcessLauncher()
	if err != nil {
		return err
	}

	source := devices.NewLibinputSource(devices.FileInterface{}, devicePaths)
	if err := source.AssignSeat(seat); err != nil {
		return fmt.Errorf("failed to assign seat %s: %w", seat, err)
	}
	if shutdownHook != nil {
		shutdownHook.Register("libinput", source.Close)
	}

	for _, b := range bindings {
		utils.Verbose("Bound gesture: %s", b)
	}
	utils.Info("Listening for swipe gestures with %d binding(s), threshold %.1f", len(bindings), threshold)

	dispatcher := gestures.NewDispatcher(bindings, threshold, processLauncher)
	return gestures.NewEngine(source, dispatcher).Run(cmd.Context())
}

// Execute runs the root command
func Execute() error {
	// enable microseconds in logs
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return rootCmd.Execute()
}

// GetVersion returns the gestured version string
func GetVersion() string {
	return version
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(jsonData))
}
