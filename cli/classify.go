package cli

import (
	"fmt"
	"strconv"

	"github.com/mobile-next/gestured/commands"
	"github.com/mobile-next/gestured/gestures"
	"github.com/spf13/cobra"
)

var classifyGestureSpecs []string
var classifyThreshold float64

var classifyCmd = &cobra.Command{
	Use:   "classify <dx> <dy>",
	Short: "Show how a swipe vector would be classified",
	Long: `Classifies an accumulated swipe vector the way the daemon does and lists the
commands that would be launched for it, without launching anything.`,
	Example: `  gestured classify 200 0 --fingers 3 -g '3,L,R,echo hi'
  gestured classify --fingers 4 -g '4,D,U,notify-send up' -- 0 -130`,
	Args: cobra.ExactArgs(2),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	dx, errX := strconv.ParseFloat(args[0], 64)
	dy, errY := strconv.ParseFloat(args[1], 64)
	if errX != nil || errY != nil {
		response := commands.NewErrorResponse(fmt.Errorf("invalid vector. dx and dy must be numbers. Got dx='%s', dy='%s'", args[0], args[1]))
		printJson(response)
		return fmt.Errorf("%s", response.Error)
	}

	if err := validateThreshold(classifyThreshold); err != nil {
		return err
	}

	response := commands.ClassifyCommand(commands.ClassifyRequest{
		DX:        dx,
		DY:        dy,
		Fingers:   classifyFingers,
		Threshold: classifyThreshold,
		Gestures:  classifyGestureSpecs,
	})
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().IntVar(&classifyFingers, "fingers", 3, "finger count of the swipe")
	classifyCmd.Flags().StringArrayVarP(&classifyGestureSpecs, "gesture", "g", nil, "gesture binding to match against (repeatable)")
	classifyCmd.Flags().Float64VarP(&classifyThreshold, "threshold", "t", gestures.DefaultThreshold, "minimum swipe length that triggers a gesture")
}
