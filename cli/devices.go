package cli

import (
	"fmt"

	"github.com/mobile-next/gestured/commands"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List gesture-capable input devices",
	Long:  `List the input devices libinput reports with gesture support, as seen by "libinput list-devices".`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.DevicesCommand(showAllDevices)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)

	// devices command flags
	devicesCmd.Flags().BoolVar(&showAllDevices, "all", false, "show all devices including those without gesture support")
}
