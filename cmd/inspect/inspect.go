package inspect

import (
	"fmt"
	"hmc/pkg"
	"os"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [archive]",
	Short: "View a .hmc container",
	Long:  "Inspect the sections and code table of a .hmc container",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		archive := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")

		info, err := pkg.Inspect(archive)
		if err != nil {
			fmt.Printf("Error inspecting archive %s: %s\n", archive, err)
			os.Exit(1)
		}

		fmt.Printf("Container %s:\n", archive)
		fmt.Printf("\tSize: %d\n\tExtension: %q\n\tTree: %d bytes\n\tPayload: %d bytes (%d bits)\n",
			info.Size, info.Extension, info.TreeSize, info.PayloadSize, info.Bits)
		if quiet {
			return
		}

		fmt.Printf("Code table (%d symbols):\n", len(info.Leaves))
		for i, l := range info.Leaves {
			fmt.Printf("%d:\t%q\tU+%04X\tfreq %d\t%s\n", i, l.Symbol, l.Symbol, l.Freq, l.Code)
		}
	},
}

func init() {
	InspectCmd.Flags().BoolP("quiet", "Q", false, "Only print container sizes")
}
