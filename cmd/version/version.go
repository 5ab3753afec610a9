package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View HMC's version",
	Long:  "Display the version of the HMC compressor installed on your system.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var version string = "HMC version 0.1.0"
		var format string = "Huffman text container, .hmc"
		fmt.Println(version)
		fmt.Println(format)

		return nil
	},
}
