package decompress

import (
	"fmt"
	"hmc/pkg"
	"os"

	"github.com/spf13/cobra"
)

var output string

var DecompressCmd = &cobra.Command{
	Use:   "decompress [archives...]",
	Short: "Restore text files from .hmc containers",
	Long:  "Decompress each .hmc container, writing the text back out under its original extension.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, archive := range args {
			out, err := pkg.DecompressFile(archive, output)
			if err != nil {
				fmt.Printf("Error decompressing %s: %s\n", archive, err)
				os.Exit(1)
			}
			fmt.Printf("Successfully decompressed %s to %s\n", archive, out)
		}
	},
}

func init() {
	DecompressCmd.Flags().StringVarP(&output, "output", "o", ".", "Output directory")
}
