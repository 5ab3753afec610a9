package compress

import (
	"fmt"
	"hmc/pkg"
	"os"

	"github.com/spf13/cobra"
)

var output string

var CompressCmd = &cobra.Command{
	Use:   "compress [files...]",
	Short: "Compress text files into .hmc containers",
	Long:  "Compress each text file with Huffman coding into <name>.hmc, keeping its extension inside the container.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, src := range args {
			out, err := pkg.CompressFile(src, output)
			if err != nil {
				fmt.Printf("Error compressing %s: %s\n", src, err)
				os.Exit(1)
			}
			fmt.Printf("Successfully compressed %s into %s\n", src, out)
		}
	},
}

func init() {
	CompressCmd.Flags().StringVarP(&output, "output", "o", ".", "Output directory")
}
