package main

import (
	compress "hmc/cmd/compress"
	decompress "hmc/cmd/decompress"
	inspect "hmc/cmd/inspect"
	version "hmc/cmd/version"
	"hmc/pkg"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hmc",
	Short: "HMC text compressor",
	Long:  "HMC compresses text files with Huffman coding into .hmc containers and restores them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			pkg.Logger().SetLevel(logrus.DebugLevel)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log container details")
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
