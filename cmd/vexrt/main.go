package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vexlang/vexrt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vexrt",
	Short: "vexrt runtime core driver",
	Long:  `vexrt drives the bump-allocating, copying-collector, message-passing runtime core from the shell.`,
}

var configPath string

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(spawnCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(statsCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file overriding default VM sizes (read by the run subcommand)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
