package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vexlang/vexrt/internal/rt"
)

var (
	statsAllocations int
	statsFormat      string
)

func init() {
	statsCmd.Flags().IntVar(&statsAllocations, "allocations", 4096, "number of throwaway strings to allocate before reporting")
	statsCmd.Flags().StringVar(&statsFormat, "format", "pretty", "output format (pretty|json)")
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Allocate a churn workload and report the resulting heap statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(statsFormat)
		if format != "pretty" && format != "json" {
			return fmt.Errorf("unsupported format %q (must be pretty or json)", statsFormat)
		}

		vm := rt.DefaultVM("stats")
		for i := 0; i < statsAllocations; i++ {
			vm.MakeString(fmt.Sprintf("churn-%d", i))
		}
		stats := vm.Terminate()

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "allocations=%d collections=%d bytes_live=%d bytes_copied=%d\n",
			stats.Allocations, stats.Collections, stats.BytesLive, stats.BytesCopied)
		return nil
	},
}
