package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vexlang/vexrt/internal/rt"
)

var (
	dumpValue  string
	dumpFormat string
	dumpOut    string
)

func init() {
	dumpCmd.Flags().StringVar(&dumpValue, "value", "", "string payload to wrap in a tagged CON cell and dump")
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "pretty", "output format (pretty|json)")
	dumpCmd.Flags().StringVar(&dumpOut, "out", "", "write the raw msgpack bytes to this file instead of printing hex")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Build a sample value tree and serialize it with DumpValue",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(dumpFormat)
		if format != "pretty" && format != "json" {
			return fmt.Errorf("unsupported format %q (must be pretty or json)", dumpFormat)
		}

		vm := rt.DefaultVM("dump")
		defer vm.Terminate()

		str := vm.MakeString(dumpValue)
		tree := vm.MakeCon(1, []rt.Value{str, rt.MakeInt(int64(len(dumpValue)))})

		data, err := rt.DumpValue(vm, tree)
		if err != nil {
			return fmt.Errorf("dump value: %w", err)
		}

		if dumpOut != "" {
			if err := os.WriteFile(dumpOut, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", dumpOut, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d msgpack bytes to %s\n", len(data), dumpOut)
			return nil
		}

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rt.Snapshot(vm, tree))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(data))
		return nil
	},
}
