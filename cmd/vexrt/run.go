package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vexlang/vexrt/internal/rt"
)

var (
	runStackSize int
	runHeapSize  int64
	runName      string
)

func init() {
	runCmd.Flags().IntVar(&runStackSize, "stack", rt.DefaultStackSize, "stack slot count")
	runCmd.Flags().Int64Var(&runHeapSize, "heap", rt.DefaultHeapSize, "per-semispace heap bytes")
	runCmd.Flags().StringVar(&runName, "name", "main", "VM name shown in trace output")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bring up a VM and run a small allocation workload against it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := rt.DefaultConfig()
		if configPath != "" {
			loaded, err := rt.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("stack") {
			cfg.StackSize = runStackSize
		}
		if cmd.Flags().Changed("heap") {
			cfg.HeapSize = runHeapSize
		}
		if cmd.Flags().Changed("name") {
			cfg.VMName = runName
		}

		vm := rt.NewVMFromConfig(cfg)
		vm.Tracer = &rt.WriterTracer{W: cmd.OutOrStdout()}

		greeting := vm.MakeString("vexrt online")
		tag := vm.MakeCon(1, []rt.Value{greeting, rt.MakeInt(int64(cfg.HeapSize))})
		vm.Push(tag)

		// Force one collection so the trace shows a full cycle even on a
		// workload this small.
		vm.Heap.Collect()
		// greeting was not a root, so re-read it through the rooted CON.
		greeting = vm.Deref(vm.Top(0)).Fields[0]

		bold := color.New(color.Bold)
		bold.DisableColor()
		if isTerminal(os.Stdout) {
			bold.EnableColor()
		}
		bold.Fprintf(cmd.OutOrStdout(), "%s\n", vm.GetStr(greeting))
		fmt.Fprintf(cmd.OutOrStdout(), "allocations=%d collections=%d bytes_live=%d\n",
			vm.Heap.Stats.Allocations, vm.Heap.Stats.Collections, vm.Heap.Stats.BytesLive)

		vm.Terminate()
		return nil
	},
}
