package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vexlang/vexrt/internal/rt"
)

var spawnMessage string

func init() {
	spawnCmd.Flags().StringVar(&spawnMessage, "message", "hello from the parent", "text to hand the child VM")
}

var spawnCmd = &cobra.Command{
	Use:   "spawn",
	Short: "Spawn a child VM, deep-copy a message into it, and receive its reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		parent := rt.DefaultVM("parent")
		defer parent.Terminate()

		launch := rt.SpawnVM(parent, "echo-child", func(child *rt.VM, arg rt.Value) {
			rt.SendMessage(child, parent, child.StrRev(arg))
		})
		child := launch(parent.MakeString(spawnMessage))

		entry := parent.RecvMessageFrom(child)
		fmt.Fprintf(cmd.OutOrStdout(), "child %s replied: %s\n", entry.Sender.Name, parent.GetStr(rt.GetMsg(entry)))
		return nil
	},
}
