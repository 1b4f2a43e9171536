package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vexlang/vexrt/internal/rt"
)

var sendCount int

func init() {
	sendCmd.Flags().IntVar(&sendCount, "count", 5, "number of sequential messages to send")
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a burst of messages from one VM to another and drain them in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		receiver := rt.DefaultVM("receiver")
		defer receiver.Terminate()
		sender := rt.DefaultVM("sender")

		go func() {
			for i := 0; i < sendCount; i++ {
				msg := sender.MakeString(fmt.Sprintf("msg-%d", i))
				rt.SendMessage(sender, receiver, msg)
			}
			sender.Terminate()
		}()

		for i := 0; i < sendCount; i++ {
			entry := receiver.RecvMessageFrom(sender)
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, receiver.GetStr(rt.GetMsg(entry)))
		}
		return nil
	},
}
