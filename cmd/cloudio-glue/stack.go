package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cloudio-glue/topic"
)

func newStackCmd() *cobra.Command {
	var (
		root string
		raw  bool
	)

	cmd := &cobra.Command{
		Use:   "stack <topic>",
		Short: "Print the location stack of a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := topic.FromTopic(args[0], root, raw)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "node name to strip from the topic")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep the first segment even if it equals --root")

	return cmd
}
