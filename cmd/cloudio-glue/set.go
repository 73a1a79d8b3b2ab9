package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cloudio-glue/primitive"
)

func newSetCmd(a *app) *cobra.Command {
	var nodeName string

	cmd := &cobra.Command{
		Use:   "set <mapping.yaml> <topic> <value>",
		Short: "Simulate a remote write to an attribute",
		Long: "Builds the node described by the mapping, then applies value to the attribute\n" +
			"at topic as if it came from the cloud. The topic may omit the node name.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			endpoint, node, err := a.loadNode(args[0], nodeName, &echoModel{out: out})
			if err != nil {
				return err
			}

			t := args[1]
			if !strings.HasPrefix(t, node.Name()+".") {
				t = node.Name() + "." + t
			}

			attr, err := endpoint.Attribute(t)
			if err != nil {
				return err
			}

			v, err := primitive.Parse(attr.Type(), args[2])
			if err != nil {
				return err
			}

			handled, err := attr.SetValueFromCloud(v)
			if err != nil {
				return err
			}

			if !handled {
				fmt.Fprintf(out, "%s: not handled\n", t)
			}

			fmt.Fprintln(out, attr)

			return nil
		},
	}

	cmd.Flags().StringVar(&nodeName, "node", "", "node name (defaults to the mapping's node)")

	return cmd
}
