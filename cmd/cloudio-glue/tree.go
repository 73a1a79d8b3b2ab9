package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"cloudio-glue/tree/runtime"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
	MaxDepth:                6,
}

func newTreeCmd(a *app) *cobra.Command {
	var (
		nodeName string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "tree <mapping.yaml>",
		Short: "Build the node described by a mapping file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, node, err := a.loadNode(args[0], nodeName, &echoModel{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			if dump {
				dumpConfig.Fdump(cmd.OutOrStdout(), node)
				return nil
			}

			return runtime.Fprint(cmd.OutOrStdout(), node)
		},
	}

	cmd.Flags().StringVar(&nodeName, "node", "", "node name (defaults to the mapping's node)")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the node structure")

	return cmd
}
