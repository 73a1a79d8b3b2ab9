package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cloudio-glue/internal/diagnostic"
	"cloudio-glue/mapping"
)

var errInvalidMapping = errors.New("mapping has errors")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <mapping.yaml>",
		Short: "Validate a mapping file and list its bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := mapping.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res := mapping.Validate(f.Bindings, mapping.DefaultConverters())

			printBindings(out, f)
			printDiagnostics(out, res)

			if res.HasErrors() {
				return fmt.Errorf("%w:\n%w", errInvalidMapping, res.Err())
			}

			return nil
		},
	}
}

func printBindings(w io.Writer, f *mapping.File) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BINDING\tADDRESS\tTYPE\tCONSTRAINTS")

	for name, d := range f.Bindings.All() {
		typ := "-"
		if d.Type.IsValid() {
			typ = d.Type.String()
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, d.Address(), typ, d.Constraints)
	}

	tw.Flush()
}

func printDiagnostics(w io.Writer, res *diagnostic.Diagnostics) {
	for _, binding := range res.Bindings() {
		for _, d := range res.For(binding) {
			fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
			if d.Hint != "" {
				fmt.Fprintf(w, "  hint: %s\n", d.Hint)
			}
		}
	}

	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", len(res.Errors()), len(res.Warnings()))
}
