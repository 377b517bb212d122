package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/glue"
	"github.com/gogpu/glue/native"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names TEXT...",
		Short: "Intern texts and compare them with the first one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := native.Default()
			out := cmd.OutOrStdout()

			names := make([]*glue.StringName, 0, len(args))
			defer func() {
				for _, n := range names {
					n.Dispose()
				}
			}()

			for _, text := range args {
				n, err := glue.NewStringNameFrom(text, glue.WithRuntime(rt))
				if err != nil {
					return fmt.Errorf("intern %q: %w", text, err)
				}
				names = append(names, n)
			}

			first := names[0]
			for _, n := range names {
				eq, err := n.Equal(first)
				if err != nil {
					return err
				}
				h, err := n.Handle()
				if err != nil {
					return err
				}
				hash, err := n.Hash()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-16q handle=%v hash=%d equal-first=%t\n", n.String(), h, hash, eq)
			}

			s := rt.Stats()
			fmt.Fprintf(out, "handles=%d entries=%d allocations=%d\n", s.Handles, s.Entries, s.Allocations)
			return nil
		},
	}
}
