package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"evilgen/internal/pattern"
)

var quantifierCmd = &cobra.Command{
	Use:   "quantifier <pattern>",
	Short: "List the quantifiers of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pattern.Parse(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, el := range p.Elements {
			if el.Loop == nil {
				continue
			}
			fmt.Fprintf(out, "%d\t%s\tlower=%d upper=%s", i, el, el.Loop.Lower(), el.Loop.Upper())
			if el.Loop.IsOptional() {
				fmt.Fprint(out, " optional")
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
