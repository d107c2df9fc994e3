package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlearn/catalog"
)

func newShowCommand(cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Describes a catalogue entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cat.Lookup(args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", e.Title)
			if e.IsExercise() {
				fmt.Fprintf(&b, "Chapter: %s\nLevel: %d\nSolved: %t\n", e.Chapter, e.Level, e.Solved)
				if e.Solution != "" {
					fmt.Fprintf(&b, "Solution: %s\n", e.Solution)
				}
			} else {
				fmt.Fprintf(&b, "Topic: %s\n", e.Topic)
			}
			if demo, err := cat.DemoFor(e); err == nil {
				fmt.Fprintf(&b, "Demo: %s\n", demo)
			}
			if len(e.Languages) > 0 {
				fmt.Fprintf(&b, "Languages: %s\n", strings.Join(e.Languages, ", "))
			}
			if e.Summary != "" {
				fmt.Fprintf(&b, "\n%s\n", e.Summary)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
