package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlearn/catalog"
	"github.com/katalvlaran/lvlearn/internal/demos"
	"github.com/katalvlaran/lvlearn/internal/logger"
)

var errDemosFailed = errors.New("one or more demos failed")

func newRunCommand(log *logger.Logger, cat *catalog.Catalog, reg *demos.Registry) *cobra.Command {
	var all bool

	runCmd := &cobra.Command{
		Use:   "run [ID...]",
		Short: "Runs catalogue entries and prints their output",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := log.WithName("run")

			var entries []catalog.Entry
			switch {
			case all && len(args) > 0:
				return errors.New("--all cannot be combined with entry IDs")
			case all:
				entries = cat.Entries()
			case len(args) == 0:
				return errors.New("at least one entry ID (or --all) is required")
			default:
				for _, id := range args {
					e, err := cat.Lookup(id)
					if err != nil {
						return err
					}
					entries = append(entries, e)
				}
			}

			out := cmd.OutOrStdout()
			failed := 0
			for i, e := range entries {
				if len(entries) > 1 {
					if err := writeHeader(out, i, e); err != nil {
						return err
					}
				}

				demo, err := cat.DemoFor(e)
				if err != nil {
					log.Error(err, "entry has nothing to run", "id", e.ID)
					failed++
					continue
				}

				log.V(1).Info("running demo", "id", e.ID, "demo", demo)
				if err := reg.Run(demo, out); err != nil {
					log.Error(err, "demo failed", "id", e.ID)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errDemosFailed, failed, len(entries))
			}

			return nil
		},
	}

	runCmd.Flags().BoolVarP(&all, "all", "a", false, "Run every entry in catalogue order.")

	return runCmd
}

// writeHeader separates the outputs of consecutive entries.
func writeHeader(out io.Writer, i int, e catalog.Entry) error {
	if i > 0 {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	group := e.Topic
	if e.IsExercise() {
		group = e.Chapter
	}
	_, err := fmt.Fprintf(out, "== %s/%s: %s ==\n", group, e.ID, e.Title)

	return err
}
