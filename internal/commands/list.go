package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlearn/catalog"
)

func newListCommand(cat *catalog.Catalog) *cobra.Command {
	var (
		topic     string
		exercises bool
		chapter   string
		level     int
		language  string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists catalogue entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if exercises || chapter != "" || level != 0 {
				if topic != "" {
					return errors.New("--topic cannot be combined with exercise filters")
				}
				entries, err := cat.Exercises(chapter, level)
				if err != nil {
					return err
				}

				return listExercises(out, catalog.FilterLanguage(entries, language))
			}

			entries := cat.Entries()
			if topic != "" {
				var err error
				if entries, err = cat.Topic(topic); err != nil {
					return err
				}
			}

			for _, e := range catalog.FilterLanguage(entries, language) {
				if _, err := fmt.Fprintf(out, "%-40s %s\n", e.Topic+"/"+e.ID, e.Title); err != nil {
					return err
				}
			}

			return nil
		},
	}

	listCmd.Flags().StringVarP(&topic, "topic", "t", "", "Only list entries of the given topic (e.g. algorithms).")
	listCmd.Flags().BoolVarP(&exercises, "exercises", "e", false, "List exercises instead of templates.")
	listCmd.Flags().StringVarP(&chapter, "chapter", "c", "", "Only list exercises of the given chapter (implies --exercises).")
	listCmd.Flags().IntVarP(&level, "level", "l", 0, "Only list exercises of the given difficulty level 1-5 (implies --exercises).")
	listCmd.Flags().StringVar(&language, "language", "", "Only list entries available in the given language (e.g. cpp).")

	return listCmd
}

// listExercises prints one exercise per line; solved exercises are marked with '*'.
func listExercises(out io.Writer, entries []catalog.Entry) error {
	for _, e := range entries {
		mark := " "
		if e.Solved {
			mark = "*"
		}
		key := e.Chapter + "/L" + strconv.Itoa(e.Level) + "/" + e.ID
		if _, err := fmt.Fprintf(out, "%s %-45s %s\n", mark, key, e.Title); err != nil {
			return err
		}
	}

	return nil
}
