// Package commands implements the lvlearn command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlearn/catalog"
	"github.com/katalvlaran/lvlearn/internal/demos"
	"github.com/katalvlaran/lvlearn/internal/logger"
)

// NewRootCmd loads the embedded catalogue and builds the lvlearn command tree
// with the built-in demos.
func NewRootCmd(log *logger.Logger) (*cobra.Command, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	return newRootCmd(log, cat, demos.Default()), nil
}

func newRootCmd(log *logger.Logger, cat *catalog.Catalog, reg *demos.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvlearn",
		Short: "Browses and runs introductory programming templates",
		Long: `lvlearn is a catalogue of small, self-contained programming templates
organised by topic: basics, flow control, data structures, functions,
algorithms, object-oriented programming, files and errors.

Use "lvlearn list" to browse the catalogue and "lvlearn run <id>" to run a template.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	log.AddLevelFlag(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newListCommand(cat))
	rootCmd.AddCommand(newShowCommand(cat))
	rootCmd.AddCommand(newRunCommand(log, cat, reg))

	return rootCmd
}
