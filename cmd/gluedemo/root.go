package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glue"
	_ "github.com/gogpu/glue/native" // registers the in-process runtime
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "gluedemo",
		Short:         "Demonstrate glue value types and interned names",
		Version:       glue.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVectorsCmd())
	root.AddCommand(newNamesCmd())
	return root
}

// configureLogging routes glue's slog output through charmbracelet/log.
func configureLogging(verbose bool) {
	if !verbose {
		glue.SetLogger(nil)
		return
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "glue",
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
	glue.SetLogger(slog.New(handler))
}
