// Package cli implements the prism command line.
package cli

import (
	"github.com/spf13/cobra"

	"prism-backend/internal/bootstrap"
	"prism-backend/internal/shared/config"
)

// appBuilder constructs the application from configuration.
type appBuilder func(config.Config) (*bootstrap.App, error)

// NewRootCmd returns the prism command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.Load, bootstrap.Build)
}

func newRootCmd(load func() config.Config, build appBuilder) *cobra.Command {
	root := &cobra.Command{
		Use:   "prism",
		Short: "Turn a PDF resume into a portfolio website",
		Long: `prism reads a PDF resume, asks a language model to design a portfolio
site around it and packages index.html, styles.css and script.js as a zip.

Run "prism serve" for the web UI or "prism build" for a one-shot build.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(load, build))
	root.AddCommand(newBuildCmd(load, build))
	return root
}
