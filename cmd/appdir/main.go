package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "appdir",
		Short: "File-based route table inspector",
		Long: `appdir builds and inspects route tables derived from an app
directory tree: pages, layouts, templates, boundaries, parallel slots
and intercepting routes, resolved with the app-directory file
convention and ordered by match precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		scanCmd(),
		matchCmd(),
		convertCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
