package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "prism <command>",
	Short: "Prism - runtime type information for declarative UI items",
	Long: `Prism exposes the widget kinds registered with the reflection bridge.
It can list the registry, describe a kind's property and field tables,
and build a YAML scene file against the registered kinds.

Use "prism <command> --help" for more information about a command.`,
	Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: false,
}
