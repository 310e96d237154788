package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "exprscript",
	Short: "exprscript expression evaluator",
	Long: `exprscript is an embeddable, Excel-flavored expression evaluator.

A caller supplies an expression and a set of named identifier values; the
engine parses the expression once, binds its function calls to built-in
implementations, and executes it against the identifier set to produce a
single typed result.

This CLI is a developer convenience for trying expressions outside of a
host process — the embeddable core lives in pkg/exprscript and has no
dependency on this command.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

