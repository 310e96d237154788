package cmd

import (
	"fmt"

	"github.com/cwbudde/exprscript/internal/dateformat"
	"github.com/cwbudde/exprscript/internal/parser"
	"github.com/spf13/cobra"
)

var parseDateFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse an expression and print its pre-bind AST",
	Long: `Parse an expression and print its syntax tree before any function names
are resolved to implementations.

The --date-format flag is a separate debug path: given a .NET-style date
format string, it prints both the strftime translation DateFormat actually
renders through and the Go reference-time layout equivalent, for comparing
the two without running an expression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseDateFormat, "date-format", "", "translate a .NET date format string instead of parsing an expression")
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if parseDateFormat != "" {
		fmt.Fprintf(out, "strftime:  %s\n", dateformat.Translate(parseDateFormat))
		fmt.Fprintf(out, "go-layout: %s\n", dateformat.TranslateToGoLayout(parseDateFormat))
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("parse requires exactly one expression argument (or --date-format)")
	}

	node, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	fmt.Fprintln(out, node.String())
	return nil
}
