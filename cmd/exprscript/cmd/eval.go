package cmd

import (
	"fmt"
	"strings"

	"github.com/cwbudde/exprscript/pkg/exprscript"
	"github.com/spf13/cobra"
)

var evalIdentifiers []string

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Parse and execute an expression, printing its result",
	Long: `Parse and execute a single expression against an optional set of
identifier values, printing the result's string form.

Identifiers are supplied with repeated -i/--id name=value flags:

  exprscript eval 'Concat(firstName, " ", lastName)' -i firstName=Ada -i lastName=Lovelace`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayVarP(&evalIdentifiers, "id", "i", nil, "identifier value as name=value (repeatable)")
}

func runEval(cmd *cobra.Command, args []string) error {
	values, err := parseIdentifiers(evalIdentifiers)
	if err != nil {
		return err
	}

	expr, err := exprscript.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	result, err := expr.Execute(values)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}

func parseIdentifiers(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid identifier %q, expected name=value", p)
		}
		values[name] = value
	}
	return values, nil
}
