package cmd

import (
	"fmt"
	"sort"

	"github.com/cwbudde/exprscript/pkg/exprscript"
	"github.com/spf13/cobra"
)

var listFunctionsCmd = &cobra.Command{
	Use:   "list-functions",
	Short: "List every registered built-in function and its arity",
	RunE:  runListFunctions,
}

func init() {
	rootCmd.AddCommand(listFunctionsCmd)
}

func runListFunctions(cmd *cobra.Command, args []string) error {
	reg := exprscript.NewRegistry()
	names := reg.Names()
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		arity, _ := reg.Arity(name)
		fmt.Fprintf(out, "%-20s %s parameters\n", name, arity)
	}
	return nil
}
