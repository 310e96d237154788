// Command exprscript is a developer tool for parsing and evaluating
// exprscript expressions outside of a C-ABI host. It is not part of the
// embeddable core: this command imports pkg/exprscript, and pkg/exprscript
// never imports this command.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/exprscript/cmd/exprscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
