// Package main provides the biro CLI for calling runtime builtins from a shell.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
)

func main() {
	root := NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		au := aurora.NewAurora(colorEnabled(root) && isTerminal(os.Stderr))
		fmt.Fprintf(os.Stderr, "%s%s\n", au.Bold(au.Red("Error: ")), au.Red(err.Error()))
		os.Exit(1)
	}
}
