package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/limbo/vitals/pkg/cleanup"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command tree and releases registered resources whether or
// not the command failed.
func run(root *cobra.Command) error {
	defer cleanup.CleanUp()
	return root.Execute()
}
