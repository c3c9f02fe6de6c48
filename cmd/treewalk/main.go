// Command treewalk walks, folds and collects document outlines in breadth-first
// order.
package main

import (
	"os"

	"github.com/notedown/treewalk/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
