package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/govalues/measure/internal/cli"
)

func main() {
	streams := cli.IOStreams{Out: os.Stdout, ErrOut: os.Stderr}
	cmd := cli.NewCommandMeasure(filepath.Base(os.Args[0]), streams)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
