// Package main provides the entry point for the ldapdn CLI.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args, os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdin, stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args[1:])

	err := root.Execute()
	if cerr := a.logger.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close log output: %w", cerr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
