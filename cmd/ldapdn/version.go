package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

func newVersionCmd(_ *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(w, version)
				return err
			}

			fmt.Fprintf(w, "ldapdn version %s\n", version)
			fmt.Fprintf(w, "  Commit:     %s\n", commit)
			fmt.Fprintf(w, "  Built:      %s\n", buildDate)
			fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
			_, err := fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "show only the version number")
	return cmd
}
