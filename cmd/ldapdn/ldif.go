package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/obadn/internal/ldif"
	"github.com/KilimcininKorOglu/obadn/internal/logging"
)

func newLDIFCmd(a *app) *cobra.Command {
	var checkOnly, normalize bool

	cmd := &cobra.Command{
		Use:   "ldif [FILE]",
		Short: "Validate the DNs of LDIF entries",
		Long: `Read LDIF entries from FILE, or standard input when no file is given,
check that every DN decomposes, and write the entries back. With --normalize
each DN is re-escaped; DNs holding multi-valued RDNs or '#' hex values are
written unchanged. With --check nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.in
			source := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, source = f, args[0]
			}

			var out io.Writer = cmd.OutOrStdout()
			if checkOnly {
				out = io.Discard
			}

			count, err := a.copyLDIF(in, out, normalize)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			a.logger.Info("processed LDIF", "source", source, "entries", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only validate, do not write entries")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "re-escape each DN")
	return cmd
}

// copyLDIF copies entries from r to w, optionally normalizing each DN, and
// returns the number of entries processed.
func (a *app) copyLDIF(r io.Reader, w io.Writer, normalize bool) (int, error) {
	reader := ldif.NewReader(r)
	writer := ldif.NewWriter(w)
	logger := a.logger.WithFields("component", "ldif")

	count := 0
	for {
		entry, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, err
		}

		if normalize {
			if err := normalizeEntry(logger, entry); err != nil {
				return count, err
			}
		}

		if err := writer.WriteEntry(entry); err != nil {
			return count, err
		}
		count++
	}
}

func normalizeEntry(logger logging.Logger, entry *ldif.Entry) error {
	if !entry.DN.Normalizable() {
		logger.Warn("kept DN unchanged", "dn", entry.DN, "reason", "multi-valued RDN or hex value")
		return nil
	}

	normalized, err := entry.DN.Normalize()
	if err != nil {
		return err
	}
	if !normalized.Equal(entry.DN) {
		logger.Info("normalized DN", "from", entry.DN, "to", normalized)
		entry.DN = normalized
	}
	return nil
}
