package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/obadn/internal/dn"
)

func newEscapeCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:     "escape VALUE...",
		Short:   "Escape values for use inside a DN",
		Example: `  ldapdn escape "Smith, John"
  Smith\, John`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), dn.Escape(arg)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newBuildCmd(a *app) *cobra.Command {
	var withBase bool

	cmd := &cobra.Command{
		Use:   "build TYPE VALUE [TYPE VALUE]... [SUFFIX]",
		Short: "Build an escaped DN from attribute type/value pairs",
		Long: `Build an escaped DN from alternating attribute types and values.
Types and values are escaped. A trailing unpaired argument is appended
verbatim, so it must already be an escaped DN.`,
		Example: `  ldapdn build cn "Jam<m>y" 'ou=Com\,pany'
  cn=Jam\<m\>y,ou=Com\,pany

  ldapdn build --base uid alice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := args
			if withBase {
				base := a.cfg.Directory.BaseDN
				if base.IsEmpty() {
					return errors.New("--base given but no base DN is configured")
				}
				if len(parts)%2 != 0 {
					return errors.New("--base requires complete type/value pairs")
				}
				parts = append(append([]string{}, parts...), base.String())
			}

			d := dn.New(parts...)
			a.logger.Debug("built DN", "dn", d, "parts", len(parts))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}

	cmd.Flags().BoolVar(&withBase, "base", false, "append the configured base DN")
	return cmd
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize DN",
		Short:   "Re-escape a DN the way build escapes it",
		Example: `  ldapdn normalize 'cn=Jam\3cm\3ey'
  cn=Jam\<m\>y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dn.Wrap(args[0])
			if !d.Normalizable() {
				return errors.New("DN holds a multi-valued RDN or a '#' hex value; normalizing would change its meaning")
			}
			normalized, err := d.Normalize()
			if err != nil {
				return err
			}
			a.logger.Debug("normalized DN", "input", args[0], "dn", normalized)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return err
		},
	}
}
