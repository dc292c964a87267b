package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/obadn/internal/dn"
)

// Output formats for decomposed pairs.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

// pairOutput is the JSON and YAML shape of a decomposed pair.
type pairOutput struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

func newParseCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "parse DN",
		Short:   "Decompose an escaped DN into attribute type/value pairs",
		Example: `  ldapdn parse -o json 'cn=Jam\<m\>y,ou=Com\,pany'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := dn.Wrap(args[0]).Pairs()
			if err != nil {
				return err
			}
			a.logger.Debug("decomposed DN", "dn", args[0], "pairs", len(pairs))

			return renderPairs(cmd.OutOrStdout(), a.outputFormat(output), pairs)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json, yaml, table")
	return cmd
}

func newRDNCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "rdn DN",
		Short:   "Show the leading attribute type and value of a DN",
		Example: `  ldapdn rdn 'uid=alice,ou=users,dc=example,dc=com'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rdn, err := dn.Wrap(args[0]).RDN()
			if err != nil {
				return err
			}
			a.logger.Debug("read RDN", "dn", args[0], "type", rdn.Key)

			return renderPairs(cmd.OutOrStdout(), a.outputFormat(output), []dn.Pair{rdn})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json, yaml, table")
	return cmd
}

// renderPairs writes pairs to w in the given format.
func renderPairs(w io.Writer, format string, pairs []dn.Pair) error {
	switch format {
	case formatText:
		for _, p := range pairs {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Key, p.Value); err != nil {
				return err
			}
		}
		return nil

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(toOutput(pairs))

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toOutput(pairs)); err != nil {
			return err
		}
		return enc.Close()

	case formatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"#", "Type", "Value"})
		for i, p := range pairs {
			t.AppendRow(table.Row{i + 1, p.Key, p.Value})
		}
		t.Render()
		return nil

	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

func toOutput(pairs []dn.Pair) []pairOutput {
	out := make([]pairOutput, len(pairs))
	for i, p := range pairs {
		out[i] = pairOutput{Type: p.Key, Value: p.Value}
	}
	return out
}
