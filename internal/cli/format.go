package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacoelho/yang/internal/ast"
	"github.com/jacoelho/yang/internal/compactreader"
	"github.com/jacoelho/yang/internal/printer"
	"github.com/jacoelho/yang/internal/yinreader"
)

type formatOptions struct {
	From string
	To   string
}

func newFormatCommand() *cobra.Command {
	opts := formatOptions{From: "compact", To: "compact"}
	cmd := &cobra.Command{
		Use:   "format <module.yang>",
		Short: "Re-render a parsed module in compact or YIN form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.From, "from", opts.From, `input surface form ("compact" or "yin")`)
	cmd.Flags().StringVar(&opts.To, "to", opts.To, `output surface form ("compact" or "yin")`)
	return cmd
}

func runFormat(cmd *cobra.Command, path string, opts formatOptions) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	stmt, err := readStatement(opts.From, src)
	if err != nil {
		return err
	}

	out, err := renderStatement(opts.To, stmt)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func readStatement(form string, src []byte) (*ast.Statement, error) {
	switch form {
	case "compact", "":
		return compactreader.Read(src)
	case "yin":
		return yinreader.Read(src)
	default:
		return nil, fmt.Errorf(`unknown input form %q, want "compact" or "yin"`, form)
	}
}

func renderStatement(form string, stmt *ast.Statement) (string, error) {
	switch form {
	case "compact", "":
		return printer.Compact(stmt), nil
	case "yin":
		return printer.YIN(stmt), nil
	default:
		return "", fmt.Errorf(`unknown output form %q, want "compact" or "yin"`, form)
	}
}
