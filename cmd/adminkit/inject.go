package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newInjectCmd(a *app) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Inject the theme into an existing document",
		Long: `Inject the theme stylesheet, script, and toggle into an HTML document
that was already rendered. The stylesheet and script replace an
<!-- adminkit:head --> comment, or go before the anchor script tag; the toggle
replaces an <!-- adminkit:body-end --> comment, or goes before </body>.

Pass --in - to read the document from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc []byte
			var err error
			if in == "-" {
				doc, err = io.ReadAll(cmd.InOrStdin())
			} else {
				doc, err = os.ReadFile(in) // #nosec G304
			}
			if err != nil {
				return fmt.Errorf("error reading document: %w", err)
			}
			injector, err := a.injector()
			if err != nil {
				return err
			}
			patched := injector.Patch(a.context(cmd), string(doc))
			return writeOutput(out, cmd.OutOrStdout(), patched)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "document to inject the theme into, or - for stdin")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write the document to (default stdout)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
