package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"impractical.co/adminkit"
)

func newCSSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the theme stylesheet",
		Long: `Print the theme stylesheet, with any palette overrides from the
configuration applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, err := a.cfg.ThemeConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), adminkit.ThemeCSS(theme))
			return err
		},
	}
}

func newScriptCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "script",
		Short: "Print the theme bootstrap script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), adminkit.ThemeScript())
			return err
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the template name and version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			injector, err := a.injector()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", injector.TemplateName, injector.TemplateVersion)
			return err
		},
	}
}
