package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"impractical.co/adminkit"
	"impractical.co/adminkit/internal/config"
)

// app is the state shared by every command: the configuration, once it has
// been loaded, and the logger built from it.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "adminkit",
		Short: "Render the themed admin dashboard",
		Long: `adminkit renders the admin dashboard and its theme.

Configuration is read from .adminkit.yml in the current directory, or the
file passed with --config, and can be overridden with ADMINKIT_ environment
variables, e.g. ADMINKIT_THEME_MODE=light.

Examples:
  adminkit dashboard --data stats.yml --out dashboard.html
  adminkit dashboard --data stats.yml --out dashboard.html --watch
  adminkit css > theme.css
  adminkit inject --in page.html --out themed.html`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .adminkit.yml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("mode", string(adminkit.ModeDark), "theme mode documents start in (dark, light)")
	mustBind(a.v, "log.level", flags.Lookup("log-level"))
	mustBind(a.v, "log.format", flags.Lookup("log-format"))
	mustBind(a.v, "theme.mode", flags.Lookup("mode"))

	root.AddCommand(
		newDashboardCmd(a),
		newCSSCmd(a),
		newScriptCmd(a),
		newInjectCmd(a),
		newVersionCmd(a),
	)
	return root
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// load reads the configuration before any command runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	config.SetDefaults(a.v)
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".adminkit")
	}
	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config: %w", err)
		}
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.Logger(cmd.ErrOrStderr())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", "path", used)
	}
	return nil
}

// context returns the command's context, carrying the app's logger.
func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return adminkit.LoggingContext(ctx, a.log)
}

// injector returns a layout injector wrapping BaseLayout, configured from
// the app's configuration.
func (a *app) injector() (*adminkit.Injector, error) {
	mode, err := a.cfg.Mode()
	if err != nil {
		return nil, err
	}
	return a.cfg.Injector(adminkit.BaseLayout{Mode: mode})
}
