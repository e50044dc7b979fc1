package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"impractical.co/adminkit"
	"impractical.co/adminkit/internal/config"
)

var errWatchNeedsFiles = errors.New("--watch needs both --data and --out")

type dashboardOptions struct {
	data  string
	out   string
	watch bool
}

func newDashboardCmd(a *app) *cobra.Command {
	var opts dashboardOptions
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Render the dashboard page",
		Long: `Render the complete dashboard document, themed and wrapped in the base
layout, from a YAML dashboard data file.

With --watch, the dashboard is rendered again every time the data file
changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.data == "" {
				opts.data = a.cfg.Data
			}
			ctx := a.context(cmd)
			if opts.watch {
				if opts.data == "" || opts.out == "" {
					return errWatchNeedsFiles
				}
				return a.watchDashboard(ctx, opts)
			}
			return a.renderDashboard(ctx, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "YAML dashboard data file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "file to write the document to (default stdout)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "render again whenever the data file changes")
	return cmd
}

func (a *app) renderDashboard(ctx context.Context, opts dashboardOptions, stdout io.Writer) error {
	var data adminkit.DashboardData
	if opts.data != "" {
		var err error
		data, err = config.LoadDashboard(opts.data)
		if err != nil {
			return err
		}
	}
	injector, err := a.injector()
	if err != nil {
		return err
	}
	doc, err := adminkit.NewDashboard().Render(ctx, injector, data)
	if err != nil {
		return err
	}
	return writeOutput(opts.out, stdout, doc)
}

// watchDashboard renders the dashboard, then renders it again whenever the
// data file is written or replaced. The file's directory is watched rather
// than the file, so editors that save by renaming a new file into place are
// still noticed.
func (a *app) watchDashboard(ctx context.Context, opts dashboardOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	target, err := filepath.Abs(opts.data)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", opts.data, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(target), err)
	}

	render := func() {
		if err := a.renderDashboard(ctx, opts, io.Discard); err != nil {
			a.log.ErrorContext(ctx, "error rendering dashboard", "error", err)
			return
		}
		a.log.InfoContext(ctx, "rendered dashboard", "data", opts.data, "out", opts.out)
	}
	render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.WarnContext(ctx, "error watching data file", "error", err)
		}
	}
}

func writeOutput(path string, stdout io.Writer, doc string) error {
	if path == "" {
		_, err := io.WriteString(stdout, doc)
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil { // #nosec G306
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
