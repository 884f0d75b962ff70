package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/akyairhashvil/brasileirao/internal/dataset"
	"github.com/akyairhashvil/brasileirao/internal/render"
	"github.com/akyairhashvil/brasileirao/internal/search"
	"github.com/akyairhashvil/brasileirao/internal/tui"
	"github.com/akyairhashvil/brasileirao/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const pageTitle = "Brasileirão 2025"

type cliFlags struct {
	source   string
	baseURL  string
	theme    string
	query    string
	logFile  string
	logLevel string
}

type exportFlags struct {
	format string
	out    string
	query  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Search the teams of the Brazilian championship",
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			loader, err := newLoader(cfg, logger)
			if err != nil {
				return err
			}
			queried := cmd.Flags().Changed("query")
			if queried || !term.IsTerminal(int(os.Stdout.Fd())) {
				return runPlain(cmd.Context(), cfg, loader, logger, flags.query, cmd.OutOrStdout())
			}
			return runTUI(cmd.Context(), cfg, loader, logger)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.source, "source", "", "dataset file path or URL (env TEAMS_SOURCE)")
	pf.StringVar(&flags.baseURL, "base-url", "", "base URL the dataset resource is resolved against (env TEAMS_BASE_URL)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path (env TEAMS_LOG_FILE)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (env TEAMS_LOG_LEVEL)")
	root.Flags().StringVar(&flags.theme, "theme", "", "color theme: default or dracula (env TEAMS_THEME)")
	root.Flags().StringVar(&flags.query, "query", "", "print the teams matching query and exit")

	root.AddCommand(newExportCmd(flags))
	return root
}

func newExportCmd(flags *cliFlags) *cobra.Command {
	ef := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the matching teams to a PDF or HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(ef.format)
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			loader, err := newLoader(cfg, logger)
			if err != nil {
				return err
			}
			out := ef.out
			if out == "" {
				out = filepath.Join(cfg.ExportDir, "teams"+format.Extension())
			}
			path, err := runExport(cmd.Context(), cfg, loader, logger, ef.query, format, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&ef.format, "format", string(render.FormatPDF), "output format: pdf, html or text")
	cmd.Flags().StringVar(&ef.out, "out", "", "output file (default teams.<ext> in TEAMS_EXPORT_DIR)")
	cmd.Flags().StringVar(&ef.query, "query", "", "only export teams matching query")
	return cmd
}

// resolveConfig layers command-line flags over the environment.
func resolveConfig(flags *cliFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	cfg.Source = util.ExpandHome(util.FirstNonEmpty(flags.source, cfg.Source))
	cfg.BaseURL = util.FirstNonEmpty(flags.baseURL, cfg.BaseURL)
	cfg.Theme = util.FirstNonEmpty(flags.theme, cfg.Theme)
	cfg.LogFile = util.FirstNonEmpty(flags.logFile, cfg.LogFile, filepath.Join(util.StateDir(config.AppName), config.LogFileName))
	cfg.LogLevel = util.FirstNonEmpty(flags.logLevel, cfg.LogLevel)
	cfg.ExportDir = util.ExpandHome(cfg.ExportDir)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := util.NewLogger(util.LogConfig{Path: util.ExpandHome(cfg.LogFile), Level: cfg.LogLevel})
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("app", config.AppName), zap.String("version", tui.AppVersion)), nil
}

func newFetcher(cfg config.Config) (dataset.Fetcher, error) {
	if cfg.IsRemote() {
		return dataset.NewHTTPFetcher(cfg.BaseURL, cfg.Source, nil, cfg.FetchTimeout)
	}
	return dataset.NewFileFetcher(cfg.Source), nil
}

func newLoader(cfg config.Config, logger *zap.Logger) (*dataset.Loader, error) {
	fetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure dataset source: %w", err)
	}
	return dataset.NewLoader(fetcher, logger), nil
}

func newController(cfg config.Config, loader search.DatasetLoader, presenter search.Presenter, logger *zap.Logger) *search.Controller {
	return search.NewController(loader, presenter, search.Options{
		Debounce: cfg.Debounce,
		Timeout:  cfg.FetchTimeout,
		Resource: cfg.ResourceName(),
		Logger:   logger,
	})
}

func runTUI(ctx context.Context, cfg config.Config, loader search.DatasetLoader, logger *zap.Logger) error {
	presenter := tui.NewProgramPresenter()
	controller := newController(cfg, loader, presenter, logger)
	defer controller.Close()

	model := tui.NewModel(ctx, controller, tui.Options{
		Theme:     cfg.Theme,
		ExportDir: cfg.ExportDir,
		Title:     pageTitle,
		Logger:    logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	presenter.Bind(p.Send)

	logger.Info("starting ui", zap.String("source", cfg.Source), zap.String("theme", cfg.Theme))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// collect runs one search outside the UI and returns the final view.
func collect(ctx context.Context, cfg config.Config, loader search.DatasetLoader, logger *zap.Logger, query string) (render.View, error) {
	collector := &render.Collector{}
	controller := newController(cfg, loader, collector, logger)
	defer controller.Close()

	controller.Start(ctx)
	if query != "" {
		controller.Search(ctx, query)
	}
	view := collector.View()
	if view.Message != nil && view.Message.Kind == render.KindError {
		return view, errors.New(view.Message.Text)
	}
	return view, nil
}

func runPlain(ctx context.Context, cfg config.Config, loader search.DatasetLoader, logger *zap.Logger, query string, w io.Writer) error {
	view, err := collect(ctx, cfg, loader, logger, query)
	if err != nil {
		return err
	}
	return render.WriteText(w, view)
}

func runExport(ctx context.Context, cfg config.Config, loader search.DatasetLoader, logger *zap.Logger, query string, format render.Format, out string) (string, error) {
	view, err := collect(ctx, cfg, loader, logger, query)
	if err != nil {
		return "", err
	}
	if err := render.WriteFile(out, format, pageTitle, view); err != nil {
		return "", err
	}
	logger.Info("export written", zap.String("path", out), zap.String("format", string(format)))
	abs, err := filepath.Abs(out)
	if err != nil {
		return out, nil
	}
	return abs, nil
}
