// Package cmd implements the commandcenter CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/browser"
	"github.com/simonbystrom/commandcenter/internal/config"
	"github.com/simonbystrom/commandcenter/internal/logging"
	"github.com/simonbystrom/commandcenter/internal/ui"
)

// version is set at build time via ldflags.
var version = "dev"

// options holds the persistent flags shared by every command.
type options struct {
	dataPath   string
	configPath string
	logFile    string
	logLevel   string
}

// NewRootCmd builds the command tree. The root command runs the TUI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "commandcenter",
		Short: "A progress dashboard for a four-bucket project board",
		Long: `commandcenter shows a project board (done, testing, in progress, to do)
read from a JSON or YAML document. Run without a subcommand for the terminal
dashboard, or use serve for the same board in a browser.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.dataPath, "data", "", "board document, .json or .yaml (overrides [data] path)")
	pf.StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	pf.StringVar(&opts.logFile, "log-file", "", "write dashboard logs to this file")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newServeCmd(opts),
		newListCmd(opts),
		newCheckCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (o *options) loadConfig() (config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (o *options) boardPath(cfg config.Config) string {
	if o.dataPath != "" {
		return o.dataPath
	}
	return cfg.Data.Path
}

// load reads the config and then the board it points at.
func (o *options) load() (config.Config, *board.Board, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	b, err := board.Load(o.boardPath(cfg))
	if err != nil {
		return cfg, nil, err
	}
	return cfg, b, nil
}

func (o *options) logger(w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level), nil
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, b, err := opts.load()
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if opts.logFile != "" {
		level, err := logging.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
		l, closer, err := logging.OpenFile(opts.logFile, level)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = l
	}
	logger.Info("board loaded", "path", opts.boardPath(cfg), "tasks", b.Len())

	model := ui.NewApp(cfg, b, browser.System{}, logger)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
