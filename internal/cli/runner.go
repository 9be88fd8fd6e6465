package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/itemdetail/internal/config"
	"github.com/Makepad-fr/itemdetail/internal/detail"
	"github.com/Makepad-fr/itemdetail/internal/store/jsonstore"
	"github.com/Makepad-fr/itemdetail/internal/ui"
)

// Options tune behavior from root flags. Empty fields fall back to config.
type Options struct {
	ConfigPath string
	Workspace  string
	Product    string
	Theme      string
	Color      string
}

// usageError marks failures caused by bad invocation (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error { return usageError{fmt.Sprintf(format, a...)} }

// env is what every subcommand works with once flags and config are merged.
type env struct {
	cfg        *config.Config
	path       string
	product    string
	log        *slog.Logger
	dispatcher *jsonstore.Dispatcher
	presenter  *detail.Presenter
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		return 2
	}
	return 1
}

// usageArgs reports positional argument errors as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError{err.Error()}
		}
		return nil
	}
}

func newRootCmd() *cobra.Command {
	var opt Options
	root := &cobra.Command{
		Use:           "itemdetail",
		Short:         "Inspect and edit a work item from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err.Error()} })

	f := root.PersistentFlags()
	f.StringVar(&opt.ConfigPath, "config", "", "config file (default ~/.config/itemdetail/config.yaml)")
	f.StringVar(&opt.Workspace, "workspace", "", "workspace file (default ./items.json)")
	f.StringVar(&opt.Product, "product", "", "product id (default: the workspace's product)")
	f.StringVar(&opt.Theme, "theme", "", "theme: classic | neon | mono")
	f.StringVar(&opt.Color, "color", "", "color: auto | always | never")

	root.AddCommand(
		newListCmd(&opt),
		newShowCmd(&opt),
		newPrintCmd(&opt),
		newSetCmd(&opt),
	)
	return root
}

// setup merges flags over config and wires storage, dispatcher and presenter.
// Interactive sessions log to the configured file (or nowhere) to keep the
// screen clean.
func setup(opt *Options, interactive bool) (*env, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opt.Workspace != "" {
		cfg.Workspace = opt.Workspace
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.Color != "" {
		cfg.Color = opt.Color
	}
	ui.SetTheme(cfg.Theme)
	ui.SetColorMode(cfg.Color)

	path := cfg.Workspace
	if path == "" {
		if path, err = jsonstore.DefaultPath(); err != nil {
			return nil, err
		}
	}

	logger, err := newLogger(cfg, interactive)
	if err != nil {
		return nil, err
	}

	product := opt.Product
	if product == "" {
		product = cfg.Product
	}
	if product == "" {
		ws, err := jsonstore.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		product = ws.Product
	}

	d := jsonstore.NewDispatcher(path, cfg.StatusTable(), logger)
	p := detail.New(d, detail.StaticRouter{ID: product},
		detail.WithScores(cfg.ScoreTable()),
		detail.WithStatuses(cfg.StatusTable()),
		detail.WithLogger(logger),
	)
	return &env{cfg: cfg, path: path, product: product, log: logger, dispatcher: d, presenter: p}, nil
}

func newLogger(cfg *config.Config, interactive bool) (*slog.Logger, error) {
	var w io.Writer = os.Stderr
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	case interactive:
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()})), nil
}

func PrintHelp() {
	fmt.Printf(`itemdetail - inspect and edit work items

Usage:
  itemdetail [flags] <subcommand> [args]

Subcommands:
  ls                               List items
  show <number>                    Interactive detail panel
  print <number>                   Print the detail panel
  set <number> <attribute> [value] Update one attribute (no value clears it)

Examples:
  itemdetail ls
  itemdetail show 7
  itemdetail set 7 score M
  itemdetail set 7 status current
  itemdetail set 7 assigned_to 3
`)
}
