package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samvad-hq/samvad-news-fetcher/internal/app"
	"github.com/samvad-hq/samvad-news-fetcher/internal/collector"
	"github.com/samvad-hq/samvad-news-fetcher/internal/config"
	"github.com/samvad-hq/samvad-news-fetcher/internal/domain"
	"github.com/samvad-hq/samvad-news-fetcher/internal/logger"
	"github.com/samvad-hq/samvad-news-fetcher/internal/render"
	"github.com/samvad-hq/samvad-news-fetcher/internal/storage"
	"github.com/samvad-hq/samvad-news-fetcher/pkg/presets"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "newsfetcher: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	topic       string
	window      string
	sortBy      string
	language    string
	preset      string
	history     int
	listOptions bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("newsfetcher", pflag.ContinueOnError)
	fs.StringVar(&opts.topic, "topic", "", "search topic, free text (may be empty)")
	fs.StringVar(&opts.window, "window", string(domain.Windows()[0]), "time window: "+domain.JoinOptions(domain.Windows()))
	fs.StringVar(&opts.sortBy, "sort", string(domain.SortOrders()[0]), "sort order: "+domain.JoinOptions(domain.SortOrders()))
	fs.StringVar(&opts.language, "language", string(domain.Languages()[0]), "language: "+domain.JoinOptions(domain.Languages()))
	fs.StringVar(&opts.preset, "preset", "", "saved search id from the presets file; explicit flags override it")
	fs.IntVar(&opts.history, "history", 0, "print the N most recent searches instead of fetching")
	fs.BoolVar(&opts.listOptions, "list-options", false, "print the selectable options and exit")

	// Config overrides, bound by key name.
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("presets-file", "", "presets file (YAML or JSON)")
	fs.String("history-type", "", "history storage (bbolt or none)")
	fs.String("history-path", "", "history database path")
	fs.Int64("http-timeout-seconds", 0, "request timeout in seconds (0 waits indefinitely)")
	return fs
}

func run(args []string, stdout io.Writer) error {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	if opts.listOptions {
		printOptions(stdout)
		return nil
	}

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sugar, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()
	log := logger.New(sugar)

	logger.InfoObj("newsfetcher starting", "config", cfg.Redacted())

	display := render.NewTextDisplay()
	fetcher, err := app.NewFetcher(cfg, display, log)
	if err != nil {
		logger.ErrorObj("failed to initialize fetcher", "error", err)
		return err
	}
	defer fetcher.Close()

	if opts.history > 0 {
		entries, err := fetcher.History(opts.history)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		printHistory(stdout, entries)
		return nil
	}

	form, err := buildForm(cfg, fs, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher.Fetch(ctx, form.Snapshot())
	fmt.Fprintln(stdout, display.Text())
	return nil
}

// buildForm seeds the form from the preset, if any, then applies the flags the user set.
func buildForm(cfg *config.Config, fs *pflag.FlagSet, opts options) (*collector.Form, error) {
	form := collector.NewForm()

	if opts.preset != "" {
		reg, err := presets.LoadOptional(cfg.PresetsFile)
		if err != nil {
			return nil, fmt.Errorf("load presets: %w", err)
		}
		p, ok := reg.ByID(opts.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", opts.preset, reg.IDs())
		}
		if err := form.Fill(p.Request()); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.ID, err)
		}
	}

	if fs.Changed("topic") {
		form.SetTopic(opts.topic)
	}
	if fs.Changed("window") {
		if err := form.SelectWindow(opts.window); err != nil {
			return nil, err
		}
	}
	if fs.Changed("sort") {
		if err := form.SelectSortBy(opts.sortBy); err != nil {
			return nil, err
		}
	}
	if fs.Changed("language") {
		if err := form.SelectLanguage(opts.language); err != nil {
			return nil, err
		}
	}
	return form, nil
}

func printOptions(w io.Writer) {
	fmt.Fprintf(w, "window:   %s\n", domain.JoinOptions(domain.Windows()))
	fmt.Fprintf(w, "sort:     %s\n", domain.JoinOptions(domain.SortOrders()))
	fmt.Fprintf(w, "language: %s\n", domain.JoinOptions(domain.Languages()))
}

func printHistory(w io.Writer, entries []storage.Entry) {
	for _, e := range entries {
		outcome := fmt.Sprintf("%d articles", e.Articles)
		if e.Outcome == storage.OutcomeFailure {
			outcome = "failed: " + e.Message
		}
		fmt.Fprintf(w, "%s  q=%q window=%s sort=%s language=%s  %s\n",
			e.At.Local().Format(time.DateTime), e.Request.Topic, e.Request.Window, e.Request.SortBy, e.Request.Language, outcome)
	}
}
