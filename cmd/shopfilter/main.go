package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/five82/shopfilter/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("shopfilter", flag.ContinueOnError)
	var opts app.Options
	fs.StringVar(&opts.ConfigPath, "config", "", "config path (default ~/.config/shopfilter/config.toml)")
	fs.StringVar(&opts.PrefsPath, "prefs", "", "preferences path (default ~/.config/shopfilter/prefs.toml)")
	fs.StringVarP(&opts.StartURL, "url", "u", "", "listing page URL to start from")
	fs.StringVar(&opts.BaseURL, "base-url", "", "storefront API base URL (overrides $SHOPFILTER_BASE_URL)")
	fs.StringVar(&opts.LogFile, "log-file", "", "session log path")
	fs.StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "shopfilter: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "shopfilter: %v\n", err)
		return 1
	}
	return 0
}
