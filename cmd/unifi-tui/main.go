// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Command unifi-tui is the interactive dashboard entrypoint: it connects a
// controller facade to a live UniFi controller and drives a Bubble Tea
// program against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ksc98/unifly-sub001/internal/cliconfig"
	"github.com/ksc98/unifly-sub001/internal/controller"
	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	fs := flag.NewFlagSet("unifi-tui", flag.ExitOnError)
	flags := cliconfig.Register(fs)
	metricsAddr := fs.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9090)")
	fs.Parse(os.Args[1:])

	if err := flags.PromptForMissing(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := flags.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(*flags.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unifi-tui: logger init failed:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctrl := controller.New(cfg, log)
	if *metricsAddr != "" {
		if err := ctrl.Metrics().Register(nil); err != nil {
			log.Warnw("metrics registration failed", "error", err)
		}
		go serveMetrics(*metricsAddr, log)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := ctrl.Connect(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "unifi-tui: connect failed:", err)
		os.Exit(1)
	}
	defer ctrl.Disconnect(context.Background())

	backend := tui.NewControllerBackend(ctrl)
	model := tui.NewModel(backend)

	program := tea.NewProgram(model, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "unifi-tui: program exited with error:", err)
		os.Exit(1)
	}
}

func newLogger(mode string) (*logging.Logger, error) {
	if mode == "development" {
		return logging.NewDevelopment()
	}
	return logging.New()
}

func serveMetrics(addr string, log *logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Infow("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorw("metrics server stopped", "error", err)
	}
}
