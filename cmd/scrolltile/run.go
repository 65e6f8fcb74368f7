// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrolltile/run.go
// Summary: The run subcommand: terminal demo driver plus control socket.
// Usage: scrolltile run renders the active workspace in the terminal, one
//        cell per layout unit, with fake windows that ack asynchronously.
//        A second terminal can steer it with scrolltile send.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"
	"golang.org/x/term"

	"github.com/framegrace/scrolltile/config"
	"github.com/framegrace/scrolltile/internal/anim"
	"github.com/framegrace/scrolltile/scroll"
	"github.com/framegrace/scrolltile/server"
)

func runCmd() *cobra.Command {
	var cfgPath, socketPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the interactive terminal demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cfgPath, socketPath)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cmd.Flags().StringVar(&socketPath, "socket", "", "control socket path override")
	return cmd
}

func runDemo(cfgPath, socketPath string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("run requires a terminal")
	}

	if cfgPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			cfgPath = p
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if socketPath == "" {
		socketPath = cfg.ResolvedSocketPath()
	}

	layout := scroll.NewLayout(anim.NewClock(), cfg.Options(), slog.Default())
	loop := server.NewLoop(server.NewRouter(layout))
	srv := server.New(socketPath, loop, slog.Default())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sup := suture.New("scrolltile", suture.Spec{EventHook: supervisorEventHook()})
	sup.Add(loop)
	sup.Add(srv)
	sup.Add(newDemoUI(layout, loop, cancel))

	if err := sup.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func supervisorEventHook() suture.EventHook {
	return func(ei suture.Event) {
		switch e := ei.(type) {
		case suture.EventStopTimeout:
			slog.Info("service failed to stop in time",
				"supervisor", e.SupervisorName, "service", e.ServiceName)
		case suture.EventServicePanic:
			slog.Warn("service panicked", "panic", e.PanicMsg)
			slog.Debug(e.Stacktrace)
		case suture.EventServiceTerminate:
			slog.Error("service terminated",
				"err", e.Err, "supervisor", e.SupervisorName, "service", e.ServiceName)
		case suture.EventBackoff:
			slog.Debug("supervisor entering backoff", "supervisor", e.SupervisorName)
		case suture.EventResume:
			slog.Debug("supervisor leaving backoff", "supervisor", e.SupervisorName)
		}
	}
}
