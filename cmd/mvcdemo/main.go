// Command mvcdemo wires the engine to a terminal: it draws a frame counter
// at a fixed rate until q, Ctrl-C, or SIGINT requests shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/axelmagn/mvcloop/eventbus"
	"github.com/axelmagn/mvcloop/mvc"
	"github.com/axelmagn/mvcloop/runloop"
	"github.com/axelmagn/mvcloop/termui"
	"github.com/saylorsolutions/x/env"
	"github.com/saylorsolutions/x/signalx"
	"github.com/saylorsolutions/x/slogx"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "mvcdemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("mvcdemo", flag.ContinueOnError)
	var (
		fps     = flags.IntP("fps", "f", int(env.Int("MVCDEMO_FPS", int64(runloop.DefaultTickRate))), "Target tick rate in ticks per second")
		logFile = flags.String("log-file", "", "Also write JSON logs to this file")
		verbose = flags.BoolP("verbose", "v", false, "Enable debug logging")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	log, closeLogs, err := setupLogging(*logFile, *verbose)
	if err != nil {
		return err
	}
	defer closeLogs()
	slog.SetDefault(log)

	// First SIGINT quits cooperatively, a second one force-exits.
	ctx := signalx.SignalExitCtx(context.Background(), os.Interrupt)

	bus := eventbus.NewBus()
	display := termui.NewDisplay(os.Stdout, *fps)
	if err := display.Attach(os.Stdin); err != nil {
		return err
	}
	keyboard := termui.NewKeyboard(os.Stdin)
	mvc.NewViewListener(bus, display)
	mvc.NewController(bus, keyboard)

	loop, err := runloop.New(bus, runloop.TickRate(*fps), runloop.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("starting run loop", "fps", *fps)
	return loop.Run(ctx)
}

func setupLogging(logFile string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	if len(logFile) == 0 {
		return slog.New(console), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	fileOut := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
	closeLogs := func() {
		_ = f.Close()
	}
	return slog.New(slogx.MergeHandlers(console, fileOut)), closeLogs, nil
}
