package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pound/config"
	"pound/editor"
	"pound/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: pound [file]")
	}

	cfg, err := config.LoadOrCreate()
	if err != nil {
		cfg = config.Default()
	}

	t, err := term.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	e := editor.New(cfg, t)
	if len(args) == 1 {
		if err := e.Open(args[0]); err != nil {
			return err
		}
	}
	return e.Run(ctx)
}
