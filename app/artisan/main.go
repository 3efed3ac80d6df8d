package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jrazmi/artisan/app/artisan/commands"
	"github.com/jrazmi/artisan/sdk/console"
	"github.com/jrazmi/artisan/sdk/environment"
	"github.com/jrazmi/artisan/sdk/logger"
	"github.com/jrazmi/artisan/sdk/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	errOut := console.New(os.Stdout, os.Stderr)

	if err := environment.LoadEnvIfPresent(); err != nil {
		errOut.Error("loading .env: %v", err)
		return commands.ExitGeneralError
	}

	tel := telemetry.NewTelemetry()
	log, err := logger.NewFromEnv(commands.AppName, logger.WithTraceID(tel.GetTraceID))
	if err != nil {
		fmt.Fprintln(os.Stderr, "oh no we couldn't even get logging going.")
		return commands.ExitGeneralError
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = tel.SetTraceID(ctx)

	err = commands.NewRootCmd(log).ExecuteContext(ctx)
	if err == nil {
		return commands.ExitSuccess
	}

	var exitErr *commands.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		errOut.Error("Error: %v", err)
	}
	log.DebugContext(ctx, "command failed", "err", err)

	return commands.ExitCodeFromError(err)
}
