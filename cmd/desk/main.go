// Package main is the entry point for the desk CLI.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/cmd/desk/commands"
	"go.trai.ch/desk/internal/adapters/config"
	"go.trai.ch/desk/internal/app"
	"go.trai.ch/desk/internal/core/domain"
	_ "go.trai.ch/desk/internal/wiring"
)

// configEnv names the config path used when --config is not given.
const configEnv = "DESK_CONFIG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer, opts ...graft.Option) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Application components are built once the config flag is known
	var components *app.Components
	cli := commands.New(func(ctx context.Context, configPath string) (*app.App, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx, append(opts, sourceOption(configPath)...)...)
		if err != nil {
			return nil, err
		}
		components = c
		return c.App, nil
	})

	// 2. Interface - CLI
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			// The rejected amounts were already reported.
			return 1
		}
		if components == nil {
			// Logger is not available yet if initialization failed
			_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// sourceOption selects the configuration source from the flag or the
// environment. Without either the working directory is searched.
func sourceOption(configPath string) []graft.Option {
	if configPath == "" {
		configPath = os.Getenv(configEnv)
	}
	if configPath == "" {
		return nil
	}
	return []graft.Option{graft.PatchValue[config.Source](config.Source(configPath))}
}
