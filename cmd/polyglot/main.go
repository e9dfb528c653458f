package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"polyglot/internal/cli"
)

func main() {
	// Interrupt cancels pending prompts; the shell still saves before exit
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags, os.Stdin, os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
