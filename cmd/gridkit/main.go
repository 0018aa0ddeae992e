// Command gridkit prices map regions and searches turn-weighted routes.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridkit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
