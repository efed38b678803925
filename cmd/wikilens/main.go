// Command wikilens analyzes wiki content: change impact reports, grounded
// search answers, code assistance, video summaries, and test planning.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	Execute(ctx)
}
