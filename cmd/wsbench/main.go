// Command wsbench times several whitespace predicates over large synthetic
// buffers and prints the elapsed time and match count of each.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "wsbench:", err)
		stop()
		os.Exit(1)
	}
}
