// Command literal-generator renders values into constant literal tables.
//
// Usage:
//
//	literal-generator gen -m tables.yaml -o src/tables
//	literal-generator check -m tables.yaml -o src/tables
//	literal-generator parse value.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"literal-generator/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.NewRootCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
