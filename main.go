package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/varseand/claves/pkg/cli"
)

func main() {
	// Ctrl-C cancela a chamada em andamento
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
