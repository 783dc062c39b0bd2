// Command procfile parses, validates and queries Procfiles.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/procfile/cli"
	"github.com/ardnew/procfile/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", slog.Any("error", err)) // slog uses LogValue()
		os.Exit(1)
	}
}
