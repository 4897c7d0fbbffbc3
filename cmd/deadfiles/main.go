package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arxeiss/deadfiles/analysis"

	_ "embed"
)

var (
	//go:embed doc.go
	doc string

	debugFlag = flag.Bool("debug", false, "enable debug output")
	helpFlag  = flag.Bool("help", false, "show help")

	jsonFlag = flag.Bool("json", false, "output one JSON document instead of text sections")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 0 || *helpFlag {
		usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	runner := analysis.New(os.Stdout, os.Stderr, ".")
	runner.DebugFlag = *debugFlag
	runner.JSONFlag = *jsonFlag

	err := runner.Run(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func usage() {
	// Extract the content of the /* ... */ comment in doc.go.
	_, after, _ := strings.Cut(doc, "/*\n")
	doc, _, _ := strings.Cut(after, "*/")
	_, _ = os.Stderr.WriteString(doc + `
Flags:

`)
	flag.PrintDefaults()
}
