package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/parallel-probe/linkage"
	"github.com/wippyai/parallel-probe/runtime"
	"github.com/wippyai/parallel-probe/smoke"
)

func main() {
	var (
		probeName   = flag.String("probe", "smoke", "Probe to run")
		threads     = flag.Int("threads", 0, "Force the parallel region width (0 = runtime default)")
		list        = flag.Bool("list", false, "List registered probes and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: build logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
		defer logger.Sync()
	}

	rt, err := buildRuntime(logger, *threads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		for _, info := range rt.Probes() {
			fmt.Printf("%-10s %s\n", info.Name, info.Description)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(rt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if _, err := rt.Run(context.Background(), *probeName, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildRuntime(logger *zap.Logger, threads int) (*runtime.Runtime, error) {
	rt := runtime.New(runtime.WithLogger(logger))

	var smokeOpts []smoke.Option
	var linkageOpts []linkage.Option
	if threads > 0 {
		smokeOpts = append(smokeOpts, smoke.WithThreads(threads))
		linkageOpts = append(linkageOpts, linkage.WithThreads(threads))
	}

	if err := rt.Register(smoke.New(smokeOpts...)); err != nil {
		return nil, err
	}
	if err := rt.Register(linkage.New(linkageOpts...)); err != nil {
		return nil, err
	}
	return rt, nil
}
