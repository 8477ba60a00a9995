package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tuncanbit/txe/internal/application/replayservice"
	"github.com/tuncanbit/txe/internal/server"
	"github.com/tuncanbit/txe/pkg/config"
	"github.com/tuncanbit/txe/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "./config.yaml", "path to the yaml config file")
		index      = flag.String("index", "", "deposit index backend: memory or disk")
		serve      = flag.Bool("serve", false, "run the HTTP API instead of a one-shot replay")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <transactions.csv>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Replays a transaction log and writes the account snapshot to stdout.")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *index != "" {
		cfg.Engine.Index = *index
	}
	if *debug {
		cfg.Logger.Level = "debug"
	}

	log := logger.NewWithConfig(cfg.Logger)
	replaySvc := replayservice.New(cfg.Engine, log)

	if *serve {
		srv := server.New(cfg, replaySvc, log)
		srv.Start()
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	input, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("path", flag.Arg(0)).Msg("Failed to open transaction log")
		os.Exit(1)
	}
	defer input.Close()

	if err := replaySvc.Run(input, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Replay aborted, no snapshot written")
		os.Exit(1)
	}
}
