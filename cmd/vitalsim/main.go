package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/vitalsim/vitalsim/pkg/api"
	"github.com/vitalsim/vitalsim/pkg/config"
	"github.com/vitalsim/vitalsim/pkg/history"
	"github.com/vitalsim/vitalsim/pkg/lifecycle"
	"github.com/vitalsim/vitalsim/pkg/logger"
	"github.com/vitalsim/vitalsim/pkg/simulator"
	"github.com/vitalsim/vitalsim/pkg/stream"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to config file (built-in defaults when empty)")
	flag.Parse()

	cfg := simulator.DefaultConfig()

	if *configPath != "" {
		if err := config.LoadAndValidate(*configPath, cfg); err != nil {
			return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
		}
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	hist := history.NewManager(cfg.HistorySize)
	gen := simulator.NewGenerator(cfg)

	collector, err := simulator.NewCollector(cfg, gen, hist, zlog)
	if err != nil {
		return fmt.Errorf("failed to create collector: %w", err)
	}

	hub := stream.NewHub(collector, hist, zlog)
	feed := stream.NewFeed(hub, collector.Results())
	server := api.NewServer(cfg.ListenAddr, collector, hist, hub, zlog)

	opts := lifecycle.ServerOptions{
		ServiceName: "vitalsim",
		Logger:      zlog,
		Services: []lifecycle.Service{
			hub,
			feed,
			&simService{collector: collector},
			server,
		},
	}

	if err := lifecycle.RunServer(context.Background(), &opts); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// simService adapts the collector to lifecycle.Service.
type simService struct {
	collector simulator.Collector
}

func (s *simService) Start(ctx context.Context) error {
	return s.collector.Start(ctx)
}

func (s *simService) Stop(context.Context) error {
	return s.collector.Stop()
}
