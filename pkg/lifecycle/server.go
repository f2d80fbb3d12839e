// Package lifecycle pkg/lifecycle/server.go
package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const ShutdownTimeout = 10 * time.Second

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// ErrorReporter is implemented by services that surface asynchronous
// errors after a successful Start.
type ErrorReporter interface {
	Errors() <-chan error
}

// ServerOptions holds configuration for running a set of services.
type ServerOptions struct {
	ServiceName string
	Services    []Service
	Logger      *zap.Logger
}

// RunServer starts the services in order and blocks until a shutdown
// signal, a service error, or context cancellation. Services are
// stopped in reverse order with a timeout.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("starting service", zap.String("name", opts.ServiceName))

	errChan := make(chan error, 1)

	started := make([]Service, 0, len(opts.Services))

	for _, svc := range opts.Services {
		if err := svc.Start(ctx); err != nil {
			stopServices(started, log)
			return fmt.Errorf("failed to start service: %w", err)
		}

		started = append(started, svc)

		if reporter, ok := svc.(ErrorReporter); ok {
			go forwardErrors(ctx, reporter.Errors(), errChan)
		}
	}

	return handleShutdown(ctx, cancel, started, errChan, log)
}

func handleShutdown(ctx context.Context, cancel context.CancelFunc, services []Service, errChan chan error, log *zap.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Info("received signal, initiating shutdown", zap.String("signal", sig.String()))
	case err := <-errChan:
		log.Error("received error, initiating shutdown", zap.Error(err))
		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		log.Info("context canceled, initiating shutdown")
		runErr = ctx.Err()
	}

	cancel()

	stopServices(services, log)

	return runErr
}

func forwardErrors(ctx context.Context, src <-chan error, dst chan error) {
	select {
	case <-ctx.Done():
	case err, ok := <-src:
		if !ok {
			return
		}

		select {
		case dst <- err:
		default:
		}
	}
}

func stopServices(services []Service, log *zap.Logger) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	// Reverse of start order.
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Stop(shutdownCtx); err != nil {
			log.Error("error during service shutdown", zap.Error(err))
		}
	}
}
