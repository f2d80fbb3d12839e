package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type fakeService struct {
	name     string
	startErr error
	errCh    chan error

	mu      sync.Mutex
	started bool
	stopped bool
}

func (f *fakeService) Start(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.startErr != nil {
		return f.startErr
	}

	f.started = true

	return nil
}

func (f *fakeService) Stop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopped = true

	return nil
}

func (f *fakeService) Errors() <-chan error {
	if f.errCh == nil {
		return nil
	}

	return f.errCh
}

func (f *fakeService) wasStarted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.started
}

func (f *fakeService) wasStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stopped
}

func TestRunServerStartFailure(t *testing.T) {
	first := &fakeService{name: "first"}
	failing := &fakeService{name: "failing", startErr: errBoom}

	err := RunServer(context.Background(), &ServerOptions{
		ServiceName: "test",
		Services:    []Service{first, failing},
	})

	require.ErrorIs(t, err, errBoom)

	// Services started before the failure are stopped again.
	assert.True(t, first.wasStarted())
	assert.True(t, first.wasStopped())
	assert.False(t, failing.wasStopped())
}

func TestRunServerContextCancel(t *testing.T) {
	svc := &fakeService{name: "svc"}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- RunServer(ctx, &ServerOptions{
			ServiceName: "test",
			Services:    []Service{svc},
		})
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after cancellation")
	}

	assert.True(t, svc.wasStopped())
}

func TestRunServerReportedError(t *testing.T) {
	reporter := &fakeService{name: "reporter", errCh: make(chan error, 1)}

	done := make(chan error, 1)

	go func() {
		done <- RunServer(context.Background(), &ServerOptions{
			ServiceName: "test",
			Services:    []Service{reporter},
		})
	}()

	reporter.errCh <- errBoom

	select {
	case err := <-done:
		require.ErrorIs(t, err, errBoom)
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after reported error")
	}

	assert.True(t, reporter.wasStopped())
}
