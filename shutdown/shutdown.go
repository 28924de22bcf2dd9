package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []func()       //nolint:gochecknoglobals
	channel chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers h to run once a shutdown starts, before the
// context from SetupHandler is canceled.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// Shutdown starts the shutdown as if SIGINT had arrived. It does nothing
// when no handler is installed or a shutdown is already underway.
func Shutdown() {
	mut.Lock()
	defer mut.Unlock()

	if channel == nil {
		return
	}

	select {
	case channel <- os.Interrupt:
	default:
	}
}

// SetupHandler returns a child of parent that is canceled on the first
// SIGINT or SIGTERM, after the registered hooks have run.
func SetupHandler(parent context.Context) context.Context {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	channel = sig
	mut.Unlock()

	ctx, cancel := context.WithCancel(parent)

	go func() {
		var received os.Signal

		select {
		case received = <-sig:
			slog.Warn("Received " + received.String() + ", shutting down...")
		case <-ctx.Done():
		}

		signal.Stop(sig)

		mut.Lock()
		if channel == sig {
			channel = nil
		}
		mut.Unlock()

		if received != nil {
			cleanup()
		}

		cancel()
	}()

	return ctx
}

func cleanup() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
