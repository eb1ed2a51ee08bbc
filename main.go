package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"syscall"

	"github.com/joshuarubin/go-sway"
	"github.com/joshuarubin/lifecycle"

	"github.com/kndndrj/sway-alternate/alternate"
	"github.com/kndndrj/sway-alternate/internal/core"
)

type eventHandler struct {
	sway.EventHandler

	log   *log.Logger
	ninja *core.NodeNinja

	// stop ends the event loop with the provided cause.
	stop func(error)
}

// Window handler gets called on window events.
func (eh *eventHandler) Window(ctx context.Context, e sway.WindowEvent) {
	if e.Change != "focus" {
		return
	}

	// IMPORTANT: need to search on a fresh tree instead of using the window from event.
	// Events might be queued and out of sync.
	tree, err := eh.ninja.Snapshot(ctx)
	if err != nil {
		eh.fail(fmt.Errorf("eh.ninja.Snapshot: %w", err))
		return
	}

	focused := tree.FocusedNode()
	if focused == nil || focused.Type != sway.NodeCon {
		return
	}

	parent := core.FindParent(tree, focused.ID)

	dir, ok := alternate.Decide(focused, parent)
	if !ok {
		return
	}

	eh.log.Printf("con_id=%d: %s", focused.ID, dir)

	err = eh.ninja.ApplySplit(ctx, dir)
	if err != nil {
		eh.fail(fmt.Errorf("eh.ninja.ApplySplit: %w", err))
		return
	}
}

func (eh *eventHandler) fail(err error) {
	eh.log.Print(err)
	eh.stop(err)
}

// run listens for window events until the context is done or an ipc call fails.
func run(ctx context.Context, logger *log.Logger) error {
	ctx, stop := context.WithCancelCause(ctx)
	defer stop(nil)

	client, err := sway.New(ctx)
	if err != nil {
		return fmt.Errorf("sway.New: %w", err)
	}

	eh := &eventHandler{
		EventHandler: sway.NoOpEventHandler(),
		log:          logger,
		ninja:        core.NewNodeNinja(client),
		stop:         stop,
	}

	// start the event loop
	err = sway.Subscribe(ctx, eh, sway.EventTypeWindow)

	// failure reported by the handler takes precedence
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("sway.Subscribe: %w", err)
	}

	return nil
}

func isSignal(err error) bool {
	serr, ok := err.(lifecycle.ErrSignal)
	if !ok {
		return false
	}
	switch serr.Signal {
	case syscall.SIGINT, syscall.SIGTERM:
		return true
	}
	return false
}

func main() {
	logger := log.New(os.Stdout, "alternate: ", log.LstdFlags)

	cfg, err := alternate.ParseConfig(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("alternate.ParseConfig: %s", err)
	}

	if cfg.PidFile != "" {
		err := core.WritePidFile(cfg.PidFile)
		if err != nil {
			logger.Fatalf("core.WritePidFile: %s", err)
		}
	}

	ctx := lifecycle.New(context.Background())

	lifecycle.GoErr(ctx, func() error {
		return run(ctx, logger)
	})

	err = lifecycle.Wait(ctx)
	if err != nil && !isSignal(err) {
		logger.Fatalf("run: %s", err)
	}
}
