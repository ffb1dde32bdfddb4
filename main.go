package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mobile-next/gestured/cli"
	"github.com/mobile-next/gestured/devices"
)

func main() {
	// create shutdown hook registry for cleanup tracking
	hook := devices.NewShutdownHook()
	cli.SetShutdownHook(hook)

	// setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// run command in goroutine
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute()
	}()

	// wait for command completion or signal
	select {
	case <-sigChan:
		// stop libinput so it does not outlive the daemon
		if err := hook.Shutdown(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(0)
	case err := <-done:
		_ = hook.Shutdown()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
