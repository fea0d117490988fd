package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mashiike/pairmap"
)

func main() {
	cli := pairmap.NewCLI()
	cli.SetLogLevelFunc(func(level string) error {
		_, err := pairmap.LoggerSetup(os.Stderr, level)
		return err
	})
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP, os.Interrupt)
	defer cancel()

	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		log.Printf("[error] %s", err)
		cancel()
		os.Exit(1)
	}
}
