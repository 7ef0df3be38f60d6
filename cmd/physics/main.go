package main

import (
	"errors"
	"fmt"
	"os"

	"physics-engine/internal/commands"
	"physics-engine/internal/env"
	"physics-engine/internal/logger"
)

func main() {
	log := logger.New()
	keys, err := env.Load(".env")
	if err != nil {
		log.Warnf("%v", err)
	}
	for _, k := range keys {
		log.Debugf("env: %s=%s", k, os.Getenv(k))
	}

	reg := newRegistry(log, os.Stdout)
	if err := reg.Execute(os.Args[1:]); err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "physics:", err)
		if errors.Is(err, commands.ErrMissingCommand) || errors.Is(err, commands.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, "usage: physics <command> [flags]")
			reg.PrintUsage(os.Stderr)
		}
		os.Exit(1)
	}
}
