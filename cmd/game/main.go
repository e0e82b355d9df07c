package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kh7designs/interstellar/internal/config"
	"github.com/kh7designs/interstellar/internal/loop"
	"golang.org/x/term"
)

func main() {
	opts := loop.Options{}
	if path := config.GetEnv("INTERSTELLAR_TUNING", ""); path != "" {
		tuning, err := config.LoadTuning(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load tuning: %v\n", err)
			os.Exit(1)
		}
		opts.Tuning = &tuning
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
