package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/meteordodge/internal/audio"
	"github.com/tomz197/meteordodge/internal/config"
	"github.com/tomz197/meteordodge/internal/loop"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/score"
)

func main() {
	logOut, closeLog := config.LogWriter()
	defer func() { _ = closeLog() }()
	logger := config.NewLogger(logOut, "game")

	store := score.NewFileStore(config.DataPath(), logger).Profile("local")

	var events session.Events = session.NopEvents{}
	if config.GetEnvBool("METEOR_AUDIO", true) {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err == nil {
			defer sm.Close()
			events = sm
		}
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
	err = loop.Run(context.Background(), reader, os.Stdout, loop.Options{
		Store:  store,
		Events: events,
		Logger: logger,
		Seed:   config.GetEnvInt64("METEOR_SEED", 0),
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
