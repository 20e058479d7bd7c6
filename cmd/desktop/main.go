package main

import (
	"fmt"
	"os"

	"github.com/tomz197/meteordodge/internal/audio"
	"github.com/tomz197/meteordodge/internal/config"
	"github.com/tomz197/meteordodge/internal/desktop"
	"github.com/tomz197/meteordodge/internal/desktop/window"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/score"
)

func main() {
	// A window leaves the terminal free, so log to stderr unless a file is set.
	logger := config.NewLogger(os.Stderr, "desktop")
	if config.GetEnv("METEOR_LOG_FILE", "") != "" {
		logOut, closeLog := config.LogWriter()
		defer func() { _ = closeLog() }()
		logger = config.NewLogger(logOut, "desktop")
	}

	store := score.NewFileStore(config.DataPath(), logger).Profile("local")

	var events session.Events = session.NopEvents{}
	if config.GetEnvBool("METEOR_AUDIO", true) {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err == nil {
			defer sm.Close()
			events = sm
		}
	}

	d := desktop.NewDriver(desktop.Options{
		Store:  store,
		Events: events,
		Logger: logger,
		Seed:   config.GetEnvInt64("METEOR_SEED", 0),
	})
	if err := window.Run(d); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
