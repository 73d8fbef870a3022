package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/daviddao/tick/pkg/ntpclock"
	"github.com/daviddao/tick/pkg/store"
)

// config is read from the environment once per invocation.
type config struct {
	DBPath    string `env:"TICKCTL_DB" envDefault:".tickctl/tickctl.db"`
	NTPServer string `env:"TICKCTL_NTP" envDefault:"pool.ntp.org"`
	LogLevel  string `env:"TICKCTL_LOG" envDefault:"warn"`
}

// app holds shared state for all CLI subcommands.
type app struct {
	cfg config
	log zerolog.Logger

	// store is opened on first use; convert/now/sync never touch the DB.
	db store.StoreInterface
}

// newApp parses configuration and sets up logging. The database is not
// opened here — see openStore.
func newApp() (*app, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad TICKCTL_LOG %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return &app{cfg: cfg, log: logger}, nil
}

// openStore opens the SQLite database lazily, creating the parent
// directory for the default path.
func (a *app) openStore() (store.StoreInterface, error) {
	if a.db != nil {
		return a.db, nil
	}
	if dir := filepath.Dir(a.cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create %s: %w", dir, err)
		}
	}
	s, err := store.New(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", a.cfg.DBPath, err)
	}
	a.db = s
	return s, nil
}

// ntp builds the NTP clock provider for this invocation's server.
func (a *app) ntp() *ntpclock.Clock {
	return ntpclock.New(a.cfg.NTPServer, a.log)
}

// Close releases the database connection if one was opened.
func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
