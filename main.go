package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const maxShutdownTime = 5 * time.Second

func main() {
	var configPath, dictPath string
	var serve, dump bool
	flag.StringVar(&configPath, "config", "", "path to config.yaml")
	flag.StringVar(&dictPath, "dict", "", "dictionary file, overrides the config")
	flag.BoolVar(&serve, "serve", false, "serve the HTTP API instead of the interactive prompt")
	flag.BoolVar(&dump, "dump", false, "print the table buckets after loading and exit")
	flag.Parse()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if dictPath != "" {
		cfg.Dictionary = dictPath
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	if err := run(cfg, serve, dump); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config, serve, dump bool) error {
	fs := afero.NewOsFs()

	table := cfg.NewTable()
	stats, err := LoadDictionary(fs, cfg.Dictionary, table)
	if err != nil {
		return err
	}
	log.Infof("Loaded %s, %s buckets", stats, humanize.Comma(int64(table.Capacity())))

	engine := CreateEngine(table)
	defer engine.Close()

	if dump {
		return engine.Dump(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch {
		// Runs before engine.Close, so no reload can land on a closed engine.
		wait := StartWatcher(ctx, fs, cfg, engine)
		defer func() {
			stop()
			wait()
		}()
	}

	if !serve {
		return RunREPL(ctx, os.Stdin, os.Stdout, engine)
	}

	s := InitServer(cfg.Address, engine)
	errc := make(chan error, 1)
	go func() {
		errc <- s.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), maxShutdownTime)
	defer cancel()
	return s.Stop(shutdownCtx)
}
