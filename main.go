package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/cli"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/openers"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tui"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.UserCacheDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	var (
		input   string
		mode    = flag.String("mode", "cli", "front end: cli, tui (full screen, falls back to cli) or serve")
		port    = flag.String("port", cfg.Port, "listen port for serve mode")
		workers = flag.Int("workers", cfg.Workers, "scoring goroutines (0 = GOMAXPROCS)")
	)
	flag.StringVar(&input, "i", cfg.WordsFile, "path to a newline-delimited word list (default: embedded)")
	flag.StringVar(&input, "input", cfg.WordsFile, "alias for -i")
	flag.Parse()

	// Prompts go to stdout, so logs stay on stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *mode, input, *port, *workers, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("solver exited")
	}
}

// newFullScreen opens the terminal for tui mode.
var newFullScreen = tui.New

func run(ctx context.Context, cfg config.Config, mode, input, port string, workers int, in io.Reader, out io.Writer) error {
	u, err := words.Load(input)
	if err != nil {
		return err
	}
	log.Info().Str("source", u.Source).Int("words", len(u.Words)).Int("dropped", u.Dropped).Msg("word list ready")

	st, cacheRef, closeStore, err := openStore(cfg, words.Hash(u.Words))
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []solver.Option{solver.WithWorkers(workers)}
	switch mode {
	case "cli", "tui":
		bar := progressbar.NewOptions(len(u.Words),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("scoring openers"),
			progressbar.OptionClearOnFinish(),
		)
		var announce sync.Once
		progress := solver.WithProgress(func(int, int) {
			announce.Do(func() { fmt.Fprintln(out, "Computing optimal starting words, please wait...") })
			_ = bar.Add(1)
		})
		res, err := openers.LoadOrCompute(ctx, st, u.Words, solver.WithWorkers(workers), progress)
		if err != nil {
			return err
		}
		info := game.OpenersInfo{
			Words:     res.Words,
			FromCache: res.FromCache,
			Saved:     res.Saved,
			CacheRef:  cacheRef,
			Best:      res.Best,
		}
		s := game.New(u.Words, info, opts...)
		log.Info().Str("session", s.ID).Str("mode", mode).Msg("session started")
		if mode == "tui" {
			ui, err := newFullScreen()
			if err == nil {
				return runFullScreen(ctx, s, ui)
			}
			log.Warn().Err(err).Msg("full-screen terminal unavailable; using line mode")
		}
		return s.Run(ctx, cli.New(in, out))

	case "serve":
		res, err := openers.LoadOrCompute(ctx, st, u.Words, opts...)
		if err != nil {
			return err
		}
		srv := httpserver.New(u.Words, res, cfg.ClientOrigin, opts...)
		log.Info().Str("port", port).Str("origin", cfg.ClientOrigin).Msg("starting solver api")
		return srv.Start(ctx, ":"+port)
	}
	return fmt.Errorf("unknown mode %q (want cli, tui or serve)", mode)
}

// runFullScreen plays s on ui. Log output below error level is held back
// while the screen is up, since it would draw over the board.
func runFullScreen(ctx context.Context, s *game.Session, ui *tui.UI) error {
	prev := log.Logger
	log.Logger = prev.Level(zerolog.ErrorLevel)
	defer func() { log.Logger = prev }()
	defer ui.Close()
	return s.Run(ctx, ui)
}

// openStore builds the configured opening-guess cache. cacheRef describes
// where entries for universe key live, for display; it is empty when uncached.
func openStore(cfg config.Config, key string) (openers.Store, string, func(), error) {
	noop := func() {}
	switch cfg.CacheBackend {
	case config.CacheFile:
		fs := openers.NewFileStore(cfg.CacheDir)
		return fs, fs.Path(key), noop, nil
	case config.CacheSQLite:
		db, err := openers.OpenSQLStore(cfg.CacheDB)
		if err != nil {
			return nil, "", noop, fmt.Errorf("open openers db: %w", err)
		}
		return db, cfg.CacheDB, func() { _ = db.Close() }, nil
	case config.CacheMemory:
		return openers.NewMemoryStore(), "", noop, nil
	}
	return nil, "", noop, nil
}
