package main

import (
	"context"
	"fmt"
	"time"

	"assistente-gestao/config"
	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/storage"
	"assistente-gestao/internal/task"
	"assistente-gestao/internal/task/usecase"
	"assistente-gestao/pkg/datemath"
	"assistente-gestao/pkg/log"
)

// cliScope identifies terminal callers in logs.
var cliScope = model.Scope{UserID: "cli", Source: model.SourceCLI}

// newInterpreter builds the interpreter in the configured timezone, pinned
// to opts.today when set.
func newInterpreter(opts *rootOptions, timezone string) (*command.Interpreter, error) {
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, err
	}

	options := []command.Option{command.WithLocation(parser.Location())}
	if opts.today != "" {
		day, err := time.ParseInLocation(model.DateLayout, opts.today, parser.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid --today %q: expected YYYY-MM-DD", opts.today)
		}
		options = append(options, command.WithClock(func() time.Time { return day }))
	}
	return command.New(options...), nil
}

// env is what a storage-backed subcommand works with.
type env struct {
	uc    task.UseCase
	today string // YYYY-MM-DD
}

// withUseCase opens storage, runs fn and closes storage again.
func withUseCase(ctx context.Context, opts *rootOptions, fn func(context.Context, env) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.db != "" {
		cfg.Storage.Driver = config.StorageSQLite
		cfg.Storage.SQLitePath = opts.db
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{Level: level, Mode: cfg.Logger.Mode, Encoding: "console"})

	interp, err := newInterpreter(opts, cfg.Interpreter.Timezone)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, l, cfg.Storage, cfg.Memos)
	if err != nil {
		return err
	}
	defer store.Close()

	// Calendar sync stays with the server; the CLI never schedules events.
	uc := usecase.New(l, store.Repo, interp, nil, "", nil)
	return fn(ctx, env{uc: uc, today: datemath.Format(interp.Today())})
}
