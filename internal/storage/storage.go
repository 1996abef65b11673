// Package storage opens the task repository selected by configuration.
package storage

import (
	"context"
	"fmt"

	"assistente-gestao/config"
	"assistente-gestao/internal/task/repository"
	memosRepo "assistente-gestao/internal/task/repository/memos"
	sqliteRepo "assistente-gestao/internal/task/repository/sqlite"
	"assistente-gestao/pkg/log"
)

// Store is an opened task repository with its lifecycle hooks.
type Store struct {
	Repo repository.Repository
	// Ping reports whether the backend is reachable.
	Ping  func(ctx context.Context) error
	close func() error
}

// Close releases the backend.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the configured backend. The sqlite database is migrated
// before use.
func Open(ctx context.Context, l log.Logger, storageCfg config.StorageConfig, memosCfg config.MemosConfig) (*Store, error) {
	switch storageCfg.Driver {
	case config.StorageSQLite:
		return openSQLite(ctx, l, storageCfg.SQLitePath)
	case config.StorageMemos:
		client := memosRepo.NewClient(memosCfg.URL, memosCfg.AccessToken)
		l.Infof(ctx, "storage: using Memos at %s", memosCfg.URL)
		return &Store{
			Repo: memosRepo.New(client, memosCfg.ExternalURL, l),
			Ping: func(ctx context.Context) error {
				_, err := client.ListMemos(ctx, memosRepo.ListMemosRequest{PageSize: 1})
				return err
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", storageCfg.Driver)
	}
}

func openSQLite(ctx context.Context, l log.Logger, path string) (*Store, error) {
	db, err := sqliteRepo.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	version, err := sqliteRepo.Migrate(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite %s: %w", path, err)
	}
	l.Infof(ctx, "storage: using SQLite at %s (schema v%d)", path, version)

	return &Store{
		Repo:  sqliteRepo.New(db, l),
		Ping:  db.PingContext,
		close: db.Close,
	}, nil
}
