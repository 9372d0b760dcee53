package main

import (
	"context"
	"fmt"
	"path/filepath"

	"kubyshka/internal/common"
	"kubyshka/internal/config"
	"kubyshka/internal/storage"

	"github.com/spf13/viper"
)

// openKV initializes the configured repository backend.
func openKV(ctx context.Context) (storage.KV, error) {
	dataDir := config.ExpandPath(viper.GetString("data.dir"))

	switch backend := viper.GetString("storage.backend"); backend {
	case "file":
		return storage.NewFileKV(dataDir)
	case "sqlite":
		kv, err := storage.NewSQLiteKV(filepath.Join(dataDir, "kubyshka.db"))
		if err != nil {
			return nil, err
		}
		if err := kv.Migrate(ctx); err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return kv, nil
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownBackend, backend)
	}
}

func currency() string {
	return viper.GetString("currency")
}
