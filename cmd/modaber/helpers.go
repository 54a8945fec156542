package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/modaber/modaber/internal/advisor"
	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/config"
	"github.com/modaber/modaber/internal/storage"
)

// initStorage opens the local database with proper path expansion and runs
// migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DataPath("modaber.db")
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initAdvisor builds the advisory client. Demo mode and a missing API key
// both degrade rather than fail: demo serves canned responses, a missing key
// serves none at all.
func initAdvisor(ctx context.Context, demo bool) advisor.Client {
	if demo {
		return advisor.DemoClient{}
	}

	client, err := advisor.NewGeminiClient(ctx, advisor.Config{
		APIKey: viper.GetString("gemini.api_key"),
		Model:  viper.GetString("gemini.model"),
	})
	if err != nil {
		if errors.Is(err, common.ErrMissingConfig) {
			common.LogInfo("no gemini api key configured, advisory views will be empty", nil)
		} else {
			common.LogError(err, "failed to create advisory client", nil)
		}
		return nil
	}
	return client
}
