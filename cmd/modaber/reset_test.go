package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/storage"
)

func newResetStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Logf("Failed to close store: %v", closeErr)
		}
	})
	require.NoError(t, store.Migrate(ctx))

	require.NoError(t, store.SaveCredential(ctx, &model.StoredCredential{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "x",
	}))
	require.NoError(t, store.SetPreference(ctx, storage.PrefTheme, "light"))
	return store
}

func TestPerformResetWithForce(t *testing.T) {
	ctx := context.Background()
	store := newResetStore(t)

	var out strings.Builder
	require.NoError(t, performReset(ctx, store, strings.NewReader(""), &out, true))
	assert.Contains(t, out.String(), "Database reset.")

	creds, err := store.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)

	theme, err := store.GetPreference(ctx, storage.PrefTheme, "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestPerformResetConfirmed(t *testing.T) {
	ctx := context.Background()
	store := newResetStore(t)

	var out strings.Builder
	require.NoError(t, performReset(ctx, store, strings.NewReader("y\n"), &out, false))
	assert.Contains(t, out.String(), "This will delete 1 account(s)")
	assert.Contains(t, out.String(), "Database reset.")

	creds, err := store.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestPerformResetDeclined(t *testing.T) {
	ctx := context.Background()
	store := newResetStore(t)

	var out strings.Builder
	require.NoError(t, performReset(ctx, store, strings.NewReader("n\n"), &out, false))
	assert.Contains(t, out.String(), "Reset canceled.")

	// Nothing was deleted.
	creds, err := store.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Len(t, creds, 1)
}
