package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestCredentialRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	cred := &model.StoredCredential{
		Email:        "a@x.com",
		Name:         "Alice",
		PasswordHash: "$2a$10$fakehash",
		Avatar:       "https://example.com/a.png",
	}

	if err := store.SaveCredential(ctx, cred); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}

	got, err := store.GetCredential(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetCredential() error = %v", err)
	}
	if got.Name != "Alice" || got.PasswordHash != cred.PasswordHash || got.Avatar != cred.Avatar {
		t.Errorf("GetCredential() = %+v, want fields matching %+v", got, cred)
	}
	if got.CreatedAt.IsZero() {
		t.Error("GetCredential() returned zero created_at")
	}
}

func TestSaveCredential_Duplicate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	cred := &model.StoredCredential{Email: "a@x.com", Name: "Alice", PasswordHash: "h1"}
	if err := store.SaveCredential(ctx, cred); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}

	err := store.SaveCredential(ctx, &model.StoredCredential{Email: "a@x.com", Name: "Mallory", PasswordHash: "h2"})
	if !errors.Is(err, common.ErrDuplicateAccount) {
		t.Errorf("SaveCredential() duplicate error = %v, want ErrDuplicateAccount", err)
	}
}

func TestGetCredential_NotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetCredential(context.Background(), "missing@x.com")
	if !errors.Is(err, common.ErrAccountNotFound) {
		t.Errorf("GetCredential() error = %v, want ErrAccountNotFound", err)
	}
}

func TestListCredentials(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		cred := &model.StoredCredential{Email: email, Name: "User " + email, PasswordHash: "h"}
		if err := store.SaveCredential(ctx, cred); err != nil {
			t.Fatalf("SaveCredential(%s) error = %v", email, err)
		}
	}

	creds, err := store.ListCredentials(ctx)
	if err != nil {
		t.Fatalf("ListCredentials() error = %v", err)
	}
	if len(creds) != 3 {
		t.Errorf("ListCredentials() returned %d credentials, want 3", len(creds))
	}
}

func TestPreferences(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Unset key falls back
	theme, err := store.GetPreference(ctx, PrefTheme, "light")
	if err != nil {
		t.Fatalf("GetPreference() error = %v", err)
	}
	if theme != "light" {
		t.Errorf("GetPreference() fallback = %q, want light", theme)
	}

	if err := store.SetPreference(ctx, PrefTheme, "dark"); err != nil {
		t.Fatalf("SetPreference() error = %v", err)
	}
	// Overwrite is allowed
	if err := store.SetPreference(ctx, PrefTheme, "light"); err != nil {
		t.Fatalf("SetPreference() overwrite error = %v", err)
	}

	theme, err = store.GetPreference(ctx, PrefTheme, "dark")
	if err != nil {
		t.Fatalf("GetPreference() error = %v", err)
	}
	if theme != "light" {
		t.Errorf("GetPreference() = %q, want light", theme)
	}
}
