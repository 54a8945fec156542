package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/model"
)

func TestRenderAccountsEmpty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, renderAccounts(&out, nil))
	assert.Contains(t, out.String(), "No accounts registered.")
}

func TestRenderAccountsTable(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	creds := []model.StoredCredential{
		{CreatedAt: created, Name: "Test User", Email: "test@example.com", PasswordHash: "x"},
		{CreatedAt: created, Name: "Google User", Email: "user@gmail.com", Social: true},
	}

	var out strings.Builder
	require.NoError(t, renderAccounts(&out, creds))

	got := out.String()
	assert.Contains(t, got, "EMAIL")
	assert.Contains(t, got, "CREATED")
	assert.Contains(t, got, "test@example.com")
	assert.Contains(t, got, "password")
	assert.Contains(t, got, "user@gmail.com")
	assert.Contains(t, got, "social")
	assert.Contains(t, got, "2026-08-01")
}
