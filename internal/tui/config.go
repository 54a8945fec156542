package tui

import (
	"github.com/modaber/modaber/internal/advisor"
	"github.com/modaber/modaber/internal/auth"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/storage"
)

// Config holds TUI configuration.
type Config struct {
	Storage   *storage.SQLiteStorage
	Auth      auth.Service
	Gateway   *advisor.Gateway
	ThemeName string
	Language  i18n.Language
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ThemeName: "dark",
		Language:  i18n.English,
		Width:     80,
		Height:    24,
	}
}

// WithStorage sets the credential and preference store.
func WithStorage(store *storage.SQLiteStorage) Option {
	return func(c *Config) {
		c.Storage = store
	}
}

// WithAuth sets the account service.
func WithAuth(svc auth.Service) Option {
	return func(c *Config) {
		c.Auth = svc
	}
}

// WithGateway sets the advisory gateway.
func WithGateway(gw *advisor.Gateway) Option {
	return func(c *Config) {
		c.Gateway = gw
	}
}

// WithTheme sets the visual theme by name.
func WithTheme(name string) Option {
	return func(c *Config) {
		c.ThemeName = name
	}
}

// WithLanguage sets the UI language.
func WithLanguage(lang i18n.Language) Option {
	return func(c *Config) {
		c.Language = lang
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
