package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modaber/modaber/internal/advisor"
	"github.com/modaber/modaber/internal/auth"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/storage"
	"github.com/modaber/modaber/internal/tui"
)

// runApp is the root command: open the database, wire the services and hand
// the terminal to the TUI.
func runApp(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	demo, _ := cmd.Flags().GetBool("demo")

	var gateway *advisor.Gateway
	if client := initAdvisor(ctx, demo); client != nil {
		gateway = advisor.NewGateway(client)
	}

	// Stored preferences win over the config file defaults.
	themeName, err := store.GetPreference(ctx, storage.PrefTheme, viper.GetString("ui.theme"))
	if err != nil {
		return err
	}
	langPref, err := store.GetPreference(ctx, storage.PrefLanguage, viper.GetString("ui.language"))
	if err != nil {
		return err
	}
	lang, _ := i18n.ParseLanguage(langPref)

	return tui.Run(ctx,
		tui.WithStorage(store),
		tui.WithAuth(auth.NewService(store)),
		tui.WithGateway(gateway),
		tui.WithTheme(themeName),
		tui.WithLanguage(lang),
	)
}
