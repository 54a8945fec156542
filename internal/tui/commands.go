package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// advisoryTimeout bounds a single advisory round-trip.
const advisoryTimeout = 30 * time.Second

// fetchBudget requests a budget plan for the committed profile.
func (m Model) fetchBudget() tea.Cmd {
	gen := m.advGen
	gateway := m.config.Gateway
	p, ok := m.shell.Profile()
	if gateway == nil || !ok {
		return func() tea.Msg { return budgetLoadedMsg{gen: gen} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), advisoryTimeout)
		defer cancel()
		return budgetLoadedMsg{gen: gen, allocations: gateway.BudgetPlan(ctx, &p)}
	}
}

// fetchForecast requests the commodity price forecast.
func (m Model) fetchForecast() tea.Cmd {
	gen := m.advGen
	gateway := m.config.Gateway
	if gateway == nil {
		return func() tea.Msg { return forecastLoadedMsg{gen: gen} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), advisoryTimeout)
		defer cancel()
		return forecastLoadedMsg{gen: gen, predictions: gateway.PriceForecast(ctx)}
	}
}

// fetchShopping requests a grocery list within the profile's ceiling.
func (m Model) fetchShopping() tea.Cmd {
	gen := m.advGen
	gateway := m.config.Gateway
	p, ok := m.shell.Profile()
	if gateway == nil || !ok {
		return func() tea.Msg { return shoppingLoadedMsg{gen: gen} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), advisoryTimeout)
		defer cancel()
		return shoppingLoadedMsg{gen: gen, items: gateway.ShoppingList(ctx, &p)}
	}
}

// savePreference persists a theme or language choice.
func (m Model) savePreference(key, value string) tea.Cmd {
	store := m.config.Storage
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return preferenceSavedMsg{key: key, err: store.SetPreference(ctx, key, value)}
	}
}
