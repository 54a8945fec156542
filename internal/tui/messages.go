package tui

import "github.com/modaber/modaber/internal/model"

// Advisory results. Each carries the generation it was requested under;
// results from a previous generation are stale and dropped.
type budgetLoadedMsg struct {
	allocations []model.BudgetAllocation
	gen         int
}

type forecastLoadedMsg struct {
	predictions []model.PricePrediction
	gen         int
}

type shoppingLoadedMsg struct {
	items []model.ShoppingItem
	gen   int
}

// preferenceSavedMsg reports a persisted theme or language preference.
type preferenceSavedMsg struct {
	err error
	key string
}
