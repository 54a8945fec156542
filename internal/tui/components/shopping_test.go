package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

func newTestShopping() ShoppingModel {
	m := NewShoppingModel(1200, themes.Dark, i18n.New(i18n.English))
	m.SetResults([]model.ShoppingItem{
		{Name: "Rice", Quantity: "5 kg", EstimatedCost: 120, IsPriority: true},
		{Name: "Chicken", Quantity: "3 kg", EstimatedCost: 250, IsPriority: true},
		{Name: "Snacks", Quantity: "2 packs", EstimatedCost: 60},
	})
	return m
}

func TestShoppingLoadingState(t *testing.T) {
	m := NewShoppingModel(1200, themes.Dark, i18n.New(i18n.English))
	assert.Contains(t, m.View(), i18n.New(i18n.English).T(i18n.KeyCuratingList))
}

func TestShoppingEmptyResults(t *testing.T) {
	m := NewShoppingModel(1200, themes.Dark, i18n.New(i18n.English))
	m.SetResults(nil)
	assert.Contains(t, m.View(), i18n.New(i18n.English).T(i18n.KeyNoData))
}

func TestShoppingToggleAndTotal(t *testing.T) {
	m := newTestShopping()

	m, _ = m.Update(keyMsg(" "))
	assert.InDelta(t, 120, m.CheckedTotal(), 0.001)

	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg(" "))
	assert.InDelta(t, 370, m.CheckedTotal(), 0.001)

	// Toggling again unchecks.
	m, _ = m.Update(keyMsg(" "))
	assert.InDelta(t, 120, m.CheckedTotal(), 0.001)
}

func TestShoppingCursorBounds(t *testing.T) {
	m := newTestShopping()

	m, _ = m.Update(keyMsg("up"))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("down"))
	}
	assert.Equal(t, 2, m.cursor)
}

func TestShoppingCheckout(t *testing.T) {
	m := newTestShopping()
	m, _ = m.Update(keyMsg(" "))
	require.InDelta(t, 120, m.CheckedTotal(), 0.001)

	m, _ = m.Update(keyMsg("c"))
	assert.Zero(t, m.CheckedTotal())
	assert.Contains(t, m.View(), i18n.New(i18n.English).T(i18n.KeyCheckoutDone))

	// Moving the cursor dismisses the notice.
	m, _ = m.Update(keyMsg("down"))
	assert.NotContains(t, m.View(), i18n.New(i18n.English).T(i18n.KeyCheckoutDone))
}

func TestShoppingCheckoutWithoutChecksIsNoop(t *testing.T) {
	m := newTestShopping()
	m, _ = m.Update(keyMsg("c"))
	assert.NotContains(t, m.View(), i18n.New(i18n.English).T(i18n.KeyCheckoutDone))
}

func TestShoppingSetResultsResetsChecks(t *testing.T) {
	m := newTestShopping()
	m, _ = m.Update(keyMsg(" "))
	require.InDelta(t, 120, m.CheckedTotal(), 0.001)

	m.SetResults([]model.ShoppingItem{{Name: "Flour", Quantity: "1 kg", EstimatedCost: 40}})
	assert.Zero(t, m.CheckedTotal())
}

func TestShoppingViewShowsCeilingAndPriority(t *testing.T) {
	m := newTestShopping()
	view := m.View()
	assert.Contains(t, view, "1200.00")
	assert.Contains(t, view, i18n.New(i18n.English).T(i18n.KeyMustHave))
}
