package advisor

import (
	"context"
	"encoding/json"

	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/model"
)

// Gateway issues the three advisory requests. There is no retry, no caching
// and no de-duplication: each view-mount issues one fresh call.
type Gateway struct {
	client Client
}

// NewGateway creates a gateway over the given client.
func NewGateway(client Client) *Gateway {
	return &Gateway{client: client}
}

// BudgetPlan requests an allocation of the remaining income. A failed or
// malformed response yields an empty slice.
func (g *Gateway) BudgetPlan(ctx context.Context, p *model.UserProfile) []model.BudgetAllocation {
	raw, err := g.client.Generate(ctx, buildBudgetPrompt(p), budgetSchema())
	if err != nil {
		common.LogError(err, "budget optimization request failed", nil)
		return nil
	}

	var allocations []model.BudgetAllocation
	if err := json.Unmarshal(raw, &allocations); err != nil {
		common.LogError(err, "budget optimization response malformed", nil)
		return nil
	}
	for _, a := range allocations {
		if a.Category == "" {
			common.LogError(errInvalidShape, "budget allocation missing category", nil)
			return nil
		}
	}
	return allocations
}

// PriceForecast requests next-month price predictions for the fixed
// commodity list.
func (g *Gateway) PriceForecast(ctx context.Context) []model.PricePrediction {
	raw, err := g.client.Generate(ctx, buildForecastPrompt(), forecastSchema())
	if err != nil {
		common.LogError(err, "price forecast request failed", nil)
		return nil
	}

	var predictions []model.PricePrediction
	if err := json.Unmarshal(raw, &predictions); err != nil {
		common.LogError(err, "price forecast response malformed", nil)
		return nil
	}
	for _, pred := range predictions {
		if pred.Item == "" || !validTrend(pred.Trend) || pred.Confidence < 0 || pred.Confidence > 1 {
			common.LogError(errInvalidShape, "price prediction failed validation", common.Fields{"item": pred.Item})
			return nil
		}
	}
	return predictions
}

// ShoppingList requests a grocery list under the profile's derived budget
// ceiling.
func (g *Gateway) ShoppingList(ctx context.Context, p *model.UserProfile) []model.ShoppingItem {
	raw, err := g.client.Generate(ctx, buildShoppingPrompt(p), shoppingSchema())
	if err != nil {
		common.LogError(err, "shopping list request failed", nil)
		return nil
	}

	var items []model.ShoppingItem
	if err := json.Unmarshal(raw, &items); err != nil {
		common.LogError(err, "shopping list response malformed", nil)
		return nil
	}
	for _, item := range items {
		if item.Name == "" || item.EstimatedCost < 0 {
			common.LogError(errInvalidShape, "shopping item failed validation", common.Fields{"name": item.Name})
			return nil
		}
	}
	return items
}

func validTrend(t model.Trend) bool {
	switch t {
	case model.TrendUp, model.TrendDown, model.TrendStable:
		return true
	default:
		return false
	}
}
