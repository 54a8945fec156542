package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/model"
)

func testProfile() model.UserProfile {
	return model.UserProfile{
		Account:         model.UserAccount{Name: "Alice", Email: "a@x.com"},
		MonthlySalary:   6000,
		FamilyMembers:   4,
		MaritalStatus:   model.MaritalMarried,
		LivingCostLevel: model.LivingCostMedium,
		IncomeStability: model.IncomeFullTime,
		FixedExpenses: model.FixedExpenses{
			Rent: 1000, Electricity: 100, Water: 50, Gas: 50,
			Transportation: 150, Internet: 50, Mobile: 30,
		},
		Debts:          []model.Debt{{ID: "d1", Description: "car loan", MonthlyAmount: 200}},
		AnnualExpenses: []model.AnnualExpense{{ID: "a1", Description: "school fees", TotalAmount: 1200}},
		Preferences: model.Preferences{
			SavingPriority:          model.PriorityHigh,
			RiskTolerance:           model.PriorityLow,
			EmergencyFundPercentage: 10,
			MonthlyPriorities:       model.DefaultMonthlyPriorities(),
		},
	}
}

func TestBudgetPrompt_RemainingIncome(t *testing.T) {
	p := testProfile()
	mock := &MockClient{Response: json.RawMessage(`[]`)}
	g := NewGateway(mock)

	g.BudgetPlan(context.Background(), &p)

	require.Len(t, mock.Prompts, 1)
	// 6000 - 1430 - 200 - 100 - 0 = 4270
	assert.Contains(t, mock.Prompts[0], "REMAINING income of 4270.00")
	assert.Contains(t, mock.Prompts[0], "cat_food > cat_transport")
}

func TestShoppingPrompt_Ceiling(t *testing.T) {
	p := testProfile()
	mock := &MockClient{Response: json.RawMessage(`[]`)}
	g := NewGateway(mock)

	g.ShoppingList(context.Background(), &p)

	require.Len(t, mock.Prompts, 1)
	assert.Contains(t, mock.Prompts[0], "must not exceed 600.00 EGP")
	assert.Contains(t, mock.Prompts[0], "family of 4")
}

func TestGateway_ValidResponses(t *testing.T) {
	p := testProfile()
	g := NewGateway(DemoClient{})
	ctx := context.Background()

	allocations := g.BudgetPlan(ctx, &p)
	require.NotEmpty(t, allocations)
	assert.Equal(t, "cat_food", allocations[0].Category)

	predictions := g.PriceForecast(ctx)
	require.Len(t, predictions, 6)
	assert.Equal(t, model.TrendUp, predictions[0].Trend)

	items := g.ShoppingList(ctx, &p)
	require.NotEmpty(t, items)
	assert.True(t, items[0].IsPriority)
}

func TestGateway_FailuresDegradeToEmpty(t *testing.T) {
	p := testProfile()
	ctx := context.Background()

	tests := []struct {
		name   string
		client *MockClient
	}{
		{
			name:   "transport error",
			client: &MockClient{Err: errors.New("network down")},
		},
		{
			name:   "malformed json",
			client: &MockClient{Response: json.RawMessage(`{"not": "an array"`)},
		},
		{
			name:   "wrong shape",
			client: &MockClient{Response: json.RawMessage(`{"category": "x"}`)},
		},
		{
			name:   "schema violation",
			client: &MockClient{Response: json.RawMessage(`[{"amount": 10}]`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGateway(tt.client)
			assert.Empty(t, g.BudgetPlan(ctx, &p))
			assert.Empty(t, g.PriceForecast(ctx))
			assert.Empty(t, g.ShoppingList(ctx, &p))
		})
	}
}

func TestGateway_TrendValidation(t *testing.T) {
	g := NewGateway(&MockClient{Response: json.RawMessage(
		`[{"item": "Eggs", "currentPrice": 60, "predictedPrice": 62, "trend": "sideways", "confidence": 0.5, "advice": "n/a"}]`,
	)})
	assert.Empty(t, g.PriceForecast(context.Background()))
}
