package advisor

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/modaber/modaber/internal/model"
)

// buildBudgetPrompt aggregates the profile into the budget-optimization
// request. The service is asked to distribute only the income remaining
// after fixed costs, debt repayments, annual provision and optional
// services, honoring the user-defined priority ranking.
func buildBudgetPrompt(p *model.UserProfile) string {
	priorities := make([]string, len(p.Preferences.MonthlyPriorities))
	for i, tag := range p.Preferences.MonthlyPriorities {
		priorities[i] = string(tag)
	}

	return fmt.Sprintf(`As a senior financial advisor, optimize this monthly budget (all values in Egyptian Pound - EGP) for a person/family with:
- Total Monthly Income: %.2f
- Family Size: %d
- Marital Status: %s
- Living Cost Level: %s
- Income Stability: %s
- Fixed Monthly Obligations (Rent, Utilities, etc.): %.2f
- Monthly Debt Repayments: %.2f
- Monthly Savings Provision for Annual Expenses: %.2f
- Optional Monthly Services: %.2f
- Saving Priority Preference: %s
- Risk Tolerance Preference: %s
- User-Defined Priority Ranking (Highest to Lowest): %s

Calculate how to best distribute the REMAINING income of %.2f after all above costs.
The categories to allocate are based on the User-Defined Priority Ranking: %s.

Return one allocation per category with its amount, percentage of the remaining income, a color name, and a short specific tip.`,
		p.MonthlySalary,
		p.FamilyMembers,
		p.MaritalStatus,
		p.LivingCostLevel,
		p.IncomeStability,
		p.FixedExpenses.Total(),
		p.DebtsTotal(),
		p.AnnualProvision(),
		p.OptionalExpenses.Total(),
		p.Preferences.SavingPriority,
		p.Preferences.RiskTolerance,
		strings.Join(priorities, " > "),
		p.RemainingIncome(),
		strings.Join(priorities, ", "))
}

// budgetSchema is the required shape: an array of allocation objects.
func budgetSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category":   {Type: genai.TypeString},
				"amount":     {Type: genai.TypeNumber},
				"percentage": {Type: genai.TypeNumber},
				"color":      {Type: genai.TypeString},
				"advice":     {Type: genai.TypeString},
			},
			Required: []string{"category", "amount", "percentage", "color", "advice"},
		},
	}
}

// forecastCommodities is the fixed list the price forecast always covers,
// independent of profile content.
var forecastCommodities = []string{
	"Bread & Cereals",
	"Fresh Milk",
	"Eggs",
	"Fuel / Gasoline",
	"Internet Services",
	"Cooking Oil",
}

func buildForecastPrompt() string {
	var b strings.Builder
	b.WriteString("Analyze current global and local economic trends in Egypt to predict price changes (in Egyptian Pound - EGP) for next month for the following commodities:\n")
	for i, item := range forecastCommodities {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\nFor each item, provide the average estimated current price, the predicted price for next month, the trend ('up', 'down', or 'stable'), a confidence between 0 and 1, and one short sentence of advice.")
	return b.String()
}

func forecastSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"item":           {Type: genai.TypeString},
				"currentPrice":   {Type: genai.TypeNumber},
				"predictedPrice": {Type: genai.TypeNumber},
				"trend":          {Type: genai.TypeString},
				"confidence":     {Type: genai.TypeNumber},
				"advice":         {Type: genai.TypeString},
			},
			Required: []string{"item", "currentPrice", "predictedPrice", "trend", "confidence", "advice"},
		},
	}
}

// buildShoppingPrompt asks for a grocery list capped by the derived budget
// ceiling.
func buildShoppingPrompt(p *model.UserProfile) string {
	return fmt.Sprintf(`Generate a smart, optimized monthly grocery shopping list for a family of %d.
The total budget for this list must not exceed %.2f EGP.
Living Cost Level is %s.
Focus on healthy essentials and value-for-money items.

Return a list of items with a name, a quantity (e.g. '5kg', '3 liters'), an estimated cost, and whether the item is a must-have essential.`,
		p.FamilyMembers,
		p.ShoppingCeiling(),
		p.LivingCostLevel)
}

func shoppingSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":          {Type: genai.TypeString},
				"quantity":      {Type: genai.TypeString},
				"estimatedCost": {Type: genai.TypeNumber},
				"isPriority":    {Type: genai.TypeBoolean},
			},
			Required: []string{"name", "quantity", "estimatedCost", "isPriority"},
		},
	}
}
