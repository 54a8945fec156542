package advisor

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/genai"
)

var errInvalidShape = errors.New("response does not match requested shape")

// MockClient is a scripted Client for tests.
type MockClient struct {
	Err      error
	Response json.RawMessage
	Prompts  []string
}

// Generate records the prompt and returns the scripted response.
func (m *MockClient) Generate(_ context.Context, prompt string, _ *genai.Schema) (json.RawMessage, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// DemoClient serves canned advisory data without network access. It backs
// the --demo flag so the application can be exercised without an API key.
type DemoClient struct{}

// Generate picks the canned payload matching the requested shape.
func (DemoClient) Generate(_ context.Context, _ string, schema *genai.Schema) (json.RawMessage, error) {
	if schema == nil || schema.Items == nil {
		return nil, errInvalidShape
	}
	props := schema.Items.Properties
	switch {
	case props["category"] != nil:
		return json.RawMessage(demoBudget), nil
	case props["item"] != nil:
		return json.RawMessage(demoForecast), nil
	case props["name"] != nil:
		return json.RawMessage(demoShopping), nil
	default:
		return nil, errInvalidShape
	}
}

const demoBudget = `[
  {"category": "cat_food", "amount": 1600, "percentage": 37.5, "color": "emerald", "advice": "Buy staples in bulk at the start of the month."},
  {"category": "cat_transport", "amount": 500, "percentage": 11.7, "color": "blue", "advice": "Prefer monthly transit passes over single tickets."},
  {"category": "cat_emergency", "amount": 640, "percentage": 15.0, "color": "amber", "advice": "Keep this in an instant-access account."},
  {"category": "cat_savings", "amount": 850, "percentage": 19.9, "color": "teal", "advice": "Automate the transfer on payday."},
  {"category": "cat_invest", "amount": 430, "percentage": 10.1, "color": "violet", "advice": "Favor capital-guaranteed certificates at this income level."},
  {"category": "cat_personal", "amount": 250, "percentage": 5.8, "color": "rose", "advice": "Cap discretionary spending with a weekly allowance."}
]`

const demoForecast = `[
  {"item": "Bread & Cereals", "currentPrice": 45, "predictedPrice": 47, "trend": "up", "confidence": 0.7, "advice": "Stock up on flour before the increase."},
  {"item": "Fresh Milk", "currentPrice": 38, "predictedPrice": 38, "trend": "stable", "confidence": 0.8, "advice": "No need to change buying habits."},
  {"item": "Eggs", "currentPrice": 62, "predictedPrice": 58, "trend": "down", "confidence": 0.6, "advice": "Delay large purchases a week if you can."},
  {"item": "Fuel / Gasoline", "currentPrice": 13.75, "predictedPrice": 15, "trend": "up", "confidence": 0.75, "advice": "Combine errands into fewer trips."},
  {"item": "Internet Services", "currentPrice": 400, "predictedPrice": 400, "trend": "stable", "confidence": 0.9, "advice": "Review your plan for unused capacity."},
  {"item": "Cooking Oil", "currentPrice": 85, "predictedPrice": 88, "trend": "up", "confidence": 0.65, "advice": "Buy the larger bottle now."}
]`

const demoShopping = `[
  {"name": "Rice", "quantity": "5kg", "estimatedCost": 160, "isPriority": true},
  {"name": "Pasta", "quantity": "3kg", "estimatedCost": 90, "isPriority": true},
  {"name": "Chicken", "quantity": "4kg", "estimatedCost": 480, "isPriority": true},
  {"name": "Seasonal vegetables", "quantity": "8kg", "estimatedCost": 240, "isPriority": true},
  {"name": "Cooking oil", "quantity": "2 liters", "estimatedCost": 170, "isPriority": true},
  {"name": "Tea", "quantity": "500g", "estimatedCost": 60, "isPriority": false},
  {"name": "Biscuits", "quantity": "4 packs", "estimatedCost": 50, "isPriority": false}
]`
