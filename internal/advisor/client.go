// Package advisor is the boundary to the external generative service. It
// builds structured requests from the committed profile, validates the JSON
// the service returns, and degrades every failure to an empty result set so
// callers never see an error, only "no data available".
package advisor

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"
)

// Client is the black-box generative call: a prompt plus a response shape
// in, raw JSON or failure out. No streaming, no side channel.
type Client interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error)
}
