package llmagent

import "github.com/openai/openai-go"

type TokenRates struct {
	Input  float64
	Output float64
}

// Pricing constants for GPT-4o, GPT-4o-mini and O3-mini (in dollars per million tokens)
const (
	GPT4oInputRate      = 2.5
	GPT4oOutputRate     = 10.0
	GPT4oMiniInputRate  = 0.15
	GPT4oMiniOutputRate = 0.60
	O3MiniInputRate     = 1.10
	O3MiniOutputRate    = 4.40
)

// ModelPricings is a map of model names to their pricing information
var ModelPricings = map[string]TokenRates{
	"gpt-4o": {
		Input:  GPT4oInputRate,
		Output: GPT4oOutputRate,
	},
	"gpt-4o-mini": {
		Input:  GPT4oMiniInputRate,
		Output: GPT4oMiniOutputRate,
	},
	"o3-mini": {
		Input:  O3MiniInputRate,
		Output: O3MiniOutputRate,
	},
}

// Usage accumulates token counts over every request made during a turn.
type Usage struct {
	Requests     int
	InputTokens  int64
	OutputTokens int64
}

func (u *Usage) Add(usage openai.CompletionUsage) {
	u.Requests++
	u.InputTokens += usage.PromptTokens
	u.OutputTokens += usage.CompletionTokens
}

// CostDetails represents detailed cost information for a turn
type CostDetails struct {
	InputTokens  int64
	OutputTokens int64
	TotalCost    float64
}

// Cost prices the accumulated usage for model. The second return is false
// when the model has no known pricing.
func (u Usage) Cost(model string) (*CostDetails, bool) {
	pricing, exists := ModelPricings[model]
	if !exists {
		return nil, false
	}

	inputCost := float64(u.InputTokens) * pricing.Input / 1000000
	outputCost := float64(u.OutputTokens) * pricing.Output / 1000000

	return &CostDetails{
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
		TotalCost:    inputCost + outputCost,
	}, true
}
