package openai

import (
	"fmt"
	"strings"

	"github.com/danromik/Chatbots/models"
)

// DefaultModel is used when no model is named via flag or config file.
const DefaultModel = "4o-mini"

type OpenAIModelConfig struct {
	models.Pricing

	// official ID from OpenAI's API
	Id string
}

// A map of OpenAI model names to properties about those models. Not to be modified
var OpenAIModelConfigurations = map[string]OpenAIModelConfig{
	"4o-mini": {
		Id: "gpt-4o-mini",
		Pricing: models.Pricing{
			PromptCost:   .15 / 1_000_000,
			ResponseCost: .6 / 1_000_000,
		},
	},
	"4o": {
		Id: "gpt-4o",
		Pricing: models.Pricing{
			PromptCost:   2.5 / 1_000_000,
			ResponseCost: 10. / 1_000_000,
		},
	},
	"4.1": {
		Id: "gpt-4.1",
		Pricing: models.Pricing{
			PromptCost:   2. / 1_000_000,
			ResponseCost: 8. / 1_000_000,
		},
	},
	"4.1-mini": {
		Id: "gpt-4.1-mini",
		Pricing: models.Pricing{
			PromptCost:   .4 / 1_000_000,
			ResponseCost: 1.6 / 1_000_000,
		},
	},
	"4.1-nano": {
		Id: "gpt-4.1-nano",
		Pricing: models.Pricing{
			PromptCost:   .1 / 1_000_000,
			ResponseCost: .4 / 1_000_000,
		},
	},
}

// ValidateModelName validates that a modelName is one of our supported models
func ValidateModelName(modelName string) error {
	if _, exists := OpenAIModelConfigurations[modelName]; !exists {
		var validNames []string
		for name := range OpenAIModelConfigurations {
			validNames = append(validNames, name)
		}
		return fmt.Errorf("invalid model name '%s'. Valid options: %s", modelName, strings.Join(validNames, ", "))
	}
	return nil
}
