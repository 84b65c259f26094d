package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
	"saferoute/types"
)

const defaultConfidence = 0.85

// Override is the model-provided classification that supersedes the
// rule-based chain when present. It is all-or-nothing: callers never
// merge individual fields with rule output.
type Override struct {
	Severity        types.Severity `json:"severity"`
	Confidence      float64        `json:"confidence"`
	KeyRisks        []string       `json:"key_risks"`
	SuggestedAction []string       `json:"suggested_actions"`
	EstimatedPeople *int           `json:"estimated_affected_people"`
	Authorities     []string       `json:"authorities_needed"`
}

// Classifier is the LLM capability. TryClassify returns nil whenever a
// usable override cannot be produced: provider not configured, transport
// failure, unparseable or incomplete response. Callers treat all of those
// identically.
type Classifier interface {
	TryClassify(ctx context.Context, incidentType types.IncidentType, description string) *Override
}

// Disabled is the no-provider variant. Call sites never branch on
// "is the LLM configured", they just get no override.
type Disabled struct{}

func (Disabled) TryClassify(context.Context, types.IncidentType, string) *Override {
	return nil
}

type openAIClassifier struct {
	client *openai.Client
}

// NewClassifier builds the OpenAI-backed classifier, or the Disabled
// variant when no API key is present.
func NewClassifier(apiKey string) Classifier {
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, LLM classification disabled")
		return Disabled{}
	}
	return &openAIClassifier{client: openai.NewClient(apiKey)}
}

const responseShape = `{
  "severity": "LOW|MEDIUM|HIGH|CRITICAL",
  "confidence": 0.0-1.0,
  "key_risks": ["risk1", "risk2"],
  "suggested_actions": ["action1", "action2"],
  "estimated_affected_people": number,
  "authorities_needed": ["POLICE", "MEDICAL", "FIRE", "MUNICIPAL", "ELECTRICITY", "RESCUE"]
}`

func (c *openAIClassifier) TryClassify(ctx context.Context, incidentType types.IncidentType, description string) *Override {
	prompt := fmt.Sprintf(
		"Analyze this incident report and respond ONLY with a single valid JSON object (no markdown, no code blocks) of this exact shape:\n%s\n\nIncident Type: %s\nDescription: %s\n\nBe precise and factual.",
		responseShape, incidentType, description,
	)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a road safety and incident analysis expert.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   500,
			Temperature: 0.1,
		},
	)
	if err != nil {
		log.Printf("LLM classification call failed, falling back to rules: %v", err)
		return nil
	}

	if len(resp.Choices) == 0 {
		log.Println("LLM returned no choices, falling back to rules")
		return nil
	}

	override, err := parseOverride(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("LLM response rejected, falling back to rules: %v", err)
		return nil
	}
	return override
}

// parseOverride defensively parses raw model output. Models wrap JSON in
// markdown fences often enough that stripping them is part of the contract.
func parseOverride(raw string) (*Override, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var override Override
	if err := json.Unmarshal([]byte(cleaned), &override); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	if override.Severity.Rank() < 0 {
		return nil, fmt.Errorf("response missing or invalid severity %q", override.Severity)
	}
	if override.Confidence <= 0 || override.Confidence > 1 {
		override.Confidence = defaultConfidence
	}

	return &override, nil
}
