package describe

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// model is cheap and fast on purpose: the call runs once per accrual row.
const model = "gemini-2.5-flash"

// Gemini is the model-backed Normalizer.
type Gemini struct {
	Client *genai.Client
	Model  string // defaults to the package model
}

// NewGemini returns a Gemini normalizer over an initialized client.
func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{Client: client, Model: model}
}

// Normalize asks the model for a clean accounting description of the
// purchased item or service.
func (g *Gemini) Normalize(ctx context.Context, req Request) (string, error) {
	max := req.MaxLen
	if max <= 0 {
		max = MaxLen
	}
	name := g.Model
	if name == "" {
		name = model
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt(req.Description, max)}},
	}}
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: 60,
	}

	resp, err := g.Client.Models.GenerateContent(ctx, name, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", name)
	}
	return strings.Trim(text, `"'`), nil
}

func prompt(description string, max int) string {
	return fmt.Sprintf(`Create a clean accounting description for what was purchased or what service was provided.

Original Description: %s

Extract the most important information about the actual item/service. Remove redundant PO references, vendor names (that's in another field), and unnecessary prefixes like "ENG/", "INN/", "MH/". Focus ONLY on the actual service or item purchased. Keep it under %d characters.

Examples:
- "ENG/PO25377 Republic Services/Waste Removal June Monthly Service" -> "Waste Removal Monthly Service"
- "PO24913 ATS Inland Monthly Service Contract 2025" -> "Monthly Service Contract"
- "ENG/PO#25831 NALCO Water Treatment Chemicals" -> "Water Treatment Chemicals"
- "Emergency Uniforms for Staff" -> "Emergency Uniforms"

Return only the clean description, no quotes, no PO numbers.`, description, max)
}

var _ Normalizer = (*Gemini)(nil)
