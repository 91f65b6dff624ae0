package namegen

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for name generation.
const DefaultModel = "gemini-3-flash-preview"

// Google implements the Generator interface using Google's Generative AI API.
// The model is asked for structured JSON so the response parses directly into
// name ideas.
type Google struct {
	client *genai.Client
	model  string
}

// NewGoogle creates a Google name generator authenticated with the given
// Gemini API key. An empty model falls back to DefaultModel.
func NewGoogle(ctx context.Context, apiKey, model string) (*Google, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create client: %w", err)
	}

	return &Google{client: client, model: model}, nil
}

// GenerateNames asks the model for ten themed name ideas and decodes the
// structured JSON response.
func (g *Google) GenerateNames(ctx context.Context, theme string) ([]NameIdea, error) {
	prompt := fmt.Sprintf("Suggest 10 unique Indian Buddhist baby boy names based on the theme: %q. "+
		"Ensure they are culturally accurate, have deep meanings, and sound modern yet traditional.", theme)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":    {Type: genai.TypeString},
					"meaning": {Type: genai.TypeString},
				},
				Required: []string{"name", "meaning"},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("could not generate names: %w", err)
	}

	var ideas []NameIdea
	if err := json.Unmarshal([]byte(resp.Text()), &ideas); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return ideas, nil
}

// Ensure Google conforms to the Generator interface at compile time.
var _ Generator = (*Google)(nil)
