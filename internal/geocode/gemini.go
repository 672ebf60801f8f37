package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var genaiGenerateContentHook = func(client *genai.Client, ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return client.Models.GenerateContent(ctx, model, contents, cfg)
}

type GeminiGeocoder struct {
	Client *genai.Client
	Model  string
}

type geminiAnswer struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

var answerSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"latitude":  {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
		"longitude": {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
	},
	Required: []string{"latitude", "longitude"},
}

func (g *GeminiGeocoder) Lookup(ctx context.Context, location, county string) (Coordinates, bool, error) {
	model := g.Model
	if model == "" {
		model = DefaultModel
	}

	genResp, err := genaiGenerateContentHook(g.Client, ctx, model, []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: Prompt(location, county)},
			},
		},
	}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   answerSchema,
		Temperature:      genai.Ptr[float32](0),
	})
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("generation error: %w", err)
	}

	var text string
	if genResp != nil {
		for _, candidate := range genResp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					text = part.Text
					break
				}
			}
			if text != "" {
				break
			}
		}
	}
	if text == "" {
		return Coordinates{}, false, fmt.Errorf("no response from Gemini")
	}

	return parseAnswer(text)
}

func parseAnswer(text string) (Coordinates, bool, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var ans geminiAnswer
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &ans); err != nil {
		return Coordinates{}, false, fmt.Errorf("decode coordinates: %w", err)
	}
	if ans.Latitude == nil || ans.Longitude == nil {
		return Coordinates{}, false, nil
	}
	if *ans.Latitude < -90 || *ans.Latitude > 90 || *ans.Longitude < -180 || *ans.Longitude > 180 {
		return Coordinates{}, false, fmt.Errorf("coordinates out of range: %v, %v", *ans.Latitude, *ans.Longitude)
	}
	return Coordinates{Latitude: *ans.Latitude, Longitude: *ans.Longitude}, true, nil
}
