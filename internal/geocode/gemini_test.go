package geocode

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func stubGenerate(t *testing.T, fn func(model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)) {
	t.Helper()
	old := genaiGenerateContentHook
	genaiGenerateContentHook = func(_ *genai.Client, _ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return fn(model, contents, cfg)
	}
	t.Cleanup(func() { genaiGenerateContentHook = old })
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: s}}}},
		},
	}
}

func TestGeminiGeocoder_Found(t *testing.T) {
	stubGenerate(t, func(model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		if model != DefaultModel {
			t.Fatalf("expected default model, got %q", model)
		}
		prompt := contents[0].Parts[0].Text
		if !strings.Contains(prompt, `"Corn Exchange, Bedfordshire, UK"`) {
			t.Fatalf("unexpected prompt: %s", prompt)
		}
		if cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema == nil {
			t.Fatalf("expected json response config")
		}
		return textResponse(`{"latitude": 52.136, "longitude": -0.467}`), nil
	})

	g := &GeminiGeocoder{Client: &genai.Client{}}
	c, found, err := g.Lookup(context.Background(), "Corn Exchange", "Bedfordshire")
	if err != nil || !found {
		t.Fatalf("expected found, got %v %v", found, err)
	}
	if c.Latitude != 52.136 || c.Longitude != -0.467 {
		t.Fatalf("unexpected coordinates: %+v", c)
	}
}

func TestGeminiGeocoder_NullIsNotFound(t *testing.T) {
	for _, body := range []string{
		`{"latitude": null, "longitude": null}`,
		`{"latitude": 51.0, "longitude": null}`,
		"```json\n{\"latitude\": null, \"longitude\": 1}\n```",
	} {
		stubGenerate(t, func(string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse(body), nil
		})

		g := &GeminiGeocoder{Client: &genai.Client{}, Model: "m"}
		_, found, err := g.Lookup(context.Background(), "x", "y")
		if err != nil || found {
			t.Fatalf("body %q: expected soft not-found, got found=%v err=%v", body, found, err)
		}
	}
}

func TestGeminiGeocoder_Errors(t *testing.T) {
	cases := map[string]func(string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error){
		"transport": func(string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("unavailable")
		},
		"empty": func(string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{}, nil
		},
		"not json": func(string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse("somewhere near Luton"), nil
		},
		"out of range": func(string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse(`{"latitude": 123, "longitude": 0}`), nil
		},
	}

	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			stubGenerate(t, func(model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return fn(model, contents, cfg)
			})
			g := &GeminiGeocoder{Client: &genai.Client{}}
			if _, _, err := g.Lookup(context.Background(), "x", "y"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
