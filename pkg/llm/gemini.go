package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// contentGenerator is implemented by *genai.GenerativeModel
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini translates headlines and articles with Google Gemini
type Gemini struct {
	client  *genai.Client
	model   contentGenerator
	article contentGenerator
}

// NewGemini creates a Gemini translator for the model
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	gm := client.GenerativeModel(model)
	gm.SetTemperature(0.1)
	gm.SystemInstruction = genai.NewUserContent(genai.Text(translateSystemPrompt))

	am := client.GenerativeModel(model)
	am.SetTemperature(0.1)
	am.SetMaxOutputTokens(articleMaxTokens)
	am.SystemInstruction = genai.NewUserContent(genai.Text(articleSystemPrompt))
	return &Gemini{client: client, model: gm, article: am}, nil
}

// Close releases the underlying client
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Translate translates text into lang
func (g *Gemini) Translate(ctx context.Context, text, lang string) (string, error) {
	prompt := fmt.Sprintf("Target language: %s\nHeadline: %s", lang, text)
	res, err := generate(ctx, g.model, prompt)
	if err != nil {
		return "", err
	}
	if res = strings.Trim(res, `"`); res == "" {
		return "", errors.New("empty translation from Gemini")
	}
	return res, nil
}

// TranslateArticle translates full article text into lang
func (g *Gemini) TranslateArticle(ctx context.Context, text, lang string) (string, error) {
	if g.article == nil {
		return "", errors.New("gemini article model is not set")
	}
	return generate(ctx, g.article, fmt.Sprintf("Target language: %s\nArticle:\n%s", lang, text))
}

// generate sends the prompt and joins text parts of the first candidate
func generate(ctx context.Context, m contentGenerator, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	res := strings.TrimSpace(sb.String())
	if res == "" {
		return "", errors.New("empty translation from Gemini")
	}
	return res, nil
}
