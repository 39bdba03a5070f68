// Package llm implements translation and part-of-speech tagging on top of LLM providers.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsgraph/pkg/config"
	"github.com/umputun/newsgraph/pkg/keyword"
)

const translateSystemPrompt = `You are a news headline translator. Translate the headline the user sends into the requested language.
Keep names of people, brands and organizations unchanged. Respond with the translated headline only, without quotes or comments.`

const articleSystemPrompt = `You are a news translator. Translate the article the user sends into the requested language.
Keep paragraphs, names of people, brands and organizations. Respond with the translated article only, without comments.`

// articleMaxTokens is the response budget of a full article translation
const articleMaxTokens = 2500

const tagSystemPrompt = `You are a part-of-speech tagger for news headlines. Split the headline into words and multi-word phrases
the way a Vietnamese tagger does (compound nouns such as "thị trường" or "giá vàng" are single tokens) and tag each one.
Use tags N (noun), Np (proper noun), V (verb), A (adjective), E (preposition), C (conjunction), M (number), CH (punctuation), X (other).
Respond with a JSON array of [token, tag] pairs only, for example [["Giá vàng","N"],["tăng","V"]].`

// OpenAI translates and tags headlines with an OpenAI-compatible chat completion API
type OpenAI struct {
	client *openai.Client
	config config.LLMConfig
}

// NewOpenAI creates a new client for the configured endpoint
func NewOpenAI(cfg config.LLMConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &OpenAI{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

// Translate translates text into lang
func (o *OpenAI) Translate(ctx context.Context, text, lang string) (string, error) {
	prompt := fmt.Sprintf("Target language: %s\nHeadline: %s", lang, text)
	resp, err := o.complete(ctx, translateSystemPrompt, prompt, o.config.MaxTokens)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	res := strings.Trim(strings.TrimSpace(resp), `"`)
	if res == "" {
		return "", errors.New("translate: empty response")
	}
	return res, nil
}

// TranslateArticle translates full article text into lang
func (o *OpenAI) TranslateArticle(ctx context.Context, text, lang string) (string, error) {
	prompt := fmt.Sprintf("Target language: %s\nArticle:\n%s", lang, text)
	resp, err := o.complete(ctx, articleSystemPrompt, prompt, max(o.config.MaxTokens, articleMaxTokens))
	if err != nil {
		return "", fmt.Errorf("translate article: %w", err)
	}
	res := strings.TrimSpace(resp)
	if res == "" {
		return "", errors.New("translate article: empty response")
	}
	return res, nil
}

// Tag splits text into tagged tokens
func (o *OpenAI) Tag(ctx context.Context, text string) ([]keyword.Token, error) {
	resp, err := o.complete(ctx, tagSystemPrompt, text, o.config.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}
	pairs, err := parsePairs(resp)
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}
	return keyword.PairsToTokens(pairs), nil
}

func (o *OpenAI) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.config.Model,
		Temperature: float32(o.config.Temperature),
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// parsePairs extracts a json array of [token, tag] pairs, models often wrap it with text or code fences
func parsePairs(content string) ([][2]string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, errors.New("no json array found in response")
	}

	var pairs [][2]string
	if err := json.Unmarshal([]byte(content[start:end+1]), &pairs); err != nil {
		return nil, fmt.Errorf("failed to parse json array response: %w", err)
	}
	return pairs, nil
}
