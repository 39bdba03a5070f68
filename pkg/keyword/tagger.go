package keyword

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPTagger calls an external part-of-speech tagging service. The service accepts
// {"text": "..."} and responds with a list of [word, tag] pairs.
type HTTPTagger struct {
	client   *http.Client
	endpoint string
}

// NewHTTPTagger makes a tagger for the service at endpoint
func NewHTTPTagger(endpoint string, timeout time.Duration) *HTTPTagger {
	return &HTTPTagger{client: &http.Client{Timeout: timeout}, endpoint: endpoint}
}

// Tag sends text to the tagging service
func (t *HTTPTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal tag request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create tag request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tag request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tagger returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var pairs [][2]string
	if err := json.NewDecoder(resp.Body).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("decode tag response: %w", err)
	}
	return PairsToTokens(pairs), nil
}

// PairsToTokens converts [word, tag] pairs to tokens
func PairsToTokens(pairs [][2]string) []Token {
	res := make([]Token, 0, len(pairs))
	for _, p := range pairs {
		res = append(res, Token{Word: p[0], Tag: p[1]})
	}
	return res
}
