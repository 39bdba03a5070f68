package keyword

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/time/rate"
)

// RetryTranslator wraps a translator with bounded fixed-delay retries and a rate limit.
// It never fails: when all attempts are used up the original text is returned.
type RetryTranslator struct {
	next     Translator
	attempts int
	delay    time.Duration
	limiter  *rate.Limiter
}

// NewRetryTranslator makes a translator making up to attempts calls with delay between them.
// interval is the minimum time between calls to next, zero disables rate limiting.
func NewRetryTranslator(next Translator, attempts int, delay, interval time.Duration) *RetryTranslator {
	if attempts < 1 {
		attempts = 1
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &RetryTranslator{next: next, attempts: attempts, delay: delay, limiter: rate.NewLimiter(limit, 1)}
}

// Translate returns translated text, or the original text if translation failed
func (t *RetryTranslator) Translate(ctx context.Context, text, lang string) string {
	var res string
	err := repeater.NewFixed(t.attempts, t.delay).Do(ctx, func() error {
		if err := t.limiter.Wait(ctx); err != nil {
			return err
		}
		translated, err := t.next.Translate(ctx, text, lang)
		if err != nil {
			lgr.Printf("[DEBUG] translate %q failed: %v", text, err)
			return err
		}
		res = strings.TrimSpace(translated)
		return nil
	})
	if err != nil || res == "" {
		lgr.Printf("[WARN] translation of %q failed after %d attempts, using original: %v", text, t.attempts, err)
		return text
	}
	return res
}
