package llm

import (
	"context"
	"fmt"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// standard middleware chain. The returned CacheManager is non-nil only for
// the Gemini provider; other providers cannot serve cached content.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, *CacheManager, error) {
	var base Provider
	var cache *CacheManager
	var err error

	switch cfg.Provider {
	case "gemini":
		var gp *GeminiProvider
		gp, err = NewGeminiProvider(ctx, cfg.Gemini)
		if err == nil {
			base = gp
			cache = NewCacheManager(gp, cfg.Cache)
		}
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → admission → logging → base.
	// Admission sits inside retry so every attempt claims a fresh slot.
	logged := WithLogging(base, eventRepo)
	admitted := WithAdmission(logged, NewAdmission(cfg.Admission))
	retried := WithRetry(admitted, cfg.Retry)

	return retried, cache, nil
}
