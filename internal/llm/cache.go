package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// CacheConfig configures provider-side context caching.
type CacheConfig struct {
	// TTL is how long a created cache entry lives. Default: 1h.
	TTL time.Duration
}

// DefaultCacheConfig returns the default cache settings.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: time.Hour}
}

// CacheManager manages provider-side cached representations of source
// documents so repeated generations against the same document skip the
// upload and analysis cost.
//
// Caching is a cost optimization only: callers must treat every error from
// this type as a signal to fall back to uncached generation, never as a
// request failure.
type CacheManager struct {
	client *genai.Client
	model  string
	cfg    CacheConfig
}

// NewCacheManager builds a CacheManager sharing the Gemini provider's
// client and model.
func NewCacheManager(p *GeminiProvider, cfg CacheConfig) *CacheManager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheConfig().TTL
	}
	return &CacheManager{client: p.Client(), model: p.ModelID(), cfg: cfg}
}

// CreateDocumentCache uploads the document into a provider-side cache entry
// tagged with the given identity key and returns the cache name.
func (m *CacheManager) CreateDocumentCache(ctx context.Context, key string, doc Attachment) (string, error) {
	cached, err := m.client.Caches.Create(ctx, m.model, &genai.CreateCachedContentConfig{
		DisplayName: displayName(key),
		TTL:         m.cfg.TTL,
		Contents: []*genai.Content{
			{
				Role: "user",
				Parts: []*genai.Part{
					{InlineData: &genai.Blob{Data: doc.Data, MIMEType: doc.MIMEType}},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create document cache: %w", err)
	}
	return cached.Name, nil
}

// FindCacheByDocument looks up a live cache entry for the given identity
// key. The bool reports whether one was found.
func (m *CacheManager) FindCacheByDocument(ctx context.Context, key string) (string, bool, error) {
	want := displayName(key)
	for cached, err := range m.client.Caches.All(ctx) {
		if err != nil {
			return "", false, fmt.Errorf("list caches: %w", err)
		}
		if cached.DisplayName != want {
			continue
		}
		if !cached.ExpireTime.IsZero() && cached.ExpireTime.Before(time.Now()) {
			continue
		}
		return cached.Name, true, nil
	}
	return "", false, nil
}

// FindOrCreate resolves the cache entry for a document, creating it when
// absent. Creation races between sessions are benign: the deterministic
// display name makes later lookups converge on one entry and duplicates
// simply expire.
func (m *CacheManager) FindOrCreate(ctx context.Context, key string, doc Attachment) (string, error) {
	if name, ok, err := m.FindCacheByDocument(ctx, key); err == nil && ok {
		return name, nil
	}
	return m.CreateDocumentCache(ctx, key, doc)
}

// DeleteCache removes a cache entry. Missing entries are not an error for
// the caller to act on; the entry may simply have expired.
func (m *CacheManager) DeleteCache(ctx context.Context, name string) error {
	if _, err := m.client.Caches.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("delete cache %s: %w", name, err)
	}
	return nil
}

func displayName(key string) string {
	return "fia-doc-" + key
}
