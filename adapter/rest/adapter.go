// Package rest implements the record.Adapter contract over plain
// HTTP+JSON. It owns everything the core does not: URL construction,
// headers, transport, response parsing, optional GET caching, and
// request logging.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/restorm-go/restorm/cache"
	"github.com/restorm-go/restorm/query"
	"github.com/restorm-go/restorm/record"
)

const defaultTimeout = 30 * time.Second

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the API root every resource path is joined onto. Required.
	BaseURL string `mapstructure:"base_url"`

	// Headers are sent with every request.
	Headers map[string]string `mapstructure:"headers"`

	// Timeout bounds each request when no custom Client is supplied.
	Timeout time.Duration `mapstructure:"timeout"`

	// Client overrides the default HTTP client when set.
	Client *http.Client `mapstructure:"-"`

	// Cache, when set, serves repeated GETs without hitting the network.
	Cache cache.Cache `mapstructure:"-"`

	// CacheTTL bounds cached GET responses; zero uses the cache default.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// Logger receives per-request debug and error logs.
	Logger *zap.Logger `mapstructure:"-"`
}

// Adapter is a REST-flavored implementation of record.Adapter.
type Adapter struct {
	mu     sync.RWMutex
	config Config
	client *http.Client
	logger *zap.Logger
}

// New validates the configuration and returns a ready adapter.
func New(config Config) (*Adapter, error) {
	if config.BaseURL == "" {
		return nil, ErrNoBaseURL
	}
	a := &Adapter{}
	a.apply(config)
	return a, nil
}

func (a *Adapter) apply(config Config) {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	a.config = config

	a.client = config.Client
	if a.client == nil {
		a.client = &http.Client{Timeout: config.Timeout}
	}
	a.logger = config.Logger
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
}

// Configure merges loosely-typed options (base_url, headers, timeout,
// cache_ttl) into the current configuration. Unknown keys are ignored.
func (a *Adapter) Configure(options map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	config := a.config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		a.logger.Error("configure failed", zap.Error(err))
		return
	}
	if err := dec.Decode(options); err != nil {
		a.logger.Error("configure failed", zap.Error(err))
		return
	}
	a.apply(config)
}

// Call executes the request described by the builder and decodes the
// JSON response body into Response.Data. GET responses are served from
// and stored into the configured cache keyed by the full URL.
func (a *Adapter) Call(ctx context.Context, b *query.Builder) (*record.Response, error) {
	a.mu.RLock()
	config := a.config
	client := a.client
	logger := a.logger
	a.mu.RUnlock()

	if config.BaseURL == "" {
		return nil, ErrNoBaseURL
	}

	method := b.Method()
	fullURL := BuildURL(config.BaseURL, b)
	requestID := uuid.NewString()
	logger = logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", fullURL),
	)

	cacheable := method == http.MethodGet && config.Cache != nil
	if cacheable {
		if raw, err := config.Cache.Get(ctx, fullURL); err == nil {
			var data any
			if err := json.Unmarshal(raw, &data); err == nil {
				logger.Debug("served from cache")
				return &record.Response{Data: data}, nil
			}
		}
	}

	var bodyReader io.Reader
	if body := b.Body(); body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("rest: encode body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("rest: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range config.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		logger.Error("request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rest: read response: %w", err)
	}

	logger.Debug("request complete",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return nil, &RequestError{
			Status: resp.StatusCode,
			Method: method,
			URL:    fullURL,
		}
	}

	var data any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("rest: decode response: %w", err)
		}
	}

	if cacheable {
		if err := config.Cache.Set(ctx, fullURL, raw, config.CacheTTL); err != nil {
			logger.Debug("cache store failed", zap.Error(err))
		}
	}

	return &record.Response{Data: data}, nil
}
