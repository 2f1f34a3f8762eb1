// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package sources

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 10 * time.Second

// Fetcher retrieves listing text from ordered sources, trying each until
// one yields non-empty text. Safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	logger  *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher) error

// WithHTTPClient sets the HTTP client used for URL sources.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) error {
		if client == nil {
			return ErrNilHTTPClient
		}
		f.client = client
		return nil
	}
}

// WithTimeout sets the per-request timeout. Default is 10s.
func WithTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) error {
		if timeout <= 0 {
			return ErrInvalidTimeout
		}
		f.timeout = timeout
		return nil
	}
}

// WithRateLimit throttles outgoing requests. Default is unlimited.
func WithRateLimit(limit rate.Limit, burst int) FetcherOption {
	return func(f *Fetcher) error {
		f.limiter = rate.NewLimiter(limit, burst)
		return nil
	}
}

// WithFetcherLogger sets a custom logger. Default is slog.Default().
func WithFetcherLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewFetcher creates a fetcher.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		client:  http.DefaultClient,
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FetchText tries each source in order and returns the first non-empty
// text along with the source that produced it. Failures and empty bodies
// are logged and skipped; when every source fails the error wraps
// ErrAllSourcesFailed plus the last cause.
func (f *Fetcher) FetchText(ctx context.Context, srcs []string) (text, source string, err error) {
	if len(srcs) == 0 {
		return "", "", ErrNoSources
	}

	var lastErr error = ErrNoSources
	for _, src := range srcs {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx); err != nil {
				return "", "", err
			}
		}

		body, err := f.fetchOne(ctx, src)
		if err != nil {
			f.logger.Warn("source failed", "source", src, "err", err)
			lastErr = err
			continue
		}
		if strings.TrimSpace(body) == "" {
			f.logger.Warn("source returned empty text", "source", src)
			lastErr = fmt.Errorf("%w: %s", ErrEmptySource, src)
			continue
		}
		return body, src, nil
	}
	return "", "", fmt.Errorf("%w: %w", ErrAllSourcesFailed, lastErr)
}

func (f *Fetcher) fetchOne(ctx context.Context, src string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return f.fetchURL(ctx, src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %d", ErrBadStatus, url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
