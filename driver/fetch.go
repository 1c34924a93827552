/*
 * Copyright 2016-2024 The OSHI Project Contributors
 * SPDX-License-Identifier: MIT
 */

package driver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"nvdriver/fault"
)

type Fetcher struct {
	endpoint string
	query    Query
	http     *retryablehttp.Client
}

type Option func(*Fetcher)

func WithEndpoint(endpoint string) Option {
	return func(f *Fetcher) {
		f.endpoint = endpoint
	}
}

func WithQuery(q Query) Option {
	return func(f *Fetcher) {
		f.query = q
	}
}

// WithHTTPClient replaces the transport used for the single lookup request.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.http.HTTPClient = c
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	c := retryablehttp.NewClient()
	// one attempt, the status of that attempt is handed back untouched
	c.RetryMax = 0
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.Logger = leveledLogger{zap.S().Named("http")}

	f := &Fetcher{
		endpoint: DefaultEndpoint,
		query:    DefaultQuery(),
		http:     c,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LatestDriverURL returns the first driver result link of the lookup page.
// The card name only labels the logs; the lookup always uses the fetcher's
// query.
func (f *Fetcher) LatestDriverURL(ctx context.Context, graphicsCardName string) (string, error) {
	body, err := f.fetch(ctx)
	if err != nil {
		return "", err
	}
	link, err := FindDriverLink(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	zap.S().Debugw("driver link found", "gpu", graphicsCardName, "link", link)
	return link, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]byte, error) {
	const op = "fetch driver page"

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fault.New(fault.KindNetwork, op, err)
	}
	req.URL.RawQuery = f.query.Values().Encode()

	resp, err := f.http.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fault.New(fault.KindNetwork, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fault.New(fault.KindHTTPStatus, op, fmt.Errorf("%s for url %s", resp.Status, req.URL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fault.New(fault.KindNetwork, op, err)
	}
	return body, nil
}

// leveledLogger routes retryablehttp's own logging to zap.
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, keysAndValues...)
}
