// Package client отправляет запросы /set и /get к экземплярам сервиса сокращения ссылок.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Totarae/shortener-ops/internal/model"
)

//go:generate mockgen -source=client.go -destination=mocks/dispatcher_mock.go -package=mocks

// Dispatcher выполняет один запрос к выбранному экземпляру.
// nil означает успех на транспортном уровне; тело ответа не анализируется.
type Dispatcher interface {
	Create(ctx context.Context, host string, m model.Mapping) error
	Resolve(ctx context.Context, host, short string) error
}

// Options параметры HTTPDispatcher.
type Options struct {
	Scheme        string
	CreateMethod  string
	ResolveMethod string
	Timeout       time.Duration
}

// HTTPDispatcher реализация Dispatcher поверх net/http.
type HTTPDispatcher struct {
	client *http.Client
	opts   Options
}

// NewHTTPDispatcher создаёт диспетчер. client == nil означает http.DefaultClient.
func NewHTTPDispatcher(client *http.Client, opts Options) *HTTPDispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	if opts.Scheme == "" {
		opts.Scheme = "http"
	}
	if opts.CreateMethod == "" {
		opts.CreateMethod = http.MethodPost
	}
	if opts.ResolveMethod == "" {
		opts.ResolveMethod = http.MethodGet
	}
	return &HTTPDispatcher{client: client, opts: opts}
}

// CreateURL <scheme>://<host>/set?short=<token>&long=<url>
func (d *HTTPDispatcher) CreateURL(host string, m model.Mapping) string {
	u := url.URL{
		Scheme:   d.opts.Scheme,
		Host:     host,
		Path:     "/set",
		RawQuery: "short=" + url.QueryEscape(m.Short) + "&long=" + url.QueryEscape(m.Long),
	}
	return u.String()
}

// ResolveURL <scheme>://<host>/get?short=<token>
func (d *HTTPDispatcher) ResolveURL(host, short string) string {
	u := url.URL{
		Scheme:   d.opts.Scheme,
		Host:     host,
		Path:     "/get",
		RawQuery: "short=" + url.QueryEscape(short),
	}
	return u.String()
}

// Create реализует Dispatcher.
func (d *HTTPDispatcher) Create(ctx context.Context, host string, m model.Mapping) error {
	return d.do(ctx, d.opts.CreateMethod, d.CreateURL(host, m))
}

// Resolve реализует Dispatcher.
func (d *HTTPDispatcher) Resolve(ctx context.Context, host, short string) error {
	return d.do(ctx, d.opts.ResolveMethod, d.ResolveURL(host, short))
}

func (d *HTTPDispatcher) do(ctx context.Context, method, target string) error {
	if d.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	// статус не проверяется, как у curl без -f
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
