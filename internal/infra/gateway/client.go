// Package gateway is the typed REST client of the store backend.
// Every resource client goes through Client.Do, which owns transport, breaker and error mapping.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	maxResponseBytes           = 10 << 20
	defaultConsecutiveFailures = 5
)

// Options configures a Client
type Options struct {
	BaseURL          string
	APIPrefix        string
	Timeout          time.Duration
	Breaker          config.BreakerConfig
	PlaceholderImage string
	Transport        http.RoundTripper // defaults to an otelhttp-wrapped http.DefaultTransport
	Jar              http.CookieJar
	Logger           *slog.Logger
}

// Client performs JSON calls against the backend API.
// It does not retry; a failed call surfaces as *errors.GatewayError.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	normalize  normalizer
	logger     *slog.Logger
}

// New creates a Client
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid gateway base url %q", opts.BaseURL)
	}
	prefix := "/" + strings.Trim(opts.APIPrefix, "/") + "/"
	if prefix == "//" {
		prefix = "/"
	}
	base.Path = strings.TrimRight(base.Path, "/") + prefix

	transport := opts.Transport
	if transport == nil {
		transport = otelhttp.NewTransport(http.DefaultTransport)
	}

	logger := opts.Logger
	threshold := opts.Breaker.ConsecutiveFailures
	if threshold == 0 {
		threshold = defaultConsecutiveFailures
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "store-backend",
		MaxRequests: opts.Breaker.MaxRequests,
		Interval:    opts.Breaker.Interval,
		Timeout:     opts.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Gateway circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
			Jar:       opts.Jar,
		},
		breaker:   breaker,
		normalize: normalizer{placeholderImage: opts.PlaceholderImage},
		logger:    logger,
	}, nil
}

// BaseURL returns the resolved API root, e.g. http://localhost:5000/api/
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL

	return &u
}

// isBreakerSuccess counts backend rejections (4xx) and caller cancellations as successes;
// only transport failures and 5xx trip the breaker.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}

	var gwErr *domainerrors.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.IsClientError()
	}

	return false
}

// Do sends in as the JSON body of method path and decodes the response into out.
// in and out may be nil. path is relative to the API root.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, method, path, query, in)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			gwErr := domainerrors.NewGatewayTransportError(method, path, err)
			gwErr.Unavailable = true

			return gwErr
		}

		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domainerrors.NewGatewayTransportError(method, path, errors.Wrap(err, "decode response"))
	}

	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	target := c.baseURL.ResolveReference(&url.URL{
		Path:     strings.TrimLeft(path, "/"),
		RawQuery: query.Encode(),
	})

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, domainerrors.NewGatewayTransportError(method, path, errors.Wrap(err, "encode request"))
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return nil, domainerrors.NewGatewayTransportError(method, path, errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Gateway request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewGatewayTransportError(method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.NewGatewayTransportError(method, path, errors.Wrap(err, "read response"))
	}

	c.logger.DebugContext(ctx, "Gateway request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.NewGatewayError(method, path, resp.StatusCode, upstreamMessage(body))
	}

	return body, nil
}

// upstreamMessage extracts a human-readable message from an error body.
func upstreamMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var msg messageDTO
	if json.Unmarshal(trimmed, &msg) == nil {
		for _, candidate := range []string{msg.Message, msg.Error, msg.Title} {
			if candidate != "" {
				return candidate
			}
		}

		return ""
	}

	var plain string
	if json.Unmarshal(trimmed, &plain) == nil {
		return plain
	}
	if len(trimmed) > 200 || trimmed[0] == '<' {
		return ""
	}

	return string(trimmed)
}
