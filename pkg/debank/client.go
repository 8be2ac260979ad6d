// Package debank is a client for the DeBank Pro OpenAPI.
//
// Every operation is a thin mapping onto one REST endpoint and goes through
// Client.Execute, which builds the URL, attaches the AccessKey header,
// performs the request over fasthttp and translates non-200 statuses into
// *Error values.
//
//	client, err := debank.New(os.Getenv("DEBANK_ACCESS_KEY"))
//	balance, err := client.User.TotalBalance(ctx, debank.Params{{Key: "id", Value: addr}})
package debank

import (
	"errors"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production API origin including the version prefix.
	DefaultBaseURL = "https://pro-openapi.debank.com/v1"
	// DefaultTimeout is applied to requests whose context has no deadline.
	DefaultTimeout = 60000 * time.Millisecond

	accessKeyHeader = "AccessKey"
)

// Doer performs a single HTTP exchange. *fasthttp.Client and
// *fasthttp.HostClient satisfy it, so a caller can share one keep-alive
// connection pool between clients.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

// Observer is notified once per completed request. status is 0 when the
// transport failed before a response arrived.
type Observer interface {
	ObserveRequest(path string, status int, duration time.Duration, err error)
}

// Config is the immutable configuration of a Client.
type Config struct {
	AccessKey string
	BaseURL   string
	Timeout   time.Duration
}

// Option customizes a Client at construction time.
type Option func(*Client) error

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return errors.New("debank: timeout must be positive")
		}
		c.cfg.Timeout = timeout
		return nil
	}
}

// WithTransport sets the connection-reusing transport used for every request.
func WithTransport(doer Doer) Option {
	return func(c *Client) error {
		if doer == nil {
			return errors.New("debank: transport must not be nil")
		}
		c.transport = doer
		return nil
	}
}

// WithBaseURL points the client at another origin, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return errors.New("debank: base URL must not be empty")
		}
		c.cfg.BaseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger.Named("DebankClient")
		}
		return nil
	}
}

// WithObserver registers a per-request observer, e.g. a metrics collector.
func WithObserver(o Observer) Option {
	return func(c *Client) error {
		c.observer = o
		return nil
	}
}

// Client is safe for concurrent use. Its configuration never changes after New.
type Client struct {
	cfg       Config
	transport Doer
	logger    *zap.Logger
	observer  Observer

	Chain      *ChainService
	Protocol   *ProtocolService
	Token      *TokenService
	User       *UserService
	Collection *CollectionService
	Wallet     *WalletService
}

// New creates a Client authenticating with accessKey.
func New(accessKey string, opts ...Option) (*Client, error) {
	if accessKey == "" {
		return nil, ErrMissingAccessKey
	}

	c := &Client{
		cfg: Config{
			AccessKey: accessKey,
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.transport == nil {
		c.transport = &fasthttp.Client{
			Name:                          "debank-go",
			DisableHeaderNamesNormalizing: true,
			DisablePathNormalizing:        true,
		}
	}

	c.Chain = &ChainService{client: c}
	c.Protocol = &ProtocolService{client: c}
	c.Token = &TokenService{client: c}
	c.User = &UserService{client: c}
	c.Collection = &CollectionService{client: c}
	c.Wallet = &WalletService{client: c}
	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}
