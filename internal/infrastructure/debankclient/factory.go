package debankclient

import (
	"fmt"
	"time"

	"debank_client/internal/config"
	"debank_client/pkg/debank"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// New builds a DeBank client with a shared keep-alive fasthttp transport.
// observer may be nil.
func New(cfg config.DeBankConfig, logger *zap.Logger, observer debank.Observer) (*debank.Client, error) {
	transport := &fasthttp.Client{
		Name:                          "debank-client",
		MaxConnsPerHost:               cfg.MaxConnsPerHost,
		MaxIdleConnDuration:           90 * time.Second,
		DisableHeaderNamesNormalizing: true,
		DisablePathNormalizing:        true,
	}

	opts := []debank.Option{
		debank.WithTransport(transport),
		debank.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, debank.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RequestTimeoutMillis > 0 {
		opts = append(opts, debank.WithTimeout(cfg.RequestTimeout()))
	}
	if observer != nil {
		opts = append(opts, debank.WithObserver(observer))
	}

	client, err := debank.New(cfg.AccessKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create DeBank client: %w", err)
	}
	return client, nil
}
