package debank

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParamStyle selects where a call's payload travels.
type ParamStyle int

const (
	// QueryParams sends the payload on the URL query string.
	QueryParams ParamStyle = iota
	// JSONBody sends the payload as a JSON request body.
	JSONBody
)

func (s ParamStyle) String() string {
	if s == JSONBody {
		return "body"
	}
	return "query"
}

// RequestOptions describes one call to Execute. Only Params may be set for
// QueryParams calls and only Body for JSONBody calls.
type RequestOptions struct {
	Method string
	Style  ParamStyle
	Params Params
	Body   any
}

// Execute performs one request against path (relative to the base URL) and
// returns the decoded JSON response.
//
// Transport failures are returned unchanged. Any status other than 200 is
// returned as *Error. A 200 response that is not valid JSON yields an error
// wrapping ErrMalformedResponse.
func (c *Client) Execute(ctx context.Context, path string, opts RequestOptions) (any, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	method := opts.Method
	if method == "" {
		method = fasthttp.MethodGet
	}

	var payload []byte
	switch opts.Style {
	case QueryParams:
		if opts.Body != nil {
			return nil, fmt.Errorf("%w: body set on query call to %s", ErrPayloadStyle, path)
		}
	case JSONBody:
		if len(opts.Params) > 0 {
			return nil, fmt.Errorf("%w: params set on body call to %s", ErrPayloadStyle, path)
		}
		if opts.Body != nil {
			var err error
			if payload, err = json.Marshal(opts.Body); err != nil {
				return nil, fmt.Errorf("failed to encode request body for %s: %w", path, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown style %d", ErrPayloadStyle, opts.Style)
	}

	requestURL := c.cfg.BaseURL + path + opts.Params.querySuffix()
	c.logger.Debug("Requesting DeBank API", zap.String("method", method), zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.Header.DisableNormalizing()
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(method)
	req.Header.Set(accessKeyHeader, c.cfg.AccessKey)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if payload != nil {
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	start := time.Now()
	err := c.do(ctx, req, resp)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Error("Failed to execute request to DeBank API",
			zap.String("url", requestURL),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		c.observe(path, 0, elapsed, err)
		return nil, err
	}

	status := resp.StatusCode()
	if status != fasthttp.StatusOK {
		apiErr := errorForStatus(status)
		c.logger.Error("DeBank API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", status),
			zap.String("code", string(apiErr.Code)),
			zap.ByteString("responseBody", resp.Body()))
		c.observe(path, status, elapsed, apiErr)
		return nil, apiErr
	}

	var data any
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		c.logger.Error("Failed to unmarshal DeBank API response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", resp.Body()),
			zap.Error(err))
		err = fmt.Errorf("%w from %s: %w", ErrMalformedResponse, path, err)
		c.observe(path, status, elapsed, err)
		return nil, err
	}

	c.logger.Debug("DeBank API request succeeded", zap.String("url", requestURL), zap.Duration("elapsed", elapsed))
	c.observe(path, status, elapsed, nil)
	return data, nil
}

// Call dispatches ep with the payload its style expects. Placeholder
// endpoints fail with ErrOperationNotExist without touching the network.
func (c *Client) Call(ctx context.Context, ep Endpoint, params Params, body any) (any, error) {
	if ep.Placeholder {
		return nil, ErrOperationNotExist
	}
	return c.Execute(ctx, ep.Path, RequestOptions{
		Method: ep.Method,
		Style:  ep.Style,
		Params: params,
		Body:   body,
	})
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		return c.transport.DoDeadline(req, resp, deadline)
	}
	return c.transport.DoTimeout(req, resp, c.cfg.Timeout)
}

func (c *Client) observe(path string, status int, elapsed time.Duration, err error) {
	if c.observer != nil {
		c.observer.ObserveRequest(path, status, elapsed, err)
	}
}
