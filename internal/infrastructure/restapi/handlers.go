package restapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"debank_client/internal/app/port"
	"debank_client/internal/domain/entity"
	"debank_client/internal/pkg/utils"
	"debank_client/pkg/debank"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes caps request bodies forwarded to body-style endpoints.
const maxBodyBytes = 1 << 20

// ErrorResponse is the JSON shape of every proxy error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// EndpointInfo describes one forwarded operation in the endpoint listing.
type EndpointInfo struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Style  string `json:"style"`
}

// SummaryRequest is the body of POST /api/summary.
type SummaryRequest struct {
	Wallets []string `json:"wallets"`
}

// Handler forwards proxy requests to the DeBank API.
type Handler struct {
	caller    port.EndpointCaller
	portfolio port.PortfolioService
	logger    *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(caller port.EndpointCaller, portfolio port.PortfolioService, logger *zap.Logger) *Handler {
	return &Handler{
		caller:    caller,
		portfolio: portfolio,
		logger:    logger.Named("ProxyHandler"),
	}
}

// CallEndpoint handles /api/v1/:group and /api/v1/:group/:op.
func (h *Handler) CallEndpoint(c *gin.Context) {
	group, op := c.Param("group"), c.Param("op")
	ep, ok := debank.LookupEndpoint(group, op)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown endpoint " + c.Request.URL.Path})
		return
	}
	if !ep.Placeholder && c.Request.Method != ep.Method {
		c.Header("Allow", ep.Method)
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: ep.ID() + " expects " + ep.Method})
		return
	}

	var (
		params debank.Params
		body   any
	)
	if ep.Style == debank.JSONBody {
		raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body exceeds 1 MiB"})
				return
			}
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
			return
		}
		if len(raw) > 0 {
			if !json.Valid(raw) {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body is not valid JSON"})
				return
			}
			// Forwarded as received so large integers keep their precision.
			body = jsoniter.RawMessage(raw)
		}
		if len(c.Request.URL.RawQuery) > 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: ep.ID() + " takes a JSON body, not query parameters"})
			return
		}
	} else {
		params = debank.ParamsFromValues(c.Request.URL.Query())
		if ep.Group == "user" && !ep.Placeholder {
			if raw, ok := params.Get("id"); ok {
				s, _ := raw.(string)
				id, valid := utils.NormalizeAddress(s)
				if !valid {
					c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a 0x-prefixed wallet address"})
					return
				}
				params = params.Set("id", id)
			}
		}
	}

	data, err := h.caller.Call(c.Request.Context(), ep, params, body)
	if err != nil {
		h.writeError(c, ep, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// ListEndpoints returns the forwarded operations.
func (h *Handler) ListEndpoints(c *gin.Context) {
	all := debank.Endpoints()
	infos := make([]EndpointInfo, 0, len(all))
	for _, ep := range all {
		if ep.Placeholder {
			continue
		}
		infos = append(infos, EndpointInfo{ID: ep.ID(), Method: ep.Method, Path: ep.Path, Style: ep.Style.String()})
	}
	c.JSON(http.StatusOK, infos)
}

// Summarize handles POST /api/summary.
func (h *Handler) Summarize(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Wallets) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "body must be {\"wallets\": [\"0x...\"]}"})
		return
	}
	wallets := make([]entity.Wallet, 0, len(req.Wallets))
	for _, w := range req.Wallets {
		address, ok := utils.NormalizeAddress(w)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid wallet address " + w})
			return
		}
		wallets = append(wallets, entity.Wallet{Address: address})
	}
	c.JSON(http.StatusOK, h.portfolio.Summarize(c.Request.Context(), wallets))
}

func (h *Handler) writeError(c *gin.Context, ep debank.Endpoint, err error) {
	status := statusForError(err)
	resp := ErrorResponse{Error: err.Error()}
	var apiErr *debank.Error
	if errors.As(err, &apiErr) {
		resp.Code = string(apiErr.Code)
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("DeBank call failed", zap.String("endpoint", ep.ID()), zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("DeBank call rejected", zap.String("endpoint", ep.ID()), zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, resp)
}

// statusForError maps a client error to the proxy response status. Known
// DeBank errors keep their upstream status.
func statusForError(err error) int {
	var apiErr *debank.Error
	switch {
	case errors.Is(err, debank.ErrOperationNotExist):
		return http.StatusNotFound
	case errors.Is(err, debank.ErrPayloadStyle), errors.Is(err, debank.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		if apiErr.Code == debank.CodeUnknownStatus {
			return http.StatusBadGateway
		}
		return apiErr.Status
	case errors.Is(err, fasthttp.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
