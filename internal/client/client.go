package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/yildizm/AirdropSim/internal/logger"
)

// maxErrorBody caps how much of an error response is kept for diagnostics
const maxErrorBody = 512

// Analyzer is implemented by anything that can produce a wallet report
type Analyzer interface {
	Analyze(ctx context.Context, walletAddress string) (*AnalysisResult, error)
}

// Client talks to the analysis service
type Client struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
	log     *logger.Logger
}

// New creates a new client instance
func New(config *Config, log *logger.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, newError(ErrTypeConfiguration, "invalid base URL", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, newError(ErrTypeConfiguration, fmt.Sprintf("invalid base URL %q: scheme and host are required", config.BaseURL), nil)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	if log == nil {
		log = logger.NewWithCallback("client", nil)
	}

	return &Client{
		config:  config,
		client:  httpClient,
		baseURL: baseURL,
		log:     log,
	}, nil
}

// Endpoint returns the full analyze URL
func (c *Client) Endpoint() string {
	return c.baseURL.JoinPath(AnalyzePath).String()
}

// Analyze posts the wallet address and returns the decoded report.
// The address is sent exactly as given.
func (c *Client) Analyze(ctx context.Context, walletAddress string) (*AnalysisResult, error) {
	startTime := time.Now()
	requestID := newRequestID()

	body, err := json.Marshal(&AnalyzeRequest{
		WalletAddress: walletAddress,
		Language:      c.config.Language,
	})
	if err != nil {
		return nil, c.tag(newError(ErrTypeInternal, "failed to marshal request", err), requestID)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, c.tag(newError(ErrTypeInternal, "failed to create request", err), requestID)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if requestID != "" {
		httpReq.Header.Set("X-Request-ID", requestID)
	}

	c.log.DebugWithFields("posting analysis request", []logger.Field{
		logger.F("request_id", requestID),
		logger.F("endpoint", c.Endpoint()),
	})

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, c.tag(newError(ErrTypeNetwork, "request failed", err), requestID)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		re := newError(ErrTypeStatus, fmt.Sprintf("request failed with status %d", resp.StatusCode), nil)
		re.StatusCode = resp.StatusCode
		re.Body = strings.TrimSpace(string(raw))
		return nil, c.tag(re, requestID)
	}

	result, derr := decodeResult(resp.Body)
	if derr != nil {
		return nil, c.tag(derr, requestID)
	}

	c.log.DebugWithFields("analysis request completed", []logger.Field{
		logger.F("request_id", requestID),
		logger.F("eligible", result.IsEligible),
		logger.Duration(time.Since(startTime)),
	})

	return result, nil
}

// decodeResult enforces the AnalysisResult shape at the client edge
func decodeResult(r io.Reader) (*AnalysisResult, *ResponseError) {
	var wire wireResult
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, newError(ErrTypeSchema, "failed to decode response", err)
	}
	if missing := wire.missingFields(); len(missing) > 0 {
		return nil, newError(ErrTypeSchema, "response missing required fields: "+strings.Join(missing, ", "), nil)
	}
	return wire.toResult(), nil
}

func (c *Client) tag(err *ResponseError, requestID string) *ResponseError {
	err.RequestID = requestID
	return err
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
