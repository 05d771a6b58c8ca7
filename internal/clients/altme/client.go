// Package altme provides a client for the alternative.me crypto APIs
// (Fear & Greed index and global market stats).
package altme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
)

const (
	DefaultBaseURL   = "https://api.alternative.me"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 2 // requests per second; the data changes hourly anyway
)

// Client implements the MarketMoodClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new alternative.me client. No API key is required.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alternative.me API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", reqURL).Msg("alternative.me API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// fngResponse is the /fng/ payload; the index value arrives as a string.
type fngResponse struct {
	Data []struct {
		Value          string `json:"value"`
		Classification string `json:"value_classification"`
	} `json:"data"`
}

// GetFearGreed retrieves the current Fear & Greed index (0-100)
func (c *Client) GetFearGreed(ctx context.Context) (int, error) {
	params := url.Values{}
	params.Set("limit", "1")

	var resp fngResponse
	if err := c.get(ctx, "/fng/", params, &resp); err != nil {
		return 0, err
	}
	if len(resp.Data) == 0 {
		return 0, fmt.Errorf("fear & greed response contained no data")
	}

	value, err := strconv.Atoi(resp.Data[0].Value)
	if err != nil {
		return 0, fmt.Errorf("fear & greed value %q is not a number: %w", resp.Data[0].Value, err)
	}

	return value, nil
}

// globalResponse is the /v2/global/ payload
type globalResponse struct {
	Data struct {
		BitcoinDominancePct float64 `json:"bitcoin_percentage_of_market_cap"`
	} `json:"data"`
}

// GetAltcoinIndex derives an altcoin season index (0-100) from bitcoin's
// market-cap dominance: the lower the dominance, the stronger the altcoin
// market.
func (c *Client) GetAltcoinIndex(ctx context.Context) (int, error) {
	var resp globalResponse
	if err := c.get(ctx, "/v2/global/", nil, &resp); err != nil {
		return 0, err
	}

	index := int(math.Round(100 - resp.Data.BitcoinDominancePct))
	if index < 0 {
		index = 0
	}
	if index > 100 {
		index = 100
	}

	return index, nil
}

// Ensure Client implements MarketMoodClient
var _ interfaces.MarketMoodClient = (*Client)(nil)
