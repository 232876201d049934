package connectors

// REST CLIENT FOR THE CARDEX MARKETPLACE API
// RESTY ONLY, SINGLE ATTEMPT PER REQUEST

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cardexcli/src/auth"
	"cardexcli/src/model"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultCardexBaseURL = "http://localhost:3000"
	sortDateDesc         = "date_desc"
	requestIDHeader      = "X-Request-ID"
)

// -----------------------------
// RESPONSE ENVELOPES
// -----------------------------
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type openTradesResponse struct {
	Trades []model.OpenTrade `json:"trades"`
}

type completedTradesResponse struct {
	Trades []model.CompletedTrade `json:"trades"`
}

type collectionsResponse struct {
	Collections []model.Collection `json:"collections"`
}

// -----------------------------
// CLIENT
// -----------------------------
type CardexClient struct {
	baseURL string
	session *auth.Session
	http    *resty.Client
	limiter *rate.Limiter
}

func NewCardexClient(config Config, session *auth.Session) *CardexClient {
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL = defaultCardexBaseURL
		logger.Warnf("No base URL provided, using default: %s", baseURL)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if session == nil {
		session = auth.NewSession()
	}

	c := &CardexClient{
		baseURL: baseURL,
		session: session,
	}
	if config.RequestsPerSecond > 0 {
		burst := config.RequestBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst)
	}

	// No retry condition: every call is a single attempt bounded by the timeout.
	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(config.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(c.beforeRequest)

	return c
}

func (c *CardexClient) beforeRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(requestIDHeader, uuid.NewString())
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(req.Context())
}

func (c *CardexClient) Session() *auth.Session {
	return c.session
}

func (c *CardexClient) BaseURL() string {
	return c.baseURL
}

// -----------------------------
// LOW-LEVEL REQUESTS
// -----------------------------
func (c *CardexClient) doPublicRequest(ctx context.Context, method, path string, params map[string]string, body, out any) error {
	return c.doRequest(ctx, method, path, nil, params, body, "", out)
}

// pathParams fill {name} placeholders in path and are escaped as one segment each.
func (c *CardexClient) doPrivateRequest(ctx context.Context, method, path string, pathParams, params map[string]string, out any) error {
	// Precondition: never put an unauthenticated call on the wire.
	token, err := c.session.Token()
	if err != nil {
		return err
	}
	return c.doRequest(ctx, method, path, pathParams, params, nil, token, out)
}

func (c *CardexClient) doRequest(ctx context.Context, method, path string, pathParams, params map[string]string, body any, token string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(pathParams) > 0 {
		req = req.SetPathParams(pathParams)
	}
	if len(params) > 0 {
		req = req.SetQueryParams(params)
	}
	if token != "" {
		req = req.SetAuthToken(token)
	}
	if body != nil {
		req = req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}

	raw := resp.Body()
	logger.WithFields(map[string]any{
		"method":    method,
		"path":      path,
		"status":    resp.StatusCode(),
		"requestId": resp.Request.Header.Get(requestIDHeader),
		"elapsed":   resp.Time().String(),
	}).Debug("CarDex API call")

	if !resp.IsSuccess() {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("json unmarshal %s %s failed: %w", method, path, err)
		}
	}
	return nil
}

// -----------------------------
// PUBLIC
// -----------------------------

// Health probes GET /health; any 2xx is healthy.
func (c *CardexClient) Health(ctx context.Context) error {
	return c.doPublicRequest(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// Login exchanges credentials for an access token and authenticates the
// session. A 401 yields ErrInvalidCredentials; on any failure the session
// is left as it was.
func (c *CardexClient) Login(ctx context.Context, username, password string) error {
	var out loginResponse
	err := c.doPublicRequest(ctx, http.MethodPost, "/auth/login", nil,
		loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			logger.WithField("username", username).Warn("Login rejected")
			return ErrInvalidCredentials
		}
		return fmt.Errorf("login request failed: %w", err)
	}

	if err := c.session.Establish(out.AccessToken); err != nil {
		return fmt.Errorf("login response without access token: %w", err)
	}

	logger.WithField("username", username).Info("Logged in to CarDex")
	return nil
}

// -----------------------------
// PRIVATE QUERIES
// -----------------------------

// GetCard resolves a card by id. A 404 is not an error: it returns nil, nil.
// Surrounding whitespace is not part of the id.
func (c *CardexClient) GetCard(ctx context.Context, cardID string) (*model.Card, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return nil, errors.New("card id is required")
	}

	var out model.Card
	err := c.doPrivateRequest(ctx, http.MethodGet, "/cards/{id}", map[string]string{"id": cardID}, nil, &out)
	if err != nil {
		if IsNotFound(err) {
			logger.WithField("cardId", cardID).Debug("Card not found")
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// GET /trades?limit&offset=0&sortBy=date_desc
func (c *CardexClient) GetOpenTrades(ctx context.Context, limit int) ([]model.OpenTrade, error) {
	params := map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": "0",
		"sortBy": sortDateDesc,
	}

	var out openTradesResponse
	if err := c.doPrivateRequest(ctx, http.MethodGet, "/trades", nil, params, &out); err != nil {
		return nil, err
	}
	if out.Trades == nil {
		return []model.OpenTrade{}, nil
	}
	return out.Trades, nil
}

// GET /trades/history?limit&offset=0
func (c *CardexClient) GetCompletedTrades(ctx context.Context, limit int) ([]model.CompletedTrade, error) {
	params := map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": "0",
	}

	var out completedTradesResponse
	if err := c.doPrivateRequest(ctx, http.MethodGet, "/trades/history", nil, params, &out); err != nil {
		return nil, err
	}
	if out.Trades == nil {
		return []model.CompletedTrade{}, nil
	}
	return out.Trades, nil
}

// GET /collections, used both for the shop and the collection list.
func (c *CardexClient) GetCollections(ctx context.Context) ([]model.Collection, error) {
	var out collectionsResponse
	if err := c.doPrivateRequest(ctx, http.MethodGet, "/collections", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Collections == nil {
		return []model.Collection{}, nil
	}
	return out.Collections, nil
}
