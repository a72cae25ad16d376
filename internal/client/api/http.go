package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/authdesk/internal/common"
	"github.com/dmitrijs2005/authdesk/internal/logging"
)

const (
	userAgent = "authdesk/1.0"

	registerPath = "/auth/register"
	loginPath    = "/auth/login"
	profilePath  = "/users/profile"

	// maxErrorBody caps how much of a failed response is read.
	maxErrorBody = 64 << 10
)

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient creates a client for baseURL (e.g. http://localhost:3000/api).
// A zero timeout leaves requests without a client-side deadline.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "api"),
	}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.do(ctx, http.MethodPost, registerPath, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var raw struct {
		User  json.RawMessage `json:"user"`
		Token any             `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, loginPath, "", req, &raw); err != nil {
		return nil, err
	}

	// Shape checks are the service's job; here a wrong type just reads as
	// a missing field.
	resp := &LoginResponse{}
	var user map[string]any
	if len(raw.User) > 0 && json.Unmarshal(raw.User, &user) == nil {
		resp.User = user
	}
	if s, ok := raw.Token.(string); ok {
		resp.Token = s
	}
	return resp, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, profilePath, token, nil, &p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, common.NewServerError(0, "", common.ErrInvalidResponseFormat)
	}
	return p, nil
}

// do sends one JSON request and decodes a 2xx body into dst. token, when
// non-empty, is sent as a bearer Authorization header. An empty 2xx body
// leaves dst untouched.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, dst any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return common.NewServerError(0, "", fmt.Errorf("encoding request: %w", err))
		}
		reader = bytes.NewReader(b)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return common.NewServerError(0, "", fmt.Errorf("creating request: %w", err))
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(common.RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return common.NewServerError(0, "", errors.Join(common.ErrTransport, err))
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response received", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.NewServerError(resp.StatusCode, "", errors.Join(common.ErrTransport, err))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return common.NewServerError(resp.StatusCode, "",
			errors.Join(common.ErrInvalidResponseFormat, fmt.Errorf("decoding %s: %w", path, err)))
	}
	return nil
}

// errorFromResponse normalizes a non-2xx response, preferring the server's
// own message.
func errorFromResponse(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body MessageResponse
	_ = json.Unmarshal(data, &body)

	cause := fmt.Errorf("HTTP %d", resp.StatusCode)
	return common.NewServerError(resp.StatusCode, body.Message, cause)
}
