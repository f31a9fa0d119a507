// Package transport is the HTTP client shared by the remote service adapters.
// It signs requests with the session's access credential and renews it once on 401.
package transport

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	domainerrors "jobboard/internal/domain/errors"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxResponseBytes = 4 << 20

// Credentials is the session side of the renewal protocol.
type Credentials interface {
	// AccessToken returns the current access credential, or "" when signed out.
	AccessToken() string

	// RenewAccessCredential returns a fresh access credential. stale is the
	// credential that was rejected; callers racing on the same stale value
	// share one renewal.
	RenewAccessCredential(ctx context.Context, stale string) (string, error)

	// Expire tears the session down after the service rejected a renewed credential.
	Expire(ctx context.Context)
}

// Request describes one call to the job-board API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// Auth signs the request when a session exists. Unsigned requests never trigger renewal.
	Auth bool
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client performs JSON requests against the job-board API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	creds      atomic.Pointer[credentialsHolder]
}

type credentialsHolder struct {
	Credentials
}

// New creates a Client from configuration.
func New(params Params) *Client {
	return NewClient(params.Config.API.BaseURL, &http.Client{Timeout: params.Config.API.Timeout}, params.Logger, params.Config.Env.ServiceName)
}

// NewClient creates a Client for baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}
}

// UseCredentials binds the session that signs requests. It is set after
// construction because the session itself depends on this client.
func (c *Client) UseCredentials(creds Credentials) {
	c.creds.Store(&credentialsHolder{Credentials: creds})
}

func (c *Client) credentials() Credentials {
	if holder := c.creds.Load(); holder != nil {
		return holder.Credentials
	}

	return nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Do sends req and decodes a successful JSON response into out (which may be nil).
// A signed request answered with 401 is retried exactly once with a renewed credential;
// a second 401 expires the session and returns ErrSessionExpired.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	var payload []byte
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		payload = encoded
	}

	var token string
	creds := c.credentials()
	if req.Auth && creds != nil {
		token = creds.AccessToken()
	}

	status, body, err := c.send(ctx, req, payload, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && token != "" {
		renewed, err := creds.RenewAccessCredential(ctx, token)
		if err != nil {
			return err
		}

		c.log(ctx).Debug("Retrying request with renewed credential", slog.String("method", req.Method), slog.String("path", req.Path))

		status, body, err = c.send(ctx, req, payload, renewed)
		if err != nil {
			return err
		}

		if status == http.StatusUnauthorized {
			c.log(ctx).Warn("Renewed credential rejected, expiring session", slog.String("path", req.Path))
			creds.Expire(ctx)

			return &ResponseError{StatusCode: status, Body: body, err: domainerrors.ErrSessionExpired}
		}
	}

	if status < 200 || status >= 300 {
		return &ResponseError{StatusCode: status, Body: body, err: classify(status, body)}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to decode %s %s response", req.Method, req.Path)
	}

	return nil
}

func (c *Client) send(ctx context.Context, req Request, payload []byte, token string) (int, []byte, error) {
	target := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to build request")
	}

	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, errors.Wrap(ctxErr, "request canceled")
		}

		c.log(ctx).Warn("Job board API unreachable", slog.String("method", req.Method), slog.String("path", req.Path), slog.Any("error", err))

		return 0, nil, errors.Wrap(domainerrors.ErrNetwork.WithDetails(err.Error()), "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, errors.Wrap(domainerrors.ErrNetwork.WithDetails(err.Error()), "failed to read response")
	}

	c.log(ctx).Debug("Job board API call",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode),
		slog.Bool("signed", token != ""),
		slog.Duration("elapsed", time.Since(start)),
	)

	return resp.StatusCode, body, nil
}
