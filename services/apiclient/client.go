package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"vaxbook/config"
	"vaxbook/services/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Operation names, used in errors and logs.
const (
	OpListVaccines      = "listVaccines"
	OpGetVaccine        = "getVaccine"
	OpLogin             = "login"
	OpRegister          = "register"
	OpListChildren      = "listChildren"
	OpAddChild          = "addChild"
	OpListAppointments  = "listAppointments"
	OpBookAppointment   = "bookAppointment"
	OpCancelAppointment = "cancelAppointment"
)

// Backend routes.
const (
	pathVaccines          = "/api/vaccines/get-vaccines"
	pathVaccine           = "/api/vaccines/get-vaccine/"
	pathLogin             = "/api/auth/login"
	pathRegister          = "/api/auth/register-customer"
	pathChildren          = "/api/children/get-children"
	pathAddChild          = "/api/children/add-child"
	pathAppointments      = "/api/appointments/get-appointments"
	pathBookAppointment   = "/api/appointments/book-appointment"
	pathCancelAppointment = "/api/appointments/cancel-appointment/"
)

const (
	maxResponseBytes = 4 << 20
	requestIDHeader  = "X-Request-ID"
)

// Options configures a Client.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	AuthHeader        string
	SendAuthorization bool
	HTTPClient        *http.Client
}

// OptionsFromConfig derives client options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.RequestTimeout,
		AuthHeader:        cfg.AuthHeader,
		SendAuthorization: cfg.SendAuthorization,
	}
}

// Client is the single entry point for all backend I/O. It is safe for
// concurrent use; calls are never retried or coalesced.
type Client struct {
	baseURL           string
	authHeader        string
	sendAuthorization bool
	http              *http.Client
	session           *session.Manager
	logger            *zap.Logger
}

// New builds a Client reading and writing the session through store. A nil
// store keeps the session in memory.
func New(opts Options, store session.Store, logger *zap.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = config.DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultTimeout
	}
	if opts.AuthHeader == "" {
		opts.AuthHeader = config.DefaultAuthHeader
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = session.NewMemoryStore()
	}
	return &Client{
		baseURL:           strings.TrimRight(opts.BaseURL, "/"),
		authHeader:        opts.AuthHeader,
		sendAuthorization: opts.SendAuthorization,
		http:              httpClient,
		session:           session.NewManager(store),
		logger:            logger,
	}
}

// Session returns the manager of the persisted session.
func (c *Client) Session() *session.Manager {
	return c.session
}

// do performs one request and returns the raw body of a 2xx response.
// Every failure comes back as *Error.
func (c *Client) do(ctx context.Context, op, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(invalid(op, err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, c.fail(transportError(op, err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	token, err := c.session.Token(ctx)
	if err != nil {
		c.logger.Warn("Stored session unreadable, sending request without token",
			zap.String("op", op), zap.Error(err))
		token = ""
	}
	if token != "" {
		req.Header.Set(c.authHeader, token)
		if c.sendAuthorization {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(transportError(op, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.fail(transportError(op, err))
	}

	c.logger.Debug("API request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("requestId", requestID),
		zap.Bool("authenticated", token != ""),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(statusError(op, resp.StatusCode, data))
	}
	return data, nil
}

func (c *Client) fail(e *Error) *Error {
	c.logger.Warn("API request failed",
		zap.String("op", e.Op),
		zap.Stringer("kind", e.Kind),
		zap.Int("status", e.Status),
		zap.String("message", e.Message),
	)
	return e
}
