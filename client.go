package pamfax

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

type client struct {
	restyClient       *resty.Client
	baseURL           string
	timeout           time.Duration
	apiKey            string
	apiSecret         string
	processingTimeout time.Duration
	userIP            string
	userAgent         string
	logger            *slog.Logger

	mu        sync.RWMutex
	userToken string
}

var _ Client = (*client)(nil)

type Option func(*client)

func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithAPIKey sets the application credentials sent with every request.
func WithAPIKey(apiKey, apiSecret string) Option {
	return func(c *client) {
		c.apiKey = apiKey
		c.apiSecret = apiSecret
	}
}

// WithUserToken reuses a token from an earlier Login instead of verifying the user again.
func WithUserToken(token string) Option {
	return func(c *client) {
		c.userToken = token
	}
}

// WithRestyClient allows callers to provide a preconfigured HTTP client.
// WithBaseURL and WithTimeout apply to it regardless of option order.
func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}

// WithProcessingTimeout bounds waits on long-running jobs when the caller's context has no deadline.
// Zero, the default, waits until the job settles or the context is cancelled.
func WithProcessingTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.processingTimeout = timeout
		}
	}
}

// WithUserIP overrides the address reported to the service when creating fax jobs.
func WithUserIP(ip string) Option {
	return func(c *client) {
		if ip != "" {
			c.userIP = ip
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(opts ...Option) Client {
	c := &client{
		restyClient: newDefaultAPIClient(),
		userAgent:   DefaultUserAgent,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.restyClient == nil {
		c.restyClient = newDefaultAPIClient()
	}
	if c.baseURL != "" {
		c.restyClient.SetBaseURL(c.baseURL)
	}
	if c.timeout > 0 {
		c.restyClient.SetTimeout(c.timeout)
	}

	if c.userIP == "" {
		c.userIP = localIP()
	}

	return c
}

// Name returns the service name.
func (c *client) Name() string {
	return ServiceName
}

// UserToken returns the token obtained by Login, if any.
func (c *client) UserToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userToken
}

// Login verifies the user and attaches the returned token to all later requests.
func (c *client) Login(ctx context.Context, username, password string) error {
	resp, err := c.VerifyUser(ctx, username, password)
	if err != nil {
		return err
	}

	if resp.UserToken.Token == "" {
		return errMalformed(OperationVerifyUser, "response has no user token")
	}

	c.mu.Lock()
	c.userToken = resp.UserToken.Token
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "user verified", slog.String("username", username))
	return nil
}

func newDefaultAPIClient() *resty.Client {
	return resty.New().
		SetBaseURL(DefaultBaseURL).
		SetTimeout(DefaultTimeout).
		SetHeader(headerContentType, contentTypeJSON)
}

// localIP picks the first non-loopback IPv4 address of this host.
func localIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}

	return "127.0.0.1"
}
