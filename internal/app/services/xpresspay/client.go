package xpresspay

import (
	"net/http"
	"strings"
	"time"

	"xpresspay-sdk/internal/app/config"
	"xpresspay-sdk/internal/app/contracts"
	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the entry point for the SDK. It validates the merchant key pair
// once at construction, then hands out the resource services. All services
// share one pooled HTTP client and one client-side rate limiter, so a Client
// is safe for concurrent use.
type Client struct {
	Cards    contracts.CardService
	Accounts contracts.AccountService
	Banks    contracts.BankService

	publicKey string
	sandbox   bool
}

func NewClient(internalConfig *config.InternalConfig, logger *zap.Logger) (*Client, error) {
	cfg := internalConfig.Xpresspay

	if cfg.PublicKey == "" || !strings.HasPrefix(cfg.PublicKey, constvars.XpresspayPublicKeyPrefix) {
		return nil, exceptions.ErrMissingPublicKey()
	}
	if cfg.SecretKey == "" || !strings.HasPrefix(cfg.SecretKey, constvars.XpresspaySecretKeyPrefix) {
		return nil, exceptions.ErrMissingSecretKey()
	}

	baseUrl := constvars.XpresspayLiveBaseUrl
	if cfg.Sandbox {
		baseUrl = constvars.XpresspaySandboxBaseUrl
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.MaxRequestsPerSecond), cfg.RequestBurst)

	return &Client{
		Cards:     NewCardService(baseUrl, cfg.PublicKey, cfg.SecretKey, httpClient, limiter, logger),
		Accounts:  NewAccountService(baseUrl, cfg.PublicKey, cfg.SecretKey, httpClient, limiter, logger),
		Banks:     NewBankService(baseUrl, cfg.PublicKey, httpClient, limiter, logger),
		publicKey: cfg.PublicKey,
		sandbox:   cfg.Sandbox,
	}, nil
}

// PublicKey returns the configured public key; callers need it when
// pre-filling request DTOs.
func (c *Client) PublicKey() string {
	return c.publicKey
}

// IsSandbox reports whether the client points at the sandbox environment.
func (c *Client) IsSandbox() bool {
	return c.sandbox
}
