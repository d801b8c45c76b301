package xpresspay

import (
	"context"
	"net/http"
	"net/url"

	"xpresspay-sdk/internal/app/contracts"
	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/dto/responses"
	"xpresspay-sdk/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type bankService struct {
	gatewayClient
}

func NewBankService(baseUrl, publicKey string, httpClient *http.Client, limiter *rate.Limiter, logger *zap.Logger) contracts.BankService {
	return &bankService{
		gatewayClient: gatewayClient{
			BaseUrl:    baseUrl,
			PublicKey:  publicKey,
			HTTPClient: httpClient,
			Limiter:    limiter,
			Log:        logger,
		},
	}
}

// List returns all banks supported for account payments. The returned codes
// feed AccountPayment.BankCode.
func (s *bankService) List(ctx context.Context) ([]responses.Bank, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("bankService.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set("publicKey", s.PublicKey)

	raw, err := s.getJSON(ctx, "bankService.List", constvars.EndpointBanks, query)
	if err != nil {
		return nil, err
	}

	banks := parseBankList(raw)
	s.Log.Info("bankService.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("bank_count", len(banks)),
	)
	return banks, nil
}

// parseBankList tolerates the two body shapes the gateway serves: a bare
// list under "data", or a "banks" list nested one level deeper. Entry keys
// also vary between name/bankName and code/bankCode.
func parseBankList(raw map[string]interface{}) []responses.Bank {
	inner, ok := raw["data"]
	if !ok {
		inner = raw
	}

	var entries []interface{}
	switch typed := inner.(type) {
	case []interface{}:
		entries = typed
	case map[string]interface{}:
		entries, _ = typed["banks"].([]interface{})
	}

	banks := make([]responses.Bank, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		banks = append(banks, responses.Bank{
			Name: stringField(fields, "name", "bankName"),
			Code: stringField(fields, "code", "bankCode"),
			Raw:  fields,
		})
	}
	return banks
}

func stringField(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
