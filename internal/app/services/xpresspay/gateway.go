package xpresspay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"

	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/dto/responses"
	"xpresspay-sdk/internal/pkg/exceptions"
	"xpresspay-sdk/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// gatewayClient is the plumbing every resource service shares: one pooled
// HTTP client, one client-side rate limiter, Bearer authentication with the
// merchant public key, and the gateway's HTTP-status-to-error mapping.
type gatewayClient struct {
	BaseUrl    string
	PublicKey  string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func (g *gatewayClient) postJSON(ctx context.Context, operation, endpoint string, body interface{}) (map[string]interface{}, error) {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		g.Log.Error(operation+" error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, g.BaseUrl+endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		g.Log.Error(operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	return g.do(ctx, operation, req)
}

func (g *gatewayClient) getJSON(ctx context.Context, operation, endpoint string, query url.Values) (map[string]interface{}, error) {
	fullUrl := g.BaseUrl + endpoint
	if len(query) > 0 {
		fullUrl += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fullUrl, nil)
	if err != nil {
		g.Log.Error(operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	return g.do(ctx, operation, req)
}

func (g *gatewayClient) do(ctx context.Context, operation string, req *http.Request) (map[string]interface{}, error) {
	requestID := utils.GetRequestID(ctx)

	if err := g.Limiter.Wait(ctx); err != nil {
		g.Log.Error(operation+" rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRateLimitWait(err)
	}

	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+g.PublicKey)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		g.Log.Error(operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, req.URL.Path),
			zap.Error(err),
		)
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, exceptions.ErrRequestTimeout(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		g.Log.Error(operation+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "gateway")
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		g.Log.Error(operation+" gateway returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, req.URL.Path),
			zap.Int(constvars.LoggingHTTPStatusKey, resp.StatusCode),
		)
		return nil, g.mapErrorStatus(resp.StatusCode, bodyBytes)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		g.Log.Error(operation+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "gateway")
	}

	return raw, nil
}

// mapErrorStatus maps gateway HTTP statuses to typed SDK errors.
func (g *gatewayClient) mapErrorStatus(statusCode int, bodyBytes []byte) error {
	var gatewayError responses.GatewayError
	// the body may not be JSON at all; fall back to the raw text
	json.Unmarshal(bodyBytes, &gatewayError)
	message := gatewayError.BestMessage(string(bodyBytes))

	switch {
	case statusCode == constvars.StatusBadRequest:
		return exceptions.ErrGatewayValidation(message)
	case statusCode == constvars.StatusUnauthorized:
		return exceptions.ErrGatewayAuthentication(message)
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrGatewayNotFound(message)
	case statusCode >= constvars.StatusInternalServerError:
		return exceptions.ErrGatewayProcessing(statusCode, message)
	default:
		return exceptions.ErrGatewayUnexpectedStatus(statusCode, message)
	}
}

func buildPaymentResponse(raw map[string]interface{}) *responses.Payment {
	status, _ := raw["status"].(string)
	message, _ := raw["message"].(string)
	return &responses.Payment{
		Status:  status,
		Message: message,
		Raw:     raw,
	}
}
