package xpresspay

import (
	"context"
	"net/http"

	"xpresspay-sdk/internal/app/contracts"
	"xpresspay-sdk/internal/pkg/constvars"
	"xpresspay-sdk/internal/pkg/dto/requests"
	"xpresspay-sdk/internal/pkg/dto/responses"
	"xpresspay-sdk/internal/pkg/encryption"
	"xpresspay-sdk/internal/pkg/exceptions"
	"xpresspay-sdk/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type cardService struct {
	gatewayClient
	SecretKey string
}

func NewCardService(baseUrl, publicKey, secretKey string, httpClient *http.Client, limiter *rate.Limiter, logger *zap.Logger) contracts.CardService {
	return &cardService{
		gatewayClient: gatewayClient{
			BaseUrl:    baseUrl,
			PublicKey:  publicKey,
			HTTPClient: httpClient,
			Limiter:    limiter,
			Log:        logger,
		},
		SecretKey: secretKey,
	}
}

// Initiate encrypts the card details and starts a payment. Inspect the
// response to pick the next step: SuggestedAuthentication "PIN" means
// AuthenticatePin, "AVS_VBVSECURECODE" means AuthenticateAvs.
func (s *cardService) Initiate(ctx context.Context, request *requests.CardPayment) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("cardService.Initiate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.String(constvars.LoggingMaskedCardKey, utils.MaskCardNumber(request.CardNumber)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	encrypted, err := encryption.EncryptPayload(request.ToEncryptPayload(), s.SecretKey)
	if err != nil {
		s.Log.Error("cardService.Initiate error encrypting payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
			zap.Error(err),
		)
		return nil, err
	}

	envelope := &requests.PaymentEnvelope{
		PublicKey:   s.PublicKey,
		Request:     encrypted,
		Alg:         constvars.EncryptionAlg,
		PaymentType: string(constvars.PaymentTypeCard),
	}

	raw, err := s.postJSON(ctx, "cardService.Initiate", constvars.EndpointPayments, envelope)
	if err != nil {
		return nil, err
	}

	response := buildPaymentResponse(raw)
	s.Log.Info("cardService.Initiate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.String("suggested_authentication", response.SuggestedAuthentication()),
	)
	return response, nil
}

// AuthenticatePin submits the cardholder PIN for local Nigerian cards. The
// customer typically receives an OTP next; follow with ValidateOtp.
func (s *cardService) AuthenticatePin(ctx context.Context, request *requests.CardPinAuth) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("cardService.AuthenticatePin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := s.postJSON(ctx, "cardService.AuthenticatePin", constvars.EndpointPaymentsAuthenticate, request.ToBody())
	if err != nil {
		return nil, err
	}

	s.Log.Info("cardService.AuthenticatePin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)
	return buildPaymentResponse(raw), nil
}

// AuthenticateAvs submits the billing address for AVS / 3DSecure
// international cards. When the response carries an AuthUrl, render it in an
// iframe so the cardholder can complete 3DSecure.
func (s *cardService) AuthenticateAvs(ctx context.Context, request *requests.CardAvsAuth) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("cardService.AuthenticateAvs called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := s.postJSON(ctx, "cardService.AuthenticateAvs", constvars.EndpointPaymentsAuthenticate, request.ToBody())
	if err != nil {
		return nil, err
	}

	s.Log.Info("cardService.AuthenticateAvs succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)
	return buildPaymentResponse(raw), nil
}

// ValidateOtp submits the OTP received by the customer to complete
// authentication.
func (s *cardService) ValidateOtp(ctx context.Context, request *requests.OtpValidation) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("cardService.ValidateOtp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := s.postJSON(ctx, "cardService.ValidateOtp", constvars.EndpointPaymentsValidate, request.ToBody())
	if err != nil {
		return nil, err
	}

	s.Log.Info("cardService.ValidateOtp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)
	return buildPaymentResponse(raw), nil
}

// Query checks the final status of a card payment. Always verify
// IsSuccessful and the amount server-side before delivering value; never
// trust the customer's browser alone.
func (s *cardService) Query(ctx context.Context, request *requests.PaymentQuery) (*responses.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("cardService.Query called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := s.postJSON(ctx, "cardService.Query", constvars.EndpointPaymentsQuery, request)
	if err != nil {
		return nil, err
	}

	response := buildPaymentResponse(raw)
	s.Log.Info("cardService.Query succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.Bool(constvars.LoggingSuccessKey, response.IsSuccessful()),
	)
	return response, nil
}
